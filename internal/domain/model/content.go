package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// 表示専用の静的コンテンツ。書き込みAPIは持たない。

type Testimonial struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Avatar string             `bson:"avatar" json:"avatar"`
	Rating float64            `bson:"rating" json:"rating"`
	Text   string             `bson:"text" json:"text"`
}

type Chef struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Photo      string             `bson:"photo" json:"photo"`
	Specialty  string             `bson:"specialty" json:"specialty"`
	Experience string             `bson:"experience" json:"experience"`
}

type Blog struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title   string             `bson:"title" json:"title"`
	Image   string             `bson:"image" json:"image"`
	Author  string             `bson:"author" json:"author"`
	Date    string             `bson:"date" json:"date"`
	Content string             `bson:"content" json:"content"`
}
