package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 出品者（name + email）
type MadeBy struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

type FoodItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Category      string             `bson:"category" json:"category"`
	Image         string             `bson:"image" json:"image"`
	Price         float64            `bson:"price" json:"price"`
	StockQuantity int64              `bson:"stock_quantity" json:"stock_quantity"`
	Sold          int64              `bson:"sold" json:"sold"`
	MadeBy        MadeBy             `bson:"made_by" json:"made_by"`
	Origin        string             `bson:"origin" json:"origin"`
	Description   string             `bson:"description" json:"description"`
}
