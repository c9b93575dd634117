package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	// 任意クレデンシャル。空ならパスワードなしのサインイン（OAuthフロント側）
	PasswordHash string     `bson:"password_hash,omitempty" json:"-"`
	LastLoginAt  *time.Time `bson:"last_login_at,omitempty" json:"lastLoginAt,omitempty"`
	LastLogoutAt *time.Time `bson:"last_logout_at,omitempty" json:"lastLogoutAt,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}
