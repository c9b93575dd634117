package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 購入者（name + email）
type BuyerData struct {
	BuyerName  string `bson:"buyer_name" json:"buyerName"`
	BuyerEmail string `bson:"buyer_email" json:"buyerEmail"`
}

// Orderは購入時点のスナップショットを持つ。
// food_idの参照先が消えていても読み出しは壊れない（参照整合性はストア側で保証されない）。
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Ref              string             `bson:"ref" json:"ref"`
	FoodID           primitive.ObjectID `bson:"food_id" json:"foodId"`
	FoodName         string             `bson:"food_name" json:"foodName"`
	FoodImage        string             `bson:"food_image" json:"foodImage"`
	Price            float64            `bson:"price" json:"price"`
	PurchaseQuantity int64              `bson:"purchase_quantity" json:"purchase_quantity"`
	BuyerData        BuyerData          `bson:"buyer_data" json:"buyerData"`
	// 在庫反映が終わるまでfalse（途中失敗を可視化する）
	StockAdjusted bool      `bson:"stock_adjusted" json:"stock_adjusted"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
