package repository

import (
	"context"
	"errors"

	"luxebite/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
// Pageは0始まり。フィルタはANDで合成し、ページングはフィルタ後に掛ける。
type FoodListQuery struct {
	Page       int
	Limit      int
	Search     string
	OwnerEmail string
}

// 在庫反映の書き込み結果
type StockWriteResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// 食品の永続化（保存・取得）だけを約束。
type FoodRepository interface {
	List(ctx context.Context, q FoodListQuery) ([]model.FoodItem, int64, error)
	// 出品者のemailで全件。ページングは掛けない。
	ListByOwner(ctx context.Context, ownerEmail string) ([]model.FoodItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (model.FoodItem, error)
	TopBySold(ctx context.Context, limit int64) ([]model.FoodItem, error)

	Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error)
	// フィールドは呼び出し側で許可リスト済みのmapだけを受け取る
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	// 在庫と売上を購入時の値に更新する
	SetStockAndSold(ctx context.Context, id primitive.ObjectID, stock int64, sold int64) (StockWriteResult, error)
}
