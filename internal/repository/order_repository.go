package repository

import (
	"context"

	"luxebite/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 購入者での絞り込み
type OrderListQuery struct {
	BuyerEmail string
}

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	ListByBuyer(ctx context.Context, q OrderListQuery) ([]model.Order, error)
	// 在庫反映が終わったことを記録する
	MarkStockAdjusted(ctx context.Context, id primitive.ObjectID) error
	// 消した件数を返す。0件は「対象がない」でエラーではない。
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
