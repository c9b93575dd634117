package repository

import (
	"context"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderMongoRepository struct {
	col *mongo.Collection
}

// DI
func NewOrderMongoRepository(db *mongo.Database) *OrderMongoRepository {
	return &OrderMongoRepository{col: db.Collection("orders")}
}

// 注文の作成
func (r *OrderMongoRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return model.Order{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return o, nil
}

// 購入者のemailで絞り込んだ一覧
func (r *OrderMongoRepository) ListByBuyer(ctx context.Context, q repo.OrderListQuery) ([]model.Order, error) {
	cur, err := r.col.Find(ctx, bson.M{"buyer_data.buyer_email": q.BuyerEmail})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []model.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// 在庫反映済みフラグを立てる
func (r *OrderMongoRepository) MarkStockAdjusted(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"stock_adjusted": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 注文の削除。0件削除はエラーにしない。
func (r *OrderMongoRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
