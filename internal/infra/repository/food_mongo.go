package repository

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodMongoRepository struct {
	col *mongo.Collection
}

// DI
func NewFoodMongoRepository(db *mongo.Database) *FoodMongoRepository {
	return &FoodMongoRepository{col: db.Collection("food_items")}
}

// SearchPatternは検索文字列をname向けの大文字小文字無視の部分一致パターンにする。
// メタ文字はエスケープして、入力がそのまま正規表現にならないようにする。
func SearchPattern(search string) primitive.Regex {
	return primitive.Regex{
		Pattern: regexp.QuoteMeta(strings.TrimSpace(search)),
		Options: "i",
	}
}

// 検索条件をbsonフィルタにする。条件はANDで合成。
func buildFoodFilter(q repo.FoodListQuery) bson.M {
	filter := bson.M{}

	if strings.TrimSpace(q.Search) != "" {
		filter["name"] = SearchPattern(q.Search)
	}

	if q.OwnerEmail != "" {
		filter["made_by.email"] = q.OwnerEmail
	}

	return filter
}

// 検索/ページング付きで一覧を返す。
// totalはコレクション全体の推定件数（検索条件では絞らない）。
func (r *FoodMongoRepository) List(ctx context.Context, q repo.FoodListQuery) ([]model.FoodItem, int64, error) {
	filter := buildFoodFilter(q)

	//skip = page * limit（pageは0始まり）
	skip := int64(q.Page) * int64(q.Limit)

	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(q.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := []model.FoodItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	//total（推定件数）
	total, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// 出品者のemailで全件返す。件数上限は掛けない。
func (r *FoodMongoRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]model.FoodItem, error) {
	cur, err := r.col.Find(ctx, bson.M{"made_by.email": ownerEmail})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.FoodItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// IDで1件取得
func (r *FoodMongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (model.FoodItem, error) {
	var f model.FoodItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.FoodItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FoodItem{}, err
	}
	return f, nil
}

// soldの多い順に上位limit件
func (r *FoodMongoRepository) TopBySold(ctx context.Context, limit int64) ([]model.FoodItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sold", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.FoodItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// 食品の作成
func (r *FoodMongoRepository) Create(ctx context.Context, f model.FoodItem) (model.FoodItem, error) {
	res, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return model.FoodItem{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		f.ID = oid
	}
	return f, nil
}

// 許可リスト済みフィールドだけを$setで更新
func (r *FoodMongoRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫と売上を購入時の値に更新する。
// soldは累計ではなく直近の購入数で上書きされる。
func (r *FoodMongoRepository) SetStockAndSold(ctx context.Context, id primitive.ObjectID, stock int64, sold int64) (repo.StockWriteResult, error) {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"stock_quantity": stock,
		"sold":           sold,
	}})
	if err != nil {
		return repo.StockWriteResult{}, err
	}

	return repo.StockWriteResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
