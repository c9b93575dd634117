package repository

import (
	"context"
	"errors"
	"time"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userMongoRepository struct {
	col *mongo.Collection
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserMongoRepository(db *mongo.Database) repo.UserRepository {
	return &userMongoRepository{col: db.Collection("users")}
}

// emailをキーに作成または更新
func (r *userMongoRepository) Upsert(ctx context.Context, user *model.User) error {
	set := bson.M{
		"name":       user.Name,
		"updated_at": user.UpdatedAt,
	}
	if user.PasswordHash != "" {
		set["password_hash"] = user.PasswordHash
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"email": user.Email}, update, opts)
	return err
}

// emailでユーザーを1件取得
func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repo.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// 最終ログイン時刻を更新（初回サインインならユーザーを作る）
func (r *userMongoRepository) TouchLastLogin(ctx context.Context, email string, name string, at time.Time) error {
	set := bson.M{
		"last_login_at": at,
		"updated_at":    at,
	}
	if name != "" {
		set["name"] = name
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"email":      email,
			"created_at": at,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	return err
}

// 最終ログアウト時刻を更新
func (r *userMongoRepository) TouchLastLogout(ctx context.Context, email string, at time.Time) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"last_logout_at": at,
		"updated_at":     at,
	}})
	if err != nil {
		return err
	}

	// 0件更新は「対象がない」
	if res.MatchedCount == 0 {
		return repo.ErrUserNotFound
	}
	return nil
}
