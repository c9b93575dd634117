package repository

import (
	"context"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type contentMongoRepository struct {
	db *mongo.Database
}

// DI
func NewContentMongoRepository(db *mongo.Database) repo.ContentRepository {
	return &contentMongoRepository{db: db}
}

func (r *contentMongoRepository) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	cur, err := r.db.Collection("testimonials").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.Testimonial{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentMongoRepository) ListChefs(ctx context.Context) ([]model.Chef, error) {
	cur, err := r.db.Collection("chefs").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.Chef{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentMongoRepository) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	cur, err := r.db.Collection("blogs").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.Blog{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
