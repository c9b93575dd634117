package repository

import (
	"context"

	"luxebite/internal/domain/model"
)

// 表示専用コンテンツの取得だけを約束。
type ContentRepository interface {
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	ListChefs(ctx context.Context) ([]model.Chef, error)
	ListBlogs(ctx context.Context) ([]model.Blog, error)
}
