package usecase

import (
	"context"
	"net/http"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"
)

// 表示専用コンテンツの取得。
type ContentUsecase struct {
	contentRepo repo.ContentRepository
}

// DI
func NewContentUsecase(contentRepo repo.ContentRepository) *ContentUsecase {
	return &ContentUsecase{contentRepo: contentRepo}
}

func (u *ContentUsecase) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	items, err := u.contentRepo.ListTestimonials(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ContentUsecase) ListChefs(ctx context.Context) ([]model.Chef, error) {
	items, err := u.contentRepo.ListChefs(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ContentUsecase) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	items, err := u.contentRepo.ListBlogs(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
