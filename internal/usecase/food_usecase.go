package usecase

import (
	"context"
	"net/http"
	"strings"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FoodUsecase struct {
	foodRepo repo.FoodRepository
}

// DI
func NewFoodUsecase(foodRepo repo.FoodRepository) *FoodUsecase {
	return &FoodUsecase{foodRepo: foodRepo}
}

// GET /all-food-itemsの入力DTO
type ListFoodInput struct {
	Page   int
	Limit  int
	Search string
}

type FoodListOutput struct {
	Items []model.FoodItem `json:"items"`
	// コレクション全体の推定件数。検索条件では絞らない。
	TotalCount int64 `json:"totalCount"`
}

func (u *FoodUsecase) ListFoodItems(ctx context.Context, in ListFoodInput) (FoodListOutput, error) {
	if in.Page < 0 {
		return FoodListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return FoodListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Search) > 100 {
		return FoodListOutput{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}

	items, total, err := u.foodRepo.List(ctx, repo.FoodListQuery{
		Page:   in.Page,
		Limit:  in.Limit,
		Search: strings.TrimSpace(in.Search),
	})
	if err != nil {
		return FoodListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return FoodListOutput{
		Items:      items,
		TotalCount: total,
	}, nil
}

func (u *FoodUsecase) GetFoodItem(ctx context.Context, idStr string) (model.FoodItem, error) {
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return model.FoodItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	f, err := u.foodRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.FoodItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.FoodItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return f, nil
}

// soldの多い順に上位6件
func (u *FoodUsecase) TopFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	items, err := u.foodRepo.TopBySold(ctx, 6)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// 検証済みemailで絞った自分の出品一覧。全件返す（ページングなし）。
// 呼び出し側パラメータではなく認証済みの身元で絞る。
func (u *FoodUsecase) ListMyAddedItems(ctx context.Context, verifiedEmail string) ([]model.FoodItem, error) {
	if verifiedEmail == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.foodRepo.ListByOwner(ctx, verifiedEmail)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

type CreateFoodInput struct {
	Name          string
	Category      string
	Image         string
	Price         float64
	StockQuantity int64
	MadeByName    string
	MadeByEmail   string
	Origin        string
	Description   string
}

func (u *FoodUsecase) CreateFoodItem(ctx context.Context, in CreateFoodInput) (model.FoodItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.FoodItem{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.FoodItem{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.StockQuantity < 0 {
		return model.FoodItem{}, NewHTTPError(http.StatusBadRequest, "stock_quantity must be >= 0")
	}

	f, err := u.foodRepo.Create(ctx, model.FoodItem{
		Name:          strings.TrimSpace(in.Name),
		Category:      in.Category,
		Image:         in.Image,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		Sold:          0,
		MadeBy: model.MadeBy{
			Name:  in.MadeByName,
			Email: in.MadeByEmail,
		},
		Origin:      in.Origin,
		Description: in.Description,
	})
	if err != nil {
		return model.FoodItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return f, nil
}

type UpdateFoodInput struct {
	Name          string
	Category      string
	Image         string
	Price         float64
	StockQuantity int64
	Origin        string
	Description   string
}

// 許可リストのフィールドだけを$setに写す。
// リクエストボディの任意フィールドがそのまま更新に流れないようにする。
func (u *FoodUsecase) UpdateFoodItem(ctx context.Context, idStr string, in UpdateFoodInput) error {
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.StockQuantity < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock_quantity must be >= 0")
	}

	fields := map[string]interface{}{
		"name":           strings.TrimSpace(in.Name),
		"category":       in.Category,
		"image":          in.Image,
		"price":          in.Price,
		"stock_quantity": in.StockQuantity,
		"origin":         in.Origin,
		"description":    in.Description,
	}

	err = u.foodRepo.UpdateFields(ctx, id, fields)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
