package usecase

import (
	"context"
	"net/http"
	"strings"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UUID等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	foodRepo  repo.FoodRepository
	idGen     IDGenerator
	clock     Clock
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	foodRepo repo.FoodRepository,
	idGen IDGenerator,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		foodRepo:  foodRepo,
		idGen:     idGen,
		clock:     clock,
	}
}

type PlaceOrderInput struct {
	FoodID                   string
	PurchaseQuantity         int64
	UpdatedAvailableQuantity int64
	BuyerName                string
	BuyerEmail               string
}

type PlaceOrderOutput struct {
	OrderID string `json:"orderId"`
	Ref     string `json:"ref"`
	// 在庫反映の書き込み結果もそのまま返す
	StockUpdate repo.StockWriteResult `json:"stockUpdate"`
}

// 注文を確定する。
// 2つの書き込みはトランザクションではない。先に注文をstock_adjusted=falseで
// 入れてから在庫を反映し、最後にフラグを立てる。途中で失敗しても
// 「反映待ちの注文」として残り、在庫だけ動いて注文が消えることはない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	foodID, err := primitive.ObjectIDFromHex(in.FoodID)
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid foodId")
	}
	if in.PurchaseQuantity <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid purchaseQuantity")
	}
	if in.UpdatedAvailableQuantity < 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid updatedAvailableQuantity")
	}
	if strings.TrimSpace(in.BuyerEmail) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "buyerEmail required")
	}

	//購入時点のスナップショットを取る
	food, err := u.foodRepo.FindByID(ctx, foodID)
	if err == repo.ErrNotFound {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()

	order, err := u.orderRepo.Create(ctx, model.Order{
		Ref:              u.idGen.NewID(),
		FoodID:           foodID,
		FoodName:         food.Name,
		FoodImage:        food.Image,
		Price:            food.Price,
		PurchaseQuantity: in.PurchaseQuantity,
		BuyerData: model.BuyerData{
			BuyerName:  in.BuyerName,
			BuyerEmail: strings.TrimSpace(in.BuyerEmail),
		},
		StockAdjusted: false,
		CreatedAt:     now,
	})
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//在庫を反映する
	//soldは累計ではなく直近の購入数で上書きされる
	stockRes, err := u.foodRepo.SetStockAndSold(ctx, foodID, in.UpdatedAvailableQuantity, in.PurchaseQuantity)
	if err != nil {
		// 注文はstock_adjusted=falseのまま残る
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.orderRepo.MarkStockAdjusted(ctx, order.ID); err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PlaceOrderOutput{
		OrderID:     order.ID.Hex(),
		Ref:         order.Ref,
		StockUpdate: stockRes,
	}, nil
}

// 検証済みemailで絞った自分の注文一覧。
func (u *OrderUsecase) ListMyOrderedItems(ctx context.Context, verifiedEmail string) ([]model.Order, error) {
	if verifiedEmail == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListByBuyer(ctx, repo.OrderListQuery{BuyerEmail: verifiedEmail})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

type DeleteOrderOutput struct {
	DeletedCount int64 `json:"deletedCount"`
}

// 注文の削除。存在しないIDは0件削除で返す（エラーではない）。
func (u *OrderUsecase) DeleteOrder(ctx context.Context, idStr string) (DeleteOrderOutput, error) {
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return DeleteOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	count, err := u.orderRepo.Delete(ctx, id)
	if err != nil {
		return DeleteOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DeleteOrderOutput{DeletedCount: count}, nil
}
