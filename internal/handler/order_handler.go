package handler

import (
	"net/http"

	"luxebite/internal/middleware"
	"luxebite/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	e.POST("/new-orders", h.create)
	e.DELETE("/delete-order/:id", h.delete)

	e.GET("/my-ordered-items", h.myOrderedItems, session, middleware.OwnershipGuard("email"))
}

type BuyerDataRequest struct {
	BuyerName  string `json:"buyerName"`
	BuyerEmail string `json:"buyerEmail" validate:"required,email"`
}

type OrderCreateRequest struct {
	FoodID                   string           `json:"foodId" validate:"required"`
	PurchaseQuantity         int64            `json:"purchaseQuantity" validate:"gt=0"`
	UpdatedAvailableQuantity int64            `json:"updatedAvailableQuantity" validate:"gte=0"`
	BuyerData                BuyerDataRequest `json:"buyerData" validate:"required"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		FoodID:                   req.FoodID,
		PurchaseQuantity:         req.PurchaseQuantity,
		UpdatedAvailableQuantity: req.UpdatedAvailableQuantity,
		BuyerName:                req.BuyerData.BuyerName,
		BuyerEmail:               req.BuyerData.BuyerEmail,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) myOrderedItems(c echo.Context) error {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	//絞り込みは検証済みemailで行う
	orders, err := h.uc.ListMyOrderedItems(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) delete(c echo.Context) error {
	out, err := h.uc.DeleteOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
