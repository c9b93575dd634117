package handler

import (
	"net/http"
	"strconv"

	"luxebite/internal/middleware"
	"luxebite/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 食品の公開API＋出品者向けAPI
type FoodHandler struct {
	uc *usecase.FoodUsecase
}

// DI
func NewFoodHandler(uc *usecase.FoodUsecase) *FoodHandler {
	return &FoodHandler{uc: uc}
}

// 食品のルートを登録。my-added-itemsだけsession＋所有チェック付き。
func (h *FoodHandler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	e.GET("/all-food-items", h.list)
	e.GET("/all-food-items/:id", h.detail)
	e.GET("/top-food", h.top)
	e.POST("/add-item", h.create)
	e.PUT("/update-item/:id", h.update)

	e.GET("/my-added-items", h.myAddedItems, session, middleware.OwnershipGuard("email"))
}

func (h *FoodHandler) list(c echo.Context) error {
	// page（default 0、0始まり）
	page := 0
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 10）
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	search := c.QueryParam("search")

	out, err := h.uc.ListFoodItems(c.Request().Context(), usecase.ListFoodInput{
		Page:   page,
		Limit:  limit,
		Search: search,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FoodHandler) detail(c echo.Context) error {
	f, err := h.uc.GetFoodItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FoodHandler) top(c echo.Context) error {
	items, err := h.uc.TopFoodItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *FoodHandler) myAddedItems(c echo.Context) error {
	email, ok := middleware.EmailFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	//絞り込みは検証済みemailで行う（クエリのemailは一致チェックにしか使わない）
	items, err := h.uc.ListMyAddedItems(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

type FoodCreateRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=255"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int64   `json:"stock_quantity" validate:"gte=0"`
	MadeByName    string  `json:"made_by_name"`
	MadeByEmail   string  `json:"made_by_email" validate:"required,email"`
	Origin        string  `json:"origin"`
	Description   string  `json:"description"`
}

func (h *FoodHandler) create(c echo.Context) error {
	var req FoodCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	f, err := h.uc.CreateFoodItem(c.Request().Context(), usecase.CreateFoodInput{
		Name:          req.Name,
		Category:      req.Category,
		Image:         req.Image,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		MadeByName:    req.MadeByName,
		MadeByEmail:   req.MadeByEmail,
		Origin:        req.Origin,
		Description:   req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, f)
}

type FoodUpdateRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=255"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	Price         float64 `json:"price" validate:"gte=0"`
	StockQuantity int64   `json:"stock_quantity" validate:"gte=0"`
	Origin        string  `json:"origin"`
	Description   string  `json:"description"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func (h *FoodHandler) update(c echo.Context) error {
	var req FoodUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	err := h.uc.UpdateFoodItem(c.Request().Context(), c.Param("id"), usecase.UpdateFoodInput{
		Name:          req.Name,
		Category:      req.Category,
		Image:         req.Image,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Origin:        req.Origin,
		Description:   req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}
