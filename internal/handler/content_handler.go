package handler

import (
	"net/http"

	"luxebite/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 表示専用コンテンツの公開API
type ContentHandler struct {
	uc *usecase.ContentUsecase
}

// DI
func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

func (h *ContentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/testimonials", h.testimonials)
	e.GET("/chef", h.chefs)
	e.GET("/blogs", h.blogs)
}

func (h *ContentHandler) testimonials(c echo.Context) error {
	items, err := h.uc.ListTestimonials(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) chefs(c echo.Context) error {
	items, err := h.uc.ListChefs(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) blogs(c echo.Context) error {
	items, err := h.uc.ListBlogs(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
