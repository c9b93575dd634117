package server

import (
	"net/http"

	"luxebite/internal/config"
	"luxebite/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Newはechoインスタンスを組み立てる。ルート登録は呼び出し側で行う。
func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = validator.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	//liveness
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Luxe Bite Server Is Running")
	})

	return e
}
