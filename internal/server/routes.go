package server

import (
	"luxebite/internal/auth"
	"luxebite/internal/handler"
	"luxebite/internal/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterRoutesは全ハンドラのルートを登録する。
// 所有者スコープのルートだけsessionミドルウェアを通す。
func RegisterRoutes(
	e *echo.Echo,
	tokens *auth.TokenService,
	foodH *handler.FoodHandler,
	orderH *handler.OrderHandler,
	authH *handler.AuthHandler,
	contentH *handler.ContentHandler,
) {
	session := middleware.SessionAuth(tokens)

	foodH.RegisterRoutes(e, session)
	orderH.RegisterRoutes(e, session)
	authH.RegisterRoutes(e)
	contentH.RegisterRoutes(e)
}
