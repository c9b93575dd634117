package middleware

import (
	"net/http"
	"time"

	"luxebite/internal/auth"

	"github.com/labstack/echo/v4"
)

const (
	// 検証済みemail（string）
	CtxEmailKey = "session_email"

	// クレデンシャルcookieの名前
	CookieName = "token"
)

// cookieの署名付きトークンを検証するミドルウェア。
// cookieなし・検証失敗はどちらも401で統一する。
func SessionAuth(ts *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//cookieを取得
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//トークンを検証してemailを取り出す
			email, err := ts.Verify(cookie.Value, time.Now())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxEmailKey, email)

			return next(c)
		}
	}
}

// 検証済みemailをcontextから取り出す。
func EmailFromContext(c echo.Context) (string, bool) {
	raw := c.Get(CtxEmailKey)
	email, ok := raw.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
