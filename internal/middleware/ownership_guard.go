package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// 呼び出し側が指定したemailと検証済みemailの一致を確認します。
// 有効なトークンを持っていても、他人のemailを指定したら403。
// 実際の絞り込みは常に検証済みemailで行うので、ここは一致チェックだけ。
func OwnershipGuard(queryParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := EmailFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//パラメータなしは自分自身の問い合わせ扱い
			target := c.QueryParam(queryParam)
			if target != "" && target != email {
				return c.JSON(http.StatusForbidden, errorJSON("forbidden"))
			}

			return next(c)
		}
	}
}
