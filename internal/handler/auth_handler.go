package handler

import (
	"net/http"
	"time"

	"luxebite/internal/auth"
	"luxebite/internal/middleware"
	"luxebite/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc           *usecase.AuthUsecase
	tokens       *auth.TokenService
	cookieSecure bool
}

// DIコンストラクタ
func NewAuthHandler(uc *usecase.AuthUsecase, tokens *auth.TokenService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		tokens:       tokens,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/users", h.register)
	e.POST("/jwt", h.signIn)
	e.POST("/delete-cookie", h.signOut)
}

// POST /users のリクエストボディ。
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// POST /jwt のリクエストボディ。
type SignInRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

// POST /delete-cookie のリクエストボディ。
type SignOutRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) signIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	}

	out, side, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	//トークンをcookieにセット
	h.setTokenCookie(c, side.Token, side.ExpiresAt)

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) signOut(c echo.Context) error {
	var req SignOutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// cookieが有効ならそちらのemailを使う（古いクライアントはbodyで補う）
	email := req.Email
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if verified, err := h.tokens.Verify(cookie.Value, time.Now()); err == nil {
			email = verified
		}
	}

	out, err := h.uc.SignOut(c.Request().Context(), usecase.SignOutInput{Email: email})
	if err != nil {
		return writeError(c, err)
	}

	//cookieを消す
	h.clearTokenCookie(c)

	return c.JSON(http.StatusOK, out)
}

// トークンをCookieにセット。有効期限はトークンと揃える。
func (h *AuthHandler) setTokenCookie(c echo.Context, token string, expiresAt time.Time) {
	cookie := &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
		MaxAge:   int(h.tokens.TTL().Seconds()),
	}
	c.SetCookie(cookie)
}

// Cookieを即時失効させる
func (h *AuthHandler) clearTokenCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
	c.SetCookie(cookie)
}
