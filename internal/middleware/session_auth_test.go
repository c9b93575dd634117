package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"luxebite/internal/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// =====================
// レスポンス確認用
// =====================

type mwErrorResponse struct {
	Error string `json:"error"`
}

type mwOKResponse struct {
	Email string `json:"email"`
}

// =====================
// helper
// =====================

func newSessionEcho(t *testing.T, ts *auth.TokenService) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.GET("/my-ordered-items", func(c echo.Context) error {
		email, _ := EmailFromContext(c)
		return c.JSON(http.StatusOK, mwOKResponse{Email: email})
	}, SessionAuth(ts), OwnershipGuard("email"))
	return e
}

func runRequest(t *testing.T, e *echo.Echo, path string, cookieValue string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func mustIssue(t *testing.T, ts *auth.TokenService, email string) string {
	t.Helper()

	token, _, err := ts.Issue(email, time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	return token
}

func decodeMWError(t *testing.T, rec *httptest.ResponseRecorder) mwErrorResponse {
	t.Helper()
	var r mwErrorResponse
	_ = json.NewDecoder(rec.Body).Decode(&r)
	return r
}

// =====================
// SessionAuth
// =====================

func TestSessionAuth_MissingCookie(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	e := newSessionEcho(t, ts)

	rec := runRequest(t, e, "/my-ordered-items", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
}

func TestSessionAuth_GarbageToken(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	e := newSessionEcho(t, ts)

	rec := runRequest(t, e, "/my-ordered-items", "definitely-not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_WrongSecret(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	other := auth.NewTokenService("other-secret", time.Hour)
	e := newSessionEcho(t, ts)

	rec := runRequest(t, e, "/my-ordered-items", mustIssue(t, other, "alice@x.com"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	//発行直後に期限切れになるTTLで作る
	short := auth.NewTokenService("test-secret", time.Nanosecond)
	ts := auth.NewTokenService("test-secret", time.Hour)
	e := newSessionEcho(t, ts)

	token := mustIssue(t, short, "alice@x.com")
	time.Sleep(10 * time.Millisecond)
	rec := runRequest(t, e, "/my-ordered-items", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	//データが混ざって返らないこと
	assert.NotContains(t, rec.Body.String(), "alice@x.com")
}

func TestSessionAuth_ValidToken(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	e := newSessionEcho(t, ts)

	rec := runRequest(t, e, "/my-ordered-items", mustIssue(t, ts, "alice@x.com"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var ok mwOKResponse
	_ = json.NewDecoder(rec.Body).Decode(&ok)
	assert.Equal(t, "alice@x.com", ok.Email)
}

// =====================
// OwnershipGuard
// =====================

func TestOwnershipGuard_EmailMismatch(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	e := newSessionEcho(t, ts)

	//aliceのトークンでbobのデータを要求する
	rec := runRequest(t, e, "/my-ordered-items?email=bob@x.com", mustIssue(t, ts, "alice@x.com"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", decodeMWError(t, rec).Error)
}

func TestOwnershipGuard_EmailMatch(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	e := newSessionEcho(t, ts)

	rec := runRequest(t, e, "/my-ordered-items?email=alice@x.com", mustIssue(t, ts, "alice@x.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOwnershipGuard_NoEmailParam(t *testing.T) {
	ts := auth.NewTokenService("test-secret", time.Hour)
	e := newSessionEcho(t, ts)

	//パラメータなしは自分自身の問い合わせ扱い
	rec := runRequest(t, e, "/my-ordered-items", mustIssue(t, ts, "alice@x.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
}
