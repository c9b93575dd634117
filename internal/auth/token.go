package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// パースできない・形が違う
	ErrTokenMalformed = errors.New("token malformed")
	// 有効期限切れ
	ErrTokenExpired = errors.New("token expired")
	// 署名がシークレットと一致しない
	ErrTokenBadSignature = errors.New("token bad signature")
)

// TokenServiceはemailを載せた署名付きトークンの発行と検証。
// 入力＋シークレット＋現在時刻だけで決まり、副作用はない。
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// DI
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTLはcookieのMaxAgeと合わせるために公開する。
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issueはemailを載せたHS256トークンを発行する。
func (s *TokenService) Issue(email string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verifyはトークンを検証してemailを返す。
// 失敗はErrTokenMalformed / ErrTokenExpired / ErrTokenBadSignatureのどれか。
// expは渡されたnowに対して自前で検証する（ライブラリの時計には依存しない）。
func (s *TokenService) Verify(raw string, now time.Time) (string, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	token, err := parser.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", classifyError(err)
	}
	if token == nil || !token.Valid {
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenMalformed
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrTokenMalformed
	}

	//expが載っていないトークンは受け付けない
	expRaw, ok := claims["exp"]
	if !ok {
		return "", ErrTokenMalformed
	}
	exp, ok := expRaw.(float64)
	if !ok {
		return "", ErrTokenMalformed
	}

	//期限ちょうども失効扱い
	if now.Unix() >= int64(exp) {
		return "", ErrTokenExpired
	}

	return email, nil
}

// jwtライブラリのエラーを自前のエラーに変換する。
// claimsの検証は呼び出し側でやるので、ここに来るのはパースと署名の失敗だけ。
func classifyError(err error) error {
	var vErr *jwt.ValidationError
	if errors.As(err, &vErr) {
		switch {
		case vErr.Errors&jwt.ValidationErrorSignatureInvalid != 0:
			return ErrTokenBadSignature
		case vErr.Errors&jwt.ValidationErrorUnverifiable != 0:
			return ErrTokenBadSignature
		default:
			return ErrTokenMalformed
		}
	}
	return ErrTokenMalformed
}
