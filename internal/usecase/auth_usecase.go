package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(email string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

type AuthUsecase struct {
	userRepo repo.UserRepository
	issuer   AccessTokenIssuer
	hasher   PasswordHasher
	clock    Clock
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	issuer AccessTokenIssuer,
	hasher PasswordHasher,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		issuer:   issuer,
		hasher:   hasher,
		clock:    clock,
	}
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string // 任意。空ならパスワードなしで登録
}

// POST /users。emailをキーに作成または更新する。
// emailの形式はhandler側のvalidatorで検証済み。ここは空だけ弾く。
func (u *AuthUsecase) RegisterUser(ctx context.Context, in RegisterUserInput) (model.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "email required")
	}

	now := u.clock.Now()

	user := &model.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	//任意クレデンシャルはハッシュだけ保存する（平文は保存しない）
	if in.Password != "" {
		hashed, err := u.hasher.Hash(in.Password)
		if err != nil {
			return model.User{}, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		user.PasswordHash = hashed
	}

	if err := u.userRepo.Upsert(ctx, user); err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//返すときはハッシュを空にして漏洩防止
	safeUser := *user
	safeUser.PasswordHash = ""
	return safeUser, nil
}

type SignInInput struct {
	Name     string
	Email    string
	Password string
}

type SignInOutput struct {
	Success bool `json:"success"`
}

// handlerがCookieに詰めるために必要な値
type SignInSideEffect struct {
	Token     string
	ExpiresAt time.Time
}

// POST /jwt。lastLoginを更新してトークンを発行する。
// 初回サインインならユーザーが作られる。
func (u *AuthUsecase) SignIn(ctx context.Context, in SignInInput) (SignInOutput, SignInSideEffect, error) {
	var out SignInOutput
	var side SignInSideEffect

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return out, side, NewHTTPError(http.StatusBadRequest, "email required")
	}

	//パスワード付きで登録済みのユーザーは照合する
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		return out, side, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil && existing.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(in.Password)) != nil {
			return out, side, NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
	}

	now := u.clock.Now()

	//最終ログイン時刻更新（なければ作成）
	if err := u.userRepo.TouchLastLogin(ctx, email, strings.TrimSpace(in.Name), now); err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//トークン発行
	token, expiresAt, err := u.issuer.Issue(email, now)
	if err != nil {
		return out, side, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	out.Success = true
	side.Token = token
	side.ExpiresAt = expiresAt
	return out, side, nil
}

type SignOutInput struct {
	Email string
}

type SignOutOutput struct {
	Success bool `json:"success"`
}

// POST /delete-cookie。lastLogoutを更新する。
// ユーザーがいなくてもcookieは消すので成功で返す。
func (u *AuthUsecase) SignOut(ctx context.Context, in SignOutInput) (SignOutOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return SignOutOutput{Success: true}, nil
	}

	err := u.userRepo.TouchLastLogout(ctx, email, u.clock.Now())
	if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		return SignOutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SignOutOutput{Success: true}, nil
}
