package usecase

import (
	"context"
	"testing"
	"time"

	"luxebite/internal/domain/model"
	repo "luxebite/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Upsert(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) TouchLastLogin(ctx context.Context, email string, name string, at time.Time) error {
	args := m.Called(ctx, email, name, at)
	return args.Error(0)
}

func (m *UserRepoMock) TouchLastLogout(ctx context.Context, email string, at time.Time) error {
	args := m.Called(ctx, email, at)
	return args.Error(0)
}

var _ repo.UserRepository = (*UserRepoMock)(nil)

type fakeIssuer struct {
	token string
	exp   time.Time
}

func (i *fakeIssuer) Issue(email string, now time.Time) (string, time.Time, error) {
	return i.token, i.exp, nil
}

// =====================
// Register
// =====================

func TestAuthUsecase_RegisterUser_HashesPassword(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	users := new(UserRepoMock)

	users.On("Upsert", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		//平文は保存されない
		if u.PasswordHash == "" || u.PasswordHash == "hunter2hunter2" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2hunter2")) == nil
	})).Return(nil)

	uc := NewAuthUsecase(users, &fakeIssuer{}, NewBcryptPasswordHasher(bcrypt.MinCost), &fixedClock{t: now})
	out, err := uc.RegisterUser(context.Background(), RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "hunter2hunter2",
	})

	assert.NoError(t, err)
	//レスポンスにハッシュは載せない
	assert.Empty(t, out.PasswordHash)
	users.AssertExpectations(t)
}

func TestAuthUsecase_RegisterUser_EmailRequired(t *testing.T) {
	uc := NewAuthUsecase(new(UserRepoMock), &fakeIssuer{}, NewBcryptPasswordHasher(bcrypt.MinCost), &fixedClock{t: time.Now()})

	//形式チェックはhandler側のvalidatorが担当。ここは空だけ。
	_, err := uc.RegisterUser(context.Background(), RegisterUserInput{Email: "   "})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

// =====================
// SignIn
// =====================

func TestAuthUsecase_SignIn_MintsTokenAndTouchesLogin(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	exp := now.Add(time.Hour)
	users := new(UserRepoMock)

	users.On("FindByEmail", mock.Anything, "alice@x.com").Return((*model.User)(nil), repo.ErrUserNotFound)
	users.On("TouchLastLogin", mock.Anything, "alice@x.com", "Alice", now).Return(nil)

	uc := NewAuthUsecase(users, &fakeIssuer{token: "signed-token", exp: exp}, NewBcryptPasswordHasher(bcrypt.MinCost), &fixedClock{t: now})
	out, side, err := uc.SignIn(context.Background(), SignInInput{Name: "Alice", Email: "alice@x.com"})

	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "signed-token", side.Token)
	assert.Equal(t, exp, side.ExpiresAt)
	users.AssertExpectations(t)
}

func TestAuthUsecase_SignIn_WrongPassword(t *testing.T) {
	now := time.Now()
	users := new(UserRepoMock)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	users.On("FindByEmail", mock.Anything, "alice@x.com").Return(&model.User{
		Email:        "alice@x.com",
		PasswordHash: string(hash),
	}, nil)

	uc := NewAuthUsecase(users, &fakeIssuer{token: "t"}, NewBcryptPasswordHasher(bcrypt.MinCost), &fixedClock{t: now})
	_, _, err := uc.SignIn(context.Background(), SignInInput{Email: "alice@x.com", Password: "wrong"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
	//lastLoginは更新されない
	users.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_SignIn_PasswordlessUser(t *testing.T) {
	now := time.Now()
	users := new(UserRepoMock)

	//パスワードなしで登録済みのユーザーはそのままサインインできる
	users.On("FindByEmail", mock.Anything, "alice@x.com").Return(&model.User{Email: "alice@x.com"}, nil)
	users.On("TouchLastLogin", mock.Anything, "alice@x.com", "", now).Return(nil)

	uc := NewAuthUsecase(users, &fakeIssuer{token: "t"}, NewBcryptPasswordHasher(bcrypt.MinCost), &fixedClock{t: now})
	out, _, err := uc.SignIn(context.Background(), SignInInput{Email: "alice@x.com"})

	assert.NoError(t, err)
	assert.True(t, out.Success)
}

// =====================
// SignOut
// =====================

func TestAuthUsecase_SignOut_TouchesLogout(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	users := new(UserRepoMock)
	users.On("TouchLastLogout", mock.Anything, "alice@x.com", now).Return(nil)

	uc := NewAuthUsecase(users, &fakeIssuer{}, NewBcryptPasswordHasher(bcrypt.MinCost), &fixedClock{t: now})
	out, err := uc.SignOut(context.Background(), SignOutInput{Email: "alice@x.com"})

	assert.NoError(t, err)
	assert.True(t, out.Success)
	users.AssertExpectations(t)
}

func TestAuthUsecase_SignOut_UnknownUserStillSucceeds(t *testing.T) {
	now := time.Now()
	users := new(UserRepoMock)
	users.On("TouchLastLogout", mock.Anything, "ghost@x.com", now).Return(repo.ErrUserNotFound)

	uc := NewAuthUsecase(users, &fakeIssuer{}, NewBcryptPasswordHasher(bcrypt.MinCost), &fixedClock{t: now})
	out, err := uc.SignOut(context.Background(), SignOutInput{Email: "ghost@x.com"})

	assert.NoError(t, err)
	assert.True(t, out.Success)
}
