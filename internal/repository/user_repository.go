package repository

import (
	"context"
	"errors"
	"time"

	"luxebite/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	// emailをキーに作成または更新（初回サインインで作られる）
	Upsert(ctx context.Context, user *model.User) error
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//最終ログイン時刻の更新（ユーザーがなければ作る）
	TouchLastLogin(ctx context.Context, email string, name string, at time.Time) error
	//最終ログアウト時刻の更新
	TouchLastLogout(ctx context.Context, email string, at time.Time) error
}
