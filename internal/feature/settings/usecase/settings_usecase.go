// Package usecase はユーザー設定とパスワード変更のビジネスロジックを提供します。
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"expense_backend/internal/feature/auth/domain/entity"
)

const minPasswordLength = 8

// UserRepository はユーザーの取得と保存の抽象です。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// SessionRevoker はユーザーの全セッションを失効させる抽象です。
// パスワード変更時に既存のリフレッシュトークンを無効化するために使います。
type SessionRevoker interface {
	RevokeAllByUserID(ctx context.Context, userID uint) error
}

// SettingsUpdate は設定の部分更新を表します。nilのフィールドは変更しません。
type SettingsUpdate struct {
	Theme              *string
	EmailNotifications *bool
	PushNotifications  *bool
	Language           *string
	Currency           *string
}

type settingsUsecase struct {
	users    UserRepository
	sessions SessionRevoker
}

// NewSettingsUsecase は指定されたリポジトリでsettingsUsecaseの新しいインスタンスを生成します。
func NewSettingsUsecase(users UserRepository, sessions SessionRevoker) *settingsUsecase {
	return &settingsUsecase{users: users, sessions: sessions}
}

// GetSettings はユーザーの現在の設定を返します。
func (u *settingsUsecase) GetSettings(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateSettings は指定されたフィールドのみを更新し、更新後のユーザーを返します。
func (u *settingsUsecase) UpdateSettings(ctx context.Context, userID uint, upd SettingsUpdate) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Theme != nil {
		if *upd.Theme != entity.ThemeLight && *upd.Theme != entity.ThemeDark {
			return nil, ErrInvalidTheme
		}
		user.Theme = *upd.Theme
	}
	if upd.EmailNotifications != nil {
		user.EmailNotifications = *upd.EmailNotifications
	}
	if upd.PushNotifications != nil {
		user.PushNotifications = *upd.PushNotifications
	}
	if upd.Language != nil {
		user.Language = *upd.Language
	}
	if upd.Currency != nil {
		user.Currency = *upd.Currency
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return user, nil
}

// ChangePassword は現在のパスワードを検証してから新しいパスワードに変更します。
// 変更後はユーザーの全セッションを失効させ、既存のリフレッシュトークンを無効化します。
func (u *settingsUsecase) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := u.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// 古いトークンを持つクライアントを締め出す
	if err := u.sessions.RevokeAllByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}
