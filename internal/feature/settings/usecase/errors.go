package usecase

import (
	"errors"

	authusecase "expense_backend/internal/feature/auth/usecase"
)

var (
	// ErrUserNotFound はユーザーが見つからない場合のエラーです。
	// リポジトリ実装をauthフィーチャーと共有するため同じセンチネルを使います。
	ErrUserNotFound = authusecase.ErrUserNotFound
	// ErrInvalidCredentials は現在のパスワードが一致しない場合のエラーです。
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordTooShort は新しいパスワードが短すぎる場合のエラーです。
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrInvalidTheme はテーマが light / dark 以外の場合のエラーです。
	ErrInvalidTheme = errors.New("theme must be light or dark")
)
