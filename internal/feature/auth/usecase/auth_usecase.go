// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"expense_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// AccessTokenTTL はアクセスJWTの固定有効期間です。
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL はリフレッシュセッションの固定有効期間です。
	RefreshTokenTTL = 30 * 24 * time.Hour

	// MaxSessionsPerUser はユーザーあたりの有効セッション数の上限です。
	// 上限に達した場合、ログイン時に最も古いセッションを削除します。
	MaxSessionsPerUser = 5

	// refreshTokenBytes はリフレッシュトークンの乱数バイト長です（hex化で64文字）。
	refreshTokenBytes = 32
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// TokenPair はログインおよびリフレッシュ成功時に発行されるトークンの組です。
type TokenPair struct {
	AccessToken  string // 署名済みアクセスJWT（有効期間 AccessTokenTTL）
	RefreshToken string // サーバー側に保存される不透明なリフレッシュトークン
	ExpiresIn    int64  // アクセストークンの有効秒数
}

// ClientInfo はセッション監査用のクライアントメタデータです。
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	sessions     SessionRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		sessions:     sessions,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// 表示設定（テーマ・通知・言語・通貨）はエンティティのデフォルト値で初期化されます。
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) error {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Name:               name,
		Email:              email,
		Password:           string(hashed),
		Theme:              entity.ThemeLight,
		EmailNotifications: true,
		PushNotifications:  true,
		Language:           "English",
		Currency:           "USD",
	}
	return u.users.Create(ctx, user)
}

// Login はユーザーを認証し、成功時にアクセスJWTとリフレッシュトークンの組を返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// メールアドレス未登録とパスワード不一致は同一のErrInvalidCredentialsになります。
func (u *authUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (*TokenPair, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user, client)
}

// Refresh はリフレッシュトークンを検証し、新しいトークンの組を発行します。
// 使用されたリフレッシュトークンは失効させ、毎回ローテーションします。
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string, client ClientInfo) (*TokenPair, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if !session.IsValid() {
		return nil, ErrInvalidRefreshToken
	}

	// 設定変更をログインし直さずに反映するため、ユーザーレコードを再取得する
	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// ローテーション: 使用済みトークンを失効させてから新規発行
	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}

	return u.issueTokens(ctx, user, client)
}

// Logout は指定されたリフレッシュセッションを失効させます。
// 未知のトークンはエラーにせず、ベストエフォートで成功扱いにします。
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// issueTokens はアクセスJWTを生成し、新しいリフレッシュセッションを永続化します。
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User, client ClientInfo) (*TokenPair, error) {
	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	refreshToken, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	// セッション数の上限を維持する（超過時は最も古いものを削除）
	count, err := u.sessions.CountByUserID(ctx, user.ID)
	if err == nil && count >= MaxSessionsPerUser {
		_ = u.sessions.DeleteOldestByUserID(ctx, user.ID)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        refreshToken,
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(RefreshTokenTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &TokenPair{
		AccessToken:  token,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
	}, nil
}

// newRefreshToken は暗号論的乱数からリフレッシュトークンを生成します。
func newRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
