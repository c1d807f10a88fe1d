package service

import (
	"Brightline/internal/api/config"
	"Brightline/internal/api/dto"
	"Brightline/internal/pkg/consts"
	"Brightline/internal/pkg/security"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"sync"
	"time"
)

// AuthStateListener 登录态变化回调，登出时 user 为 nil
type AuthStateListener func(user *security.AuthUser)

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*dto.TokenDTO, error)
	SignOut(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (*security.AuthUser, error)
	OnAuthStateChanged(fn AuthStateListener) (unsubscribe func())
}

type authServiceImpl struct {
	admins []config.AdminUser
	jwt    *security.JWTManager
	kv     KVStore

	mu        sync.RWMutex
	listeners map[int]AuthStateListener
	nextID    int
}

func NewAuthService(admins []config.AdminUser, jwt *security.JWTManager, kv KVStore) AuthService {
	return &authServiceImpl{
		admins:    admins,
		jwt:       jwt,
		kv:        kv,
		listeners: make(map[int]AuthStateListener),
	}
}

// SignIn 邮箱不区分大小写，账号不存在与密码错误返回同一错误
func (s *authServiceImpl) SignIn(ctx context.Context, email, password string) (*dto.TokenDTO, error) {
	admin := s.findAdmin(email)
	if admin == nil {
		return nil, ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(password, admin.PasswordHash); err != nil {
		if !errors.Is(err, security.ErrInvalidCredentials) {
			log.ErrorContext(ctx, "check password hash failed", "uid", admin.UID, "err", err)
		}
		return nil, ErrPasswordIncorrect
	}

	user := &security.AuthUser{UID: admin.UID, Email: admin.Email, DisplayName: admin.DisplayName}
	token, expiresAt, err := s.jwt.GenerateToken(user)
	if err != nil {
		log.ErrorContext(ctx, "generate token failed", "uid", admin.UID, "err", err)
		return nil, UnExpectedError
	}

	log.InfoContext(ctx, "admin signed in", "uid", user.UID)
	s.emit(user)
	return &dto.TokenDTO{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      &dto.UserDTO{UID: user.UID, Email: user.Email, DisplayName: user.DisplayName},
	}, nil
}

// SignOut 将 Token 签名加入黑名单直到其自然过期
func (s *authServiceImpl) SignOut(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return UnauthorizedError
	}
	sig, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err = s.kv.SetWithExpiration(ctx, consts.TokenRevokedKey+sig, "1", ttl); err != nil {
			log.ErrorContext(ctx, "revoke token failed", "uid", claims.UID, "err", err)
			return UnExpectedError
		}
	}

	log.InfoContext(ctx, "admin signed out", "uid", claims.UID)
	s.emit(nil)
	return nil
}

// Verify 校验 Token 并确认未被吊销
func (s *authServiceImpl) Verify(ctx context.Context, token string) (*security.AuthUser, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, UnauthorizedError
	}
	sig, err := security.ExtractSignature(token)
	if err != nil {
		return nil, UnauthorizedError
	}

	revoked, err := s.kv.GetValue(ctx, consts.TokenRevokedKey+sig)
	if err != nil {
		log.ErrorContext(ctx, "check token revocation failed", "err", err)
		return nil, UnExpectedError
	}
	if revoked != "" {
		return nil, ErrTokenRevoked
	}
	return claims.User(), nil
}

// OnAuthStateChanged 订阅登录态变化，返回取消订阅函数
func (s *authServiceImpl) OnAuthStateChanged(fn AuthStateListener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *authServiceImpl) emit(user *security.AuthUser) {
	s.mu.RLock()
	listeners := make([]AuthStateListener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(user)
	}
}

func (s *authServiceImpl) findAdmin(email string) *config.AdminUser {
	email = strings.TrimSpace(email)
	for i := range s.admins {
		if strings.EqualFold(s.admins[i].Email, email) {
			return &s.admins[i]
		}
	}
	return nil
}
