package config

import "errors"

// DefaultJWTSecret 示例配置中的占位密钥
const DefaultJWTSecret = "change-me"

var (
	ErrJWTSecretMissing  = errors.New("auth.jwt_secret is empty, set BRIGHTLINE_AUTH_JWT_SECRET")
	ErrJWTSecretInsecure = errors.New("auth.jwt_secret is still the placeholder value in release mode")
)

// ValidateSecret 签名密钥为空时拒绝启动，release 模式下不允许沿用占位密钥
func (c AuthConfig) ValidateSecret(mode string) error {
	if c.JWTSecret == "" {
		return ErrJWTSecretMissing
	}
	if c.JWTSecret == DefaultJWTSecret && mode == "release" {
		return ErrJWTSecretInsecure
	}
	return nil
}
