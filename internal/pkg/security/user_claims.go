package security

import (
	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "Brightline"

// AuthUser 当前登录的后台用户，只存在于会话中，不落库
type AuthUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// UserClaims Token 中携带的用户信息
type UserClaims struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

func (c *UserClaims) User() *AuthUser {
	return &AuthUser{
		UID:         c.UID,
		Email:       c.Email,
		DisplayName: c.DisplayName,
	}
}
