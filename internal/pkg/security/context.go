package security

import "context"

type ctxKey struct{}

// WithUser 将当前用户写入请求上下文
func WithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext 读取当前用户，未登录时返回 nil
func UserFromContext(ctx context.Context) *AuthUser {
	if ctx == nil {
		return nil
	}
	user, _ := ctx.Value(ctxKey{}).(*AuthUser)
	return user
}
