package api

import (
	"Brightline/internal/api/handler"
	"Brightline/internal/service"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	SubmissionHandler *handler.SubmissionHandler
	BlogHandler       *handler.BlogHandler
	AdminHandler      *handler.AdminHandler
	AuthHandler       *handler.AuthHandler
	MediaHandler      *handler.MediaHandler

	// AuthService 供鉴权中间件使用
	AuthService service.AuthService
}
