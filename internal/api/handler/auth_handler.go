package handler

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/api/middleware"
	"Brightline/internal/pkg/response"
	"Brightline/internal/pkg/security"
	"Brightline/internal/pkg/util"
	"Brightline/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

func (s *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	token, err := s.authSvc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *AuthHandler) Logout(c *gin.Context) {
	if err := s.authSvc.SignOut(c.Request.Context(), c.GetString(middleware.TokenKey)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Me 当前登录用户
func (s *AuthHandler) Me(c *gin.Context) {
	user := security.UserFromContext(c.Request.Context())
	if user == nil {
		response.Error(c, service.UnauthorizedError)
		return
	}
	response.Success(c, &dto.UserDTO{UID: user.UID, Email: user.Email, DisplayName: user.DisplayName})
}
