package handler

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/pkg/response"
	"Brightline/internal/pkg/util"
	"Brightline/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler 后台文章管理，路由需挂 AuthMiddleware
type AdminHandler struct {
	blogSvc      service.BlogService
	migrationSvc service.MigrationService
}

func NewAdminHandler(blogSvc service.BlogService, migrationSvc service.MigrationService) *AdminHandler {
	return &AdminHandler{
		blogSvc:      blogSvc,
		migrationSvc: migrationSvc,
	}
}

// ListPosts 含未发布草稿
func (s *AdminHandler) ListPosts(c *gin.Context) {
	response.Success(c, s.blogSvc.ListAll(c.Request.Context()))
}

func (s *AdminHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	post, err := s.blogSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *AdminHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	post, err := s.blogSvc.Update(c.Request.Context(), c.Param("post_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *AdminHandler) DeletePost(c *gin.Context) {
	if !s.blogSvc.Delete(c.Request.Context(), c.Param("post_id")) {
		response.Error(c, service.ErrPostNotFound)
		return
	}
	response.Success(c, nil)
}

func (s *AdminHandler) Analytics(c *gin.Context) {
	summary, err := s.blogSvc.AnalyticsSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

func (s *AdminHandler) Migrate(c *gin.Context) {
	result, err := s.migrationSvc.MigrateFromLocalStorage(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
