package handler

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/pkg/consts"
	"Brightline/internal/pkg/response"
	"Brightline/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxRelated = 20

type BlogHandler struct {
	blogSvc service.BlogService
}

func NewBlogHandler(blogSvc service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogSvc: blogSvc,
	}
}

func (s *BlogHandler) ListPosts(c *gin.Context) {
	response.Success(c, s.blogSvc.ListPublished(c.Request.Context()))
}

func (s *BlogHandler) ListFeatured(c *gin.Context) {
	response.Success(c, s.blogSvc.ListFeatured(c.Request.Context()))
}

func (s *BlogHandler) Search(c *gin.Context) {
	response.Success(c, s.blogSvc.Search(c.Request.Context(), c.Query("q")))
}

func (s *BlogHandler) GetPost(c *gin.Context) {
	post := s.blogSvc.GetByID(c.Request.Context(), c.Param("post_id"))
	if post == nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}
	response.Success(c, post)
}

func (s *BlogHandler) ListRelated(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(consts.DefaultRelated)))
	if err != nil || limit <= 0 || limit > maxRelated {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	response.Success(c, s.blogSvc.ListRelated(c.Request.Context(), c.Param("post_id"), limit))
}

func (s *BlogHandler) ListCategories(c *gin.Context) {
	response.Success(c, s.blogSvc.ListCategories(c.Request.Context()))
}

func (s *BlogHandler) ListByCategory(c *gin.Context) {
	response.Success(c, s.blogSvc.ListByCategory(c.Request.Context(), c.Param("category")))
}

// View / Like / Share 计数失败不影响响应

func (s *BlogHandler) View(c *gin.Context) {
	s.blogSvc.IncrementViews(c.Request.Context(), c.Param("post_id"), eventMeta(c))
	response.Success(c, nil)
}

func (s *BlogHandler) Like(c *gin.Context) {
	s.blogSvc.IncrementLikes(c.Request.Context(), c.Param("post_id"), eventMeta(c))
	response.Success(c, nil)
}

func (s *BlogHandler) Share(c *gin.Context) {
	s.blogSvc.IncrementShares(c.Request.Context(), c.Param("post_id"), eventMeta(c))
	response.Success(c, nil)
}

func eventMeta(c *gin.Context) *dto.EventMetaDTO {
	return &dto.EventMetaDTO{
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}
}
