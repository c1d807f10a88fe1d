package handler

import (
	"Brightline/internal/pkg/response"
	"Brightline/internal/service"
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const sniffLen = 512

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// Upload 上传封面图，类型以文件内容嗅探结果为准
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	head = head[:n]
	contentType := http.DetectContentType(head)

	media, err := s.mediaSvc.UploadCover(c.Request.Context(), contentType, io.MultiReader(bytes.NewReader(head), reader))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, media)
}
