package service

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/pkg/consts"
	"Brightline/internal/pkg/util"
	"bytes"
	"context"
	"errors"
	"io"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type MediaService interface {
	UploadCover(ctx context.Context, contentType string, reader io.Reader) (*dto.MediaDTO, error)
}

type mediaServiceImpl struct {
	store    ObjectStore
	kv       KVStore
	maxWidth int
}

// NewMediaService store 为 nil 时上传返回 ErrMediaStorageDisabled
func NewMediaService(store ObjectStore, kv KVStore, maxWidth int) MediaService {
	return &mediaServiceImpl{
		store:    store,
		kv:       kv,
		maxWidth: maxWidth,
	}
}

// UploadCover 缩放封面图后上传，返回公开地址
func (s *mediaServiceImpl) UploadCover(ctx context.Context, contentType string, reader io.Reader) (*dto.MediaDTO, error) {
	if s.store == nil {
		return nil, ErrMediaStorageDisabled
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage+"/") {
		return nil, ErrFileNotSupported
	}

	img, err := util.ResizeImage(reader, s.maxWidth)
	if err != nil {
		if errors.Is(err, util.ErrNotImage) {
			return nil, ErrFileNotSupported
		}
		return nil, err
	}

	now := time.Now().UTC()
	objectName := "covers/" + now.Format("2006/01/02") + "/" + uuid.NewString() + img.Extension()
	size := int64(len(img.Data))
	if _, err = s.store.UploadFile(ctx, objectName, bytes.NewReader(img.Data), size, img.ContentType); err != nil {
		log.ErrorContext(ctx, "upload cover failed", "object", objectName, "err", err)
		return nil, err
	}

	media := &dto.MediaDTO{
		URL:       s.store.GetPublicURL(objectName),
		Object:    objectName,
		MimeType:  img.ContentType,
		Width:     img.Width,
		Height:    img.Height,
		Size:      size,
		CreatedAt: now.Unix(),
	}

	if meta, err := json.Marshal(media); err == nil {
		if err = s.kv.HSet(ctx, consts.MediaUploadKey, objectName, meta); err != nil {
			log.WarnContext(ctx, "record media metadata failed", "object", objectName, "err", err)
		}
	}
	return media, nil
}
