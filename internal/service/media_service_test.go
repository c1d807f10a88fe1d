package service

import (
	"Brightline/internal/pkg/consts"
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaService_Disabled(t *testing.T) {
	svc := NewMediaService(nil, newFakeKV(), 800)
	_, err := svc.UploadCover(context.Background(), "image/png", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMediaStorageDisabled)
}

func TestMediaService_RejectsNonImage(t *testing.T) {
	svc := NewMediaService(&fakeObjectStore{objects: map[string][]byte{}}, newFakeKV(), 800)
	ctx := context.Background()

	_, err := svc.UploadCover(ctx, "application/pdf", strings.NewReader("%PDF"))
	assert.ErrorIs(t, err, ErrFileNotSupported)
	_, err = svc.UploadCover(ctx, "image/png", strings.NewReader("not a png"))
	assert.ErrorIs(t, err, ErrFileNotSupported)
}

func TestMediaService_UploadCover(t *testing.T) {
	store := &fakeObjectStore{objects: map[string][]byte{}}
	kv := newFakeKV()
	svc := NewMediaService(store, kv, 800)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 1600, 900))))

	media, err := svc.UploadCover(context.Background(), "image/png", &buf)
	require.NoError(t, err)
	assert.Equal(t, 800, media.Width)
	assert.Equal(t, 450, media.Height)
	assert.True(t, strings.HasPrefix(media.Object, "covers/"))
	assert.True(t, strings.HasSuffix(media.Object, ".png"))
	assert.Equal(t, "http://cdn.test/blog-media/"+media.Object, media.URL)
	assert.Contains(t, store.objects, media.Object)
	assert.Contains(t, kv.hashes[consts.MediaUploadKey], media.Object)
}
