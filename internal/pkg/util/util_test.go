package util

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTime(t *testing.T) {
	assert.Equal(t, "1 min read", ReadTime(""))
	assert.Equal(t, "1 min read", ReadTime("<p>Hello <b>world</b></p>"))

	body := "<p>" + strings.Repeat("word ", 401) + "</p><script>var ignored = 1;</script>"
	assert.Equal(t, "3 min read", ReadTime(body))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Title body", PlainText("<h1>Title</h1> <p>body</p><style>p{}</style>"))
}

func ptr(s string) *string {
	return &s
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(nil))
	assert.Nil(t, OptionalString(ptr("   ")))
	assert.Equal(t, "Acme", *OptionalString(ptr(" Acme ")))
	assert.True(t, ContainsFold("Growth Marketing", "MARKET"))
}

func TestValidateDTO(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	assert.NoError(t, ValidateDTO(&payload{Name: "x"}))
	assert.Error(t, ValidateDTO(&payload{}))
}

func TestResizeImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 400, 200))
	for x := 0; x < 400; x++ {
		for y := 0; y < 200; y++ {
			src.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	out, err := ResizeImage(&buf, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Width)
	assert.Equal(t, 50, out.Height)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, ".png", out.Extension())

	_, err = ResizeImage(strings.NewReader("not an image"), 100)
	assert.ErrorIs(t, err, ErrNotImage)
}
