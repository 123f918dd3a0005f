package sprite

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 255, A: 255}

// paint returns a w x h transparent image with an opaque rectangle.
func paint(w, h int, box image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			img.Set(x, y, red)
		}
	}
	return img
}

func TestRender_TrimsTransparentBorder(t *testing.T) {
	img := paint(8, 8, image.Rect(2, 2, 5, 6))

	out, err := Render(img, DefaultWidth, DefaultHeight)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 3, strings.Count(line, upperHalf))
	}
}

func TestRender_OddHeightUsesUpperHalf(t *testing.T) {
	img := paint(4, 4, image.Rect(0, 0, 1, 3))

	out, err := Render(img, DefaultWidth, DefaultHeight)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], upperHalf)
}

func TestRender_FitsLargeImages(t *testing.T) {
	img := paint(200, 200, image.Rect(0, 0, 200, 200))

	out, err := Render(img, 10, 5)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, 10, strings.Count(lines[0], upperHalf))
}

func TestRender_Empty(t *testing.T) {
	_, err := Render(image.NewNRGBA(image.Rect(0, 0, 4, 4)), DefaultWidth, DefaultHeight)
	require.ErrorIs(t, err, ErrEmptySprite)
}

func TestFetcher_Thumbnail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, paint(6, 6, image.Rect(1, 1, 3, 3))))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pokedex-test", r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/1.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(buf.Bytes())
		case "/garbage.png":
			_, _ = w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher(srv.Client(), "pokedex-test")

	out, err := f.Thumbnail(context.Background(), srv.URL+"/1.png")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, upperHalf))

	_, err = f.Thumbnail(context.Background(), srv.URL+"/garbage.png")
	require.Error(t, err)

	_, err = f.Thumbnail(context.Background(), srv.URL+"/missing.png")
	require.ErrorContains(t, err, "HTTP 404")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Thumbnail(ctx, srv.URL+"/1.png")
	require.ErrorIs(t, err, context.Canceled)
}
