// Package sprite turns PokeAPI sprite PNGs into terminal thumbnails drawn
// with half-block glyphs, two pixel rows per text line.
package sprite

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"

	"github.com/rshade/pokedex/internal/logging"
)

const (
	// DefaultWidth is the thumbnail width in terminal columns.
	DefaultWidth = 32
	// DefaultHeight is the thumbnail height in terminal lines.
	DefaultHeight = 16

	maxSpriteBytes = 2 << 20

	upperHalf = "▀"
	lowerHalf = "▄"
)

// ErrEmptySprite is returned when an image has no opaque pixels.
var ErrEmptySprite = errors.New("sprite has no visible pixels")

// Fetcher downloads and renders sprites.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	width      int
	height     int
}

// NewFetcher returns a Fetcher rendering DefaultWidth x DefaultHeight cells.
// A nil client uses a fresh http.Client.
func NewFetcher(hc *http.Client, userAgent string) *Fetcher {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Fetcher{httpClient: hc, userAgent: userAgent, width: DefaultWidth, height: DefaultHeight}
}

// Thumbnail fetches the image at url and renders it. The request is bound
// to ctx, so tearing down the detail view abandons the download.
func (f *Fetcher) Thumbnail(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building sprite request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching sprite %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching sprite %s: HTTP %d", url, resp.StatusCode)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, maxSpriteBytes))
	if err != nil {
		return "", fmt.Errorf("decoding sprite %s: %w", url, err)
	}

	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "sprite").
		Str("url", url).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("sprite decoded")

	return Render(img, f.width, f.height)
}

// Render trims the transparent border of img, fits the rest into
// cols x lines cells and draws it.
func Render(img image.Image, cols, lines int) (string, error) {
	box, ok := opaqueBounds(img)
	if !ok {
		return "", ErrEmptySprite
	}

	var cropped image.Image = imaging.Crop(img, box)
	if cropped.Bounds().Dx() > cols || cropped.Bounds().Dy() > lines*2 {
		cropped = imaging.Fit(cropped, cols, lines*2, imaging.NearestNeighbor)
	}

	return halfBlocks(cropped), nil
}

// opaqueBounds returns the smallest rectangle holding every visible pixel.
func opaqueBounds(img image.Image) (image.Rectangle, bool) {
	b := img.Bounds()
	box := image.Rectangle{Min: b.Max, Max: b.Min}
	found := false

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !visible(img.At(x, y)) {
				continue
			}
			found = true
			box.Min.X = min(box.Min.X, x)
			box.Min.Y = min(box.Min.Y, y)
			box.Max.X = max(box.Max.X, x+1)
			box.Max.Y = max(box.Max.Y, y+1)
		}
	}
	return box, found
}

func halfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.At(x, y)
			var bottom color.Color = color.Transparent
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			sb.WriteString(cell(top, bottom))
		}
	}
	return sb.String()
}

func cell(top, bottom color.Color) string {
	topOn, bottomOn := visible(top), visible(bottom)
	switch {
	case topOn && bottomOn:
		return lipgloss.NewStyle().
			Foreground(hex(top)).
			Background(hex(bottom)).
			Render(upperHalf)
	case topOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Render(upperHalf)
	case bottomOn:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render(lowerHalf)
	default:
		return " "
	}
}

func visible(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a > 0x7fff
}

func hex(c color.Color) lipgloss.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B))
}
