package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pereval/internal/models"
)

func testImage(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func TestImageType(t *testing.T) {
	pngData := testImage(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })
	jpgData := testImage(t, func(b *bytes.Buffer, i image.Image) error { return jpeg.Encode(b, i, nil) })

	assert.Equal(t, "PNG", imageType(pngData))
	assert.Equal(t, "JPG", imageType(jpgData))
	assert.Equal(t, "", imageType([]byte("not an image")))
	assert.Equal(t, "", imageType(nil))
	// заголовок png без тела
	assert.Equal(t, "", imageType(pngData[:8]))
}

func TestPassCard_NoFont(t *testing.T) {
	_, err := NewCardGenerator("").PassCard(&models.Pereval{Title: "x"})
	assert.ErrorIs(t, err, ErrNoFont)

	missing := filepath.Join(t.TempDir(), "nope.ttf")
	_, err = NewCardGenerator(missing).PassCard(&models.Pereval{Title: "x"})
	assert.ErrorIs(t, err, ErrNoFont)
}

func TestFullName(t *testing.T) {
	otc := "Петрович"
	assert.Equal(t, "Иванов Иван Петрович", fullName(models.User{Fam: "Иванов", Name: "Иван", Otc: &otc}))
	assert.Equal(t, "Иванов Иван", fullName(models.User{Fam: "Иванов", Name: "Иван"}))
}

func findFont(t *testing.T) string {
	t.Helper()
	for _, p := range []string{
		"assets/fonts/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	t.Skip("DejaVuSans.ttf not found")
	return ""
}

func gray16PNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray16(image.Rect(0, 0, 4, 4))
	img.SetGray16(1, 1, color.Gray16{Y: 0xabcd})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func cardPereval(t *testing.T) *models.Pereval {
	summer := "1А"
	title := "Седловина"
	return &models.Pereval{
		ID:      7,
		Title:   "Пхия",
		AddTime: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:  models.StatusNew,
		User:    models.User{Email: "a@b.com", Fam: "Иванов", Name: "Иван", Phone: "+7 555"},
		Coords:  models.Coords{Latitude: 45.3842, Longitude: 7.1525, Height: 1200},
		Level:   models.Level{Summer: &summer},
		Images: []models.Image{
			{Title: &title, Data: testImage(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })},
			{Data: []byte("skipped")},
		},
	}
}

func TestReadable(t *testing.T) {
	pngData := testImage(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })
	assert.True(t, readable(gofpdf.ImageOptions{ImageType: "PNG"}, pngData))

	deep := gray16PNG(t)
	require.Equal(t, "PNG", imageType(deep), "decodes fine with image/png")
	assert.False(t, readable(gofpdf.ImageOptions{ImageType: "PNG"}, deep))
}

func TestPassCard_Render(t *testing.T) {
	out, err := NewCardGenerator(findFont(t)).PassCard(cardPereval(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPassCard_AbsoluteFontPath(t *testing.T) {
	font, err := filepath.Abs(findFont(t))
	require.NoError(t, err)

	// копия в отдельном каталоге: путь заведомо абсолютный и вне рабочего каталога
	data, err := os.ReadFile(font)
	require.NoError(t, err)
	abs := filepath.Join(t.TempDir(), "DejaVuSans.ttf")
	require.NoError(t, os.WriteFile(abs, data, 0o600))
	require.True(t, filepath.IsAbs(abs))

	out, err := NewCardGenerator(abs).PassCard(cardPereval(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPassCard_SkipsUnsupportedPNG(t *testing.T) {
	p := cardPereval(t)
	p.Images = append(p.Images, models.Image{Data: gray16PNG(t)})

	out, err := NewCardGenerator(findFont(t)).PassCard(p)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
