package services

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"branded_clothing_shop/internal/models"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, imaging.Save(imaging.New(w, h, color.NRGBA{10, 20, 30, 255}), path))
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"  Куртка Nike  Sport ": "куртка_nike_sport",
		"Levi's 501/Original":   "levi's_501_original",
		"a:b*c?":                "a_b_c_",
		"__x__":                 "_x_",
		"   ":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeName(in), in)
	}
}

func TestImageService_BuildImagePath(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "худі_supreme.png"), 4, 4)
	writeTestImage(t, filepath.Join(dir, "promo_ray-ban_aviator_2025.jpg"), 4, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	svc := NewImageService(dir)

	assert.Equal(t, filepath.Join(dir, "худі_supreme.png"), svc.BuildImagePath("Худі Supreme"))
	assert.Equal(t, filepath.Join(dir, "promo_ray-ban_aviator_2025.jpg"), svc.BuildImagePath("Ray-Ban Aviator"))
	assert.Empty(t, svc.BuildImagePath("Timberland"))
	assert.Empty(t, svc.BuildImagePath(""))
	assert.Empty(t, NewImageService(filepath.Join(dir, "missing")).BuildImagePath("Худі Supreme"))

	assert.True(t, svc.ImageExists("худі supreme"))
	assert.False(t, svc.ImageExists("Ray-Ban Aviator"))

	assert.ElementsMatch(t, []string{"худі_supreme.png", "promo_ray-ban_aviator_2025.jpg"}, svc.AvailableImages())
}

func TestImageService_LoadImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewImageService(dir)
	path := filepath.Join(dir, "wide.png")
	writeTestImage(t, path, 400, 200)

	img := svc.LoadImage(path, 100, 100)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())

	missing := svc.LoadImage(filepath.Join(dir, "nope.png"), 80, 60)
	assert.Equal(t, 80, missing.Bounds().Dx())
	assert.Equal(t, 60, missing.Bounds().Dy())

	broken := filepath.Join(dir, "broken.jpg")
	require.NoError(t, os.WriteFile(broken, []byte("not an image"), 0o644))
	assert.Equal(t, 50, svc.LoadImage(broken, 50, 50).Bounds().Dx())

	assert.Equal(t, 30, svc.LoadImage("", 30, 30).Bounds().Dx())
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(300, 200, PlaceholderNoImage, true)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())

	// coin: couleur de fond, déterminée par le texte
	assert.Equal(t, placeholderColor(PlaceholderNoImage), img.NRGBAAt(0, 0))
	assert.Equal(t, placeholderColor(PlaceholderNoImage), Placeholder(10, 10, PlaceholderNoImage, true).NRGBAAt(0, 0))

	grey := Placeholder(50, 50, "x", false)
	assert.Equal(t, color.NRGBA{200, 200, 200, 255}, grey.NRGBAAt(0, 0))

	// du texte blanc est dessiné quelque part au centre
	found := false
	for x := 0; x < 300 && !found; x++ {
		if img.NRGBAAt(x, 100) == (color.NRGBA{255, 255, 255, 255}) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestImageService_Export(t *testing.T) {
	dir := t.TempDir()
	svc := NewImageService(dir)
	writeTestImage(t, filepath.Join(dir, "куртка nike.jpg"), 64, 64)

	p := models.Product{Name: "Куртка Nike Sport Premium", ImagePath: "img/куртка nike.jpg"}
	out := filepath.Join(t.TempDir(), "product.png")
	require.NoError(t, svc.Export(p, 32, 32, out))

	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())

	// sans image: le remplacement est exporté à la taille par défaut
	out = filepath.Join(t.TempDir(), "placeholder.png")
	require.NoError(t, svc.Export(models.Product{Name: "Невідомий"}, 0, 0, out))
	img, err = imaging.Open(out)
	require.NoError(t, err)
	assert.Equal(t, DefaultImageWidth, img.Bounds().Dx())

	assert.Error(t, svc.Export(p, 10, 10, filepath.Join(t.TempDir(), "out.unknown")))
}
