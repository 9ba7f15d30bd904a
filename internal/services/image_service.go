package services

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"branded_clothing_shop/internal/models"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultImageWidth  = 300
	DefaultImageHeight = 300
)

// Textes des images de remplacement
const (
	PlaceholderNoImage  = "No Image"
	PlaceholderNotFound = "Image Not Found"
	PlaceholderError    = "Error Loading Image"
)

var SupportedImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

var placeholderPalette = []color.NRGBA{
	{33, 150, 243, 255}, // bleu
	{76, 175, 80, 255},  // vert
	{244, 67, 54, 255},  // rouge
	{233, 30, 99, 255},  // rose
	{255, 152, 0, 255},  // orange
	{156, 39, 176, 255}, // violet
	{63, 81, 181, 255},  // indigo
	{0, 150, 136, 255},  // sarcelle
	{255, 193, 7, 255},  // ambre
	{139, 69, 19, 255},  // marron
	{96, 125, 139, 255}, // bleu-gris
	{0, 0, 0, 255},      // noir
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// ImageService gère les images produits du dossier Images
type ImageService struct {
	dir string
}

func NewImageService(dir string) *ImageService {
	return &ImageService{dir: dir}
}

func (s *ImageService) Dir() string {
	return s.dir
}

func (s *ImageService) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// NormalizeName prépare un nom de produit pour la recherche de fichier
func NormalizeName(name string) string {
	result := strings.ToLower(strings.TrimSpace(name))
	if result == "" {
		return ""
	}
	result = strings.Map(func(r rune) rune {
		if r < 32 || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, result)
	result = whitespaceRun.ReplaceAllString(result, "_")
	return underscoreRun.ReplaceAllString(result, "_")
}

// BuildImagePath cherche d'abord un nom exact par extension, puis une correspondance partielle
func (s *ImageService) BuildImagePath(productName string) string {
	normalized := NormalizeName(productName)
	if normalized == "" {
		return ""
	}
	if info, err := os.Stat(s.dir); err != nil || !info.IsDir() {
		return ""
	}

	for _, ext := range SupportedImageExtensions {
		path := filepath.Join(s.dir, normalized+ext)
		if fileExists(path) {
			return path
		}
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Printf("⚠️ Lecture du dossier images: %v", err)
		return ""
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if strings.Contains(strings.ToLower(base), normalized) {
			return filepath.Join(s.dir, e.Name())
		}
	}
	return ""
}

// ImageExists ne teste que la correspondance exacte
func (s *ImageService) ImageExists(productName string) bool {
	normalized := NormalizeName(productName)
	if normalized == "" {
		return false
	}
	for _, ext := range SupportedImageExtensions {
		if fileExists(filepath.Join(s.dir, normalized+ext)) {
			return true
		}
	}
	return false
}

func (s *ImageService) AvailableImages() []string {
	var images []string
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return images
	}
	for _, e := range entries {
		if !e.IsDir() && supportedExtension(e.Name()) {
			images = append(images, e.Name())
		}
	}
	return images
}

// LoadImage retourne l'image ajustée à width×height, ou une image de remplacement
func (s *ImageService) LoadImage(path string, width, height int) image.Image {
	if strings.TrimSpace(path) == "" {
		return Placeholder(width, height, PlaceholderNoImage, true)
	}
	if !fileExists(path) {
		return Placeholder(width, height, PlaceholderNotFound, true)
	}

	img, err := imaging.Open(path)
	if err != nil {
		log.Printf("❌ Erreur chargement image %s: %v", path, err)
		return Placeholder(width, height, PlaceholderError, true)
	}
	return imaging.Fit(img, width, height, imaging.Lanczos)
}

// ProductImagePath résout l'image d'un produit: chemin du catalogue puis recherche par nom
func (s *ImageService) ProductImagePath(p models.Product) string {
	if p.ImagePath != "" {
		if fileExists(p.ImagePath) {
			return p.ImagePath
		}
		if candidate := filepath.Join(s.dir, filepath.Base(p.ImagePath)); fileExists(candidate) {
			return candidate
		}
	}
	return s.BuildImagePath(p.Name)
}

// Export écrit l'image (ou le remplacement) du produit dans out; le format suit l'extension
func (s *ImageService) Export(p models.Product, width, height int, out string) error {
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}
	img := s.LoadImage(s.ProductImagePath(p), width, height)
	if err := imaging.Save(img, out); err != nil {
		return fmt.Errorf("enregistrement %s: %w", out, err)
	}
	return nil
}

// Placeholder dessine un fond uni (couleur choisie par hash du texte) et le texte centré en blanc
func Placeholder(width, height int, text string, colored bool) *image.NRGBA {
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}

	bg := color.NRGBA{200, 200, 200, 255}
	if colored {
		bg = placeholderColor(text)
	}
	canvas := imaging.New(width, height, bg)
	if text == "" {
		return canvas
	}

	label := renderText(text)
	// la taille du texte suit ~1/10 du plus petit côté, comme une police proportionnelle
	scale := min(width, height) / 10 / basicfont.Face7x13.Height
	if scale > 1 {
		label = imaging.Resize(label, label.Bounds().Dx()*scale, 0, imaging.NearestNeighbor)
	}
	if label.Bounds().Dx() > width {
		label = imaging.Resize(label, width, 0, imaging.Box)
	}

	pos := image.Pt((width-label.Bounds().Dx())/2, (height-label.Bounds().Dy())/2)
	return imaging.Overlay(canvas, label, pos, 1.0)
}

func placeholderColor(text string) color.NRGBA {
	idx := xxhash.Sum64String(text) % uint64(len(placeholderPalette))
	return placeholderPalette[idx]
}

func renderText(text string) *image.NRGBA {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	h := face.Height

	img := image.NewNRGBA(image.Rect(0, 0, max(w, 1), h))
	d.Dst = img
	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(text)
	return img
}

func supportedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedImageExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
