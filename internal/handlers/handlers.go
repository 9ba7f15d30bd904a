package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"branded_clothing_shop/internal/config"
	"branded_clothing_shop/internal/database"
	"branded_clothing_shop/internal/middleware"
	"branded_clothing_shop/internal/services"
	"branded_clothing_shop/internal/session"

	"github.com/spf13/cobra"
)

// Handlers porte les dépendances partagées par toutes les commandes
type Handlers struct {
	Config  *config.Config
	Session *session.Session
	// NewRoot reconstruit un arbre de commandes neuf (flags remis à zéro), utilisé par le shell
	NewRoot func() *cobra.Command
	// Verbose reste actif pour toute la session une fois demandé
	Verbose bool

	DB       *database.DB
	Catalog  *services.Catalog
	Orders   *services.OrderService
	Users    *services.UserService
	Reviews  *services.ReviewService
	Wishlist *services.WishlistService
	Images   *services.ImageService

	logFile *os.File
	// dossiers ouverts par Setup
	dataDir, imagesDir string
}

var ErrDirsLocked = errors.New("--data-dir та --images-dir не можна змінити після відкриття даних")

func New(cfg *config.Config) *Handlers {
	return &Handlers{
		Config:  cfg,
		Session: session.New(),
		Catalog: services.NewCatalog(),
	}
}

// Setup ouvre les fichiers de données et instancie les services, une seule fois par processus
func (h *Handlers) Setup() error {
	if h.DB != nil {
		if h.Config.DataDir != h.dataDir || h.Config.ImagesDir != h.imagesDir {
			log.Printf("⚠️ Changement de dossier refusé (données: %s, images: %s)", h.dataDir, h.imagesDir)
			h.Config.DataDir, h.Config.ImagesDir = h.dataDir, h.imagesDir
			return ErrDirsLocked
		}
		return nil
	}

	db, err := database.Connect(h.Config.DataDir)
	if err != nil {
		log.Printf("❌ Erreur ouverture des données: %v", err)
		return err
	}
	orders, err := services.NewOrderService(db.Orders)
	if err != nil {
		return err
	}

	h.DB = db
	h.dataDir, h.imagesDir = h.Config.DataDir, h.Config.ImagesDir
	h.Orders = orders
	h.Users = services.NewUserService(db.Users)
	h.Reviews = services.NewReviewService(db.Reviews)
	h.Wishlist = services.NewWishlistService(db.Wishlist)
	h.Images = services.NewImageService(h.Config.ImagesDir)
	return nil
}

// ConfigureLogging envoie les logs vers SHOP_LOG_FILE, stderr (--verbose) ou nulle part
func (h *Handlers) ConfigureLogging() error {
	verbose := h.Verbose
	if h.Config.LogFile != "" && h.logFile == nil {
		f, err := os.OpenFile(h.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("fichier de log %s: %w", h.Config.LogFile, err)
		}
		h.logFile = f
	}

	switch {
	case h.logFile != nil && verbose:
		log.SetOutput(io.MultiWriter(h.logFile, os.Stderr))
	case h.logFile != nil:
		log.SetOutput(h.logFile)
	case verbose:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
	return nil
}

func (h *Handlers) Close() error {
	if h.logFile == nil {
		return nil
	}
	err := h.logFile.Close()
	h.logFile = nil
	return err
}

// requireUser est résolu à l'exécution: les services n'existent qu'après Setup
func (h *Handlers) requireUser(cmd *cobra.Command, args []string) error {
	return middleware.RequireUser(h.Users, h.Session)(cmd, args)
}

func (h *Handlers) requireAdmin(cmd *cobra.Command, args []string) error {
	return middleware.RequireAdmin(h.Users, h.Session, h.Config.IsAdmin)(cmd, args)
}

func parseID(raw, what string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некоректний %s: %q", what, raw)
	}
	return id, nil
}

// parseLine convertit un numéro de ligne affiché (à partir de 1) en index
func parseLine(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("некоректний номер рядка: %q", raw)
	}
	return n - 1, nil
}
