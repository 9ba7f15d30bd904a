package database

import (
	"fmt"
	"log"
	"path/filepath"

	"branded_clothing_shop/internal/models"
)

const (
	UsersFile    = "users.json"
	OrdersFile   = "orders.json"
	ReviewsFile  = "reviews.json"
	WishlistFile = "wishlist.json"
)

// DB regroupe les fichiers de données de la boutique
type DB struct {
	Dir      string
	Users    *JSONFile[models.User]
	Orders   *JSONFile[models.Order]
	Reviews  *JSONFile[models.Review]
	Wishlist *JSONFile[models.WishlistItem]
}

// Connect ouvre (et crée si besoin) tous les fichiers JSON sous dir
func Connect(dir string) (*DB, error) {
	db := &DB{Dir: dir}
	var err error

	if db.Users, err = OpenJSONFile[models.User](filepath.Join(dir, UsersFile)); err != nil {
		return nil, fmt.Errorf("fichier utilisateurs: %w", err)
	}
	if db.Orders, err = OpenJSONFile[models.Order](filepath.Join(dir, OrdersFile)); err != nil {
		return nil, fmt.Errorf("fichier commandes: %w", err)
	}
	if db.Reviews, err = OpenJSONFile[models.Review](filepath.Join(dir, ReviewsFile)); err != nil {
		return nil, fmt.Errorf("fichier avis: %w", err)
	}
	if db.Wishlist, err = OpenJSONFile[models.WishlistItem](filepath.Join(dir, WishlistFile)); err != nil {
		return nil, fmt.Errorf("fichier wishlist: %w", err)
	}

	log.Println("✅ Fichiers de données prêts dans", dir)
	return db, nil
}
