package services

import (
	"log"
	"time"

	"branded_clothing_shop/internal/database"
	"branded_clothing_shop/internal/models"
)

type WishlistService struct {
	items *database.JSONFile[models.WishlistItem]
	now   func() time.Time
}

func NewWishlistService(items *database.JSONFile[models.WishlistItem]) *WishlistService {
	return &WishlistService{items: items, now: time.Now}
}

// Add est idempotent: un produit n'apparaît qu'une fois par utilisateur
func (s *WishlistService) Add(email string, productID int) error {
	added := false
	err := s.items.Update(func(items []models.WishlistItem) ([]models.WishlistItem, error) {
		nextID := 1
		for _, w := range items {
			if w.UserEmail == email && w.ProductID == productID {
				return items, nil
			}
			if w.ID >= nextID {
				nextID = w.ID + 1
			}
		}
		added = true
		return append(items, models.WishlistItem{
			ID:        nextID,
			UserEmail: email,
			ProductID: productID,
			AddedDate: s.now(),
		}), nil
	})
	if err == nil && added {
		log.Printf("❤️ Produit %d ajouté à la wishlist de %s", productID, email)
	}
	return err
}

func (s *WishlistService) Remove(email string, productID int) error {
	return s.items.Update(func(items []models.WishlistItem) ([]models.WishlistItem, error) {
		kept := items[:0]
		for _, w := range items {
			if w.UserEmail == email && w.ProductID == productID {
				continue
			}
			kept = append(kept, w)
		}
		return kept, nil
	})
}

func (s *WishlistService) ProductIDs(email string) ([]int, error) {
	items, err := s.items.Load()
	if err != nil {
		return nil, err
	}
	var ids []int
	for _, w := range items {
		if w.UserEmail == email {
			ids = append(ids, w.ProductID)
		}
	}
	return ids, nil
}

func (s *WishlistService) Contains(email string, productID int) (bool, error) {
	items, err := s.items.Load()
	if err != nil {
		return false, err
	}
	for _, w := range items {
		if w.UserEmail == email && w.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// Wishlist résout les produits de la wishlist via le catalogue
func (s *WishlistService) Wishlist(email string, catalog *Catalog) (models.Wishlist, error) {
	ids, err := s.ProductIDs(email)
	if err != nil {
		return models.Wishlist{}, err
	}
	wishlist := models.Wishlist{UserEmail: email}
	for _, id := range ids {
		if p, err := catalog.ProductByID(id); err == nil {
			wishlist.Items = append(wishlist.Items, p)
		}
	}
	return wishlist, nil
}
