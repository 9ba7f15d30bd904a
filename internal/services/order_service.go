package services

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"branded_clothing_shop/internal/database"
	"branded_clothing_shop/internal/models"
)

type OrderService struct {
	orders *database.JSONFile[models.Order]
	now    func() time.Time

	mu     sync.Mutex
	nextID int
}

// NewOrderService recharge le compteur d'identifiants (max + 1) depuis le fichier
func NewOrderService(orders *database.JSONFile[models.Order]) (*OrderService, error) {
	s := &OrderService{orders: orders, now: time.Now, nextID: 1}

	existing, err := orders.Load()
	if err != nil {
		return nil, fmt.Errorf("chargement commandes: %w", err)
	}
	if id := maxOrderID(existing); id > 0 {
		s.nextID = id + 1
	}
	return s, nil
}

// CreateOrder fige le panier en commande et l'ajoute au fichier
func (s *OrderService) CreateOrder(email string, items []models.CartItem, delivery models.Delivery, method string) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	method = NormalizeShippingMethod(method)
	subTotal := models.Subtotal(items)
	shipping := ShippingCost(subTotal, method)

	order := models.Order{
		UserEmail:          email,
		Items:              append([]models.CartItem(nil), items...),
		SubTotal:           subTotal,
		ShippingCost:       shipping,
		TotalPrice:         subTotal.Add(shipping),
		ShippingMethod:     method,
		OrderDate:          s.now(),
		Status:             models.StatusProcessing,
		DeliveryAddress:    delivery.Address,
		DeliveryCity:       delivery.City,
		DeliveryPostalCode: delivery.PostalCode,
		DeliveryPhone:      delivery.Phone,
		DeliveryName:       delivery.Name,
		DeliveryCountry:    models.DefaultCountry,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.orders.Update(func(orders []models.Order) ([]models.Order, error) {
		// le fichier est déjà chargé: on ne réutilise jamais un id existant
		if next := maxOrderID(orders) + 1; next > s.nextID {
			s.nextID = next
		}
		order.ID = s.nextID
		return append(orders, order), nil
	})
	if err != nil {
		return nil, err
	}
	s.nextID++

	log.Printf("📦 Commande #%d créée pour %s (total: %s)", order.ID, email, order.TotalPrice.StringFixed(2))
	return &order, nil
}

// UserOrders retourne les commandes d'un utilisateur, les plus récentes d'abord
func (s *OrderService) UserOrders(email string) ([]models.Order, error) {
	orders, err := s.orders.Load()
	if err != nil {
		return nil, err
	}

	var mine []models.Order
	for _, o := range orders {
		if models.SameEmail(o.UserEmail, email) {
			mine = append(mine, o)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].OrderDate.Equal(mine[j].OrderDate) {
			return mine[i].ID > mine[j].ID
		}
		return mine[i].OrderDate.After(mine[j].OrderDate)
	})
	return mine, nil
}

func (s *OrderService) Order(id int) (*models.Order, error) {
	orders, err := s.orders.Load()
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UserOrder retourne une commande seulement si elle appartient à l'utilisateur
func (s *OrderService) UserOrder(email string, id int) (*models.Order, error) {
	order, err := s.Order(id)
	if err != nil {
		return nil, err
	}
	if !models.SameEmail(order.UserEmail, email) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(id int, status string) error {
	err := s.orders.Update(func(orders []models.Order) ([]models.Order, error) {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
				return orders, nil
			}
		}
		return nil, ErrOrderNotFound
	})
	if err != nil {
		return err
	}
	log.Printf("🔄 Commande #%d → %s", id, status)
	return nil
}

// Cancel n'annule que ses propres commandes encore en traitement
func (s *OrderService) Cancel(email string, id int) error {
	return s.orders.Update(func(orders []models.Order) ([]models.Order, error) {
		for i := range orders {
			if orders[i].ID != id || !models.SameEmail(orders[i].UserEmail, email) {
				continue
			}
			if orders[i].Status != models.StatusProcessing {
				return nil, ErrOrderNotCancellable
			}
			orders[i].Status = models.StatusCancelled
			log.Printf("🚫 Commande #%d annulée par %s", id, email)
			return orders, nil
		}
		return nil, ErrOrderNotFound
	})
}

// Delete supprime une commande (admin)
func (s *OrderService) Delete(id int) error {
	return s.orders.Update(func(orders []models.Order) ([]models.Order, error) {
		kept := orders[:0]
		found := false
		for _, o := range orders {
			if o.ID == id {
				found = true
				continue
			}
			kept = append(kept, o)
		}
		if !found {
			return nil, ErrOrderNotFound
		}
		log.Printf("🗑️ Commande #%d supprimée", id)
		return kept, nil
	})
}

func maxOrderID(orders []models.Order) int {
	max := 0
	for _, o := range orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max
}
