package services

import (
	"log"
	"strings"
	"time"

	"branded_clothing_shop/internal/database"
	"branded_clothing_shop/internal/models"
)

const MaxViewedProducts = 20

type UserService struct {
	users *database.JSONFile[models.User]
	now   func() time.Time
}

func NewUserService(users *database.JSONFile[models.User]) *UserService {
	return &UserService{users: users, now: time.Now}
}

// Register crée un compte; l'email est unique sans tenir compte de la casse
func (s *UserService) Register(user models.User) (*models.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	user.FullName = strings.TrimSpace(user.FullName)
	// le mot de passe est gardé tel quel, mais pas s'il n'est fait que d'espaces
	if user.Email == "" || strings.TrimSpace(user.Password) == "" || user.FullName == "" {
		return nil, ErrMissingField
	}
	if user.Country == "" {
		user.Country = models.DefaultCountry
	}
	if user.CreatedDate.IsZero() {
		user.CreatedDate = s.now()
	}
	if user.WishlistProductIds == nil {
		user.WishlistProductIds = []int{}
	}
	if user.ViewedProductIds == nil {
		user.ViewedProductIds = []int{}
	}

	err := s.users.Update(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if models.SameEmail(u.Email, user.Email) {
				return nil, ErrEmailTaken
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Utilisateur créé: %s", user.Email)
	return &user, nil
}

// Authenticate compare le mot de passe en clair (pas de vrai modèle de sécurité)
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if models.SameEmail(u.Email, strings.TrimSpace(email)) && u.Password == password {
			return &u, nil
		}
	}
	log.Printf("❌ Échec de connexion pour %s", email)
	return nil, ErrInvalidCredentials
}

func (s *UserService) User(email string) (*models.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if models.SameEmail(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateProfile ne modifie que les champs du profil (ni email ni mot de passe)
func (s *UserService) UpdateProfile(user models.User) (*models.User, error) {
	var updated models.User
	err := s.users.Update(func(users []models.User) ([]models.User, error) {
		for i := range users {
			if !models.SameEmail(users[i].Email, user.Email) {
				continue
			}
			users[i].FullName = user.FullName
			users[i].PhoneNumber = user.PhoneNumber
			users[i].Address = user.Address
			users[i].City = user.City
			users[i].PostalCode = user.PostalCode
			users[i].Country = user.Country
			updated = users[i]
			return users, nil
		}
		return nil, ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Profil mis à jour: %s", updated.Email)
	return &updated, nil
}

// RecordView garde les derniers produits consultés, le plus récent en tête
func (s *UserService) RecordView(email string, productID int) error {
	return s.users.Update(func(users []models.User) ([]models.User, error) {
		for i := range users {
			if !models.SameEmail(users[i].Email, email) {
				continue
			}
			viewed := []int{productID}
			for _, id := range users[i].ViewedProductIds {
				if id != productID && len(viewed) < MaxViewedProducts {
					viewed = append(viewed, id)
				}
			}
			users[i].ViewedProductIds = viewed
			return users, nil
		}
		return nil, ErrUserNotFound
	})
}
