package session

import (
	"log"

	"branded_clothing_shop/internal/models"

	"github.com/google/uuid"
)

// Session garde l'utilisateur connecté et son panier pour la durée du processus
type Session struct {
	ID   uuid.UUID
	User *models.User
	Cart models.Cart
}

func New() *Session {
	return &Session{ID: uuid.New()}
}

func (s *Session) LoggedIn() bool {
	return s.User != nil
}

// Login remplace l'utilisateur courant; le panier est conservé
func (s *Session) Login(u *models.User) {
	s.User = u
	log.Printf("🔑 Session %s: connecté en tant que %s", s.ID, u.Email)
}

// Logout oublie l'utilisateur et vide le panier
func (s *Session) Logout() {
	if s.User != nil {
		log.Printf("👋 Session %s: déconnexion de %s", s.ID, s.User.Email)
	}
	s.User = nil
	s.Cart.Clear()
}

// Email retourne l'email de l'utilisateur courant, vide si anonyme
func (s *Session) Email() string {
	if s.User == nil {
		return ""
	}
	return s.User.Email
}
