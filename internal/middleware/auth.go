package middleware

import (
	"errors"
	"log"

	"branded_clothing_shop/internal/models"
	"branded_clothing_shop/internal/session"

	"github.com/spf13/cobra"
)

var (
	ErrNotAuthenticated = errors.New("увійдіть до облікового запису (login або --email/--password)")
	ErrForbidden        = errors.New("доступ лише для адміністраторів")
)

// Authenticator est la partie du service utilisateurs dont la garde a besoin
type Authenticator interface {
	Authenticate(email, password string) (*models.User, error)
}

// RequireUser s'utilise en PreRunE: la session doit avoir un utilisateur,
// sinon on tente --email/--password.
func RequireUser(auth Authenticator, sess *session.Session) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if sess.LoggedIn() {
			return nil
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" || password == "" {
			log.Printf("❌ %s sans utilisateur connecté", cmd.CommandPath())
			return ErrNotAuthenticated
		}

		user, err := auth.Authenticate(email, password)
		if err != nil {
			log.Printf("❌ Authentification échouée pour %s: %v", email, err)
			return err
		}
		sess.Login(user)
		return nil
	}
}

// RequireAdmin vérifie en plus que l'utilisateur est dans la liste des admins
func RequireAdmin(auth Authenticator, sess *session.Session, isAdmin func(email string) bool) func(cmd *cobra.Command, args []string) error {
	requireUser := RequireUser(auth, sess)
	return func(cmd *cobra.Command, args []string) error {
		if err := requireUser(cmd, args); err != nil {
			return err
		}
		if !isAdmin(sess.Email()) {
			log.Printf("⛔ %s refusé pour %s", cmd.CommandPath(), sess.Email())
			return ErrForbidden
		}
		return nil
	}
}
