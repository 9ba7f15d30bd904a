package handlers

import (
	"errors"
	"fmt"
	"log"

	"branded_clothing_shop/internal/middleware"
	"branded_clothing_shop/internal/models"

	"github.com/spf13/cobra"
)

// AuthCommands: register, login, logout, whoami
func (h *Handlers) AuthCommands() []*cobra.Command {
	return []*cobra.Command{h.registerCommand(), h.loginCommand(), h.logoutCommand(), h.whoamiCommand()}
}

func (h *Handlers) registerCommand() *cobra.Command {
	var user models.User
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Створити обліковий запис (--email, --password, --name)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user.Email, _ = cmd.Flags().GetString("email")
			user.Password, _ = cmd.Flags().GetString("password")

			created, err := h.Users.Register(user)
			if err != nil {
				log.Printf("❌ Inscription refusée pour %s: %v", user.Email, err)
				return err
			}
			h.Session.Login(created)
			fmt.Fprintf(cmd.OutOrStdout(), "Реєстрація успішна! Вітаємо, %s.\n", created.FullName)
			return nil
		},
	}
	cmd.Flags().StringVar(&user.FullName, "name", "", "повне ім'я")
	cmd.Flags().StringVar(&user.PhoneNumber, "phone", "", "телефон")
	cmd.Flags().StringVar(&user.Address, "address", "", "адреса")
	cmd.Flags().StringVar(&user.City, "city", "", "місто")
	cmd.Flags().StringVar(&user.PostalCode, "postal-code", "", "поштовий індекс")
	cmd.Flags().StringVar(&user.Country, "country", models.DefaultCountry, "країна")
	return cmd
}

func (h *Handlers) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email password]",
		Short: "Увійти (аргументи або --email/--password)",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if len(args) > 0 {
				email = args[0]
			}
			if len(args) > 1 {
				password = args[1]
			}
			if email == "" || password == "" {
				return middleware.ErrNotAuthenticated
			}

			user, err := h.Users.Authenticate(email, password)
			if err != nil {
				log.Printf("❌ Connexion refusée pour %s", email)
				return err
			}
			h.Session.Login(user)
			fmt.Fprintf(cmd.OutOrStdout(), "Вітаємо, %s!\n", user.FullName)
			return nil
		},
	}
}

func (h *Handlers) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Вийти та очистити кошик",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !h.Session.LoggedIn() {
				return errors.New("ви не увійшли")
			}
			h.Session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "До зустрічі!")
			return nil
		},
	}
}

func (h *Handlers) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Поточний користувач",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !h.Session.LoggedIn() {
				fmt.Fprintln(cmd.OutOrStdout(), "Гість")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", h.Session.User.FullName, h.Session.User.Email)
			return nil
		},
	}
}
