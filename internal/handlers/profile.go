package handlers

import (
	"fmt"
	"text/tabwriter"

	"branded_clothing_shop/internal/utils"

	"github.com/spf13/cobra"
)

func (h *Handlers) ProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Профіль користувача",
	}
	cmd.AddCommand(h.profileShowCommand(), h.profileUpdateCommand())
	return cmd
}

func (h *Handlers) profileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   "Показати профіль",
		Args:    cobra.NoArgs,
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := h.Users.User(h.Session.Email())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Email:\t%s\n", user.Email)
			fmt.Fprintf(w, "Ім'я:\t%s\n", user.FullName)
			fmt.Fprintf(w, "Телефон:\t%s\n", user.PhoneNumber)
			fmt.Fprintf(w, "Адреса:\t%s\n", user.Address)
			fmt.Fprintf(w, "Місто:\t%s\n", user.City)
			fmt.Fprintf(w, "Індекс:\t%s\n", user.PostalCode)
			fmt.Fprintf(w, "Країна:\t%s\n", user.Country)
			fmt.Fprintf(w, "Зареєстровано:\t%s\n", utils.FormatDate(user.CreatedDate))
			fmt.Fprintf(w, "Переглянуто товарів:\t%d\n", len(user.ViewedProductIds))
			return w.Flush()
		},
	}
}

func (h *Handlers) profileUpdateCommand() *cobra.Command {
	var name, phone, address, city, postalCode, country string
	cmd := &cobra.Command{
		Use:     "update",
		Short:   "Змінити поля профілю (лише передані прапорці)",
		Args:    cobra.NoArgs,
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := h.Users.User(h.Session.Email())
			if err != nil {
				return err
			}

			// seuls les champs passés explicitement sont modifiés
			flags := cmd.Flags()
			if flags.Changed("name") {
				user.FullName = name
			}
			if flags.Changed("phone") {
				user.PhoneNumber = phone
			}
			if flags.Changed("address") {
				user.Address = address
			}
			if flags.Changed("city") {
				user.City = city
			}
			if flags.Changed("postal-code") {
				user.PostalCode = postalCode
			}
			if flags.Changed("country") {
				user.Country = country
			}

			updated, err := h.Users.UpdateProfile(*user)
			if err != nil {
				return err
			}
			h.Session.User = updated
			fmt.Fprintln(cmd.OutOrStdout(), "Профіль оновлено")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "повне ім'я")
	cmd.Flags().StringVar(&phone, "phone", "", "телефон")
	cmd.Flags().StringVar(&address, "address", "", "адреса")
	cmd.Flags().StringVar(&city, "city", "", "місто")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "поштовий індекс")
	cmd.Flags().StringVar(&country, "country", "", "країна")
	return cmd
}
