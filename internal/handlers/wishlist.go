package handlers

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (h *Handlers) WishlistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Список бажань",
	}
	cmd.AddCommand(h.wishlistListCommand(), h.wishlistAddCommand(), h.wishlistRemoveCommand())
	return cmd
}

func (h *Handlers) wishlistListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Показати список бажань",
		Args:    cobra.NoArgs,
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			wishlist, err := h.Wishlist.Wishlist(h.Session.Email(), h.Catalog)
			if err != nil {
				return err
			}
			if len(wishlist.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Список бажань порожній")
				return nil
			}
			printProducts(cmd.OutOrStdout(), wishlist.Items)
			return nil
		},
	}
}

func (h *Handlers) wishlistAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <id>",
		Short:   "Додати до списку бажань",
		Args:    cobra.ExactArgs(1),
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "id товару")
			if err != nil {
				return err
			}
			p, err := h.Catalog.ProductByID(id)
			if err != nil {
				return err
			}
			if err := h.Wishlist.Add(h.Session.Email(), p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s додано до списку бажань\n", p.Name)
			return nil
		},
	}
}

func (h *Handlers) wishlistRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Short:   "Видалити зі списку бажань",
		Args:    cobra.ExactArgs(1),
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "id товару")
			if err != nil {
				return err
			}
			if err := h.Wishlist.Remove(h.Session.Email(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Видалено зі списку бажань")
			return nil
		},
	}
}
