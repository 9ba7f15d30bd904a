package handlers

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"text/tabwriter"

	"branded_clothing_shop/internal/models"
	"branded_clothing_shop/internal/utils"

	"github.com/spf13/cobra"
)

// CartCommand: le panier vit dans la session (perdu à la fin d'une commande isolée)
func (h *Handlers) CartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Кошик поточної сесії",
	}
	cmd.AddCommand(
		h.cartAddCommand(),
		h.cartListCommand(),
		h.cartLineCommand("inc", "Збільшити кількість", (*models.Cart).Increment),
		h.cartLineCommand("dec", "Зменшити кількість (мінімум 1)", (*models.Cart).Decrement),
		h.cartLineCommand("remove", "Видалити рядок", (*models.Cart).Remove),
		h.cartSetCommand(),
		h.cartClearCommand(),
	)
	return cmd
}

func (h *Handlers) cartAddCommand() *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Додати товар у кошик",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "id товару")
			if err != nil {
				return err
			}
			p, err := h.Catalog.ProductByID(id)
			if err != nil {
				return err
			}
			if err := h.Session.Cart.Add(p, size); err != nil {
				return fmt.Errorf("%w (доступні: %v)", err, p.Sizes())
			}

			log.Printf("🛒 Produit %d ajouté au panier (session %s)", p.ID, h.Session.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Товар додано до кошика! У кошику: %d\n", h.Session.Cart.Count())
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", models.DefaultSize, "розмір")
	return cmd
}

func (h *Handlers) cartListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Вміст кошика",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printCart(cmd.OutOrStdout(), h.Session.Cart)
			return nil
		},
	}
}

func (h *Handlers) cartLineCommand(use, short string, op func(*models.Cart, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <line>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLine(args[0])
			if err != nil {
				return err
			}
			if err := op(&h.Session.Cart, line); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), h.Session.Cart)
			return nil
		},
	}
}

func (h *Handlers) cartSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <line> <qty>",
		Short: "Встановити кількість",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := parseLine(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return models.ErrInvalidQuantity
			}
			if err := h.Session.Cart.SetQuantity(line, qty); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), h.Session.Cart)
			return nil
		},
	}
}

func (h *Handlers) cartClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Очистити кошик",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			h.Session.Cart.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Кошик очищено")
		},
	}
}

func printCart(out io.Writer, cart models.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(out, "Кошик порожній")
		return
	}
	printItems(out, cart.Items)
	fmt.Fprintf(out, "Товарів: %d  Підсумок: %s\n", cart.Count(), utils.FormatPrice(cart.Subtotal()))
}

func printItems(out io.Writer, items []models.CartItem) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tТовар\tРозмір\tЦіна\tК-сть\tСума")
	for i, item := range items {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%d\t%s\n", i+1, item.Product.Brand, item.Product.Name, item.Size,
			utils.FormatPrice(item.Product.Price), item.Quantity, utils.FormatPrice(item.LineTotal()))
	}
	w.Flush()
}
