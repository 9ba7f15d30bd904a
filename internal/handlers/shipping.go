package handlers

import (
	"fmt"
	"text/tabwriter"

	"branded_clothing_shop/internal/services"
	"branded_clothing_shop/internal/utils"

	"github.com/spf13/cobra"
)

// ShippingCommand liste les options de livraison pour le panier ou un sous-total donné
func (h *Handlers) ShippingCommand() *cobra.Command {
	var subtotal string
	cmd := &cobra.Command{
		Use:   "shipping",
		Short: "Варіанти доставки та їх вартість",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total := h.Session.Cart.Subtotal()
			if cmd.Flags().Changed("subtotal") {
				d, err := parsePrice(subtotal)
				if err != nil {
					return err
				}
				if d != nil {
					total = *d
				}
			}

			calc := services.ShippingOptions(total)
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, o := range calc.Options {
				price := utils.FormatPrice(o.Price)
				if o.Price.IsZero() {
					price = "Безкоштовно"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.Description, price)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if calc.IsFree {
				fmt.Fprintln(out, "Безкоштовна доставка (крім експрес)!")
			} else {
				missing := calc.FreeThreshold.Sub(calc.CartTotal)
				fmt.Fprintf(out, "До безкоштовної доставки: %s\n", utils.FormatPrice(missing))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&subtotal, "subtotal", "", "сума замовлення замість кошика")
	return cmd
}
