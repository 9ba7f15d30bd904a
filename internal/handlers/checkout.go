package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"branded_clothing_shop/internal/models"
	"branded_clothing_shop/internal/services"
	"branded_clothing_shop/internal/utils"

	"github.com/spf13/cobra"
)

// CheckoutCommand passe la commande à partir du panier de la session ou des --item
func (h *Handlers) CheckoutCommand() *cobra.Command {
	var (
		method   string
		delivery models.Delivery
		specs    []string
	)
	cmd := &cobra.Command{
		Use:     "checkout",
		Short:   "Оформити замовлення",
		Args:    cobra.NoArgs,
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromCart := len(specs) == 0
			items := h.Session.Cart.Items
			if !fromCart {
				var err error
				if items, err = h.itemsFromSpecs(specs); err != nil {
					return err
				}
			}
			if len(items) == 0 {
				return services.ErrEmptyCart
			}

			user, err := h.Users.User(h.Session.Email())
			if err != nil {
				return err
			}
			// le profil pré-remplit la livraison, les flags passés l'emportent
			d := models.DeliveryFromUser(*user)
			flags := cmd.Flags()
			if flags.Changed("name") {
				d.Name = delivery.Name
			}
			if flags.Changed("address") {
				d.Address = delivery.Address
			}
			if flags.Changed("city") {
				d.City = delivery.City
			}
			if flags.Changed("postal-code") {
				d.PostalCode = delivery.PostalCode
			}
			if flags.Changed("phone") {
				d.Phone = delivery.Phone
			}
			if err := d.Validate(); err != nil {
				return err
			}

			order, err := h.Orders.CreateOrder(user.Email, items, d, method)
			if err != nil {
				log.Printf("❌ Erreur création commande: %v", err)
				return err
			}
			if fromCart {
				h.Session.Cart.Clear()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Замовлення №%d успішно оформлено!\n", order.ID)
			fmt.Fprintf(out, "Сума: %s (доставка %s)\n", utils.FormatPrice(order.TotalPrice), utils.FormatPrice(order.ShippingCost))
			fmt.Fprintf(out, "Очікувана доставка: %s\n", services.DeliveryEstimate(order.ShippingMethod))

			if path, err := h.writeConfirmation(*order); err != nil {
				log.Printf("⚠️ Confirmation de la commande %d non générée: %v", order.ID, err)
				fmt.Fprintln(out, "Не вдалося підготувати лист-підтвердження")
			} else {
				fmt.Fprintf(out, "Лист-підтвердження: %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", models.ShippingStandard, "Standard | Express | Pickup")
	cmd.Flags().StringVar(&delivery.Name, "name", "", "отримувач")
	cmd.Flags().StringVar(&delivery.Address, "address", "", "адреса")
	cmd.Flags().StringVar(&delivery.City, "city", "", "місто")
	cmd.Flags().StringVar(&delivery.PostalCode, "postal-code", "", "поштовий індекс")
	cmd.Flags().StringVar(&delivery.Phone, "phone", "", "телефон")
	cmd.Flags().StringArrayVar(&specs, "item", nil, "товар id:кількість:розмір (замість кошика)")
	return cmd
}

// writeConfirmation génère la facture et dépose l'e-mail dans l'outbox
func (h *Handlers) writeConfirmation(order models.Order) (string, error) {
	pdf, err := utils.GenerateOrderInvoicePDF(order, h.Config.InvoiceFont)
	if err != nil {
		return "", err
	}
	return utils.WriteOrderConfirmation(h.Config.OutboxDir, h.Config.MailFrom, order, pdf)
}

// itemsFromSpecs construit les lignes depuis "id", "id:qty" ou "id:qty:size"
func (h *Handlers) itemsFromSpecs(specs []string) ([]models.CartItem, error) {
	var cart models.Cart
	for _, spec := range specs {
		id, qty, size, err := parseItemSpec(spec)
		if err != nil {
			return nil, err
		}
		p, err := h.Catalog.ProductByID(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec, err)
		}
		if !p.HasSize(size) {
			return nil, fmt.Errorf("%s: %w", spec, models.ErrInvalidSize)
		}
		cart.AddOrderItems([]models.CartItem{{Product: p, Quantity: qty, Size: strings.ToUpper(size)}})
	}
	return cart.Items, nil
}

func parseItemSpec(spec string) (id, qty int, size string, err error) {
	parts := strings.Split(strings.TrimSpace(spec), ":")
	if len(parts) > 3 {
		return 0, 0, "", fmt.Errorf("некоректний товар: %q", spec)
	}
	if id, err = parseID(parts[0], "id товару"); err != nil {
		return 0, 0, "", err
	}
	qty, size = 1, models.DefaultSize
	if len(parts) > 1 && parts[1] != "" {
		if qty, err = strconv.Atoi(parts[1]); err != nil || qty < 1 {
			return 0, 0, "", fmt.Errorf("%s: %w", spec, models.ErrInvalidQuantity)
		}
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		size = strings.TrimSpace(parts[2])
	}
	return id, qty, size, nil
}
