package handlers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"branded_clothing_shop/internal/models"
	"branded_clothing_shop/internal/services"
	"branded_clothing_shop/internal/utils"

	"github.com/spf13/cobra"
)

func (h *Handlers) OrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Історія замовлень",
	}
	cmd.AddCommand(
		h.ordersListCommand(),
		h.ordersShowCommand(),
		h.ordersCancelCommand(),
		h.ordersReorderCommand(),
		h.ordersInvoiceCommand(),
		h.ordersDeleteCommand(),
		h.ordersStatusCommand(),
	)
	return cmd
}

func (h *Handlers) ordersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Мої замовлення (найновіші першими)",
		Args:    cobra.NoArgs,
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := h.Orders.UserOrders(h.Session.Email())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "У вас ще немає замовлень")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "№\tДата\tСтатус\tТоварів\tРазом")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", o.ID, utils.FormatDate(o.OrderDate), o.Status, o.ItemCount(), utils.FormatPrice(o.TotalPrice))
			}
			return w.Flush()
		},
	}
}

func (h *Handlers) ordersShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Деталі замовлення",
		Args:    cobra.ExactArgs(1),
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := h.userOrder(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Замовлення №%d від %s\nСтатус: %s\n\n", order.ID, utils.FormatDate(order.OrderDate), order.Status)
			printItems(out, order.Items)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "\nПідсумок:\t%s\n", utils.FormatPrice(order.SubTotal))
			fmt.Fprintf(w, "Доставка (%s):\t%s\n", order.ShippingMethod, utils.FormatPrice(order.ShippingCost))
			fmt.Fprintf(w, "Разом:\t%s\n", utils.FormatPrice(order.TotalPrice))
			fmt.Fprintf(w, "Отримувач:\t%s, %s\n", order.DeliveryName, order.DeliveryPhone)
			fmt.Fprintf(w, "Адреса:\t%s, %s %s, %s\n", order.DeliveryAddress, order.DeliveryPostalCode, order.DeliveryCity, order.DeliveryCountry)
			if order.DeliveryDate != nil {
				fmt.Fprintf(w, "Доставлено:\t%s\n", utils.FormatDate(*order.DeliveryDate))
			}
			return w.Flush()
		},
	}
}

func (h *Handlers) ordersCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "cancel <id>",
		Short:   "Скасувати замовлення в обробці",
		Args:    cobra.ExactArgs(1),
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "номер замовлення")
			if err != nil {
				return err
			}
			if err := h.Orders.Cancel(h.Session.Email(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Замовлення №%d скасовано\n", id)
			return nil
		},
	}
}

func (h *Handlers) ordersReorderCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "reorder <id>",
		Short:   "Додати товари замовлення до кошика",
		Args:    cobra.ExactArgs(1),
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := h.userOrder(args[0])
			if err != nil {
				return err
			}
			if order.Status == models.StatusCancelled {
				return services.ErrOrderNotReorderable
			}
			h.Session.Cart.AddOrderItems(order.Items)
			log.Printf("🔁 Commande #%d remise dans le panier (session %s)", order.ID, h.Session.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Товари додано до кошика! У кошику: %d\n", h.Session.Cart.Count())
			return nil
		},
	}
}

func (h *Handlers) ordersInvoiceCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:     "invoice <id>",
		Short:   "Зберегти рахунок PDF",
		Args:    cobra.ExactArgs(1),
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := h.userOrder(args[0])
			if err != nil {
				return err
			}
			pdf, err := utils.GenerateOrderInvoicePDF(*order, h.Config.InvoiceFont)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("invoice-%d.pdf", order.ID)
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Рахунок збережено: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "файл PDF (за замовчуванням invoice-<id>.pdf)")
	return cmd
}

func (h *Handlers) ordersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Видалити замовлення (адміністратор)",
		Hidden:  true,
		Args:    cobra.ExactArgs(1),
		PreRunE: h.requireAdmin,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "номер замовлення")
			if err != nil {
				return err
			}
			if err := h.Orders.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Замовлення №%d видалено\n", id)
			return nil
		},
	}
}

func (h *Handlers) ordersStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status <id> <status>",
		Short:   "Змінити статус замовлення (адміністратор)",
		Hidden:  true,
		Args:    cobra.ExactArgs(2),
		PreRunE: h.requireAdmin,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "номер замовлення")
			if err != nil {
				return err
			}
			status := strings.TrimSpace(args[1])
			if status == "" {
				return errors.New("статус не може бути порожнім")
			}
			if err := h.Orders.UpdateStatus(id, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Замовлення №%d: %s\n", id, status)
			return nil
		},
	}
}

func (h *Handlers) userOrder(raw string) (*models.Order, error) {
	id, err := parseID(raw, "номер замовлення")
	if err != nil {
		return nil, err
	}
	return h.Orders.UserOrder(h.Session.Email(), id)
}
