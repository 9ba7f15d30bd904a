package handlers

import (
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"branded_clothing_shop/internal/models"
	"branded_clothing_shop/internal/services"
	"branded_clothing_shop/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (h *Handlers) CatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Каталог товарів",
	}
	cmd.AddCommand(
		h.catalogListCommand(),
		h.catalogShowCommand(),
		h.catalogBrandsCommand(),
		h.catalogCategoriesCommand(),
		h.catalogViewedCommand(),
	)
	return cmd
}

func (h *Handlers) catalogListCommand() *cobra.Command {
	var (
		q                  services.CatalogQuery
		minPrice, maxPrice string
		top                bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Пошук і фільтри каталогу",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if top {
				printProducts(cmd.OutOrStdout(), h.Catalog.TopRated())
				return nil
			}

			var err error
			if q.MinPrice, err = parsePrice(minPrice); err != nil {
				return err
			}
			if q.MaxPrice, err = parsePrice(maxPrice); err != nil {
				return err
			}

			products := h.Catalog.Query(q)
			log.Printf("🔍 Recherche catalogue %+v: %d résultat(s)", q, len(products))
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Нічого не знайдено")
				return nil
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
	cmd.Flags().StringVar(&q.Search, "search", "", "пошук за назвою, брендом, описом")
	cmd.Flags().StringVar(&q.Brand, "brand", "", "бренд")
	cmd.Flags().StringVar(&q.Category, "category", "", "категорія")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "мінімальна ціна")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "максимальна ціна")
	cmd.Flags().BoolVar(&q.NewOnly, "new", false, "лише новинки")
	cmd.Flags().BoolVar(&q.DiscountOnly, "discount", false, "лише знижки")
	cmd.Flags().BoolVar(&top, "top", false, "найкращі за рейтингом")
	cmd.Flags().StringVar(&q.Sort, "sort", services.SortByName, "name | price_asc | price_desc | rating")
	return cmd
}

func (h *Handlers) catalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Деталі товару",
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
			rating, err := h.Reviews.ProductRating(p.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n", p.Name, p.Brand)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Ціна:\t%s\n", utils.FormatPrice(p.Price))
			if d := services.Discount(p); d.IsPositive() {
				fmt.Fprintf(w, "Стара ціна:\t%s (-%s%%)\n", utils.FormatPrice(p.OriginalPrice), d.String())
			}
			fmt.Fprintf(w, "Категорія:\t%s\n", p.Category)
			fmt.Fprintf(w, "Рейтинг:\t%s (%d відгуків)\n", utils.Stars(rating.AverageRating), rating.TotalReviews)
			fmt.Fprintf(w, "Розміри:\t%s\n", strings.Join(p.Sizes(), ", "))
			fmt.Fprintf(w, "Кольори:\t%s\n", strings.Join(p.Colors, ", "))
			fmt.Fprintf(w, "Наявність:\t%s (%d шт.)\n", models.StockStatus(p.Stock), p.Stock)
			if path := h.Images.ProductImagePath(p); path != "" {
				fmt.Fprintf(w, "Фото:\t%s\n", path)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n", p.Description)

			if h.Session.LoggedIn() {
				if err := h.Users.RecordView(h.Session.Email(), p.ID); err != nil {
					log.Printf("⚠️ Historique de consultation non enregistré: %v", err)
				}
				if ok, err := h.Wishlist.Contains(h.Session.Email(), p.ID); err == nil && ok {
					fmt.Fprintln(out, "♥ У списку бажань")
				}
			}
			return nil
		},
	}
}

func (h *Handlers) catalogBrandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "Список брендів",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, b := range h.Catalog.Brands() {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
		},
	}
}

func (h *Handlers) catalogCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Категорії з кількістю товарів",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, c := range h.Catalog.CategorySummaries() {
				fmt.Fprintf(w, "%s\t%d\n", c.Name, c.ProductCount)
			}
			return w.Flush()
		},
	}
}

func (h *Handlers) catalogViewedCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "viewed",
		Short:   "Нещодавно переглянуті товари",
		Args:    cobra.NoArgs,
		PreRunE: h.requireUser,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := h.Users.User(h.Session.Email())
			if err != nil {
				return err
			}
			var products []models.Product
			for _, id := range user.ViewedProductIds {
				if p, err := h.Catalog.ProductByID(id); err == nil {
					products = append(products, p)
				}
			}
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Ви ще нічого не переглядали")
				return nil
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
}

func printProducts(out io.Writer, products []models.Product) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tТовар\tБренд\tЦіна\tРейтинг\t")
	for _, p := range products {
		badges := ""
		if p.IsNew {
			badges += " NEW"
		}
		if d := services.Discount(p); d.IsPositive() {
			badges += fmt.Sprintf(" -%s%%", d.String())
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Brand, utils.FormatPrice(p.Price), strings.Repeat("★", p.Rating), strings.TrimSpace(badges))
	}
	w.Flush()
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("некоректна ціна: %q", raw)
	}
	return &d, nil
}
