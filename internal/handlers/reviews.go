package handlers

import (
	"fmt"

	"branded_clothing_shop/internal/utils"

	"github.com/spf13/cobra"
)

func (h *Handlers) ReviewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Відгуки про товари",
	}
	cmd.AddCommand(h.reviewsListCommand(), h.reviewsAddCommand())
	return cmd
}

func (h *Handlers) reviewsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <productID>",
		Short: "Відгуки товару (найновіші першими)",
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
			reviews, err := h.Reviews.ProductReviews(p.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s (%d відгуків)\n", p.Name, utils.Stars(rating.AverageRating), rating.TotalReviews)
			if len(reviews) == 0 {
				fmt.Fprintln(out, "Відгуків ще немає. Будьте першим!")
				return nil
			}
			for _, r := range reviews {
				fmt.Fprintf(out, "\n%s  %s  %s\n%s\n", r.UserName, utils.Stars(float64(r.Rating)), utils.FormatDate(r.CreatedDate), r.Comment)
			}
			return nil
		},
	}
}

func (h *Handlers) reviewsAddCommand() *cobra.Command {
	var (
		rating  int
		comment string
	)
	cmd := &cobra.Command{
		Use:     "add <productID>",
		Short:   "Залишити відгук",
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

			user := h.Session.User
			if _, err := h.Reviews.AddReview(p.ID, user.Email, user.FullName, rating, comment); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Дякуємо за ваш відгук!")
			return nil
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 5, "оцінка 1-5")
	cmd.Flags().StringVar(&comment, "comment", "", "текст відгуку")
	return cmd
}
