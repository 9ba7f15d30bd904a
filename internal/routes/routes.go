package routes

import (
	"os"
	"path/filepath"

	"branded_clothing_shop/internal/handlers"

	"github.com/spf13/cobra"
)

// NewRootCommand construit l'arbre de commandes de la boutique autour de h
func NewRootCommand(h *handlers.Handlers) *cobra.Command {
	if h.NewRoot == nil {
		h.NewRoot = func() *cobra.Command { return NewRootCommand(h) }
	}

	root := &cobra.Command{
		Use:           "shop",
		Short:         "BrandedClothingShop: каталог, кошик, замовлення",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// l'outbox suit --data-dir sauf si SHOP_OUTBOX_DIR est fixé
			if h.DB == nil && cmd.Flags().Changed("data-dir") && os.Getenv("SHOP_OUTBOX_DIR") == "" {
				h.Config.OutboxDir = filepath.Join(h.Config.DataDir, "outbox")
			}
			if err := h.ConfigureLogging(); err != nil {
				return err
			}
			return h.Setup()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&h.Config.DataDir, "data-dir", h.Config.DataDir, "тека з файлами JSON")
	flags.StringVar(&h.Config.ImagesDir, "images-dir", h.Config.ImagesDir, "тека із зображеннями")
	flags.String("email", "", "email для команд, що потребують входу")
	flags.String("password", "", "пароль")
	flags.BoolVar(&h.Verbose, "verbose", h.Verbose, "журнал у stderr")

	RegisterRoutes(root, h)
	return root
}

func RegisterRoutes(root *cobra.Command, h *handlers.Handlers) {
	// Compte
	root.AddCommand(h.AuthCommands()...)
	root.AddCommand(h.ProfileCommand())

	// Catalogue et panier
	root.AddCommand(h.CatalogCommand())
	root.AddCommand(h.CartCommand())
	root.AddCommand(h.ShippingCommand())
	root.AddCommand(h.CheckoutCommand())

	// Commandes, avis, wishlist
	root.AddCommand(h.OrdersCommand())
	root.AddCommand(h.ReviewsCommand())
	root.AddCommand(h.WishlistCommand())

	root.AddCommand(h.ImagesCommand())
	root.AddCommand(h.ShellCommand())
}
