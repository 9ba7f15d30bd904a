package routes

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"branded_clothing_shop/internal/config"
	"branded_clothing_shop/internal/handlers"
	"branded_clothing_shop/internal/middleware"
	"branded_clothing_shop/internal/models"
	"branded_clothing_shop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShop(t *testing.T, dir string) *handlers.Handlers {
	t.Helper()
	cfg := &config.Config{
		DataDir:   filepath.Join(dir, "Data"),
		ImagesDir: filepath.Join(dir, "Images"),
		MailFrom:  "noreply@brandedshop.ua",
	}
	cfg.Normalize()
	h := handlers.New(cfg)
	t.Cleanup(func() { h.Close() })
	return h
}

func run(t *testing.T, h *handlers.Handlers, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(h)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, h *handlers.Handlers, args ...string) string {
	t.Helper()
	out, err := run(t, h, args...)
	require.NoError(t, err, out)
	return out
}

func register(t *testing.T, h *handlers.Handlers) {
	t.Helper()
	mustRun(t, h, "register",
		"--email", "olena@example.com", "--password", "secret",
		"--name", "Олена Коваль", "--phone", "+380501234567",
		"--address", "вул. Хрещатик, 1", "--city", "Київ", "--postal-code", "01001")
}

func TestAuthFlow(t *testing.T) {
	h := newShop(t, t.TempDir())

	out := mustRun(t, h, "whoami")
	assert.Contains(t, out, "Гість")

	register(t, h)
	out = mustRun(t, h, "whoami")
	assert.Contains(t, out, "olena@example.com")

	_, err := run(t, h, "register", "--email", "OLENA@example.com", "--password", "x", "--name", "Інша")
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	mustRun(t, h, "logout")
	_, err = run(t, h, "login", "olena@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	out = mustRun(t, h, "login", "--email", "Olena@Example.com", "--password", "secret")
	assert.Contains(t, out, "Олена Коваль")
}

func TestProfileUpdateOnlyChangesGivenFields(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)

	mustRun(t, h, "profile", "update", "--city", "Львів")

	out := mustRun(t, h, "profile", "show")
	assert.Contains(t, out, "Львів")
	assert.Contains(t, out, "вул. Хрещатик, 1")
	assert.Contains(t, out, "+380501234567")
}

func TestCatalogCommands(t *testing.T) {
	h := newShop(t, t.TempDir())

	out := mustRun(t, h, "catalog", "list", "--brand", "nike")
	assert.Contains(t, out, "Куртка Nike Sport Premium")
	assert.NotContains(t, out, "Adidas")

	out = mustRun(t, h, "catalog", "list", "--search", "неіснуючий")
	assert.Contains(t, out, "Нічого не знайдено")

	_, err := run(t, h, "catalog", "list", "--min-price", "abc")
	assert.Error(t, err)

	out = mustRun(t, h, "catalog", "show", "1")
	assert.Contains(t, out, "3999.99 ₴")
	assert.Contains(t, out, "-20%")
	assert.Contains(t, out, "XS, S, M, L, XL, XXL")

	_, err = run(t, h, "catalog", "show", "99")
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	out = mustRun(t, h, "catalog", "brands")
	assert.Contains(t, out, "Ray-Ban")

	out = mustRun(t, h, "catalog", "categories")
	assert.Contains(t, out, "Взуття")
}

func TestCatalogShowRecordsView(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)

	mustRun(t, h, "catalog", "show", "5")
	out := mustRun(t, h, "catalog", "viewed")
	assert.Contains(t, out, "Кросівки New Balance 574")
}

func TestCartCommands(t *testing.T) {
	h := newShop(t, t.TempDir())

	mustRun(t, h, "cart", "add", "1", "--size", "l")
	mustRun(t, h, "cart", "add", "1", "--size", "L")
	mustRun(t, h, "cart", "add", "2")
	assert.Equal(t, 3, h.Session.Cart.Count())
	assert.Equal(t, "L", h.Session.Cart.Items[0].Size)
	assert.Equal(t, 2, h.Session.Cart.Items[0].Quantity)

	_, err := run(t, h, "cart", "add", "1", "--size", "XXXL")
	assert.ErrorIs(t, err, models.ErrInvalidSize)

	mustRun(t, h, "cart", "dec", "1")
	mustRun(t, h, "cart", "dec", "1")
	assert.Equal(t, 1, h.Session.Cart.Items[0].Quantity)

	mustRun(t, h, "cart", "set", "2", "4")
	out := mustRun(t, h, "cart", "list")
	assert.Contains(t, out, "Товарів: 5")

	_, err = run(t, h, "cart", "inc", "3")
	assert.ErrorIs(t, err, models.ErrInvalidLine)
	_, err = run(t, h, "cart", "set", "1", "0")
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	mustRun(t, h, "cart", "remove", "1")
	assert.Len(t, h.Session.Cart.Items, 1)

	out = mustRun(t, h, "cart", "clear")
	assert.True(t, h.Session.Cart.IsEmpty())
	assert.Contains(t, mustRun(t, h, "cart", "list"), "Кошик порожній")
	assert.NotEmpty(t, out)
}

func TestShippingCommand(t *testing.T) {
	h := newShop(t, t.TempDir())

	out := mustRun(t, h, "shipping", "--subtotal", "499")
	assert.Contains(t, out, "49.99 ₴")
	assert.Contains(t, out, "99.99 ₴")
	assert.Contains(t, out, "1.00 ₴")

	out = mustRun(t, h, "shipping", "--subtotal", "500")
	assert.NotContains(t, out, "49.99 ₴")
	assert.Contains(t, out, "99.99 ₴")
}

func TestCheckoutFromCart(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)

	mustRun(t, h, "cart", "add", "1", "--size", "L")
	mustRun(t, h, "cart", "add", "2")
	mustRun(t, h, "cart", "inc", "2")

	out := mustRun(t, h, "checkout", "--method", "Express")
	assert.Contains(t, out, "Замовлення №1")
	assert.Contains(t, out, "5698.98 ₴")
	assert.True(t, h.Session.Cart.IsEmpty())

	_, err := os.Stat(filepath.Join(h.Config.OutboxDir, "order-000001.eml"))
	assert.NoError(t, err)

	order, err := h.Orders.Order(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, "Київ", order.DeliveryCity)
	assert.Equal(t, models.DefaultCountry, order.DeliveryCountry)
	assert.True(t, order.SubTotal.Equal(models.Price("5598.99")))

	_, err = run(t, h, "checkout")
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestCheckoutWithItemsAndFlags(t *testing.T) {
	dir := t.TempDir()
	register(t, newShop(t, dir))

	// nouveau processus: pas de session, identifiants en flags
	h := newShop(t, dir)
	out := mustRun(t, h, "checkout", "--email", "olena@example.com", "--password", "secret",
		"--item", "4:2:xl", "--item", "4:1:XL", "--method", "Pickup", "--city", "Одеса")
	assert.Contains(t, out, "25500.00 ₴")

	order, err := h.Orders.Order(1)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "XL", order.Items[0].Size)
	assert.Equal(t, "Одеса", order.DeliveryCity)
	assert.Equal(t, models.ShippingPickup, order.ShippingMethod)
}

func TestCheckoutValidation(t *testing.T) {
	h := newShop(t, t.TempDir())

	_, err := run(t, h, "checkout", "--item", "1")
	assert.ErrorIs(t, err, middleware.ErrNotAuthenticated)

	mustRun(t, h, "register", "--email", "taras@example.com", "--password", "pw", "--name", "Тарас")
	_, err = run(t, h, "checkout", "--item", "1")
	assert.ErrorIs(t, err, models.ErrMissingDeliveryField)

	_, err = run(t, h, "checkout", "--item", "1:0", "--address", "a", "--city", "b", "--phone", "c")
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	_, err = run(t, h, "checkout", "--item", "1:1:XXXL", "--address", "a", "--city", "b", "--phone", "c")
	assert.ErrorIs(t, err, models.ErrInvalidSize)

	_, err = run(t, h, "checkout", "--item", "42", "--address", "a", "--city", "b", "--phone", "c")
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestOrdersCommands(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)
	mustRun(t, h, "checkout", "--item", "2:2")
	mustRun(t, h, "checkout", "--item", "6")

	out := mustRun(t, h, "orders", "list")
	assert.Less(t, strings.Index(out, "599.00"), strings.Index(out, "1599.00"))

	out = mustRun(t, h, "orders", "show", "1")
	assert.Contains(t, out, "Футболка Adidas Classic")
	assert.Contains(t, out, models.StatusProcessing)

	mustRun(t, h, "orders", "reorder", "1")
	assert.Equal(t, 2, h.Session.Cart.Count())

	invoice := filepath.Join(t.TempDir(), "invoice.pdf")
	mustRun(t, h, "orders", "invoice", "1", "--out", invoice)
	raw, err := os.ReadFile(invoice)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))

	mustRun(t, h, "orders", "cancel", "1")
	_, err = run(t, h, "orders", "cancel", "1")
	assert.ErrorIs(t, err, services.ErrOrderNotCancellable)

	_, err = run(t, h, "orders", "show", "7")
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestCancelledOrderCannotBeReordered(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)
	mustRun(t, h, "checkout", "--item", "2:2")
	mustRun(t, h, "orders", "cancel", "1")

	_, err := run(t, h, "orders", "reorder", "1")
	assert.ErrorIs(t, err, services.ErrOrderNotReorderable)
	assert.Equal(t, 0, h.Session.Cart.Count())
}

func TestDataDirCannotChangeOnceOpen(t *testing.T) {
	dir := t.TempDir()
	h := newShop(t, dir)
	register(t, h)
	dataDir, outbox := h.Config.DataDir, h.Config.OutboxDir

	other := filepath.Join(dir, "Other")
	_, err := run(t, h, "orders", "list", "--data-dir", other)
	assert.ErrorIs(t, err, handlers.ErrDirsLocked)
	_, err = run(t, h, "images", "list", "--images-dir", other)
	assert.ErrorIs(t, err, handlers.ErrDirsLocked)

	assert.Equal(t, dataDir, h.Config.DataDir)
	assert.Equal(t, outbox, h.Config.OutboxDir)
	assert.NoDirExists(t, other)

	// le même dossier reste accepté
	mustRun(t, h, "orders", "list", "--data-dir", dataDir)
}

func TestOrdersOfOtherUsersAreHidden(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)
	mustRun(t, h, "checkout", "--item", "3")
	mustRun(t, h, "logout")

	mustRun(t, h, "register", "--email", "taras@example.com", "--password", "pw", "--name", "Тарас")
	_, err := run(t, h, "orders", "show", "1")
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
	_, err = run(t, h, "orders", "cancel", "1")
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
	assert.Contains(t, mustRun(t, h, "orders", "list"), "У вас ще немає замовлень")
}

func TestAdminOrderCommands(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)
	mustRun(t, h, "checkout", "--item", "3")

	_, err := run(t, h, "orders", "status", "1", models.StatusShipped)
	assert.ErrorIs(t, err, middleware.ErrForbidden)

	h.Config.AdminEmails = []string{"olena@example.com"}
	mustRun(t, h, "orders", "status", "1", models.StatusShipped)
	order, err := h.Orders.Order(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, order.Status)

	_, err = run(t, h, "orders", "cancel", "1")
	assert.ErrorIs(t, err, services.ErrOrderNotCancellable)

	mustRun(t, h, "orders", "delete", "1")
	_, err = run(t, h, "orders", "delete", "1")
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestReviewsCommands(t *testing.T) {
	h := newShop(t, t.TempDir())

	out := mustRun(t, h, "reviews", "list", "1")
	assert.Contains(t, out, "5.0")
	assert.Contains(t, out, "Відгуків ще немає")

	_, err := run(t, h, "reviews", "add", "1", "--rating", "4", "--comment", "Чудово")
	assert.ErrorIs(t, err, middleware.ErrNotAuthenticated)

	register(t, h)
	mustRun(t, h, "reviews", "add", "1", "--rating", "4", "--comment", "  Чудово  ")
	_, err = run(t, h, "reviews", "add", "1", "--rating", "6", "--comment", "x")
	assert.ErrorIs(t, err, services.ErrInvalidRating)
	_, err = run(t, h, "reviews", "add", "1", "--comment", "   ")
	assert.ErrorIs(t, err, services.ErrEmptyComment)

	out = mustRun(t, h, "reviews", "list", "1")
	assert.Contains(t, out, "Олена Коваль")
	assert.Contains(t, out, "Чудово")
	assert.Contains(t, out, "4.0")
}

func TestWishlistCommands(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)

	mustRun(t, h, "wishlist", "add", "3")
	mustRun(t, h, "wishlist", "add", "3")
	out := mustRun(t, h, "wishlist", "list")
	assert.Equal(t, 1, strings.Count(out, "Штани Puma Essentials"))

	out = mustRun(t, h, "catalog", "show", "3")
	assert.Contains(t, out, "♥")

	mustRun(t, h, "wishlist", "remove", "3")
	assert.Contains(t, mustRun(t, h, "wishlist", "list"), "Список бажань порожній")

	_, err := run(t, h, "wishlist", "add", "99")
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestImagesCommands(t *testing.T) {
	h := newShop(t, t.TempDir())

	out := mustRun(t, h, "images", "list")
	assert.Contains(t, out, "Без фото: 12")

	target := filepath.Join(t.TempDir(), "rayban.png")
	mustRun(t, h, "images", "export", "12", "--out", target, "--width", "64", "--height", "48")
	_, err := os.Stat(target)
	assert.NoError(t, err)
}

func TestShellKeepsSession(t *testing.T) {
	h := newShop(t, t.TempDir())
	register(t, h)
	mustRun(t, h, "logout")

	root := NewRootCommand(h)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(strings.Join([]string{
		"login olena@example.com secret",
		"cart add 1 --size S",
		"cart add 5",
		`reviews add 5 --rating 5 --comment "Дуже зручні"`,
		"cart inc 9",
		"shell",
		"cart list",
		"exit",
		"cart clear",
	}, "\n")))
	root.SetArgs([]string{"shell"})

	require.NoError(t, root.Execute())
	assert.Equal(t, 2, h.Session.Cart.Count())
	assert.Equal(t, "olena@example.com", h.Session.Email())
	assert.Contains(t, out.String(), "Товарів: 2")
	assert.Contains(t, out.String(), "Error:")

	reviews, err := h.Reviews.ProductReviews(5)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Дуже зручні", reviews[0].Comment)
}
