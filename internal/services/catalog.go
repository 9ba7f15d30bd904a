package services

import (
	"sort"
	"strings"
	"time"

	"branded_clothing_shop/internal/models"

	"github.com/shopspring/decimal"
)

const TopRatedLimit = 6

// Tris proposés par la fenêtre catalogue
const (
	SortByName      = "name"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
	SortByRating    = "rating"
)

var catalogDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// CatalogQuery combine les filtres du catalogue; les champs vides sont ignorés
type CatalogQuery struct {
	Search       string
	Brand        string
	Category     string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	NewOnly      bool
	DiscountOnly bool
	Sort         string
}

// Catalog est le catalogue statique, régénéré à l'identique à chaque appel
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// AllProducts retourne une copie fraîche des 12 produits
func (c *Catalog) AllProducts() []models.Product {
	return withDefaults(catalogProducts())
}

func catalogProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Name: "Куртка Nike Sport Premium", Brand: "Nike",
			Price: models.Price("3999.99"), OriginalPrice: models.Price("4999.99"),
			Category:    "Верхній одяг",
			Description: "Комфортна спортивна куртка від Nike з вітрозахисною тканиною. Ідеальна для тренувань та повсякденного носіння.",
			ImagePath:   "img/куртка nike.jpg",
			Rating:      5, ReviewCount: 245, Stock: 50, IsNew: true, IsDiscount: true,
			Colors: []string{"Black", "White", "Red", "Blue"},
		},
		{
			ID: 2, Name: "Футболка Adidas Classic", Brand: "Adidas",
			Price: models.Price("799.50"), OriginalPrice: models.Price("899.50"),
			Category:    "Одяг",
			Description: "Класична біла футболка з логотипом Adidas. Виконана з 100% бавовни, дихаюча та комфортна.",
			ImagePath:   "img/футболка adidas.jpeg",
			Rating:      4, ReviewCount: 128, Stock: 100, IsDiscount: true,
			Colors: []string{"White", "Black", "Gray", "Navy"},
		},
		{
			ID: 3, Name: "Штани Puma Essentials", Brand: "Puma",
			Price: models.Price("1499.00"), OriginalPrice: models.Price("1799.00"),
			Category:    "Нижній одяг",
			Description: "Універсальні спортивні штани для активного образу життя. Легкі, зручні та стильні.",
			ImagePath:   "img/штани Puma.jpg",
			Rating:      4, ReviewCount: 89, Stock: 75, IsDiscount: true,
			Colors: []string{"Black", "Gray", "Navy"},
		},
		{
			ID: 4, Name: "Худі Supreme Box Logo", Brand: "Supreme",
			Price:       models.Price("8500.00"),
			Category:    "Верхній одяг",
			Description: "Культова модель худі з характерним лого Supreme. Преміум якість, обмежена кількість випусків.",
			ImagePath:   "img/худи Supreme.jpg",
			Rating:      5, ReviewCount: 312, Stock: 20, IsNew: true,
			Colors: []string{"Red", "Black", "White"},
		},
		{
			ID: 5, Name: "Кросівки New Balance 574", Brand: "New Balance",
			Price: models.Price("2999.99"), OriginalPrice: models.Price("3299.99"),
			Category:    "Взуття",
			Description: "Культові кросівки для комфортної ходьби та бігу. Оригінальний дизайн з прекрасною амортизацією.",
			ImagePath:   "img/кроссовки new balans.jpg",
			Rating:      5, ReviewCount: 567, Stock: 60, IsDiscount: true,
			Colors: []string{"Gray", "White", "Black", "Navy"},
		},
		{
			ID: 6, Name: "Кепка Stüssy Classic", Brand: "Stüssy",
			Price: models.Price("599.00"), OriginalPrice: models.Price("799.00"),
			Category:    "Аксесуари",
			Description: "Стильна кепка від легендарного бренду Stüssy. Перфектна для будь-якої вікової категорії.",
			ImagePath:   "img/кепка stussy.jpg",
			Rating:      4, ReviewCount: 145, Stock: 150, IsDiscount: true,
			Colors: []string{"Black", "White", "Beige"},
		},
		{
			ID: 7, Name: "Толстовка Carhartt Rugged", Brand: "Carhartt",
			Price: models.Price("2299.00"), OriginalPrice: models.Price("2499.00"),
			Category:    "Верхній одяг",
			Description: "Міцна і надійна толстовка від класичного американського бренду. Ідеальна для холодної погоди.",
			ImagePath:   "img/свитшот carhartt.jpg",
			Rating:      4, ReviewCount: 203, Stock: 45, IsDiscount: true,
			Colors: []string{"Brown", "Black", "Gray"},
		},
		{
			ID: 8, Name: "Джинси Levi's 501 Original", Brand: "Levi's",
			Price: models.Price("2599.99"), OriginalPrice: models.Price("2899.99"),
			Category:    "Нижній одяг",
			Description: "Класичні джинси, які не вийдуть з моди. Якість та комфорт, що довірили мільйони людей.",
			ImagePath:   "img/джинси levis.png",
			Rating:      5, ReviewCount: 456, Stock: 80, IsDiscount: true,
			Colors: []string{"Blue", "Black", "Gray"},
		},
		{
			ID: 9, Name: "Рубашка Hugo Boss", Brand: "Hugo Boss",
			Price:       models.Price("2199.00"),
			Category:    "Одяг",
			Description: "Елегантна класична рубашка від відомого німецького дизайнера. Ідеальна для офісу та святкових подій.",
			ImagePath:   "img/рубашка hugo boss.jpg",
			Rating:      5, ReviewCount: 178, Stock: 35, IsNew: true,
			Colors: []string{"White", "Blue", "Black", "Pink"},
		},
		{
			ID: 10, Name: "Спортивні черевики Timberland", Brand: "Timberland",
			Price: models.Price("4299.00"), OriginalPrice: models.Price("5499.00"),
			Category:    "Взуття",
			Description: "Міцні та надійні черевики для активного відпочинку. Водонепроникні та комфортні.",
			ImagePath:   "img/timberland.jpg",
			Rating:      5, ReviewCount: 289, Stock: 40, IsDiscount: true,
			Colors: []string{"Brown", "Black", "Tan"},
		},
		{
			ID: 11, Name: "Світшот Calvin Klein", Brand: "Calvin Klein",
			Price:       models.Price("1699.00"),
			Category:    "Одяг",
			Description: "Стильний мінімалістичний світшот від Calvin Klein. Висока якість та комфорт.",
			ImagePath:   "img/свитшот calvin klein.jpg",
			Rating:      4, ReviewCount: 167, Stock: 55,
			Colors: []string{"White", "Black", "Gray", "Navy"},
		},
		{
			ID: 12, Name: "Очки Ray-Ban Aviator", Brand: "Ray-Ban",
			Price:       models.Price("3999.00"),
			Category:    "Аксесуари",
			Description: "Культові сонячні окуляри з рефлективним об'єктивом. Класичний дизайн та надійна якість.",
			ImagePath:   "img/очки ray ban.jpg",
			Rating:      5, ReviewCount: 523, Stock: 70, IsNew: true,
			Colors: []string{"Gold", "Silver", "Black"},
		},
	}
}

// withDefaults applique les valeurs par défaut du modèle produit
func withDefaults(products []models.Product) []models.Product {
	for i := range products {
		if products[i].AvailableSizes == "" {
			products[i].AvailableSizes = models.DefaultSizes
		}
		if products[i].CreatedDate.IsZero() {
			products[i].CreatedDate = catalogDate
		}
	}
	return products
}

func (c *Catalog) ProductByID(id int) (models.Product, error) {
	for _, p := range c.AllProducts() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Search cherche dans le nom, la marque et la description (insensible à la casse)
func (c *Catalog) Search(query string) []models.Product {
	q := strings.ToLower(query)
	return filter(c.AllProducts(), func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

// FilterByPrice garde les produits dont le prix est dans [min, max]
func (c *Catalog) FilterByPrice(min, max decimal.Decimal) []models.Product {
	return filter(c.AllProducts(), func(p models.Product) bool {
		return p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max)
	})
}

func (c *Catalog) FilterByBrand(brand string) []models.Product {
	return filter(c.AllProducts(), func(p models.Product) bool {
		return strings.EqualFold(p.Brand, brand)
	})
}

func (c *Catalog) FilterByCategory(category string) []models.Product {
	return filter(c.AllProducts(), func(p models.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

func (c *Catalog) NewProducts() []models.Product {
	return filter(c.AllProducts(), func(p models.Product) bool { return p.IsNew })
}

func (c *Catalog) DiscountedProducts() []models.Product {
	return filter(c.AllProducts(), func(p models.Product) bool { return p.IsDiscount })
}

// TopRated trie par note décroissante (tri stable) et garde les 6 premiers
func (c *Catalog) TopRated() []models.Product {
	products := c.AllProducts()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rating > products[j].Rating
	})
	if len(products) > TopRatedLimit {
		products = products[:TopRatedLimit]
	}
	return products
}

func (c *Catalog) Brands() []string {
	return distinctSorted(c.AllProducts(), func(p models.Product) string { return p.Brand })
}

func (c *Catalog) Categories() []string {
	return distinctSorted(c.AllProducts(), func(p models.Product) string { return p.Category })
}

// CategorySummaries compte les produits par catégorie
func (c *Catalog) CategorySummaries() []models.CategorySummary {
	counts := make(map[string]int)
	for _, p := range c.AllProducts() {
		counts[p.Category]++
	}
	var summaries []models.CategorySummary
	for _, name := range c.Categories() {
		summaries = append(summaries, models.CategorySummary{Name: name, ProductCount: counts[name]})
	}
	return summaries
}

// Query applique les filtres combinés de la fenêtre catalogue puis le tri
func (c *Catalog) Query(q CatalogQuery) []models.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	products := filter(c.AllProducts(), func(p models.Product) bool {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			return false
		}
		if q.Brand != "" && !strings.EqualFold(p.Brand, q.Brand) {
			return false
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			return false
		}
		if q.MinPrice != nil && p.Price.LessThan(*q.MinPrice) {
			return false
		}
		if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
			return false
		}
		if q.NewOnly && !p.IsNew {
			return false
		}
		if q.DiscountOnly && !p.IsDiscount {
			return false
		}
		return true
	})

	switch q.Sort {
	case SortByPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price.LessThan(products[j].Price) })
	case SortByPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price.GreaterThan(products[j].Price) })
	case SortByRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}
	return products
}

// Discount retourne le pourcentage de remise (arrondi bancaire), 0 sans prix barré
func Discount(p models.Product) decimal.Decimal {
	if p.OriginalPrice.LessThanOrEqual(decimal.Zero) || p.OriginalPrice.LessThanOrEqual(p.Price) {
		return decimal.Zero
	}
	return p.OriginalPrice.Sub(p.Price).
		Div(p.OriginalPrice).
		Mul(decimal.NewFromInt(100)).
		RoundBank(0)
}

func filter(products []models.Product, keep func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func distinctSorted(products []models.Product, key func(models.Product) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		k := key(p)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
