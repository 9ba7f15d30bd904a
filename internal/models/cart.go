package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultSize = "M"

var (
	ErrInvalidSize     = errors.New("розмір недоступний для цього товару")
	ErrInvalidLine     = errors.New("позиція кошика не існує")
	ErrInvalidQuantity = errors.New("кількість має бути не менше 1")
)

type CartItem struct {
	Product  Product `json:"Product"`
	Quantity int     `json:"Quantity"`
	Size     string  `json:"Size"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart est le panier en mémoire d'une session, jamais persisté seul
type Cart struct {
	Items []CartItem `json:"Items"`
}

// Add ajoute une unité; même produit + même taille = quantité incrémentée
func (c *Cart) Add(p Product, size string) error {
	size = strings.TrimSpace(size)
	if size == "" {
		size = DefaultSize
	}
	if !p.HasSize(size) {
		return ErrInvalidSize
	}
	size = strings.ToUpper(size)

	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID && c.Items[i].Size == size {
			c.Items[i].Quantity++
			return nil
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1, Size: size})
	return nil
}

// AddOrderItems remet les lignes d'une commande passée dans le panier
func (c *Cart) AddOrderItems(items []CartItem) {
	for _, item := range items {
		merged := false
		for i := range c.Items {
			if c.Items[i].Product.ID == item.Product.ID && c.Items[i].Size == item.Size {
				c.Items[i].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			c.Items = append(c.Items, item)
		}
	}
}

func (c *Cart) Increment(line int) error {
	if !c.valid(line) {
		return ErrInvalidLine
	}
	c.Items[line].Quantity++
	return nil
}

// Decrement ne descend jamais sous 1, il faut Remove pour retirer la ligne
func (c *Cart) Decrement(line int) error {
	if !c.valid(line) {
		return ErrInvalidLine
	}
	if c.Items[line].Quantity > 1 {
		c.Items[line].Quantity--
	}
	return nil
}

func (c *Cart) SetQuantity(line, quantity int) error {
	if !c.valid(line) {
		return ErrInvalidLine
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.Items[line].Quantity = quantity
	return nil
}

func (c *Cart) Remove(line int) error {
	if !c.valid(line) {
		return ErrInvalidLine
	}
	c.Items = append(c.Items[:line], c.Items[line+1:]...)
	return nil
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Count retourne le nombre total d'articles (somme des quantités)
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.Items)
}

// Subtotal = Σ prix × quantité
func Subtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) valid(line int) bool {
	return line >= 0 && line < len(c.Items)
}
