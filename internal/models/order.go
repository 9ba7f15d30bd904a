package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts utilisés par l'application (le champ reste du texte libre)
const (
	StatusProcessing = "Обробляється"
	StatusShipped    = "Відправлено"
	StatusDelivered  = "Доставлено"
	StatusCancelled  = "Скасовано"
)

type Order struct {
	ID                 int             `json:"Id"`
	UserEmail          string          `json:"UserEmail"`
	Items              []CartItem      `json:"Items"`
	TotalPrice         decimal.Decimal `json:"TotalPrice"`
	SubTotal           decimal.Decimal `json:"SubTotal"`
	ShippingCost       decimal.Decimal `json:"ShippingCost"`
	ShippingMethod     string          `json:"ShippingMethod"`
	OrderDate          time.Time       `json:"OrderDate"`
	DeliveryDate       *time.Time      `json:"DeliveryDate"`
	Status             string          `json:"Status"`
	DeliveryAddress    string          `json:"DeliveryAddress"`
	DeliveryCity       string          `json:"DeliveryCity"`
	DeliveryPostalCode string          `json:"DeliveryPostalCode"`
	DeliveryCountry    string          `json:"DeliveryCountry"`
	DeliveryPhone      string          `json:"DeliveryPhone"`
	DeliveryName       string          `json:"DeliveryName"`
}

// ItemCount retourne le nombre d'articles de la commande
func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
