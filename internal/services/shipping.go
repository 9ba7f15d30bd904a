package services

import (
	"branded_clothing_shop/internal/models"

	"github.com/shopspring/decimal"
)

// Seuil de livraison gratuite (sauf express)
var FreeShippingThreshold = models.Price("500")

// Tarifs de livraison
var ShippingRates = map[string]decimal.Decimal{
	models.ShippingStandard: models.Price("49.99"), // 2-3 jours
	models.ShippingExpress:  models.Price("99.99"), // 1 jour
	models.ShippingPickup:   decimal.Zero,          // retrait gratuit
}

// NormalizeShippingMethod retombe sur Standard pour une méthode inconnue
func NormalizeShippingMethod(method string) string {
	if _, ok := ShippingRates[method]; !ok {
		return models.ShippingStandard
	}
	return method
}

// ShippingCost applique la règle: gratuit dès 500 sauf en express
func ShippingCost(subtotal decimal.Decimal, method string) decimal.Decimal {
	method = NormalizeShippingMethod(method)
	base := ShippingRates[method]

	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) && method != models.ShippingExpress {
		return decimal.Zero
	}
	return base
}

// ShippingOptions liste les modes de livraison avec leur coût pour ce sous-total
func ShippingOptions(subtotal decimal.Decimal) models.ShippingCalculation {
	options := []models.ShippingOption{
		{
			ID:          models.ShippingStandard,
			Name:        "Стандартна доставка",
			Description: "Доставка за 2-3 дні",
			Estimate:    "За 2-3 дня",
		},
		{
			ID:          models.ShippingExpress,
			Name:        "Експрес доставка",
			Description: "Доставка наступного дня",
			Estimate:    "Завтра",
		},
		{
			ID:          models.ShippingPickup,
			Name:        "Самовивіз",
			Description: "Забрати з магазину",
			Estimate:    "Самовивіз",
		},
	}
	for i := range options {
		options[i].Price = ShippingCost(subtotal, options[i].ID)
	}

	return models.ShippingCalculation{
		Options:       options,
		FreeThreshold: FreeShippingThreshold,
		CartTotal:     subtotal,
		IsFree:        subtotal.GreaterThanOrEqual(FreeShippingThreshold),
	}
}

// DeliveryEstimate retourne le délai affiché après la commande
func DeliveryEstimate(method string) string {
	switch NormalizeShippingMethod(method) {
	case models.ShippingExpress:
		return "Завтра"
	case models.ShippingPickup:
		return "Самовивіз"
	default:
		return "За 2-3 дня"
	}
}
