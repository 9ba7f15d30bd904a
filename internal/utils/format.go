package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice affiche un montant en hryvnias, ex: "3999.99 ₴"
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2) + " ₴"
}

// FormatDate affiche une date au format local ukrainien
func FormatDate(t time.Time) string {
	return t.Local().Format("02.01.2006 15:04")
}

// Stars dessine une note sur 5, arrondie à l'étoile la plus proche
func Stars(rating float64) string {
	full := int(math.Round(rating))
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full) + fmt.Sprintf(" %.1f", rating)
}
