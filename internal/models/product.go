package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultSizes = "XS,S,M,L,XL,XXL"

type Product struct {
	ID             int             `json:"Id"`
	Name           string          `json:"Name"`
	Brand          string          `json:"Brand"`
	Price          decimal.Decimal `json:"Price"`
	OriginalPrice  decimal.Decimal `json:"OriginalPrice"`
	ImagePath      string          `json:"ImagePath"`
	Description    string          `json:"Description"`
	Category       string          `json:"Category"`
	Rating         int             `json:"Rating"`
	ReviewCount    int             `json:"ReviewCount"`
	AvailableSizes string          `json:"AvailableSizes"`
	Stock          int             `json:"Stock"`
	IsNew          bool            `json:"IsNew"`
	IsDiscount     bool            `json:"IsDiscount"`
	Colors         []string        `json:"Colors"`
	CreatedDate    time.Time       `json:"CreatedDate"`
}

// Sizes découpe AvailableSizes ("XS,S,M") en liste nettoyée
func (p Product) Sizes() []string {
	raw := p.AvailableSizes
	if strings.TrimSpace(raw) == "" {
		raw = DefaultSizes
	}
	var sizes []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes() {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}
