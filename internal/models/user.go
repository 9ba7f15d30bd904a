package models

import (
	"strings"
	"time"
)

const DefaultCountry = "Ukraine"

type User struct {
	Email              string    `json:"Email"`
	Password           string    `json:"Password"`
	FullName           string    `json:"FullName"`
	PhoneNumber        string    `json:"PhoneNumber"`
	Address            string    `json:"Address"`
	City               string    `json:"City"`
	PostalCode         string    `json:"PostalCode"`
	Country            string    `json:"Country"`
	CreatedDate        time.Time `json:"CreatedDate"`
	WishlistProductIds []int     `json:"WishlistProductIds"`
	ViewedProductIds   []int     `json:"ViewedProductIds"`
}

// SameEmail compare deux adresses sans tenir compte de la casse
func SameEmail(a, b string) bool {
	return strings.EqualFold(a, b)
}
