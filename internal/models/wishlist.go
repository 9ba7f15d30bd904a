package models

import "time"

type WishlistItem struct {
	ID        int       `json:"Id"`
	UserEmail string    `json:"UserEmail"`
	ProductID int       `json:"ProductId"`
	AddedDate time.Time `json:"AddedDate"`
}

type Wishlist struct {
	UserEmail string    `json:"user_email"`
	Items     []Product `json:"items"`
}
