package models

import "time"

type Review struct {
	ID          int       `json:"Id"`
	ProductID   int       `json:"ProductId"`
	UserEmail   string    `json:"UserEmail"`
	UserName    string    `json:"UserName"`
	Rating      int       `json:"Rating"` // 1-5
	Comment     string    `json:"Comment"`
	CreatedDate time.Time `json:"CreatedDate"`
	Helpful     int       `json:"Helpful"`
}

type ProductRating struct {
	ProductID     int     `json:"product_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}
