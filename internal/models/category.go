package models

// CategorySummary résume une catégorie du catalogue
type CategorySummary struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}
