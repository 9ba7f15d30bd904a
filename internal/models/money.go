package models

import "github.com/shopspring/decimal"

func init() {
	// Les fichiers JSON historiques stockent les montants comme des nombres, pas des chaînes
	decimal.MarshalJSONWithoutQuotes = true
}

// Price construit un montant exact à partir d'un littéral comme "3999.99"
func Price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
