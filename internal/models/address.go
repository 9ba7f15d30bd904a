package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrMissingDeliveryField = errors.New("не заповнено обов'язкове поле доставки")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Delivery regroupe les informations de livraison saisies au checkout
type Delivery struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone" validate:"required"`
}

// DeliveryFromUser pré-remplit la livraison depuis le profil
func DeliveryFromUser(u User) Delivery {
	return Delivery{
		Name:       u.FullName,
		Address:    u.Address,
		City:       u.City,
		PostalCode: u.PostalCode,
		Phone:      u.PhoneNumber,
	}
}

// Validate exige nom, adresse, ville et téléphone; le code postal est facultatif
func (d Delivery) Validate() error {
	trimmed := Delivery{
		Name:       strings.TrimSpace(d.Name),
		Address:    strings.TrimSpace(d.Address),
		City:       strings.TrimSpace(d.City),
		PostalCode: strings.TrimSpace(d.PostalCode),
		Phone:      strings.TrimSpace(d.Phone),
	}
	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingDeliveryField, strings.ToLower(verrs[0].Field()))
	}
	return err
}
