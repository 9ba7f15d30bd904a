package services

import "errors"

var (
	ErrProductNotFound     = errors.New("товар не знайдено")
	ErrEmptyCart           = errors.New("кошик порожній")
	ErrOrderNotFound       = errors.New("замовлення не знайдено")
	ErrOrderNotCancellable = errors.New("замовлення вже не можна скасувати")
	ErrOrderNotReorderable = errors.New("скасоване замовлення не можна повторити")
	ErrEmailTaken          = errors.New("користувач з таким email вже існує")
	ErrInvalidCredentials  = errors.New("невірний email або пароль")
	ErrUserNotFound        = errors.New("користувача не знайдено")
	ErrMissingField        = errors.New("заповніть усі обов'язкові поля")
	ErrInvalidRating       = errors.New("оцінка має бути від 1 до 5")
	ErrEmptyComment        = errors.New("будь ласка, напишіть відгук")
)
