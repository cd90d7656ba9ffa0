// Package usecase implements the business logic for the expenses feature.
package usecase

import "errors"

var (
	// ErrExpenseNotFound is returned when no expense with the given ID is owned
	// by the caller. An existing expense owned by someone else is deliberately
	// indistinguishable from a missing one.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidAmount is returned when an amount is not a positive finite number.
	ErrInvalidAmount = errors.New("amount must be a positive finite number")

	// ErrInvalidCategory is returned when a category is outside the closed enumeration.
	ErrInvalidCategory = errors.New("unknown expense category")

	// ErrInvalidDate is returned when a date is missing or zero.
	ErrInvalidDate = errors.New("date is required")
)
