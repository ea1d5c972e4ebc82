package services

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")

	// order creation validation
	ErrTableNotFound    = errors.New("table not found")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTableNumberTaken   = errors.New("table number already in use")
)
