package service

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrEmptyRoster is returned when an order needs a courier and none exist.
	ErrEmptyRoster = errors.New("no couriers available")

	// ErrNoItems is returned when an order is created with an empty item list.
	ErrNoItems = errors.New("no items ordered")

	// ErrInvalidStatus is returned for a status outside the four labels.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidTransition is returned for a disallowed status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// titleCase normalizes a name before storage ("cheese toastie" -> "Cheese Toastie").
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
