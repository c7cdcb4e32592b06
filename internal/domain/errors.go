package domain

import "errors"

var (
	// ErrFoodAlreadyExists is returned when a food with the same name is
	// already in the library. The failed insert must not mutate state.
	ErrFoodAlreadyExists = errors.New("food already exists in library")

	// ErrFoodNotFound is returned when a food ID has no library entry.
	ErrFoodNotFound = errors.New("food not found in library")

	// ErrMealNotFound is returned when a meal ID has no log entry.
	ErrMealNotFound = errors.New("meal not found in log")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")
)
