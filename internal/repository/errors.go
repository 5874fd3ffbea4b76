package repository

import "errors"

// ErrNotFound is returned when a query matches no row. Implementations wrap
// it with the entity name, e.g. fmt.Errorf("semester: %w", ErrNotFound).
var ErrNotFound = errors.New("not found")
