// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an article is unavailable. A failed store
// query is reported through the same sentinel so callers render a single
// not-found state for both.
var ErrNotFound = errors.New("blog: article not found")

// StoreError records a content store failure and the operation that hit it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("blog: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// unavailable wraps a store failure so it matches both ErrNotFound and
// *StoreError.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %w", ErrNotFound, &StoreError{Op: op, Err: err})
}
