// Package errors provides the sentinel errors shared by the storefront packages.
package errors

import "errors"

// ErrInvalidConfig reports a caller contract violation, such as a non-positive page size.
var ErrInvalidConfig = errors.New("invalid configuration")

var ErrItemNotFound = errors.New("item not found")
