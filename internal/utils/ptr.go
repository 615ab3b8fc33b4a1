// Package utils holds helpers for the optional (nullable) fields of
// registrations and lookup records.
package utils

func Ptr[T any](v T) *T {
	return &v
}

// OrZero dereferences v, returning the zero value for nil.
func OrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
