package vars

// DerefOrZero dereferences ptr, or returns the zero value for nil.
func DerefOrZero[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
