package configs

import (
	"errors"
)

// First returns the first definition of path decoded as T, or the zero
// value when no root defines it. Any other loader error panics.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
