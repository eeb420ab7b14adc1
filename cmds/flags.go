package cmds

// Var defines a flag command setting a value of type T, consuming one
// argument token. The name with a trailing dot resets to the zero value.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))
	return &value
}

// Switch defines a boolean flag command. The name sets it, the name
// prefixed with ! clears it.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines a repeatable flag command appending to a slice.
func Collect[T any](name string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}))
	return &values
}
