package configs

import (
	"reflect"
	"slices"

	"github.com/reusee/dscope"
)

// Keys lists the config keys of all Configurable types provided in the
// scope, sorted and deduplicated.
func Keys(scope dscope.Scope) []string {
	var keys []string
	for t := range scope.AllTypes() {
		if !t.Implements(configurableType) {
			continue
		}
		key := reflect.New(t).Elem().Interface().(Configurable).ConfigExpr()
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}
