package vars

import "strings"

// StrToBool parses common spellings of a boolean. Anything it does not
// recognize is false.
func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
