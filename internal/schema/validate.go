package schema

// validate.go has the identifier check shared by everything that puts a name
// into the compiled document (aliases, variables, enum values from tags)

import (
	"regexp"
	"strings"
)

var nameRegex = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// ValidName checks that a string is a valid GraphQL identifier, usable as an
// alias, variable, argument, or field name.  Names starting with a double
// underscore are reserved for introspection.
func ValidName(s string) bool {
	if strings.HasPrefix(s, "__") {
		return false // reserved names
	}
	return nameRegex.MatchString(s)
}
