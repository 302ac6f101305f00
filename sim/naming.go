package sim

import "strings"

// NameMustBeValid panics if the name does not follow the naming convention.
// Names are organized hierarchically with dot-separated elements. Each
// element must be non-empty, start with a capital letter, and contain no
// separator characters other than square-bracket indices.
func NameMustBeValid(name string) {
	for _, token := range strings.Split(name, ".") {
		tokenMustBeValid(name, token)
	}
}

func tokenMustBeValid(name, token string) {
	elem := token
	if i := strings.IndexByte(elem, '['); i >= 0 {
		if !strings.HasSuffix(elem, "]") {
			panic("Name " + name + " is not valid: bracket must match")
		}
		elem = elem[:i]
	}

	if elem == "" {
		panic("Name " + name + " is not valid: element must not be empty")
	}

	for _, c := range []string{"_", "\"", "'", "-"} {
		if strings.Contains(elem, c) {
			panic("Name " + name + " is not valid: element must not contain " + c)
		}
	}

	if elem[0] < 'A' || elem[0] > 'Z' {
		panic("Name " + name +
			" is not valid: element must start with a capital letter")
	}
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}
