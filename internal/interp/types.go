package interp

import "github.com/lucent-lang/lucent/internal/value"

// declaredType derives the (type, interface) pair encoded in an
// identifier's trailing character. allowVoid permits the 'v'
// suffix, legal only for a function's own return type — never for a
// variable, parameter, or field, where declaring one of type Void is a
// Type error.
func (ip *Interpreter) declaredType(name string, allowVoid bool) (value.Tag, string) {
	if name == "" {
		ip.typeErrorf("empty identifier has no type suffix")
		return 0, ""
	}
	suffix := name[len(name)-1]
	switch suffix {
	case 'i':
		return value.Int, ""
	case 's':
		return value.String, ""
	case 'b':
		return value.Bool, ""
	case 'o':
		return value.Object, ""
	case 'f':
		return value.Function, ""
	case 'v':
		if allowVoid {
			return value.Void, ""
		}
		ip.typeErrorf("cannot have variable of void type: %q", name)
		return 0, ""
	}
	if suffix >= 'A' && suffix <= 'Z' {
		return value.Object, string(suffix)
	}
	ip.typeErrorf("unknown type suffix in identifier %q", name)
	return 0, ""
}

// interfaceOf returns the interface name encoded in name's suffix, or ""
// if the identifier denotes an unconstrained type.
func interfaceOf(name string) string {
	if name == "" {
		return ""
	}
	suffix := name[len(name)-1]
	if suffix >= 'A' && suffix <= 'Z' {
		return string(suffix)
	}
	return ""
}
