package interp

import (
	"strconv"

	"github.com/lucent-lang/lucent/internal/value"
)

// convertValue implements the `convert` coercion matrix.
func (ip *Interpreter) convertValue(to string, v value.Value) value.Value {
	switch to {
	case "int":
		switch v.Tag {
		case value.Int:
			return v
		case value.String:
			n, err := strconv.ParseInt(v.Payload.(string), 10, 64)
			if err != nil {
				return ip.typeErrorf("cannot convert string %q to int", v.Payload)
			}
			return value.Value{Tag: value.Int, Payload: n}
		case value.Bool:
			if v.Payload.(bool) {
				return value.Value{Tag: value.Int, Payload: int64(1)}
			}
			return value.Value{Tag: value.Int, Payload: int64(0)}
		}
		return ip.typeErrorf("invalid conversion to int from %s", v.Tag)

	case "str":
		switch v.Tag {
		case value.String:
			return v
		case value.Int:
			return value.Value{Tag: value.String, Payload: strconv.FormatInt(v.Payload.(int64), 10)}
		case value.Bool:
			if v.Payload.(bool) {
				return value.Value{Tag: value.String, Payload: "true"}
			}
			return value.Value{Tag: value.String, Payload: "false"}
		}
		return ip.typeErrorf("invalid conversion to string from %s", v.Tag)

	case "bool":
		switch v.Tag {
		case value.Bool:
			return v
		case value.Int:
			return value.Value{Tag: value.Bool, Payload: v.Payload.(int64) != 0}
		case value.String:
			return value.Value{Tag: value.Bool, Payload: v.Payload.(string) != ""}
		}
		return ip.typeErrorf("invalid conversion to bool from %s", v.Tag)
	}
	return ip.typeErrorf("unknown conversion target %q", to)
}
