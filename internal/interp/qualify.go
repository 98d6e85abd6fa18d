package interp

import (
	"strings"

	"github.com/lucent-lang/lucent/internal/value"
)

// resolveCellAndOwner implements qualified-name resolution. For
// a bare name it returns the environment cell directly with no owner. For
// a dotted chain it walks object-typed intermediates and returns the cell
// in the terminal object's field table, along with that terminal object as
// the owner value (used as the implicit receiver for dotted calls). A
// Cell's declared tag is fixed at creation from its name's suffix, so an
// intermediate holds a non-Object value exactly when its suffix is not
// Object — the tag check in objectFields is sufficient without a redundant
// suffix re-check.
func (ip *Interpreter) resolveCellAndOwner(qname string) (cell *value.Cell, owner value.Value, hasOwner bool) {
	parts := strings.Split(qname, ".")
	base := parts[0]
	if !ip.env.Exists(base) {
		ip.nameErrorf("variable %q not defined", base)
		return nil, value.Value{}, false
	}
	if len(parts) == 1 {
		return ip.env.Cell(base), value.Value{}, false
	}

	baseTag, _ := ip.declaredType(base, false)
	if baseTag != value.Object {
		ip.typeErrorf("qualified name base %q is not object-typed", base)
		return nil, value.Value{}, false
	}
	cur := ip.env.Cell(base).Get()

	intermediates := parts[1 : len(parts)-1]
	final := parts[len(parts)-1]
	for _, field := range intermediates {
		fields, ok := ip.objectFields(cur, "qualified name")
		if !ok {
			return nil, value.Value{}, false
		}
		fcell, present := fields[field]
		if !present {
			ip.nameErrorf("field %q not defined", field)
			return nil, value.Value{}, false
		}
		cur = fcell.Get()
	}

	fields, ok := ip.objectFields(cur, "qualified name")
	if !ok {
		return nil, value.Value{}, false
	}
	fcell, present := fields[final]
	if !present {
		ip.nameErrorf("field %q not defined", final)
		return nil, value.Value{}, false
	}
	return fcell, cur, true
}

// objectFields requires v to be a non-nil Object and returns its live
// field table, raising Type/Fault errors otherwise (shared by every
// dotted-chain walk).
func (ip *Interpreter) objectFields(v value.Value, context string) (map[string]*value.Cell, bool) {
	if v.Tag != value.Object {
		ip.typeErrorf("%s: intermediate value is not object-typed", context)
		return nil, false
	}
	id, ok := v.ObjectID()
	if !ok {
		ip.faultErrorf("%s: nil dereference", context)
		return nil, false
	}
	fields, ok := ip.heap.Fields(id)
	if !ok {
		ip.faultErrorf("%s: invalid object reference", context)
		return nil, false
	}
	return fields, true
}

// interfaceForQName returns the interface encoded by a qualified name's
// final segment.
func interfaceForQName(qname string) string {
	parts := strings.Split(qname, ".")
	return interfaceOf(parts[len(parts)-1])
}

// getQNameValue reads the value at a qualified name.
func (ip *Interpreter) getQNameValue(qname string) value.Value {
	cell, _, _ := ip.resolveCellAndOwner(qname)
	if cell == nil {
		return value.Value{}
	}
	return cell.Get()
}

// coerceForAssign applies the rule set: a Nil-tagged Object/Function
// rhs widens to the target tag if the target is nullable; otherwise the
// tags must already match exactly. Used for assignment, argument binding,
// and return-value checks alike.
func (ip *Interpreter) coerceForAssign(target value.Tag, rhs value.Value) value.Value {
	if rhs.IsNil() {
		if target == value.Object || target == value.Function {
			return value.Value{Tag: target, Payload: nil}
		}
		return ip.typeErrorf("type mismatch: cannot assign nil to %s", target)
	}
	if rhs.Tag != target {
		return ip.typeErrorf("type mismatch: expected %s, got %s", target, rhs.Tag)
	}
	return rhs
}

// setQNameValue implements assignment through a qualified name.
func (ip *Interpreter) setQNameValue(qname string, rhs value.Value) {
	parts := strings.Split(qname, ".")
	base := parts[0]
	if !ip.env.Exists(base) {
		ip.nameErrorf("variable %q not defined", base)
		return
	}

	if len(parts) == 1 {
		targetType, targetIface := ip.declaredType(base, false)
		rhs = ip.coerceForAssign(targetType, rhs)
		if targetIface != "" && !ip.satisfies(targetIface, rhs) {
			ip.typeErrorf("value does not satisfy interface %q", targetIface)
			return
		}
		ip.env.Cell(base).Set(rhs)
		return
	}

	baseTag, _ := ip.declaredType(base, false)
	if baseTag != value.Object {
		ip.typeErrorf("qualified name base %q is not object-typed", base)
		return
	}
	cur := ip.env.Cell(base).Get()
	intermediates := parts[1 : len(parts)-1]
	final := parts[len(parts)-1]
	for _, field := range intermediates {
		fields, ok := ip.objectFields(cur, "qualified name assignment")
		if !ok {
			return
		}
		fcell, present := fields[field]
		if !present {
			ip.nameErrorf("field %q not defined", field)
			return
		}
		cur = fcell.Get()
	}

	fields, ok := ip.objectFields(cur, "qualified name assignment")
	if !ok {
		return
	}
	finalType, finalIface := ip.declaredType(final, false)
	rhs = ip.coerceForAssign(finalType, rhs)
	if finalIface != "" && !ip.satisfies(finalIface, rhs) {
		ip.typeErrorf("value does not satisfy interface %q", finalIface)
		return
	}
	if existing, present := fields[final]; present {
		existing.Set(rhs)
	} else {
		fields[final] = value.NewCell(rhs)
	}
}
