package interp

import (
	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/value"
)

type paramSpec struct {
	typ   value.Tag
	iface string
	ref   bool
}

type fieldSpec struct {
	isFunc bool
	// var field:
	typ   value.Tag
	iface string
	// func field:
	params []paramSpec
}

type ifaceDef struct {
	name       string
	fieldOrder []string
	fields     map[string]fieldSpec
}

// buildInterfaces processes interface declarations in source order:
// duplicate interface names and duplicate field names within an interface
// are Name errors. Interface references (in var-field types and func-field
// params) are resolved by name in a second pass once every interface in
// the program is registered, so self-reference and forward-reference both
// work.
func (ip *Interpreter) buildInterfaces(prog *ast.Program) {
	ip.interfaces = make(map[string]*ifaceDef)

	for _, node := range prog.Interfaces {
		name := node.Name
		if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
			ip.nameErrorf("invalid interface name %q", name)
			return
		}
		if _, dup := ip.interfaces[name]; dup {
			ip.nameErrorf("interface %q defined more than once", name)
			return
		}

		def := &ifaceDef{name: name, fields: make(map[string]fieldSpec)}
		for _, field := range node.Fields {
			switch f := field.(type) {
			case *ast.FieldVar:
				if _, dup := def.fields[f.Name]; dup {
					ip.nameErrorf("field %q defined more than once in interface %q", f.Name, name)
					return
				}
				ftyp, fiface := ip.declaredType(f.Name, false)
				def.fieldOrder = append(def.fieldOrder, f.Name)
				def.fields[f.Name] = fieldSpec{typ: ftyp, iface: fiface}
			case *ast.FieldFunc:
				if _, dup := def.fields[f.Name]; dup {
					ip.nameErrorf("field %q defined more than once in interface %q", f.Name, name)
					return
				}
				params := make([]paramSpec, len(f.Params))
				for i, p := range f.Params {
					ptyp, piface := ip.declaredType(p.Name, false)
					params[i] = paramSpec{typ: ptyp, iface: piface, ref: p.Ref}
				}
				def.fieldOrder = append(def.fieldOrder, f.Name)
				def.fields[f.Name] = fieldSpec{isFunc: true, params: params}
			default:
				ip.nameErrorf("unknown field kind in interface %q", name)
				return
			}
		}
		ip.interfaces[name] = def
	}

	// Second pass: every referenced interface name must denote a
	// declared interface (forward- and self-references now resolve).
	for _, def := range ip.interfaces {
		for _, fname := range def.fieldOrder {
			spec := def.fields[fname]
			if spec.isFunc {
				for _, p := range spec.params {
					if p.iface != "" {
						if _, ok := ip.interfaces[p.iface]; !ok {
							ip.nameErrorf("unknown interface %q referenced by %s.%s", p.iface, def.name, fname)
							return
						}
					}
				}
				continue
			}
			if spec.iface != "" {
				if _, ok := ip.interfaces[spec.iface]; !ok {
					ip.nameErrorf("unknown interface %q referenced by %s.%s", spec.iface, def.name, fname)
					return
				}
			}
		}
	}
}

// satisfies implements the structural conformance predicate.
// It is never cached: object mutation can make a previously-conforming
// value stop conforming, so every call re-walks the object's current field
// table.
func (ip *Interpreter) satisfies(ifaceName string, v value.Value) bool {
	if ifaceName == "" {
		return true
	}
	if v.IsNil() {
		return true
	}
	id, ok := v.ObjectID()
	if !ok {
		return false
	}
	def, ok := ip.interfaces[ifaceName]
	if !ok {
		ip.nameErrorf("unknown interface %q", ifaceName)
		return false
	}
	fields, ok := ip.heap.Fields(id)
	if !ok {
		ip.faultErrorf("invalid object reference in interface check")
		return false
	}
	for _, fname := range def.fieldOrder {
		spec := def.fields[fname]
		cell, present := fields[fname]
		if !present {
			return false
		}
		fv := cell.Get()
		if !spec.isFunc {
			if fv.Tag != spec.typ {
				return false
			}
			if spec.iface != "" {
				if fv.Tag != value.Object {
					return false
				}
				if !ip.satisfies(spec.iface, fv) {
					return false
				}
			}
			continue
		}
		// func field
		if fv.Tag != value.Function || fv.Payload == nil {
			return false
		}
		closure, _ := fv.AsClosure()
		formal := closure.FuncAST.ParamList()
		if len(formal) != len(spec.params) {
			return false
		}
		for i, want := range spec.params {
			p := formal[i]
			actualType, actualIface := paramAttrs(p)
			if p.Ref != want.ref {
				return false
			}
			if actualType != want.typ || actualIface != want.iface {
				return false
			}
		}
	}
	return true
}

// paramAttrs reads the declared type/interface a Param was tagged with by
// deriveSignature (function-table construction or lambda evaluation).
func paramAttrs(p *ast.Param) (value.Tag, string) {
	t, _ := p.Attr("declared_type")
	iface, _ := p.Attr("interface")
	var typ value.Tag
	if t != nil {
		typ = t.(value.Tag)
	}
	var ifaceName string
	if iface != nil {
		ifaceName = iface.(string)
	}
	return typ, ifaceName
}
