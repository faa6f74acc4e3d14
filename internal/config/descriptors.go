package config

import (
	"httperror-generator/internal/descriptor"
)

// kindOf maps a "kind" value to a descriptor kind.
func kindOf(kind string) (descriptor.Kind, bool) {
	switch kind {
	case KindInterface, "":
		return descriptor.KindCaseSet, true
	case KindStruct:
		return descriptor.KindStruct, true
	case KindOther:
		return descriptor.KindOther, true
	default:
		return descriptor.KindOther, false
	}
}

// kindName is the inverse of kindOf.
func kindName(kind descriptor.Kind) string {
	switch kind {
	case descriptor.KindCaseSet:
		return KindInterface
	case descriptor.KindStruct:
		return KindStruct
	default:
		return KindOther
	}
}

// Descriptors converts the declared sum types into descriptors, in file order.
func (f *File) Descriptors() []descriptor.SumType {
	out := make([]descriptor.SumType, 0, len(f.SumTypes))

	for _, st := range f.SumTypes {
		kind, _ := kindOf(st.Kind)
		sum := descriptor.SumType{
			Name:     st.Name,
			Kind:     kind,
			Function: st.Function,
		}

		for _, tp := range st.TypeParams {
			sum.TypeParams = append(sum.TypeParams, descriptor.TypeParam{Name: tp.Name, Constraint: tp.Constraint})
		}

		for _, c := range st.Cases {
			dc := descriptor.Case{
				Name:     c.Name,
				Status:   c.Status,
				Message:  c.Template(),
				Pointer:  c.Pointer,
				TypeArgs: c.TypeArgs,
			}

			for _, s := range c.Slots {
				dc.Slots = append(dc.Slots, descriptor.Slot{Field: s.Field, Type: s.Type})
			}

			sum.Cases = append(sum.Cases, dc)
		}

		out = append(out, sum)
	}

	return out
}

// FromDescriptors builds a declaration file describing sums.
func FromDescriptors(pkg string, sums []descriptor.SumType) *File {
	f := &File{Version: CurrentVersion, Package: pkg}

	for _, sum := range sums {
		st := SumType{Name: sum.Name, Function: sum.Function, Kind: kindName(sum.Kind)}

		for _, tp := range sum.TypeParams {
			st.TypeParams = append(st.TypeParams, TypeParam{Name: tp.Name, Constraint: tp.Constraint})
		}

		for _, c := range sum.Cases {
			cc := Case{
				Name:     c.Name,
				Status:   c.Status,
				Message:  &c.Message,
				Pointer:  c.Pointer,
				TypeArgs: c.TypeArgs,
			}

			for _, s := range c.Slots {
				cc.Slots = append(cc.Slots, Slot{Field: s.Field, Type: s.Type})
			}

			st.Cases = append(st.Cases, cc)
		}

		f.SumTypes = append(f.SumTypes, st)
	}

	return f
}
