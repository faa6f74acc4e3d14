package arm

import (
	"github.com/dave/jennifer/jen"
)

// stringify renders the expression converting a slot value of the given
// type into a string. Predeclared types avoid fmt.
func stringify(typ string, value *jen.Statement) *jen.Statement {
	switch typ {
	case "string":
		return value
	case "int":
		return jen.Qual("strconv", "Itoa").Call(value)
	case "int8", "int16", "int32", "int64", "rune":
		return jen.Qual("strconv", "FormatInt").Call(jen.Int64().Call(value), jen.Lit(10))
	case "uint", "uint8", "uint16", "uint32", "uint64", "byte", "uintptr":
		return jen.Qual("strconv", "FormatUint").Call(jen.Uint64().Call(value), jen.Lit(10))
	case "bool":
		return jen.Qual("strconv", "FormatBool").Call(value)
	case "float64":
		return jen.Qual("strconv", "FormatFloat").Call(value, jen.LitRune('g'), jen.Lit(-1), jen.Lit(64))
	case "float32":
		return jen.Qual("strconv", "FormatFloat").Call(jen.Float64().Call(value), jen.LitRune('g'), jen.Lit(-1), jen.Lit(32))
	default:
		return jen.Qual("fmt", "Sprint").Call(value)
	}
}
