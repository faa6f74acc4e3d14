// Package emit assembles per-case arms into one conversion function.
package emit

import (
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"

	"httperror-generator/internal/arm"
	"httperror-generator/internal/descriptor"
)

var (
	// ErrNotCaseSet is returned when the annotated type is not an interface.
	ErrNotCaseSet = errors.New("not a case set")
	// ErrNoCases is returned for a sum type without cases.
	ErrNoCases = errors.New("sum type has no cases")
	// ErrArmCount is returned when arms and cases do not line up.
	ErrArmCount = errors.New("arm count does not match case count")
)

// Options configures the emitted function.
type Options struct {
	// Function overrides the function name.
	Function string
	// ResponsePackage is the import path of the Response type.
	ResponsePackage string
}

// FunctionName returns the name of the conversion function for sum.
func FunctionName(sum descriptor.SumType, override string) string {
	switch {
	case override != "":
		return override
	case sum.Function != "":
		return sum.Function
	default:
		return sum.Name + "Response"
	}
}

// Emit returns the declaration of the function converting sum values into
// responses. Arms must be in case order. A value receiver case gets a second
// clause for pointers to it, sharing the body.
func Emit(sum descriptor.SumType, arms []arm.Arm, opts Options) (*jen.Statement, error) {
	if !sum.IsCaseSet() {
		return nil, fmt.Errorf("%s: %w: underlying kind is %s", sum.Name, ErrNotCaseSet, sum.Kind)
	}

	if len(sum.Cases) == 0 {
		return nil, fmt.Errorf("%s: %w", sum.Name, ErrNoCases)
	}

	if len(arms) != len(sum.Cases) {
		return nil, fmt.Errorf("%s: %w: %d arms, %d cases", sum.Name, ErrArmCount, len(arms), len(sum.Cases))
	}

	respPkg := opts.ResponsePackage
	if respPkg == "" {
		respPkg = arm.DefaultResponsePackage
	}

	name := FunctionName(sum, opts.Function)

	fn := jen.Func().Id(name)

	if sum.IsGeneric() {
		fn.TypesFunc(func(g *jen.Group) {
			for _, tp := range sum.TypeParams {
				g.Id(tp.Name).Op(tp.Constraint)
			}
		})
	}

	fn.Params(jen.Id(arm.Subject).Add(sumType(sum))).Qual(respPkg, "Response").Block(
		jen.Switch(subject(arms)).BlockFunc(func(g *jen.Group) {
			for _, a := range arms {
				g.Case(a.Pattern).Block(a.Body...)

				if a.PointerPattern != nil {
					g.Case(a.PointerPattern).Block(a.Body...)
				}
			}

			g.Default().Block(
				jen.Panic(jen.Qual("fmt", "Sprintf").Call(
					jen.Lit(name+": unexpected %T"),
					jen.Id(arm.Subject),
				)),
			)
		}),
	)

	return fn, nil
}

// Doc returns the doc comment of the emitted function.
func Doc(sum descriptor.SumType, opts Options) string {
	return FunctionName(sum, opts.Function) + " returns the HTTP response describing v."
}

// sumType renders the parameter type, instantiated with its own parameters.
func sumType(sum descriptor.SumType) *jen.Statement {
	s := jen.Id(sum.Name)
	if sum.IsGeneric() {
		s.TypesFunc(func(g *jen.Group) {
			for _, name := range sum.TypeParamNames() {
				g.Id(name)
			}
		})
	}

	return s
}

// subject renders the switch guard; the value is only bound when an arm
// reads a slot.
func subject(arms []arm.Arm) *jen.Statement {
	for i := range arms {
		if arms[i].ReadsSubject() {
			return jen.Id(arm.Subject).Op(":=").Id(arm.Subject).Assert(jen.Type())
		}
	}

	return jen.Id(arm.Subject).Assert(jen.Type())
}
