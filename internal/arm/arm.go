package arm

import (
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"

	"httperror-generator/internal/binding"
	"httperror-generator/internal/descriptor"
	"httperror-generator/internal/placeholder"
	"httperror-generator/internal/status"
)

// Subject is the name the type switch binds the converted value to.
const Subject = "v"

// DefaultResponsePackage is the import path of the runtime response type.
const DefaultResponsePackage = "httperror-generator/response"

const (
	bodyPrefix = `{"error": "`
	bodySuffix = `"}`
)

// Arm is the generated clause for one case.
type Arm struct {
	// Case is the descriptor the clause was built from.
	Case descriptor.Case
	// Bindings holds one decision per payload slot.
	Bindings []binding.Binding
	// Placeholders is the number of markers in the message.
	Placeholders int
	// Shape is the layout the clause was built with.
	Shape Shape
	// Pattern is the type expression of the case clause.
	Pattern *jen.Statement
	// PointerPattern matches pointers to a value receiver case, whose method
	// set also satisfies the sum type. It is nil for pointer receiver cases.
	PointerPattern *jen.Statement
	// Body holds the statements of the clause, ending with a return.
	Body []jen.Code
	// Unconsumed lists bound slot indices left without a marker.
	Unconsumed []int
	// LeftoverMarkers is the number of markers left without a bound slot.
	LeftoverMarkers int
}

// ReadsSubject reports whether the clause reads the switch value.
func (a *Arm) ReadsSubject() bool {
	return binding.BoundCount(a.Bindings) > 0
}

// Mismatch reports whether bound slots and markers did not pair up.
func (a *Arm) Mismatch() bool {
	return len(a.Unconsumed) > 0 || a.LeftoverMarkers > 0
}

// Builder builds arms that return values of the response package.
type Builder struct {
	// ResponsePackage is the import path of the Response type.
	ResponsePackage string
}

// Build builds the clause for c with the default response package.
func Build(c descriptor.Case, bindings []binding.Binding, placeholders int) (Arm, error) {
	return Builder{ResponsePackage: DefaultResponsePackage}.Build(c, bindings, placeholders)
}

// Build builds the clause for c. It fails only if the status code is malformed.
func (b Builder) Build(c descriptor.Case, bindings []binding.Binding, placeholders int) (Arm, error) {
	statusCode, err := statusExpr(c.Status)
	if err != nil {
		return Arm{}, fmt.Errorf("case %s: %w", c.Name, err)
	}

	v := &armVisitor{
		builder: b,
		status:  statusCode,
		arm: Arm{
			Case:         c,
			Bindings:     bindings,
			Placeholders: placeholders,
			Pattern:      pattern(c),
		},
	}

	if !c.Pointer {
		v.arm.PointerPattern = jen.Op("*").Add(typeExpr(c))
	}

	v.arm.Shape = Classify(c, bindings, placeholders)
	if err := v.arm.Shape.Accept(v); err != nil {
		return Arm{}, fmt.Errorf("case %s: %w", c.Name, err)
	}

	return v.arm, nil
}

// armVisitor fills an Arm according to its Shape.
type armVisitor struct {
	builder Builder
	status  jen.Code
	arm     Arm
}

func (v *armVisitor) VisitZeroSlot(s ZeroSlot) error {
	v.arm.Body = []jen.Code{v.ret(literal(bodyPrefix + s.Case.Message + bodySuffix))}
	return nil
}

func (v *armVisitor) VisitStaticMessage(s StaticMessage) error {
	v.arm.Body = []jen.Code{v.ret(literal(bodyPrefix + s.Case.Message + bodySuffix))}
	return nil
}

func (v *armVisitor) VisitSubstituted(s Substituted) error {
	if len(s.Bindings) != len(s.Case.Slots) {
		return fmt.Errorf("%d bindings for %d slots", len(s.Bindings), len(s.Case.Slots))
	}

	var (
		stmts   []jen.Code
		parts   []*jen.Statement
		pending = bodyPrefix
	)

	sc := placeholder.NewScanner(s.Case.Message)

	for _, b := range s.Bindings {
		if b.IsDiscarded() {
			continue
		}

		slot := s.Case.Slots[b.Index]
		stmts = append(stmts, jen.Id(b.Name).Op(":=").Id(Subject).Dot(slot.Field))

		lit, ok := sc.Next()
		if !ok {
			v.arm.Unconsumed = append(v.arm.Unconsumed, b.Index)
			continue
		}

		pending += lit
		if pending != "" {
			parts = append(parts, literal(pending))
			pending = ""
		}

		parts = append(parts, stringify(slot.Type, jen.Id(b.Name)))
	}

	v.arm.LeftoverMarkers = sc.Remaining()
	parts = append(parts, literal(pending+sc.Rest()+bodySuffix))

	for _, i := range v.arm.Unconsumed {
		stmts = append(stmts, jen.Id("_").Op("=").Id(binding.Name(i)))
	}

	v.arm.Body = append(stmts, v.ret(concat(parts)))

	return nil
}

// ret renders the return of a response with the given body expression.
func (v *armVisitor) ret(body jen.Code) jen.Code {
	return jen.Return(jen.Qual(v.builder.ResponsePackage, "Response").Values(jen.Dict{
		jen.Id("Status"): v.status,
		jen.Id("Body"):   body,
	}))
}

// pattern renders the type expression matched by the case clause.
func pattern(c descriptor.Case) *jen.Statement {
	if c.Pointer {
		return jen.Op("*").Add(typeExpr(c))
	}

	return typeExpr(c)
}

// typeExpr renders the case type instantiated with its type arguments.
func typeExpr(c descriptor.Case) *jen.Statement {
	s := jen.Id(c.Name)
	if len(c.TypeArgs) > 0 {
		s = s.TypesFunc(func(g *jen.Group) {
			for _, arg := range c.TypeArgs {
				g.Id(arg)
			}
		})
	}

	return s
}

// statusExpr renders the status code as a net/http constant when one exists.
func statusExpr(code uint16) (jen.Code, error) {
	if err := status.Check(code); err != nil {
		return nil, err
	}

	if name, ok := status.Name(code); ok {
		return jen.Qual("net/http", name), nil
	}

	return jen.Lit(int(code)), nil
}

// literal renders s as a raw string literal when possible.
func literal(s string) *jen.Statement {
	if strconv.CanBackquote(s) {
		return jen.Op("`" + s + "`")
	}

	return jen.Lit(s)
}

// concat joins the parts with the + operator.
func concat(parts []*jen.Statement) *jen.Statement {
	expr := jen.Add(parts[0])
	for _, p := range parts[1:] {
		expr.Op("+").Add(p)
	}

	return expr
}
