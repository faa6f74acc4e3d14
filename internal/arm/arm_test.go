package arm

import (
	"bytes"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httperror-generator/internal/binding"
	"httperror-generator/internal/descriptor"
	"httperror-generator/internal/placeholder"
	"httperror-generator/internal/status"
)

// build runs the counter, the binder and the builder for c.
func build(t *testing.T, c descriptor.Case) Arm {
	t.Helper()

	p := placeholder.Count(c.Message)
	a, err := Build(c, binding.Bind(c.Slots, p), p)
	require.NoError(t, err)

	return a
}

// render wraps the arm into a type switch and renders a formatted file.
func render(t *testing.T, a Arm) string {
	t.Helper()

	f := jen.NewFile("p")
	f.Func().Id("f").Params(jen.Id(Subject).Interface()).Qual(DefaultResponsePackage, "Response").Block(
		jen.Switch(jen.Id(Subject).Op(":=").Id(Subject).Assert(jen.Type())).Block(
			jen.Case(a.Pattern).Block(a.Body...),
		),
	)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))

	return buf.String()
}

func TestBuild_ZeroSlotKeepsMessageVerbatim(t *testing.T) {
	a := build(t, descriptor.Case{Name: "Weird", Status: 400, Message: "literal {} stays"})

	assert.IsType(t, ZeroSlot{}, a.Shape)
	assert.False(t, a.ReadsSubject())
	assert.False(t, a.Mismatch())

	out := render(t, a)
	assert.Contains(t, out, "case Weird:")
	assert.Contains(t, out, "`{\"error\": \"literal {} stays\"}`")
	assert.Contains(t, out, "http.StatusBadRequest")
}

func TestBuild_StaticMessageDoesNotReadSlots(t *testing.T) {
	a := build(t, descriptor.Case{
		Name:    "Forbidden",
		Status:  403,
		Message: "forbidden",
		Slots:   []descriptor.Slot{{Field: "User", Type: "string"}, {Field: "Role", Type: "string"}},
	})

	assert.IsType(t, StaticMessage{}, a.Shape)
	assert.False(t, a.ReadsSubject())

	out := render(t, a)
	assert.Contains(t, out, "case Forbidden:")
	assert.Contains(t, out, "`{\"error\": \"forbidden\"}`")
	assert.NotContains(t, out, "v.User")
	assert.NotContains(t, out, "slot")
}

func TestBuild_SinglePlaceholder(t *testing.T) {
	a := build(t, descriptor.Case{
		Name:    "NotFound",
		Status:  404,
		Message: "not found: {}",
		Slots:   []descriptor.Slot{{Field: "ID", Type: "string"}},
	})

	assert.IsType(t, Substituted{}, a.Shape)
	assert.True(t, a.ReadsSubject())
	assert.False(t, a.Mismatch())

	out := render(t, a)
	assert.Contains(t, out, "slot0 := v.ID")
	assert.Contains(t, out, "`{\"error\": \"not found: ` + slot0 + `\"}`")
	assert.Contains(t, out, "http.StatusNotFound")
}

func TestBuild_SubstitutesInSlotOrder(t *testing.T) {
	a := build(t, descriptor.Case{
		Name:    "OutOfRange",
		Status:  416,
		Message: "{} of {}",
		Slots:   []descriptor.Slot{{Field: "Page", Type: "int"}, {Field: "Total", Type: "int"}},
	})

	out := render(t, a)
	assert.Contains(t, out, "slot0 := v.Page")
	assert.Contains(t, out, "slot1 := v.Total")
	assert.Contains(t, out, "`{\"error\": \"` + strconv.Itoa(slot0) + ` of ` + strconv.Itoa(slot1) + `\"}`")
}

func TestBuild_ExtraBoundSlotIsUnconsumed(t *testing.T) {
	a := build(t, descriptor.Case{
		Name:    "Conflict",
		Status:  409,
		Message: "conflict on {}",
		Slots: []descriptor.Slot{
			{Field: "A", Type: "string"},
			{Field: "B", Type: "string"},
			{Field: "C", Type: "string"},
		},
	})

	assert.True(t, a.Mismatch())
	assert.Equal(t, []int{2}, a.Unconsumed)
	assert.Equal(t, 0, a.LeftoverMarkers)

	out := render(t, a)
	assert.Contains(t, out, "slot0 := v.A")
	assert.NotContains(t, out, "v.B")
	assert.Contains(t, out, "slot2 := v.C")
	assert.Contains(t, out, "_ = slot2")
	assert.Contains(t, out, "`{\"error\": \"conflict on ` + slot0 + `\"}`")
}

func TestBuild_LeftoverMarkersStayLiteral(t *testing.T) {
	a := build(t, descriptor.Case{
		Name:    "Triple",
		Status:  422,
		Message: "{}-{}-{}",
		Slots:   []descriptor.Slot{{Field: "A", Type: "string"}, {Field: "B", Type: "bool"}},
	})

	assert.True(t, a.Mismatch())
	assert.Empty(t, a.Unconsumed)
	assert.Equal(t, 1, a.LeftoverMarkers)

	out := render(t, a)
	assert.Contains(t, out, "slot0 + `-` + strconv.FormatBool(slot1) + `-{}\"}`")
}

func TestBuild_MessageThatCannotBeBackquoted(t *testing.T) {
	a := build(t, descriptor.Case{Name: "Multi", Status: 500, Message: "line\nbreak"})

	out := render(t, a)
	assert.Contains(t, out, `"{\"error\": \"line\nbreak\"}"`)
}

func TestBuild_StatusWithoutConstant(t *testing.T) {
	a := build(t, descriptor.Case{Name: "Custom", Status: 599, Message: "custom"})

	out := render(t, a)
	assert.Contains(t, out, "Status: 599")
}

func TestBuild_MalformedStatus(t *testing.T) {
	c := descriptor.Case{Name: "Broken", Status: 42, Message: "broken"}

	_, err := Build(c, binding.Bind(c.Slots, 0), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrMalformed)
	assert.Contains(t, err.Error(), "Broken")
}

func TestBuild_PointerAndGenericPattern(t *testing.T) {
	a := build(t, descriptor.Case{
		Name:     "Wrapped",
		Status:   500,
		Message:  "wrapped: {}",
		Pointer:  true,
		TypeArgs: []string{"T"},
		Slots:    []descriptor.Slot{{Field: "Value", Type: "T"}},
	})

	out := render(t, a)
	assert.Contains(t, out, "case *Wrapped[T]:")
	assert.Contains(t, out, "fmt.Sprint(slot0)")
	assert.Nil(t, a.PointerPattern)
}

func TestBuild_ValueCaseMatchesPointers(t *testing.T) {
	a := build(t, descriptor.Case{
		Name:     "Missing",
		Status:   404,
		Message:  "missing {}",
		TypeArgs: []string{"K"},
		Slots:    []descriptor.Slot{{Field: "Key", Type: "K"}},
	})

	require.NotNil(t, a.PointerPattern)
	assert.Equal(t, "Missing[K]", a.Pattern.GoString())
	assert.Equal(t, "*Missing[K]", a.PointerPattern.GoString())
}

func TestBuild_CustomResponsePackage(t *testing.T) {
	c := descriptor.Case{Name: "Gone", Status: 410, Message: "gone"}

	a, err := Builder{ResponsePackage: "example.com/web/reply"}.Build(c, nil, 0)
	require.NoError(t, err)

	f := jen.NewFile("p")
	f.Func().Id("f").Params().Qual("example.com/web/reply", "Response").Block(a.Body...)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	assert.Contains(t, buf.String(), "reply.Response{")
	assert.Contains(t, buf.String(), `"example.com/web/reply"`)
}

func TestBuild_Idempotent(t *testing.T) {
	c := descriptor.Case{
		Name:    "OutOfRange",
		Status:  416,
		Message: "{} of {}",
		Slots:   []descriptor.Slot{{Field: "Page", Type: "int64"}, {Field: "Total", Type: "uint"}},
	}

	assert.Equal(t, render(t, build(t, c)), render(t, build(t, c)))
}
