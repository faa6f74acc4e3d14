package analyze

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"httperror-generator/internal/descriptor"
	"httperror-generator/internal/diagnostic"
	"httperror-generator/internal/match"
)

// typeDecl is a package level type declaration with its directives.
type typeDecl struct {
	obj  *types.TypeName
	dirs directiveSet
	pos  token.Position
}

// extractor walks the type declarations of one package.
type extractor struct {
	fset  *token.FileSet
	qual  types.Qualifier
	decls []typeDecl
	diags *diagnostic.Diagnostics
}

// analyzePackage extracts the sum types of a type-checked package.
func analyzePackage(
	pkgPath string,
	fset *token.FileSet,
	files []*ast.File,
	pkg *types.Package,
	info *types.Info,
) *Result {
	x := &extractor{
		fset:  fset,
		qual:  types.RelativeTo(pkg),
		decls: collectDecls(fset, files, info),
		diags: &diagnostic.Diagnostics{},
	}

	res := &Result{
		PkgPath:     pkgPath,
		Name:        pkg.Name(),
		Diagnostics: x.diags,
	}

	for _, d := range x.decls {
		x.checkDirectives(d)
	}

	used := make(map[*types.TypeName]bool)

	for _, d := range x.decls {
		if !d.dirs.has(KeySumType) {
			continue
		}

		used[d.obj] = true

		sum, ok := x.sumType(d)
		if !ok {
			continue
		}

		if sum.IsCaseSet() {
			for _, obj := range x.cases(d, &sum) {
				used[obj] = true
			}
		}

		res.SumTypes = append(res.SumTypes, sum)
	}

	for _, d := range x.decls {
		if len(d.dirs) > 0 && !used[d.obj] {
			x.warn(d, diagnostic.CodeSumTypeNotFound, "",
				fmt.Sprintf("%s carries %s directives but implements no annotated sum type", d.obj.Name(), Prefix))
		}
	}

	return res
}

// collectDecls returns the package level type declarations ordered by file
// name, then offset.
func collectDecls(fset *token.FileSet, files []*ast.File, info *types.Info) []typeDecl {
	var out []typeDecl

	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && !gd.Lparen.IsValid() {
					doc = gd.Doc
				}

				obj, ok := info.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				out = append(out, typeDecl{
					obj:  obj,
					dirs: ParseDirectives(doc),
					pos:  fset.Position(ts.Pos()),
				})
			}
		}
	}

	slices.SortFunc(out, func(a, b typeDecl) int {
		if c := strings.Compare(a.pos.Filename, b.pos.Filename); c != 0 {
			return c
		}

		return cmp.Compare(a.pos.Offset, b.pos.Offset)
	})

	return out
}

// checkDirectives reports unknown and repeated directive keys.
func (x *extractor) checkDirectives(d typeDecl) {
	seen := make(map[string]bool)

	for _, dir := range d.dirs {
		if !slices.Contains(Keys, dir.Key) {
			x.diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        diagnostic.CodeUnknownDirective,
				Message:     fmt.Sprintf("unknown directive %q", Prefix+dir.Key),
				Case:        d.obj.Name(),
				Pos:         x.fset.Position(dir.Pos).String(),
				Suggestions: match.Suggest(dir.Key, Keys),
			})

			continue
		}

		if seen[dir.Key] {
			x.errorAt(dir.Pos, diagnostic.CodeInvalidDirective, "", d.obj.Name(),
				fmt.Sprintf("repeated %s directive", Prefix+dir.Key))
		}

		seen[dir.Key] = true
	}
}

// sumType builds the descriptor of a type carrying a sumtype directive.
func (x *extractor) sumType(d typeDecl) (descriptor.SumType, bool) {
	name := d.obj.Name()
	if d.obj.IsAlias() {
		x.errorAt(d.obj.Pos(), diagnostic.CodeInvalidDirective, name, "",
			"sumtype directive on a type alias; annotate the aliased type")

		return descriptor.SumType{}, false
	}

	sum := descriptor.SumType{Name: name}

	switch d.obj.Type().Underlying().(type) {
	case *types.Interface:
		sum.Kind = descriptor.KindCaseSet
	case *types.Struct:
		sum.Kind = descriptor.KindStruct
	default:
		sum.Kind = descriptor.KindOther
	}

	if fn, ok := d.dirs.lookup(KeyFunction); ok {
		if token.IsIdentifier(fn.Value) {
			sum.Function = fn.Value
		} else {
			x.errorAt(fn.Pos, diagnostic.CodeInvalidDirective, name, "",
				fmt.Sprintf("function name %q is not an identifier", fn.Value))
		}
	}

	if named, ok := d.obj.Type().(*types.Named); ok {
		tps := named.TypeParams()
		for i := range tps.Len() {
			tp := tps.At(i)
			sum.TypeParams = append(sum.TypeParams, descriptor.TypeParam{
				Name:       tp.Obj().Name(),
				Constraint: types.TypeString(tp.Constraint(), x.qual),
			})
		}
	}

	return sum, true
}

// cases fills sum.Cases with the named types implementing the sum type and
// returns their objects.
func (x *extractor) cases(d typeDecl, sum *descriptor.SumType) []*types.TypeName {
	iface := d.obj.Type().Underlying().(*types.Interface)
	if iface.NumMethods() == 0 {
		x.errorAt(d.obj.Pos(), diagnostic.CodeNotCaseSet, sum.Name, "",
			"interface without methods is implemented by every type")

		return nil
	}

	if !sealed(iface) {
		x.diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityWarning,
			Code:     diagnostic.CodeUnsealed,
			Message:  "interface has no unexported method; values from other packages reach the default clause",
			SumType:  sum.Name,
			Pos:      x.fset.Position(d.obj.Pos()).String(),
		})
	}

	var objs []*types.TypeName

	for _, cd := range x.decls {
		if cd.obj == d.obj || cd.obj.IsAlias() || types.IsInterface(cd.obj.Type()) {
			continue
		}

		pointer, ok := implements(cd.obj.Type(), iface, sum.IsGeneric() || isGeneric(cd.obj))
		if !ok {
			continue
		}

		objs = append(objs, cd.obj)

		c, ok := x.caseOf(cd, sum, pointer)
		if ok {
			sum.Cases = append(sum.Cases, c)
		}
	}

	if len(objs) == 0 {
		x.errorAt(d.obj.Pos(), diagnostic.CodeNoCases, sum.Name, "",
			"no type in the package implements the sum type")
	}

	return objs
}

// caseOf builds the descriptor of one case.
func (x *extractor) caseOf(d typeDecl, sum *descriptor.SumType, pointer bool) (descriptor.Case, bool) {
	c := descriptor.Case{Name: d.obj.Name(), Pointer: pointer}
	ok := true

	if named, isNamed := d.obj.Type().(*types.Named); isNamed && named.TypeParams().Len() > 0 {
		n := named.TypeParams().Len()
		if n > len(sum.TypeParams) {
			x.errorAt(d.obj.Pos(), diagnostic.CodeInvalidDirective, sum.Name, c.Name,
				fmt.Sprintf("case has %d type parameters, sum type has %d", n, len(sum.TypeParams)))

			ok = false
		} else {
			c.TypeArgs = sum.TypeParamNames()[:n]
		}
	}

	if dir, found := d.dirs.lookup(KeyStatus); !found {
		x.errorAt(d.obj.Pos(), diagnostic.CodeMissingStatus, sum.Name, c.Name,
			"missing "+Prefix+KeyStatus+" directive")

		ok = false
	} else if code, err := dir.Status(); err != nil {
		x.errorAt(dir.Pos, diagnostic.CodeInvalidDirective, sum.Name, c.Name, err.Error())

		ok = false
	} else {
		c.Status = code
	}

	if dir, found := d.dirs.lookup(KeyMessage); !found {
		x.errorAt(d.obj.Pos(), diagnostic.CodeMissingMessage, sum.Name, c.Name,
			"missing "+Prefix+KeyMessage+" directive")

		ok = false
	} else if msg, err := dir.Message(); err != nil {
		x.errorAt(dir.Pos, diagnostic.CodeInvalidDirective, sum.Name, c.Name, err.Error())

		ok = false
	} else {
		c.Message = msg
	}

	if st, isStruct := d.obj.Type().Underlying().(*types.Struct); isStruct {
		for i := range st.NumFields() {
			f := st.Field(i)
			if f.Name() == "_" {
				continue
			}

			c.Slots = append(c.Slots, descriptor.Slot{
				Field: f.Name(),
				Type:  types.TypeString(f.Type(), x.qual),
			})
		}
	}

	return c, ok
}

func (x *extractor) errorAt(pos token.Pos, code, sumType, caseName, msg string) {
	x.diags.Add(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     code,
		Message:  msg,
		SumType:  sumType,
		Case:     caseName,
		Pos:      x.fset.Position(pos).String(),
	})
}

func (x *extractor) warn(d typeDecl, code, sumType, msg string) {
	x.diags.Add(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityWarning,
		Code:     code,
		Message:  msg,
		SumType:  sumType,
		Case:     d.obj.Name(),
		Pos:      d.pos.String(),
	})
}

// sealed reports whether iface has an unexported method.
func sealed(iface *types.Interface) bool {
	for i := range iface.NumMethods() {
		if !iface.Method(i).Exported() {
			return true
		}
	}

	return false
}

func isGeneric(obj *types.TypeName) bool {
	named, ok := obj.Type().(*types.Named)
	return ok && named.TypeParams().Len() > 0
}

// implements reports whether t or *t implements iface. Generic types are
// compared by method name since they are never instantiated here.
func implements(t types.Type, iface *types.Interface, generic bool) (pointer, ok bool) {
	if !generic {
		if types.Implements(t, iface) {
			return false, true
		}

		return true, types.Implements(types.NewPointer(t), iface)
	}

	if hasMethods(types.NewMethodSet(t), iface) {
		return false, true
	}

	return true, hasMethods(types.NewMethodSet(types.NewPointer(t)), iface)
}

func hasMethods(ms *types.MethodSet, iface *types.Interface) bool {
	for i := range iface.NumMethods() {
		m := iface.Method(i)
		if ms.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}

	return true
}
