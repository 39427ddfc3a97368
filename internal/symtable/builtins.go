package symtable

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/types"
)

// RegisterBuiltins pre-populates scope with `output`, `len`, and every
// built-in method under its receiver type's namespace ("Str.upper",
// "List.first", and so on). Method entries carry the ast.BuiltinMethod
// tag the interpreter's dispatch table and the JIT's static call-site
// emission key off of, so neither ever string-matches a method name at
// evaluation time.
func RegisterBuiltins(t *Table, scope *Scope) {
	t.AddSymbol(scope, "output", KindBuiltinFunc, nil, types.UnitType, false)
	t.AddSymbol(scope, "len", KindBuiltinFunc, nil, types.IntType, false)

	strMethods := []struct {
		name string
		tag  ast.BuiltinMethod
		ret  *types.Type
	}{
		{"upper", ast.StrUpper, types.StrType},
		{"lower", ast.StrLower, types.StrType},
		{"substring", ast.StrSubstring, types.StrType},
		{"contains", ast.StrContains, types.BoolType},
		{"trim", ast.StrTrim, types.StrType},
		{"split", ast.StrSplit, types.NewList(types.StrType)},
		{"replace", ast.StrReplace, types.StrType},
		{"starts_with", ast.StrStartsWith, types.BoolType},
		{"ends_with", ast.StrEndsWith, types.BoolType},
		{"is_empty", ast.StrIsEmpty, types.BoolType},
	}
	for _, m := range strMethods {
		registerBuiltinMethod(t, scope, "Str", m.name, m.tag, m.ret)
	}

	listMethods := []struct {
		name string
		tag  ast.BuiltinMethod
		ret  *types.Type
	}{
		{"first", ast.ListFirst, nil}, // return type is the list's element type
		{"last", ast.ListLast, nil},
		{"contains", ast.ListContains, types.BoolType},
		{"slice", ast.ListSlice, nil},
		{"reverse", ast.ListReverse, nil},
		{"join", ast.ListJoin, types.StrType},
		{"is_empty", ast.ListIsEmpty, types.BoolType},
	}
	for _, m := range listMethods {
		registerBuiltinMethod(t, scope, "List", m.name, m.tag, m.ret)
	}

	mapMethods := []struct {
		name string
		tag  ast.BuiltinMethod
		ret  *types.Type
	}{
		{"keys", ast.MapKeys, nil},
		{"values", ast.MapValues, nil},
		{"contains_key", ast.MapContainsKey, types.BoolType},
		{"is_empty", ast.MapIsEmpty, types.BoolType},
	}
	for _, m := range mapMethods {
		registerBuiltinMethod(t, scope, "Map", m.name, m.tag, m.ret)
	}
}

func registerBuiltinMethod(t *Table, scope *Scope, typeName, method string, tag ast.BuiltinMethod, ret *types.Type) {
	idx, _ := t.AddSymbol(scope, methodKey(typeName, method), KindBuiltinMethod, nil, ret, false)
	scope.entries[idx].Builtin = tag
}
