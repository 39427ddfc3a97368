package semantic

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/types"
)

// builtinSig describes one built-in method's call shape: the keyword
// argument names it expects, in order, and how its return type depends
// on the receiver's (possibly generic) type.
type builtinSig struct {
	argNames []string
	ret      func(recv *types.Type) *types.Type
}

var builtinSigs = map[ast.BuiltinMethod]builtinSig{
	ast.StrUpper:      {ret: constType(types.StrType)},
	ast.StrLower:      {ret: constType(types.StrType)},
	ast.StrSubstring:  {argNames: []string{"start", "end"}, ret: constType(types.StrType)},
	ast.StrContains:   {argNames: []string{"substring"}, ret: constType(types.BoolType)},
	ast.StrTrim:       {ret: constType(types.StrType)},
	ast.StrSplit:      {argNames: []string{"delimiter"}, ret: constType(types.NewList(types.StrType))},
	ast.StrReplace:    {argNames: []string{"old", "new"}, ret: constType(types.StrType)},
	ast.StrStartsWith: {argNames: []string{"prefix"}, ret: constType(types.BoolType)},
	ast.StrEndsWith:   {argNames: []string{"suffix"}, ret: constType(types.BoolType)},
	ast.StrIsEmpty:    {ret: constType(types.BoolType)},

	ast.ListFirst:    {ret: func(recv *types.Type) *types.Type { return recv.Elem }},
	ast.ListLast:     {ret: func(recv *types.Type) *types.Type { return recv.Elem }},
	ast.ListContains: {argNames: []string{"item"}, ret: constType(types.BoolType)},
	ast.ListSlice:    {argNames: []string{"start", "end"}, ret: func(recv *types.Type) *types.Type { return types.NewList(recv.Elem) }},
	ast.ListReverse:  {ret: func(recv *types.Type) *types.Type { return types.NewList(recv.Elem) }},
	ast.ListJoin:     {argNames: []string{"separator"}, ret: constType(types.StrType)},
	ast.ListIsEmpty:  {ret: constType(types.BoolType)},

	ast.MapKeys:        {ret: func(recv *types.Type) *types.Type { return types.NewList(recv.Key) }},
	ast.MapValues:      {ret: func(recv *types.Type) *types.Type { return types.NewList(recv.Value) }},
	ast.MapContainsKey: {argNames: []string{"key"}, ret: constType(types.BoolType)},
	ast.MapIsEmpty:     {ret: constType(types.BoolType)},
}

func constType(t *types.Type) func(*types.Type) *types.Type {
	return func(*types.Type) *types.Type { return t }
}

// builtinTypeName returns the namespace a receiver type's built-in
// methods are registered under ("Str", "List", "Map"), or the struct's
// own name for a user-defined method receiver.
func builtinTypeName(t *types.Type) string {
	switch t.Kind {
	case types.Str:
		return "Str"
	case types.List:
		return "List"
	case types.Map:
		return "Map"
	case types.Struct:
		return t.Name
	default:
		return ""
	}
}
