package runtime

// Equals implements `=` / `<>` structural equality. Structs compare equal
// iff their type names match and every field is recursively equal;
// lists compare element-wise in order; maps compare by key set and
// value. Cross-type comparison is rejected by the type checker before
// this ever runs, so a type mismatch here returns false rather than
// erroring - the analyzer is the single source of truth for that rule.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av.Value == bv.Value
	case Flt:
		bv, ok := b.(Flt)
		return ok && av.Value == bv.Value
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case Str:
		bv, ok := b.(Str)
		return ok && av.Value == bv.Value
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Range:
		bv, ok := b.(Range)
		return ok && av.Start == bv.Start && av.End == bv.End
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for k, v := range av.Entries {
			bval, present := bv.Entries[k]
			if !present || !Equals(v, bval) {
				return false
			}
		}
		return true
	case *Struct:
		return StructEquals(av, b)
	default:
		return false
	}
}

// StructEquals is the single runtime entry point the JIT's native code is
// required to call for struct equality (see internal/jit's contract):
// it receives two handles and recurses the same way the interpreter's
// Equals does, so both backends agree.
func StructEquals(a *Struct, b Value) bool {
	bs, ok := b.(*Struct)
	if !ok || a.TypeName != bs.TypeName || len(a.Fields) != len(bs.Fields) {
		return false
	}
	for name, v := range a.Fields {
		bv, present := bs.Fields[name]
		if !present || !Equals(v, bv) {
			return false
		}
	}
	return true
}
