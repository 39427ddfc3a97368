package runtime

import "sort"

// SortedKeys returns m's keys ordered for deterministic display and for
// the Map.keys/Map.values built-ins, regardless of the Go map's own
// iteration order. Key types are restricted to Int, Str, Bool (never
// Flt, per the type checker), so a total order always exists.
func SortedKeys(m *Map) []Value {
	keys := make([]Value, 0, len(m.Entries))
	for k := range m.Entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	return keys
}

func keyLess(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		return av.Value < b.(Int).Value
	case Str:
		return av.Value < b.(Str).Value
	case Bool:
		return !av.Value && b.(Bool).Value
	default:
		return false
	}
}
