package runtime

// MapKeys returns the map's keys as a List, sorted by key for stable
// display and enumeration (see SortedKeys).
func MapKeys(m *Map) *List {
	keys := SortedKeys(m)
	return &List{Elements: keys, Elem: m.KeyType}
}

// MapValues returns the map's values as a List, ordered by their key
// (not insertion order), matching MapKeys' stability guarantee.
func MapValues(m *Map) *List {
	keys := SortedKeys(m)
	values := make([]Value, len(keys))
	for i, k := range keys {
		values[i] = m.Entries[k]
	}
	return &List{Elements: values, Elem: m.ValType}
}

func MapContainsKey(m *Map, key Value) Bool {
	_, ok := m.Entries[key]
	return Bool{Value: ok}
}

func MapIsEmpty(m *Map) Bool { return Bool{Value: len(m.Entries) == 0} }
