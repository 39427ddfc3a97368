package runtime

import (
	"fmt"
	"strings"
)

// ListFirst returns the first element. Empty lists are a runtime error.
func ListFirst(l *List) (Value, error) {
	if len(l.Elements) == 0 {
		return nil, fmt.Errorf("first() on empty list")
	}
	return l.Elements[0], nil
}

// ListLast returns the last element. Empty lists are a runtime error.
func ListLast(l *List) (Value, error) {
	if len(l.Elements) == 0 {
		return nil, fmt.Errorf("last() on empty list")
	}
	return l.Elements[len(l.Elements)-1], nil
}

func ListContains(l *List, item Value) Bool {
	for _, e := range l.Elements {
		if Equals(e, item) {
			return Bool{Value: true}
		}
	}
	return Bool{Value: false}
}

func ListIsEmpty(l *List) Bool { return Bool{Value: len(l.Elements) == 0} }

// ListReverse returns a new list with elements in reverse order; l is
// never mutated.
func ListReverse(l *List) *List {
	out := make([]Value, len(l.Elements))
	for i, e := range l.Elements {
		out[len(l.Elements)-1-i] = e
	}
	return &List{Elements: out, Elem: l.Elem}
}

// ListSlice returns the half-open [start, end) sublist. Out-of-range
// indices are a runtime error (§9: no clamping).
func ListSlice(l *List, start, end int64) (*List, error) {
	n := int64(len(l.Elements))
	if start < 0 || end > n || start > end {
		return nil, fmt.Errorf("slice bounds [%d,%d) out of range for list of length %d", start, end, n)
	}
	out := make([]Value, end-start)
	copy(out, l.Elements[start:end])
	return &List{Elements: out, Elem: l.Elem}, nil
}

// ListJoin concatenates a List of Str with separator. The type checker
// restricts this method to Str element lists, so every element here is
// a Str by the time this runs.
func ListJoin(l *List, sep Str) Str {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.(Str).Value
	}
	return Str{Value: strings.Join(parts, sep.Value)}
}
