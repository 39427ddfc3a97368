package runtime

import (
	"fmt"
	"strings"

	"github.com/ccdavis/lift-lang/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Str built-ins are pure: they read the receiver's contents and return a
// new Str, never touching the receiver. Case folding goes through
// golang.org/x/text/cases rather than strings.ToUpper/ToLower so that
// Lift's casing rules are defined the same way the rest of the Unicode
// ecosystem defines them, not by ASCII-only table lookups.
var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func StrUpper(s Str) Str { return Str{Value: upperCaser.String(s.Value)} }
func StrLower(s Str) Str { return Str{Value: lowerCaser.String(s.Value)} }

func StrTrim(s Str) Str { return Str{Value: strings.TrimSpace(s.Value)} }

func StrIsEmpty(s Str) Bool { return Bool{Value: len(s.Value) == 0} }

func StrContains(s Str, sub Str) Bool { return Bool{Value: strings.Contains(s.Value, sub.Value)} }

func StrStartsWith(s Str, prefix Str) Bool {
	return Bool{Value: strings.HasPrefix(s.Value, prefix.Value)}
}

func StrEndsWith(s Str, suffix Str) Bool {
	return Bool{Value: strings.HasSuffix(s.Value, suffix.Value)}
}

func StrReplace(s Str, old, new Str) Str {
	return Str{Value: strings.ReplaceAll(s.Value, old.Value, new.Value)}
}

// StrSplit splits on delimiter, returning a List of Str (empty delimiter
// splits into individual runes, matching strings.Split's own behaviour).
func StrSplit(s Str, delimiter Str) *List {
	parts := strings.Split(s.Value, delimiter.Value)
	elems := make([]Value, len(parts))
	for i, p := range parts {
		elems[i] = Str{Value: p}
	}
	return &List{Elements: elems, Elem: types.StrType}
}

// StrSubstring returns the half-open [start, end) slice of s's runes. Out
// of range indices are a runtime error (§9: treated as a runtime error
// for safety, not a clamp).
func StrSubstring(s Str, start, end int64) (Str, error) {
	runes := []rune(s.Value)
	n := int64(len(runes))
	if start < 0 || end > n || start > end {
		return Str{}, fmt.Errorf("substring bounds [%d,%d) out of range for string of length %d", start, end, n)
	}
	return Str{Value: string(runes[start:end])}, nil
}
