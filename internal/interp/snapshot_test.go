package interp

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// snapshotPrograms pins the exact output text of a handful of representative
// programs, the same way fixture-driven interpreter suites compare actual
// output against a recorded expectation - except the expectation here is a
// go-snaps snapshot rather than a checked-in .txt fixture, since Lift has no
// external test corpus of its own.
func TestOutputSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "arithmetic",
			src:  `output(2 + 3 * 4, 7.5 / 2.5, 10 - 4);`,
		},
		{
			name: "struct_roundtrip",
			src: `
				type Point = struct(x: Int, y: Int);
				function Point.sum(): Int = self.x + self.y;
				let p = Point(x: 3, y: 4);
				output(p, p.sum());
			`,
		},
		{
			name: "list_and_map",
			src: `
				let xs = [1, 2, 3];
				let m = #{'a': 1, 'b': 2};
				output(xs, xs.reverse(), m.keys());
			`,
		},
		{
			name: "recursion",
			src: `
				function fib(n: Int): Int {
					if n <= 1 { n } else { fib(n: n - 1) + fib(n: n - 2) }
				}
				output(fib(n: 10));
			`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, errs := run(t, c.src)
			requireNoRuntimeErrors(t, errs)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", c.name), out)
		})
	}
}
