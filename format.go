package groebner

import (
	"fmt"
	"strings"
)

// A symbolStringer names the variable at the given index, for diagnostic
// text rendering of a Monomial. This mirrors the teacher's own
// englishSymbolStringer, generalized from a fixed single-letter alphabet
// ("a".."z") to arbitrary variable counts by falling back to "x<i>".
type symbolStringer func(i int) string

// defaultSymbolStringer names variables "a", "b", ... "z", then "x26",
// "x27", and so on.
func defaultSymbolStringer(i int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	if i >= 0 && i < len(alphabet) {
		return string(alphabet[i])
	}
	return fmt.Sprintf("x%d", i)
}

// formatMonomial renders m as e.g. "a^2*b*c^3", naming each variable with
// name. The identity monomial renders as the empty string.
func formatMonomial(m Monomial, name symbolStringer) string {
	var factors []string
	for i := range m {
		d := m.Degree(i)
		if d == 0 {
			continue
		}
		if d == 1 {
			factors = append(factors, name(i))
		} else {
			factors = append(factors, fmt.Sprintf("%s^%d", name(i), d))
		}
	}
	return strings.Join(factors, "*")
}
