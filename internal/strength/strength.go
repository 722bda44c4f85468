// Package strength evaluates password strength from five character-class
// and length requirements. Evaluation is pure and deterministic, cheap
// enough to run on every keystroke of a UI.
package strength

import "unicode"

// Category is an ordered strength bucket.
type Category int

const (
	CategoryWeak Category = iota
	CategoryFair
	CategoryGood
	CategoryStrong
)

func (c Category) String() string {
	switch c {
	case CategoryWeak:
		return "Weak"
	case CategoryFair:
		return "Fair"
	case CategoryGood:
		return "Good"
	case CategoryStrong:
		return "Strong"
	default:
		return "Unknown"
	}
}

// MinLength is the minimum password length the MinLength check requires.
const MinLength = 8

// Checks holds the per-requirement pass/fail markers. Callers render one
// line per field when showing live feedback.
type Checks struct {
	MinLength bool
	Upper     bool
	Lower     bool
	Digit     bool
	Special   bool
}

// Satisfied returns how many requirements passed.
func (c Checks) Satisfied() int {
	n := 0
	for _, ok := range []bool{c.MinLength, c.Upper, c.Lower, c.Digit, c.Special} {
		if ok {
			n++
		}
	}
	return n
}

// Failed returns human-readable names of the requirements that did not pass.
func (c Checks) Failed() []string {
	var failed []string
	if !c.MinLength {
		failed = append(failed, "at least 8 characters")
	}
	if !c.Upper {
		failed = append(failed, "an uppercase letter")
	}
	if !c.Lower {
		failed = append(failed, "a lowercase letter")
	}
	if !c.Digit {
		failed = append(failed, "a digit")
	}
	if !c.Special {
		failed = append(failed, "a special character")
	}
	return failed
}

// Result pairs the derived category with the underlying checks.
type Result struct {
	Category Category
	Checks   Checks
}

// Evaluate scores a password candidate. The category is derived from the
// number of satisfied requirements: 0-2 Weak, 3 Fair, 4 Good, 5 Strong.
// The empty string fails every check and is Weak.
func Evaluate(candidate string) Result {
	var c Checks
	c.MinLength = len([]rune(candidate)) >= MinLength
	for _, r := range candidate {
		switch {
		case unicode.IsUpper(r):
			c.Upper = true
		case unicode.IsLower(r):
			c.Lower = true
		case unicode.IsDigit(r):
			c.Digit = true
		default:
			c.Special = true
		}
	}

	var cat Category
	switch c.Satisfied() {
	case 5:
		cat = CategoryStrong
	case 4:
		cat = CategoryGood
	case 3:
		cat = CategoryFair
	default:
		cat = CategoryWeak
	}
	return Result{Category: cat, Checks: c}
}
