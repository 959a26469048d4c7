// Package letters implements the 26-wide letter-count vector arithmetic
// that the dictionary, construction, and journal packages are all built on.
package letters

import "strings"

// Vector is a fixed 26-element non-negative integer count, indexed by
// letter (0 = 'a', 25 = 'z'). It is always passed by value.
type Vector [26]int

// FromString builds a Vector from a word, counting only a-z/A-Z runes and
// ignoring everything else. Callers that have already normalized input
// (lowercased, stripped) pay no extra cost; callers that haven't still get
// a safe vector instead of a panic.
func FromString(s string) Vector {
	var v Vector
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			v[r-'a']++
		} else if r >= 'A' && r <= 'Z' {
			v[r-'A']++
		}
	}
	return v
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	var r Vector
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub returns v - o. Callers must only subtract when GreaterOrEqual(o) is
// known to hold; otherwise entries go negative and downstream comparisons
// become meaningless.
func (v Vector) Sub(o Vector) Vector {
	var r Vector
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}

// GreaterOrEqual reports whether v has at least as many of every letter as o.
func (v Vector) GreaterOrEqual(o Vector) bool {
	for i := range v {
		if v[i] < o[i] {
			return false
		}
	}
	return true
}

// Equal reports whether v and o hold exactly the same counts.
func (v Vector) Equal(o Vector) bool {
	return v == o
}

// Sum returns the total letter count.
func (v Vector) Sum() int {
	total := 0
	for _, c := range v {
		total += c
	}
	return total
}

// IsZero reports whether v has no letters at all.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// String reconstructs the canonical sorted-letter-multiset representation,
// e.g. {e:1,h:1,l:2,o:1} -> "ehllo". Used for lettersUsed on move events and
// for debugging.
func (v Vector) String() string {
	var b strings.Builder
	for i, c := range v {
		for j := 0; j < c; j++ {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

// Letters returns the canonical sorted multiset as a slice of single-rune
// strings, matching the "lettersUsed" shape in move events.
func (v Vector) Letters() []string {
	out := make([]string, 0, v.Sum())
	for i, c := range v {
		for j := 0; j < c; j++ {
			out = append(out, string(rune('a'+i)))
		}
	}
	return out
}

// CountOf returns the count for a single lowercase letter; index out of
// range (non a-z) returns 0.
func (v Vector) CountOf(letter byte) int {
	if letter < 'a' || letter > 'z' {
		return 0
	}
	return v[letter-'a']
}
