// Package engine decides whether a bet's guesses hit a drawing, for every
// modality the platform sells.
package engine

import "strconv"

// zfill left-pads s with zeros to width n.
func zfill(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}

// RightPair returns the last two digits (dezena).
func RightPair(prize string) string {
	if len(prize) >= 2 {
		return prize[len(prize)-2:]
	}
	return zfill(prize, 2)
}

// LeftPair returns the first two digits.
func LeftPair(prize string) string {
	if len(prize) >= 2 {
		return prize[:2]
	}
	return zfill(prize, 2)
}

// MiddlePair returns the middle two digits of a 4-digit milhar.
func MiddlePair(prize string) string {
	if len(prize) >= 4 {
		return prize[1:3]
	}
	return RightPair(prize)
}

// RightTriple returns the last three digits (centena).
func RightTriple(prize string) string {
	if len(prize) >= 3 {
		return prize[len(prize)-3:]
	}
	return zfill(prize, 3)
}

// LeftTriple returns the first three digits.
func LeftTriple(prize string) string {
	if len(prize) >= 3 {
		return prize[:3]
	}
	return zfill(prize, 3)
}

// LastDigit returns the final digit (unidade).
func LastDigit(prize string) string {
	if prize == "" {
		return "0"
	}
	return prize[len(prize)-1:]
}

// GroupOf converts a dezena (00-99) to its bicho group (1-25). The dezena 00
// belongs to group 25; a non-numeric input yields group 0, which never
// matches a guess.
func GroupOf(pair string) int {
	n, err := strconv.Atoi(pair)
	if err != nil {
		return 0
	}
	if n == 0 {
		return 25
	}
	return ((n - 1) / 4) + 1
}

// digitCounts tallies each digit of s.
func digitCounts(s string) [10]int {
	var counts [10]int
	for _, c := range s {
		if c >= '0' && c <= '9' {
			counts[c-'0']++
		}
	}
	return counts
}

// IsPermutation reports whether the last n digits of guess are a permutation
// of the last n digits of prize.
func IsPermutation(guess, prize string, n int) bool {
	g := guess
	if len(g) > n {
		g = g[len(g)-n:]
	}
	p := prize
	if len(p) > n {
		p = p[len(p)-n:]
	}
	return digitCounts(zfill(g, n)) == digitCounts(zfill(p, n))
}

// IsPermutationLeft reports whether the first n digits of guess are a
// permutation of the first n digits of prize.
func IsPermutationLeft(guess, prize string, n int) bool {
	g := guess
	if len(g) > n {
		g = g[:n]
	}
	p := prize
	if len(p) > n {
		p = p[:n]
	}
	return digitCounts(zfill(g, n)) == digitCounts(zfill(p, n))
}
