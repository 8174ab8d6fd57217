package engine

// reverseDigits returns s reversed. Prize numbers are ASCII digits, so a
// byte reversal is safe.
func reverseDigits(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ReverseView produces the maluca reading of a 7-slot prize view. With full
// set, every prize with at least 4 digits is reversed (the LOTECE pattern).
// Otherwise only ranks 1-5 are reversed and ranks 6-7 are blanked, because
// the maluca 6th and 7th derive from ranks 8-9 of the base drawing, which
// the store never holds.
func ReverseView(view []string, full bool) []string {
	out := make([]string, len(view))
	copy(out, view)

	limit := 5
	if full {
		limit = len(out)
	}
	for i := 0; i < limit && i < len(out); i++ {
		if len(out[i]) >= 4 {
			out[i] = reverseDigits(out[i])
		}
	}
	if !full {
		for i := 5; i < len(out); i++ {
			out[i] = ""
		}
	}
	return out
}
