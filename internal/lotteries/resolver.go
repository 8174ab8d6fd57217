package lotteries

import "strings"

// Resolve returns the drawing mapping for a bet token. Unmapped tokens come
// back with ok=false and are ignored by settlement.
func Resolve(token string) (Mapping, bool) {
	mapping, ok := tokenTable[token]
	return mapping, ok
}

// Key returns the drawing-map key a token settles against.
func (m Mapping) Key() string {
	return m.Time + "_" + string(m.House) + "_" + string(m.Lottery)
}

// NeedsReversal reports whether the token settles against a reversed reading
// of its base drawing. BAHIA MALUCA is excluded: its drawings are published
// separately and need no transform.
func NeedsReversal(token string) bool {
	return strings.HasSuffix(token, "_maluca") && !strings.HasPrefix(token, "ba_maluca")
}

// FullReversal reports whether the reversal covers all seven prizes. LOTECE
// publishes a full reversed table; every other house only reverses prizes
// 1-5, with 6-7 deriving from ranks the store never holds.
func FullReversal(token string) bool {
	return strings.HasPrefix(token, "ce_")
}

// Tokens returns every registered token. Used by settlement to find which
// tokens already have a stored drawing.
func Tokens() []string {
	out := make([]string, 0, len(tokenTable))
	for token := range tokenTable {
		out = append(out, token)
	}
	return out
}
