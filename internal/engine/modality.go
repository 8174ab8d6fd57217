package engine

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slog"
)

// Evaluate decides whether a bet hits a drawing. view is the 7-slot prize
// view (index 0 is the 1st prize, empty string for absent slots), ranks the
// placements the bet covers. Unknown modality codes are logged and checked
// as plain milhar so a misconfigured product never silently loses.
func Evaluate(modality string, guesses []string, view []string, ranks []int, logger *slog.Logger) bool {
	modality = strings.ToLower(strings.TrimSpace(modality))

	var prizes []string
	for _, r := range ranks {
		if r < 1 || r > len(view) {
			continue
		}
		p := strings.TrimSpace(view[r-1])
		if p != "" && len(p) >= 2 {
			prizes = append(prizes, zfill(p, 4))
		}
	}
	if len(prizes) == 0 {
		return false
	}

	rightPairs := make([]string, len(prizes))
	leftPairs := make([]string, len(prizes))
	middlePairs := make([]string, len(prizes))
	groups := make([]int, len(prizes))
	groupsLeft := make([]int, len(prizes))
	groupsMiddle := make([]int, len(prizes))
	for i, p := range prizes {
		rightPairs[i] = RightPair(p)
		leftPairs[i] = LeftPair(p)
		middlePairs[i] = MiddlePair(p)
		groups[i] = GroupOf(rightPairs[i])
		groupsLeft[i] = GroupOf(leftPairs[i])
		groupsMiddle[i] = GroupOf(middlePairs[i])
	}

	var clean []string
	for _, g := range guesses {
		g = strings.TrimSpace(g)
		if g != "" {
			clean = append(clean, g)
		}
	}
	if len(clean) == 0 {
		return false
	}

	switch {
	case modality == "milhar":
		return anyExact(clean, prizes)

	case modality == "milhar_ct":
		// Wins on the exact milhar or on the trailing centena. The payout
		// layer decides which multiplier applies.
		for _, guess := range clean {
			for _, prize := range prizes {
				if zfill(guess, 4) == prize {
					return true
				}
				if len(guess) >= 3 && strings.HasSuffix(prize, guess[len(guess)-3:]) {
					return true
				}
			}
		}

	case strings.HasPrefix(modality, "milhar_inv"):
		for _, guess := range clean {
			for _, prize := range prizes {
				if IsPermutation(guess, prize, 4) {
					return true
				}
			}
		}

	case modality == "centena":
		for _, guess := range clean {
			if len(guess) < 3 {
				continue
			}
			for _, prize := range prizes {
				if strings.HasSuffix(prize, guess[len(guess)-3:]) {
					return true
				}
			}
		}

	case modality == "centena_esquerda" || modality == "centena_esq":
		for _, guess := range clean {
			if len(guess) < 3 {
				continue
			}
			for _, prize := range prizes {
				if strings.HasPrefix(prize, guess[:3]) {
					return true
				}
			}
		}

	case modality == "centena_3x":
		// Centena at any anchor of the milhar: right, left or middle.
		for _, guess := range clean {
			g := guess
			if len(g) >= 3 {
				g = g[len(g)-3:]
			}
			g = zfill(g, 3)
			for _, prize := range prizes {
				if strings.HasSuffix(prize, g) {
					return true
				}
				if len(prize) >= 4 && prize[:3] == g {
					return true
				}
				if len(prize) >= 4 && prize[1:4] == g {
					return true
				}
			}
		}

	case strings.HasPrefix(modality, "centena_inv"):
		left := strings.Contains(modality, "esq")
		for _, guess := range clean {
			for _, prize := range prizes {
				if left {
					if IsPermutationLeft(guess, prize, 3) {
						return true
					}
				} else if IsPermutation(guess, prize, 3) {
					return true
				}
			}
		}

	case modality == "dezena":
		return anyPairIn(clean, rightPairs)

	case modality == "dezena_esq":
		return anyPairIn(clean, leftPairs)

	case modality == "dezena_meio":
		return anyPairIn(clean, middlePairs)

	case modality == "grupo":
		return anyGroupIn(clean, groups)

	case modality == "grupo_esq":
		return anyGroupIn(clean, groupsLeft)

	case modality == "grupo_meio":
		return anyGroupIn(clean, groupsMiddle)

	case modality == "unidade":
		for _, guess := range clean {
			u := guess[len(guess)-1:]
			for _, prize := range prizes {
				if u == LastDigit(prize) {
					return true
				}
			}
		}

	case strings.HasPrefix(modality, "duque_dez"):
		if len(clean) < 2 {
			return false
		}
		pairs := pairSetFor(modality, rightPairs, leftPairs, middlePairs)
		return contains(pairs, normPair(clean[0])) && contains(pairs, normPair(clean[1]))

	case strings.HasPrefix(modality, "duque_gp"):
		if len(clean) < 2 {
			return false
		}
		gps := groupSetFor(modality, groups, groupsLeft, groupsMiddle)
		g1, err1 := strconv.Atoi(clean[0])
		g2, err2 := strconv.Atoi(clean[1])
		if err1 != nil || err2 != nil {
			return false
		}
		return containsInt(gps, g1) && containsInt(gps, g2)

	case strings.HasPrefix(modality, "terno_dez"):
		if len(clean) < 3 {
			return false
		}
		pairs := pairSetFor(modality, rightPairs, leftPairs, middlePairs)
		if strings.Contains(modality, "seco") && len(pairs) > 3 {
			pairs = pairs[:3]
		}
		for _, guess := range clean[:3] {
			if !contains(pairs, normPair(guess)) {
				return false
			}
		}
		return true

	case strings.HasPrefix(modality, "terno_gp"):
		if len(clean) < 3 {
			return false
		}
		gps := groupSetFor(modality, groups, groupsLeft, groupsMiddle)
		return allGroupsIn(clean[:3], gps)

	case strings.HasPrefix(modality, "quadra_gp"):
		if len(clean) < 4 {
			return false
		}
		gps := groupSetFor(modality, groups, groupsLeft, groupsMiddle)
		return allGroupsIn(clean[:4], gps)

	case strings.HasPrefix(modality, "quina_gp"):
		// 8 chosen groups, at least 5 must appear among the first 5 prizes.
		if len(clean) < 8 {
			return false
		}
		gps := groupSetFor(modality, groups, groupsLeft, groupsMiddle)
		if len(gps) > 5 {
			gps = gps[:5]
		}
		return countGroupHits(clean[:8], gps) >= 5

	case strings.HasPrefix(modality, "sena_gp"):
		// 10 chosen groups, at least 6 must appear among the first 6 prizes.
		if len(clean) < 10 {
			return false
		}
		gps := groupSetFor(modality, groups, groupsLeft, groupsMiddle)
		if len(gps) > 6 {
			gps = gps[:6]
		}
		return countGroupHits(clean[:10], gps) >= 6

	case modality == "passe_vai":
		if len(clean) < 2 || len(groups) < 2 {
			return false
		}
		g1, err1 := strconv.Atoi(clean[0])
		g2, err2 := strconv.Atoi(clean[1])
		if err1 != nil || err2 != nil {
			return false
		}
		return groups[0] == g1 && groups[1] == g2

	case modality == "passe_vai_vem":
		if len(clean) < 2 || len(groups) < 2 {
			return false
		}
		g1, err1 := strconv.Atoi(clean[0])
		g2, err2 := strconv.Atoi(clean[1])
		if err1 != nil || err2 != nil {
			return false
		}
		return (groups[0] == g1 && groups[1] == g2) || (groups[0] == g2 && groups[1] == g1)

	case modality == "palpitao":
		return anyExact(clean, prizes)

	case strings.HasPrefix(modality, "lotinha_"),
		strings.HasPrefix(modality, "quininha_"),
		strings.HasPrefix(modality, "seninha_"):
		// These settle against dedicated CAIXA drawings in the settlement
		// loop. This path only serves a direct call with a single drawing.
		needed := AccumulatedHitsNeeded(modality)
		if needed == 0 {
			return false
		}
		guessed := SplitAccumulatedGuess(clean[0])
		if len(guessed) == 0 {
			return false
		}
		drawn := make(map[string]bool, len(prizes))
		for _, prize := range prizes {
			drawn[RightPair(prize)] = true
		}
		hits := 0
		for pair := range guessed {
			if drawn[pair] {
				hits++
			}
		}
		return hits >= needed

	default:
		if logger != nil {
			logger.Warn("unrecognized modality, checking as milhar", "modality", modality)
		}
		return anyExact(clean, prizes)
	}

	return false
}

// AccumulatedHitsNeeded returns how many dezenas an accumulated game must
// hit, or 0 for other modalities.
func AccumulatedHitsNeeded(modality string) int {
	switch {
	case strings.HasPrefix(modality, "lotinha_"):
		return 4
	case strings.HasPrefix(modality, "quininha_"):
		return 5
	case strings.HasPrefix(modality, "seninha_"):
		return 6
	}
	return 0
}

// SplitAccumulatedGuess decodes a "03-06-13-18-24-28" guess into a set of
// zero-padded dezenas.
func SplitAccumulatedGuess(guess string) map[string]bool {
	out := make(map[string]bool)
	for _, part := range strings.Split(strings.ReplaceAll(guess, " ", ""), "-") {
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err != nil {
			continue
		}
		out[zfill(part, 2)] = true
	}
	return out
}

func anyExact(guesses, prizes []string) bool {
	for _, guess := range guesses {
		for _, prize := range prizes {
			if zfill(guess, 4) == prize {
				return true
			}
		}
	}
	return false
}

func normPair(guess string) string {
	if len(guess) >= 2 {
		guess = guess[len(guess)-2:]
	}
	return zfill(guess, 2)
}

func anyPairIn(guesses, pairs []string) bool {
	for _, guess := range guesses {
		if contains(pairs, normPair(guess)) {
			return true
		}
	}
	return false
}

func anyGroupIn(guesses []string, groups []int) bool {
	for _, guess := range guesses {
		g, err := strconv.Atoi(guess)
		if err != nil {
			continue
		}
		if containsInt(groups, g) {
			return true
		}
	}
	return false
}

func allGroupsIn(guesses []string, groups []int) bool {
	for _, guess := range guesses {
		g, err := strconv.Atoi(guess)
		if err != nil {
			return false
		}
		if !containsInt(groups, g) {
			return false
		}
	}
	return true
}

func countGroupHits(guesses []string, groups []int) int {
	seen := make(map[int]bool)
	for _, guess := range guesses {
		g, err := strconv.Atoi(guess)
		if err != nil {
			continue
		}
		if containsInt(groups, g) {
			seen[g] = true
		}
	}
	return len(seen)
}

func pairSetFor(modality string, right, left, middle []string) []string {
	switch {
	case strings.Contains(modality, "esq"):
		return left
	case strings.Contains(modality, "meio"):
		return middle
	}
	return right
}

func groupSetFor(modality string, right, left, middle []int) []int {
	switch {
	case strings.Contains(modality, "esq"):
		return left
	case strings.Contains(modality, "meio"):
		return middle
	}
	return right
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
