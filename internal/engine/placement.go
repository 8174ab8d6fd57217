package engine

import (
	"strconv"
	"strings"
)

// ParsePlacement decodes the colocacao field of a bet into the 1-based prize
// ranks to inspect. The grammar in the wild:
//
//	"geral"            -> ranks 1..7
//	"1_premio"         -> [1]
//	"1_5_premio"       -> [1 2 3 4 5]
//	"1_ao_5_premio"    -> [1 2 3 4 5]
//	"1_e_1_5_premio"   -> union of each _e_ part
//
// Ranks clamp at 7 and anything unparseable falls back to [1].
func ParsePlacement(placement string) []int {
	if placement == "geral" {
		return []int{1, 2, 3, 4, 5, 6, 7}
	}

	var ranks []int
	seen := make(map[int]bool)
	add := func(r int) {
		if r > 7 {
			r = 7
		}
		if r >= 1 && !seen[r] {
			seen[r] = true
			ranks = append(ranks, r)
		}
	}
	addRange := func(lo, hi int) {
		if hi > 7 {
			hi = 7
		}
		for r := lo; r <= hi; r++ {
			add(r)
		}
	}

	switch {
	case strings.Contains(placement, "_e_"):
		parts := strings.Split(strings.ReplaceAll(placement, "_premio", ""), "_e_")
		for _, part := range parts {
			nums := extractInts(part)
			if len(nums) == 1 {
				add(nums[0])
			} else if len(nums) >= 2 {
				addRange(nums[0], nums[len(nums)-1])
			}
		}
	case strings.Contains(placement, "_premio"):
		cleaned := strings.ReplaceAll(placement, "_premio", "")
		cleaned = strings.ReplaceAll(cleaned, "_ao_", "_")
		nums := extractInts(cleaned)
		if len(nums) == 1 {
			add(nums[0])
		} else if len(nums) >= 2 {
			addRange(nums[0], nums[len(nums)-1])
		}
	}

	if len(ranks) == 0 {
		return []int{1}
	}
	return ranks
}

func extractInts(s string) []int {
	var nums []int
	for _, field := range strings.Split(s, "_") {
		if n, err := strconv.Atoi(field); err == nil {
			nums = append(nums, n)
		}
	}
	return nums
}
