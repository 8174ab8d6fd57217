package scraper

import "github.com/ultrabanca/results-engine/internal/models"

// samePublication reports whether two prize lists belong to the same draw.
// The sites publish ranks 1-5 first and later extend the same table to 1-7
// or 1-10; if the overlapping milhares agree, it is one draw in two
// versions.
func samePublication(a, b []models.Prize) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i].Number != b[i].Number {
			return false
		}
	}
	return true
}

// Deduplicate collapses drawings sharing (time, house, lottery). Same draw:
// keep the longer publication, or merge animal labels at equal length.
// Genuinely different draws in the same slot (PE publishes AVAL and LOTEP at
// 11:00): keep the one with more prizes.
func Deduplicate(drawings []models.Drawing) []models.Drawing {
	merged := make(map[string]int)
	var out []models.Drawing

	for _, d := range drawings {
		key := d.Key()
		idx, ok := merged[key]
		if !ok {
			merged[key] = len(out)
			out = append(out, d)
			continue
		}

		existing := &out[idx]
		if samePublication(d.Prizes, existing.Prizes) {
			if len(d.Prizes) > len(existing.Prizes) {
				*existing = d
			} else if len(d.Prizes) == len(existing.Prizes) {
				for i := range existing.Prizes {
					if existing.Prizes[i].Animal == "" && d.Prizes[i].Animal != "" {
						existing.Prizes[i].Animal = d.Prizes[i].Animal
					}
				}
			}
		} else if len(d.Prizes) > len(existing.Prizes) {
			*existing = d
		}
	}

	return out
}
