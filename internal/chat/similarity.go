package chat

import "strings"

// Ratio computes a similarity score in 0..1 between two strings using the
// Dice coefficient over character bigrams of the lowercased input. Equal
// strings score 1, disjoint strings score 0.
func Ratio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	runesA := []rune(a)
	runesB := []rune(b)
	if len(runesA) < 2 || len(runesB) < 2 {
		return 0
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)

	var overlap int
	for bg, n := range bigramsA {
		if m := bigramsB[bg]; m > 0 {
			if m < n {
				overlap += m
			} else {
				overlap += n
			}
		}
	}

	totalA := len(runesA) - 1
	totalB := len(runesB) - 1
	return 2 * float64(overlap) / float64(totalA+totalB)
}

func bigrams(s string) map[string]int {
	out := make(map[string]int, len(s))
	runes := []rune(s)
	for i := 0; i+1 < len(runes); i++ {
		out[string(runes[i:i+2])]++
	}
	return out
}

// BestWindowRatio slides a window of the candidate's word count over the
// question and returns the best ratio. A direct substring hit scores 1.
func BestWindowRatio(question, candidate string) float64 {
	q := strings.ToLower(question)
	c := strings.ToLower(strings.TrimSpace(candidate))
	if c == "" {
		return 0
	}
	if strings.Contains(q, c) {
		return 1
	}

	words := strings.Fields(q)
	width := len(strings.Fields(c))
	if width == 0 || len(words) == 0 {
		return 0
	}
	var best float64
	if width > len(words) {
		best = Ratio(q, c)
	}
	for i := 0; i+width <= len(words); i++ {
		window := strings.Join(words[i:i+width], " ")
		if r := Ratio(window, c); r > best {
			best = r
		}
	}

	// Company names are often referenced by a single distinctive word
	// ("Himalaya" for "Himalaya Wellness Company"), so also try word-level
	// matches. Short words are skipped to keep false hits down.
	for _, cw := range strings.Fields(c) {
		if len(cw) < 4 {
			continue
		}
		for _, qw := range words {
			if r := Ratio(qw, cw); r > best {
				best = r
			}
		}
	}
	return best
}
