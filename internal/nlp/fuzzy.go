package nlp

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// DefaultCutoff is the minimum Similarity accepted as a fuzzy match.
const DefaultCutoff = 80

// Process lowercases s, replaces every non letter/digit rune with a space
// and collapses whitespace. Word separators therefore do not affect scores.
func Process(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// Ratio is 100 * (1 - distance / longer length), on runes.
func Ratio(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 100
	}
	if la == 0 || lb == 0 {
		return 0
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	d := levenshtein.ComputeDistance(a, b)
	return round(100 * (1 - float64(d)/float64(longest)))
}

// TokenSortRatio compares a and b after sorting their tokens.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

// PartialRatio is the best Ratio of the shorter string against every
// equally long window of the longer one.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	best := 0
	s := string(short)
	for i := 0; i+len(short) <= len(long); i++ {
		if r := Ratio(s, string(long[i:i+len(short)])); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// Similarity is a weighted 0..100 score combining plain, token-sort and
// partial ratios. Inputs are run through Process first.
func Similarity(a, b string) int {
	a, b = Process(a), Process(b)
	if a == "" || b == "" {
		return 0
	}

	base := Ratio(a, b)
	la, lb := float64(len([]rune(a))), float64(len([]rune(b)))
	lenRatio := math.Max(la, lb) / math.Min(la, lb)

	if lenRatio < 1.5 {
		return maxInt(base, round(float64(TokenSortRatio(a, b))*0.95))
	}

	scale := 0.9
	if lenRatio > 8 {
		scale = 0.6
	}
	partial := round(float64(PartialRatio(a, b)) * scale)
	partialSorted := round(float64(PartialRatio(sortTokens(a), sortTokens(b))) * scale * 0.95)
	return maxInt(base, maxInt(partial, partialSorted))
}

// ExtractOne returns the first choice with the highest Similarity to query,
// provided that score reaches cutoff.
func ExtractOne(query string, choices []string, cutoff int) (string, int, bool) {
	best, bestScore := "", -1
	for _, c := range choices {
		if score := Similarity(query, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < cutoff {
		return "", bestScore, false
	}
	return best, bestScore, true
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func round(f float64) int {
	return int(math.Round(f))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
