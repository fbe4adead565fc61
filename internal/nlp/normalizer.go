package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalizer canonicalizes raw user text. It is safe for concurrent use.
type Normalizer struct {
	ageAliases  map[string]string
	segmenter   *Segmenter
	corrections []Correction
	protected   []string
}

// Options configures a Normalizer. Zero values fall back to the defaults.
type Options struct {
	AgeAliases  map[string]string
	Words       []string
	Corrections []Correction
	// Protected phrases are never rewritten by a correction that starts at
	// the same position, e.g. "vaxigrip tetra" must not become
	// "vaxigrip tetra tetra".
	Protected []string
}

func NewNormalizer(opts Options) *Normalizer {
	words := opts.Words
	if words == nil {
		words = DefaultWords
	}
	corrections := opts.Corrections
	if corrections == nil {
		corrections = DefaultCorrections
	}

	aliases := make(map[string]string, len(opts.AgeAliases))
	for k, v := range opts.AgeAliases {
		aliases[strings.ToLower(norm.NFC.String(k))] = v
	}

	seen := make(map[string]struct{})
	var protected []string
	addProtected := func(p string) {
		p = strings.ToLower(norm.NFC.String(strings.TrimSpace(p)))
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		protected = append(protected, p)
	}
	for _, p := range opts.Protected {
		addProtected(p)
	}
	for _, c := range corrections {
		addProtected(c.To)
	}

	return &Normalizer{
		ageAliases:  aliases,
		segmenter:   NewSegmenter(words),
		corrections: corrections,
		protected:   protected,
	}
}

// Normalize runs the fixed pipeline: NFC and lowercase, whole-string age
// alias, word segmentation, corrections, whitespace collapse, age alias again.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	value := strings.TrimSpace(strings.ToLower(norm.NFC.String(text)))
	value = n.alias(value)
	value = n.segmenter.Segment(value)
	for _, c := range n.corrections {
		value = n.replace(value, c)
	}
	value = strings.Join(strings.Fields(value), " ")
	return n.alias(value)
}

// Segment exposes the word segmenter.
func (n *Normalizer) Segment(text string) string {
	return n.segmenter.Segment(text)
}

func (n *Normalizer) alias(value string) string {
	if canonical, ok := n.ageAliases[value]; ok {
		return canonical
	}
	return value
}

// replace substitutes c.From on token boundaries, skipping positions where a
// protected phrase already starts.
func (n *Normalizer) replace(value string, c Correction) string {
	if c.From == "" || !strings.Contains(value, c.From) {
		return value
	}

	var b strings.Builder
	i := 0
	for i < len(value) {
		j := strings.Index(value[i:], c.From)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(c.From)
		if !isBoundary(value, start, end) || n.protectedAt(value, start) {
			b.WriteString(value[i:end])
			i = end
			continue
		}
		b.WriteString(value[i:start])
		b.WriteString(c.To)
		i = end
	}
	b.WriteString(value[i:])
	return b.String()
}

func (n *Normalizer) protectedAt(value string, start int) bool {
	rest := value[start:]
	for _, p := range n.protected {
		if strings.HasPrefix(rest, p) && isBoundary(value, start, start+len(p)) {
			return true
		}
	}
	return false
}

func isBoundary(value string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(value[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(value) {
		r, _ := utf8.DecodeRuneInString(value[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_'
}
