package outofscope

import "regexp"

// RelatedIntents are always considered domain related.
var RelatedIntents = []string{
	"ask_vaccine_for_new_disease",
	"ask_vaccine_for_special_condition",
}

// KeywordPatterns mark a query text as domain related.
var KeywordPatterns = []string{
	`vaccine`, `vắc[-\s]?xin`, `tiêm`, `bệnh`, `phòng`, `viêm`, `virus`,
	`cúm`, `sởi`, `uốn ván`, `bạch hầu`, `phế cầu`, `hpv`, `thủy đậu`,
}

// Classifier decides whether an unmatched query is worth recording.
type Classifier struct {
	intents  map[string]struct{}
	patterns []*regexp.Regexp
}

func NewClassifier() *Classifier {
	c := &Classifier{intents: make(map[string]struct{}, len(RelatedIntents))}
	for _, i := range RelatedIntents {
		c.intents[i] = struct{}{}
	}
	for _, p := range KeywordPatterns {
		c.patterns = append(c.patterns, regexp.MustCompile(`(?i)`+p))
	}
	return c
}

// IsRelated reports whether intent is whitelisted or text matches a keyword.
func (c *Classifier) IsRelated(text, intent string) bool {
	if _, ok := c.intents[intent]; ok {
		return true
	}
	for _, re := range c.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
