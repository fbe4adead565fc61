package nlp

import "strings"

// WordSeparator joins the syllables of a segmented word.
const WordSeparator = "_"

// DefaultWords are multi-syllable Vietnamese words the assistant cares about.
// Entries must not overlap correction outputs, otherwise normalization would
// stop being idempotent.
var DefaultWords = []string{
	"sơ sinh", "người lớn", "mới sinh", "sinh non",
	"mệt mỏi", "quấy khóc", "chán ăn", "nhức đầu", "nổi hạch", "buồn nôn",
	"dị ứng", "phát ban", "co giật",
	"phế cầu", "viêm gan", "thủy đậu", "uốn ván", "bạch hầu", "ho gà",
	"bại liệt", "quai bị", "tiêu chảy", "viêm não", "nhật bản", "màng não",
	"sốt xuất huyết", "sốt rét", "ung thư", "cổ tử cung", "hấp phụ",
	"miễn dịch", "suy giảm", "mang thai", "phụ nữ", "tiểu đường", "tự kỷ",
	"hải sản", "huyết áp", "hen suyễn", "bệnh tim",
	"tiêm chủng", "tác dụng", "triệu chứng", "độ tuổi", "địa điểm",
}

// Segmenter performs greedy longest-match word segmentation over
// space-separated syllables.
type Segmenter struct {
	words  map[string]struct{}
	maxLen int
}

// NewSegmenter builds a segmenter from a word list. Words are lowercased and
// their syllables split on whitespace.
func NewSegmenter(words []string) *Segmenter {
	s := &Segmenter{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		syllables := strings.Fields(strings.ToLower(w))
		if len(syllables) < 2 {
			continue
		}
		s.words[strings.Join(syllables, " ")] = struct{}{}
		if len(syllables) > s.maxLen {
			s.maxLen = len(syllables)
		}
	}
	return s
}

// Segment joins known words with WordSeparator. Already joined tokens are
// never split or extended, so Segment(Segment(x)) == Segment(x).
func (s *Segmenter) Segment(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return ""
	}

	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		n := s.longestMatch(tokens[i:])
		if n > 1 {
			out = append(out, strings.Join(tokens[i:i+n], WordSeparator))
			i += n
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return strings.Join(out, " ")
}

func (s *Segmenter) longestMatch(tokens []string) int {
	limit := s.maxLen
	if len(tokens) < limit {
		limit = len(tokens)
	}
	for n := limit; n > 1; n-- {
		candidate := tokens[:n]
		if containsJoined(candidate) {
			continue
		}
		if _, ok := s.words[strings.Join(candidate, " ")]; ok {
			return n
		}
	}
	return 1
}

func containsJoined(tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(t, WordSeparator) {
			return true
		}
	}
	return false
}

// Unsegment turns segmented text back into plain space-separated words.
func Unsegment(text string) string {
	return strings.ReplaceAll(text, WordSeparator, " ")
}
