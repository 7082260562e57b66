// Package suggest turns the vision model's free-text reply into structured
// caption/hashtag suggestions. The split is a line-prefix heuristic, not a
// grammar: model phrasing varies and the parser is best-effort by design.
package suggest

import (
	"strings"

	"github.com/ds124wfegd/meme-generator/internal/entity"
)

// the prompt asks for 3 captions; anything past that accretes into the
// description
const maxCaptions = 3

// Parse splits raw on newlines and routes each non-empty line by prefix:
// lines starting with '#' become hashtags, up to three plain lines before
// the first hashtag become captions, everything else joins the
// description. Empty input yields three empty fields.
func Parse(raw string) entity.Suggestion {
	result := entity.Suggestion{
		Captions: []string{},
		Hashtags: []string{},
	}

	var description strings.Builder
	var seenHashtag bool

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "-• ")
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#"):
			result.Hashtags = append(result.Hashtags, strings.TrimLeft(line, "#"))
			seenHashtag = true
		case !seenHashtag && len(result.Captions) < maxCaptions:
			result.Captions = append(result.Captions, line)
		default:
			description.WriteString(line)
			description.WriteString(" ")
		}
	}

	result.Description = strings.TrimRight(description.String(), " \t")
	return result
}
