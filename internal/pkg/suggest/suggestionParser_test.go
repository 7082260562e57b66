package suggest

import (
	"testing"

	"github.com/ds124wfegd/meme-generator/internal/entity"
	"github.com/stretchr/testify/assert"
)

// The parser is a heuristic over free-form model output. These tests pin
// its behavior on inputs it is designed for; they are not a contract for
// arbitrary phrasing.
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected entity.Suggestion
	}{
		{
			name: "empty input",
			raw:  "",
			expected: entity.Suggestion{
				Captions: []string{},
				Hashtags: []string{},
			},
		},
		{
			name: "captions hashtags and description",
			raw:  "Caption one\nCaption two\n#funny\n#meme\nA short description here",
			expected: entity.Suggestion{
				Captions:    []string{"Caption one", "Caption two"},
				Hashtags:    []string{"funny", "meme"},
				Description: "A short description here",
			},
		},
		{
			name: "bullet prefixes are trimmed",
			raw:  "- First caption\n• Second caption\n- #tag",
			expected: entity.Suggestion{
				Captions: []string{"First caption", "Second caption"},
				Hashtags: []string{"tag"},
			},
		},
		{
			name: "blank lines are skipped",
			raw:  "\n\nOnly caption\n\n#solo\n\n",
			expected: entity.Suggestion{
				Captions: []string{"Only caption"},
				Hashtags: []string{"solo"},
			},
		},
		{
			name: "repeated hash marks are stripped",
			raw:  "##doublehash",
			expected: entity.Suggestion{
				Captions: []string{},
				Hashtags: []string{"doublehash"},
			},
		},
		{
			name: "description accumulates across lines",
			raw:  "one\ntwo\nthree\nfour\nfive",
			expected: entity.Suggestion{
				Captions:    []string{"one", "two", "three"},
				Hashtags:    []string{},
				Description: "four five",
			},
		},
		{
			name: "plain line after hashtags joins the description",
			raw:  "Only caption\n#tag\nTrailing prose, not a caption",
			expected: entity.Suggestion{
				Captions:    []string{"Only caption"},
				Hashtags:    []string{"tag"},
				Description: "Trailing prose, not a caption",
			},
		},
		{
			name: "hashtags unbounded after caption limit",
			raw:  "a\nb\nc\nd\n#x\n#y\n#z",
			expected: entity.Suggestion{
				Captions:    []string{"a", "b", "c"},
				Hashtags:    []string{"x", "y", "z"},
				Description: "d",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.raw))
		})
	}
}

// TestParseCaptionLimit feeds many non-hashtag lines and checks that the
// caption list never grows past three.
func TestParseCaptionLimit(t *testing.T) {
	raw := "l1\nl2\nl3\nl4\nl5\nl6\nl7"

	result := Parse(raw)

	assert.Len(t, result.Captions, 3)
	assert.Equal(t, []string{"l1", "l2", "l3"}, result.Captions)
	assert.Equal(t, "l4 l5 l6 l7", result.Description)
}
