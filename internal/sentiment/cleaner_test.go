package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text with punctuation",
			input: "I hate this product!",
			want:  "I hate this product",
		},
		{
			name:  "http url removed",
			input: "Check out http://example.com today",
			want:  "Check out today",
		},
		{
			name:  "https and www urls removed",
			input: "Check www.example.com and https://foo.bar/baz now",
			want:  "Check and now",
		},
		{
			name:  "url spanning line break",
			input: "first http://a.b/c\nsecond",
			want:  "first second",
		},
		{
			name:  "mentions and hashtags removed",
			input: "@user said #golang is neat",
			want:  "said is neat",
		},
		{
			name:  "only noise cleans to empty",
			input: "@user #hashtag http://x.com !!!",
			want:  "",
		},
		{
			name:  "whitespace collapsed and trimmed",
			input: "  lots\t\tof   space\n\nhere  ",
			want:  "lots of space here",
		},
		{
			name:  "apostrophes stripped from contractions",
			input: "don't panic",
			want:  "dont panic",
		},
		{
			name:  "non-ascii letters survive the symbol strip",
			input: "the café was très bien!",
			want:  "the café was très bien",
		},
		{
			name:  "non-ascii mention removed whole",
			input: "@usuário disse olá",
			want:  "disse olá",
		},
		{
			name:  "non-ascii hashtag removed whole",
			input: "loving #músicaBoa today",
			want:  "loving today",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"I hate this product!",
		"@user #hashtag http://x.com !!!",
		"already clean text",
		"  messy\t input with https://url.example and @noise  ",
		"o café de @usuário é #ótimo!",
		"",
	}

	for _, input := range inputs {
		once := Clean(input)
		assert.Equal(t, once, Clean(once), "cleaning twice must equal cleaning once for %q", input)
	}
}

func TestCleanLeavesOnlyWordsAndSingleSpaces(t *testing.T) {
	cleaned := Clean("Wow!! @you, this #thing at https://x.y is... fine?")
	for _, r := range cleaned {
		isWord := r == '_' || r == ' ' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		assert.True(t, isWord, "unexpected rune %q in %q", r, cleaned)
	}
	assert.NotContains(t, cleaned, "  ")
}
