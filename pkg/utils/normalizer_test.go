package utils_test

import (
	"testing"

	"github.com/jergadic/jergadic/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase and trim",
			input:    "  Chido  ",
			expected: "chido",
		},
		{
			name:     "collapse inner whitespace",
			input:    "qué   onda",
			expected: "qué onda",
		},
		{
			name:     "accents preserved",
			input:    "Güey",
			expected: "güey",
		},
		{
			name:     "empty input",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, utils.NormalizeWord(tt.input))
		})
	}
}

func TestFoldAccents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "diaeresis stripped",
			input:    "güey",
			expected: "guey",
		},
		{
			name:     "acute accents stripped",
			input:    "qué onda marrón",
			expected: "que onda marron",
		},
		{
			name:     "enye preserved",
			input:    "año",
			expected: "año",
		},
		{
			name:     "mixed enye and accents",
			input:    "ñángara está",
			expected: "ñangara esta",
		},
		{
			name:     "uppercase folds to lowercase",
			input:    "CHÉVERE",
			expected: "chevere",
		},
		{
			name:     "plain ascii unchanged",
			input:    "bacano",
			expected: "bacano",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, utils.FoldAccents(tt.input))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	// Queries match regardless of how the searcher accented the word.
	assert.Equal(t, utils.NormalizeQuery("  GÜEY "), utils.NormalizeQuery("guey"))
	assert.Equal(t, "que padre", utils.NormalizeQuery("  Qué   Padre "))
}
