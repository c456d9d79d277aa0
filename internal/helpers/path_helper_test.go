package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSegment(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Documents", "Documents"},
		{"slash", "B/c", "B_c"},
		{"spaces and dots", "tax 2024.final", "tax_2024_final"},
		{"hyphen", "native-1234", "native_1234"},
		{"unicode", "résumé", "r_sum_"},
		{"underscore kept", "a_b", "a_b"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeSegment(tc.input))
		})
	}
}

func TestSanitizeSegment_Deterministic(t *testing.T) {
	assert.Equal(t, SanitizeSegment("a/b c"), SanitizeSegment("a/b c"))
	// Collisions are possible and accepted.
	assert.Equal(t, SanitizeSegment("a-b"), SanitizeSegment("a_b"))
}

func TestComposePath(t *testing.T) {
	assert.Equal(t, "A", ComposePath("", "A"))
	assert.Equal(t, "A.B_c", ComposePath("A", "B/c"))
	assert.Equal(t, "A.B_c.deep", ComposePath("A.B_c", "deep"))
}
