package personalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags_NonArrayInput(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"nil", nil},
		{"string", "modern"},
		{"number", 42.0},
		{"object", map[string]interface{}{"a": 1}},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeTags(tt.input)

			assert.NotNil(t, result)
			assert.Empty(t, result)
		})
	}
}

func TestNormalizeTags_NormalizesAndDeduplicates(t *testing.T) {
	input := []interface{}{"A", "a", " b ", "", "B", "c"}

	result := NormalizeTags(input)

	assert.Equal(t, []string{"a", "b", "c"}, result)
}

func TestNormalizeTags_PreservesInsertionOrder(t *testing.T) {
	input := []interface{}{"Zebra", "apple", "Mango"}

	result := NormalizeTags(input)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, result)
}

func TestNormalizeTags_SkipsNonStringElements(t *testing.T) {
	input := []interface{}{"modern", 3.0, nil, "minimal"}

	result := NormalizeTags(input)

	assert.Equal(t, []string{"modern", "minimal"}, result)
}

func TestNormalizeTags_StringSlice(t *testing.T) {
	result := NormalizeTags([]string{"Dark ", "dark", "Light"})

	assert.Equal(t, []string{"dark", "light"}, result)
}
