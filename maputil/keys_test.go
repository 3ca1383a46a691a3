package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]string
		want  []string
	}{
		{
			name:  "convention separators",
			input: map[string]string{"snake": "_", "camel": "", "start": " ", "kebab": "-"},
			want:  []string{"camel", "kebab", "snake", "start"},
		},
		{"one key", map[string]string{"fold": "true"}, []string{"fold"}},
		{"empty map", map[string]string{}, []string{}},
		{"nil map", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortedKeys(tt.input))
		})
	}
}

func TestSortedKeys_RuneKeys(t *testing.T) {
	folds := map[rune]rune{'é': 'e', 'À': 'A', 'ø': 'o'}
	assert.Equal(t, []rune{'À', 'é', 'ø'}, SortedKeys(folds))
}

func TestSortedKeys_IntKeys(t *testing.T) {
	counts := map[int][]string{3: {"a", "b", "c"}, 1: {"x"}, 2: {"y", "z"}}
	assert.Equal(t, []int{1, 2, 3}, SortedKeys(counts))
}
