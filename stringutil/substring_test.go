package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstring(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		start, end int
		want       string
		wantOK     bool
	}{
		{"leading word", "Dollar and Cent", 0, 6, "Dollar", true},
		{"middle word", "Dollar and Cent", 7, 10, "and", true},
		{"trailing word", "Dollar and Cent", 11, 15, "Cent", true},
		{"whole string", "Dollar and Cent", 0, 15, "Dollar and Cent", true},
		{"empty range", "Dollar", 3, 3, "", true},
		{"empty range at end", "Dollar", 6, 6, "", true},
		{"counts runes not bytes", "Crème Brûlée", 6, 12, "Brûlée", true},
		{"end past string", "Cent", 2, 5, "", false},
		{"start past string", "Cent", 5, 6, "", false},
		{"reversed", "Cent", 3, 1, "", false},
		{"negative start", "Cent", -1, 2, "", false},
		{"empty string", "", 0, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Substring(tt.s, tt.start, tt.end)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
