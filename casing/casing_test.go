package casing

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/erraggy/wordcase/wcerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		conv   Convention
		want   string
	}{
		// Empty input renders as empty for every convention
		{name: "camel empty", tokens: nil, conv: Camel, want: ""},
		{name: "kebab empty", tokens: []string{}, conv: Kebab, want: ""},
		{name: "snake empty", tokens: nil, conv: Snake, want: ""},
		{name: "start empty", tokens: nil, conv: Start, want: ""},

		// Camel
		{name: "camel simple", tokens: []string{"Merry", "NEW", "Year"}, conv: Camel, want: "merryNewYear"},
		{name: "camel single token", tokens: []string{"DUKES"}, conv: Camel, want: "dukes"},
		{name: "camel digits in the middle", tokens: []string{"I", "will", "give", "you", "50", "bucks"}, conv: Camel, want: "iWillGiveYou50Bucks"},
		{name: "camel leading digit token", tokens: []string{"1", "dollar"}, conv: Camel, want: "1Dollar"},
		{name: "camel digit suffix", tokens: []string{"the", "80s"}, conv: Camel, want: "the80S"},

		// Kebab
		{name: "kebab simple", tokens: []string{"Merry", "NEW", "Year"}, conv: Kebab, want: "merry-new-year"},
		{name: "kebab digits", tokens: []string{"1", "dollar"}, conv: Kebab, want: "1-dollar"},
		{name: "kebab digit suffix", tokens: []string{"the", "80s"}, conv: Kebab, want: "the-80s"},

		// Snake
		{name: "snake simple", tokens: []string{"Merry", "NEW", "Year"}, conv: Snake, want: "merry_new_year"},
		{name: "snake single token", tokens: []string{"35000"}, conv: Snake, want: "35000"},

		// Start
		{name: "start simple", tokens: []string{"Merry", "NEW", "Year"}, conv: Start, want: "Merry New Year"},
		{name: "start first token capitalized", tokens: []string{"the", "sports", "watch"}, conv: Start, want: "The Sports Watch"},
		{name: "start digit suffix", tokens: []string{"the", "80s"}, conv: Start, want: "The 80S"},
		{name: "start digits only", tokens: []string{"35000"}, conv: Start, want: "35000"},

		// Unknown conventions do not panic
		{name: "invalid convention", tokens: []string{"Merry", "NEW"}, conv: Convention(99), want: "Merry NEW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.tokens, tt.conv)
			assert.Equal(t, tt.want, got, "Render(%q, %s)", tt.tokens, tt.conv)
		})
	}
}

func TestRenderSeq(t *testing.T) {
	got := RenderSeq(slices.Values([]string{"dollar", "And", "CENT"}), Start)
	assert.Equal(t, "Dollar And Cent", got)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single uppercase letter", input: "A", want: "A"},
		{name: "single digit", input: "1", want: "1"},
		{name: "lowercase word", input: "bucks", want: "Bucks"},
		{name: "uppercase word", input: "NEW", want: "New"},
		{name: "mixed case", input: "hELLO", want: "Hello"},
		{name: "leading digits", input: "80s", want: "80S"},
		{name: "digits between letters", input: "v2beta", want: "V2beta"},
		{name: "digits only", input: "35000", want: "35000"},
		{name: "unicode lowercase", input: "über", want: "Über"},
		{name: "unicode uppercase", input: "ÜBER", want: "Über"},
		{name: "uncased letters", input: "日本語", want: "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Capitalize(tt.input)
			assert.Equal(t, tt.want, got, "Capitalize(%q)", tt.input)
		})
	}
}

func TestLower(t *testing.T) {
	assert.Equal(t, "new", Lower("NEW"))
	assert.Equal(t, "80s", Lower("80S"))
	assert.Equal(t, "über", Lower("ÜBER"))
	assert.Equal(t, "", Lower(""))
}

func TestConvention_String(t *testing.T) {
	assert.Equal(t, "camel", Camel.String())
	assert.Equal(t, "kebab", Kebab.String())
	assert.Equal(t, "snake", Snake.String())
	assert.Equal(t, "start", Start.String())
	assert.Equal(t, "unknown", Convention(-1).String())
}

func TestConvention_Separator(t *testing.T) {
	assert.Equal(t, "", Camel.Separator())
	assert.Equal(t, "-", Kebab.Separator())
	assert.Equal(t, "_", Snake.Separator())
	assert.Equal(t, " ", Start.Separator())
}

func TestConventions(t *testing.T) {
	all := Conventions()
	assert.Equal(t, []Convention{Camel, Kebab, Snake, Start}, all)
	for _, c := range all {
		assert.True(t, c.IsValid(), "%s should be valid", c)
	}
	assert.False(t, Convention(4).IsValid())
	assert.False(t, Convention(-1).IsValid())
}

func TestParseConvention(t *testing.T) {
	tests := []struct {
		input string
		want  Convention
	}{
		{"camel", Camel},
		{"camelCase", Camel},
		{"CAMEL", Camel},
		{"lower-camel", Camel},
		{"kebab", Kebab},
		{"kebab-case", Kebab},
		{"dash", Kebab},
		{"snake", Snake},
		{"snake_case", Snake},
		{"start", Start},
		{"Start Case", Start},
		{"title", Start},
		{"  start  ", Start},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConvention(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown names", func(t *testing.T) {
		for _, name := range []string{"", "pascal", "screaming_snake", "camel kebab"} {
			_, err := ParseConvention(name)
			require.Error(t, err, "ParseConvention(%q)", name)
			assert.ErrorIs(t, err, wcerrors.ErrConfig)

			var cfgErr *wcerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "convention", cfgErr.Option)
			assert.Equal(t, name, cfgErr.Value)
		}
	})
}

func TestConvention_TextMarshaling(t *testing.T) {
	t.Run("json round trip", func(t *testing.T) {
		type payload struct {
			Convention Convention `json:"convention"`
		}
		data, err := json.Marshal(payload{Convention: Snake})
		require.NoError(t, err)
		assert.JSONEq(t, `{"convention":"snake"}`, string(data))

		var back payload
		require.NoError(t, json.Unmarshal([]byte(`{"convention":"Start Case"}`), &back))
		assert.Equal(t, Start, back.Convention)
	})

	t.Run("invalid value does not marshal", func(t *testing.T) {
		_, err := Convention(7).MarshalText()
		assert.ErrorIs(t, err, wcerrors.ErrConfig)
	})

	t.Run("unknown name does not unmarshal", func(t *testing.T) {
		var c Convention
		assert.ErrorIs(t, c.UnmarshalText([]byte("pascal")), wcerrors.ErrConfig)
	})
}
