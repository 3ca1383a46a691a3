package wordcase

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/wordcase/casing"
)

// contextStrings exercise separators, digits, accents, acronyms and emoji.
var contextStrings = []string{
	"I will give you <50> bucks",
	"In Philàdèlphia, it is wõrth 50 bucks.",
	"--1-dollar__",
	"I believe we paid < 35000",
	"\tMerryNEWYear! 😊",
	"\nThis is *the* sports-watch of the '80s.",
}

func TestConventions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		want []string
	}{
		{
			name: "camel",
			fn:   ToCamelCase,
			want: []string{
				"iWillGiveYou50Bucks",
				"inPhiladelphiaItIsWorth50Bucks",
				"1Dollar",
				"iBelieveWePaid35000",
				"merryNewYear",
				"thisIsTheSportsWatchOfThe80S",
			},
		},
		{
			name: "kebab",
			fn:   ToKebabCase,
			want: []string{
				"i-will-give-you-50-bucks",
				"in-philadelphia-it-is-worth-50-bucks",
				"1-dollar",
				"i-believe-we-paid-35000",
				"merry-new-year",
				"this-is-the-sports-watch-of-the-80s",
			},
		},
		{
			name: "snake",
			fn:   ToSnakeCase,
			want: []string{
				"i_will_give_you_50_bucks",
				"in_philadelphia_it_is_worth_50_bucks",
				"1_dollar",
				"i_believe_we_paid_35000",
				"merry_new_year",
				"this_is_the_sports_watch_of_the_80s",
			},
		},
		{
			name: "start",
			fn:   ToStartCase,
			want: []string{
				"I Will Give You 50 Bucks",
				"In Philadelphia It Is Worth 50 Bucks",
				"1 Dollar",
				"I Believe We Paid 35000",
				"Merry New Year",
				"This Is The Sports Watch Of The 80S",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, input := range contextStrings {
				assert.Equal(t, tt.want[i], tt.fn(input), "input %q", input)
			}
		})
	}
}

func TestLiteralScenarios(t *testing.T) {
	assert.Equal(t,
		[]string{"The", "Dukes", "ruined", "my", "life", "over", "a", "bet", "For", "how", "much"},
		TokenizeWords("The Dukes... ruined my life... over a bet? For how much?"))
	assert.Equal(t,
		[]string{"Dollar", "And", "Cent", "dollar", "and", "cent"},
		TokenizeWords("DollarAndCent dollar-and-cent"))
	assert.Equal(t, "God", FoldDiacritics("Göd"))
	assert.Equal(t, "iWillGiveYou50Bucks", ToCamelCase("I will give you <50> bucks"))
	assert.Equal(t, "The Sports Watch Of The 80S", ToStartCase("...the sports-watch of the '80s."))
	assert.Equal(t, "merry-new-year", ToKebabCase("MerryNEWYear!"))
	assert.Equal(t, "merryNewYear", ToCamelCase("MerryNEWYear!"))
}

func TestFoldDiacritics(t *testing.T) {
	in := "My Göd! Thé Dûkęs àrè gôïng tò cõrnėr the entīre frózen ôrange jūice mårket!"
	want := "My God! The Dukes are going to corner the entire frozen orange juice market!"
	assert.Equal(t, want, FoldDiacritics(in))
	assert.Equal(t, want, FoldDiacritics(FoldDiacritics(in)))
}

func TestTokenizeWordsDoesNotFold(t *testing.T) {
	assert.Equal(t, []string{"Philàdèlphia", "wõrth"}, TokenizeWords("Philàdèlphia wõrth"))
}

func TestConvertDecomposedInput(t *testing.T) {
	// "e" followed by a combining acute accent composes to "é" and folds.
	assert.Equal(t, "cafe-creme", Convert("cafe\u0301 cre\u0300me", casing.Kebab))
}

func TestConvertEmpty(t *testing.T) {
	for _, c := range casing.Conventions() {
		assert.Empty(t, Convert("", c), c.String())
		assert.Empty(t, Convert(" ...?! 😊", c), c.String())
	}
	assert.Empty(t, TokenizeWords(""))
}

func TestConvertInvalidConvention(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, "Merry NEW Year", Convert("Merry NEW Year", casing.Convention(42)))
	})
}

func TestTokenizeProperties(t *testing.T) {
	inputs := append([]string{"DollarAndCent dollar-and-cent", "The Dukes... ruined my life"}, contextStrings...)

	t.Run("deterministic", func(t *testing.T) {
		for _, s := range inputs {
			assert.Equal(t, TokenizeWords(s), TokenizeWords(s))
		}
	})

	t.Run("separator insensitive", func(t *testing.T) {
		for _, s := range inputs {
			spaced := strings.ReplaceAll(s, " ", " \t  ")
			assert.Equal(t, TokenizeWords(s), TokenizeWords(spaced), "input %q", s)
		}
	})

	t.Run("kebab round trip", func(t *testing.T) {
		for _, s := range []string{"DollarAndCent dollar-and-cent", "MerryNEWYear!", "I will give you <50> bucks"} {
			var lowered []string
			for _, tok := range TokenizeWords(FoldDiacritics(s)) {
				lowered = append(lowered, strings.ToLower(tok))
			}
			assert.Equal(t, lowered, TokenizeWords(ToKebabCase(s)), "input %q", s)
		}
	})

	t.Run("no empty tokens", func(t *testing.T) {
		for _, s := range inputs {
			for _, tok := range TokenizeWords(s) {
				assert.NotEmpty(t, tok)
			}
		}
	})
}

func TestConcurrentConvert(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := contextStrings[i%len(contextStrings)]
			want := ToSnakeCase(s)
			for range 100 {
				assert.Equal(t, want, ToSnakeCase(s))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkToCamelCase(b *testing.B) {
	for b.Loop() {
		for _, s := range contextStrings {
			_ = ToCamelCase(s)
		}
	}
}
