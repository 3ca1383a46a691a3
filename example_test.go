package wordcase_test

import (
	"fmt"
	"strings"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/casing"
)

func Example() {
	fmt.Println(wordcase.ToCamelCase("I will give you <50> bucks"))
	fmt.Println(wordcase.ToKebabCase("MerryNEWYear!"))
	fmt.Println(wordcase.ToSnakeCase("In Philàdèlphia, it is wõrth 50 bucks."))
	fmt.Println(wordcase.ToStartCase("...the sports-watch of the '80s."))
	// Output:
	// iWillGiveYou50Bucks
	// merry-new-year
	// in_philadelphia_it_is_worth_50_bucks
	// The Sports Watch Of The 80S
}

func ExampleTokenizeWords() {
	fmt.Printf("%q\n", wordcase.TokenizeWords("DollarAndCent dollar-and-cent"))
	// Output: ["Dollar" "And" "Cent" "dollar" "and" "cent"]
}

func ExampleFoldDiacritics() {
	fmt.Println(wordcase.FoldDiacritics("My Göd! Thé Dûkęs"))
	// Output: My God! The Dukes
}

func ExampleConvertWithOptions() {
	result, err := wordcase.ConvertWithOptions(
		wordcase.WithReader(strings.NewReader("Crème Brûlée recipe")),
		wordcase.WithConvention(casing.Snake),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Output)
	fmt.Println(result.Tokens)
	// Output:
	// creme_brulee_recipe
	// [Creme Brulee recipe]
}
