package sliceutil

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEach(t *testing.T) {
	var sb strings.Builder
	got := Each([]string{"A", "B", "C"}, func(s string) { sb.WriteString(s) })
	assert.Equal(t, []string{"A", "B", "C"}, got)
	assert.Equal(t, "ABC", sb.String())
}

func TestEachWhen(t *testing.T) {
	var sb strings.Builder
	got := EachWhen([]string{"A", "B", "C"},
		func(s string) bool { return s <= "B" },
		func(s string) { sb.WriteString(s) },
	)
	assert.Equal(t, []string{"A", "B", "C"}, got)
	assert.Equal(t, "AB", sb.String())
}

func TestCycle(t *testing.T) {
	var sb strings.Builder
	Cycle([]string{"1", "2", "3"}, 2, func(s string) { sb.WriteString(s) })
	assert.Equal(t, "123123", sb.String())

	sb.Reset()
	Cycle([]string{"1"}, 0, func(s string) { sb.WriteString(s) })
	assert.Empty(t, sb.String())
}

func TestEvery(t *testing.T) {
	hasGry := func(s string) bool { return strings.HasSuffix(s, "gry") }
	assert.True(t, Every([]string{"angry", "hungry"}, hasGry))
	assert.False(t, Every([]string{"angry", "happy"}, hasGry))
	assert.True(t, Every([]string{}, hasGry), "vacuously true")
}

func TestIndexOf(t *testing.T) {
	s := []string{"foo", "spam", "bar", "eggs"}
	assert.Equal(t, 1, IndexOf(s, "spam"))
	assert.Equal(t, -1, IndexOf(s, "NONE"))
}

func TestFetch(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	tests := []struct {
		name   string
		index  int
		want   int
		wantOK bool
	}{
		{name: "first", index: 0, want: 1, wantOK: true},
		{name: "last by negative", index: -1, want: 8, wantOK: true},
		{name: "first by negative", index: -8, want: 1, wantOK: true},
		{name: "too far back", index: -9, wantOK: false},
		{name: "too far forward", index: 100, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Fetch(s, tt.index)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, 42, FetchOr(s, 100, 42))
	assert.Equal(t, 8, FetchOr(s, -1, 42))
}

func TestGet(t *testing.T) {
	s := []string{"foo", "bar"}
	got, ok := Get(s, 0)
	assert.True(t, ok)
	assert.Equal(t, "foo", got)

	_, ok = Get(s, 1000)
	assert.False(t, ok)
	_, ok = Get(s, -1)
	assert.False(t, ok, "Get does not count from the end")
}

func TestFindIndex(t *testing.T) {
	s := []string{"foo", "bar", "spam", "eggs"}
	isFour := func(s string) bool { return len(s) == 4 }
	assert.Equal(t, 2, FindIndex(s, isFour))
	assert.Equal(t, 3, FindLastIndex(s, isFour))

	isLong := func(s string) bool { return len(s) > 10 }
	assert.Equal(t, -1, FindIndex(s, isLong))
	assert.Equal(t, -1, FindLastIndex(s, isLong))
}

func TestFind(t *testing.T) {
	s := []string{"foo", "bar", "spam", "eggs"}

	got, ok := Find(s, func(s string) bool { return len(s) == 4 })
	require.True(t, ok)
	assert.Equal(t, "spam", got)

	got, ok = Find(s, func(s string) bool { return strings.HasPrefix(s, "b") })
	require.True(t, ok)
	assert.Equal(t, "bar", got)

	_, ok = Find(s, func(s string) bool { return len(s) > 10 })
	assert.False(t, ok)

	_, ok = Find([]string(nil), func(string) bool { return true })
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"keeps evens in order", []int{1, 2, 3, 4, 5, 6}, []int{2, 4, 6}},
		{"none match", []int{1, 3, 5}, []int{}},
		{"nil input", nil, []int{}},
	}
	isEven := func(n int) bool { return n%2 == 0 }

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.in, isEven))
		})
	}

	in := []int{1, 2, 3}
	_ = Filter(in, isEven)
	assert.Equal(t, []int{1, 2, 3}, in, "input is not modified")
}

func TestInRange(t *testing.T) {
	tests := []struct {
		v    int
		want bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{2, true},
		{3, false},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.v), func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(tt.v, 0, 2))
		})
	}
	assert.True(t, InRange("m", "a", "z"))
	assert.False(t, InRange(5, 3, 1), "empty interval contains nothing")
}

func TestFirstLast(t *testing.T) {
	first, ok := First([]string{"foo", "bar"})
	assert.True(t, ok)
	assert.Equal(t, "foo", first)

	last, ok := Last([]string{"foo", "bar"})
	assert.True(t, ok)
	assert.Equal(t, "bar", last)

	_, ok = First([]string(nil))
	assert.False(t, ok)
	_, ok = Last([]string{})
	assert.False(t, ok)
}

func TestInitialRest(t *testing.T) {
	s := []string{"foo", "bar", "spam"}
	assert.Equal(t, []string{"foo", "bar"}, Initial(s, 1))
	assert.Equal(t, []string{"foo"}, Initial(s, 2))
	assert.Empty(t, Initial(s, 5))
	assert.Equal(t, s, Initial(s, -1))

	assert.Equal(t, []string{"bar", "spam"}, Rest(s, 1))
	assert.Equal(t, []string{"spam"}, Rest(s, 2))
	assert.Empty(t, Rest(s, 5))
	assert.Equal(t, s, Rest(s, 0))
}

func TestMinMax(t *testing.T) {
	lo, ok := Min([]int{1, 0, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 0, lo)

	hi, ok := Max([]int{1, 3, 0, 2})
	assert.True(t, ok)
	assert.Equal(t, 3, hi)

	_, ok = Min([]int{})
	assert.False(t, ok)
	_, ok = Max([]string(nil))
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	s := []string{"A", "B", "C", "D", "E"}
	s, ok := Remove(s, "B")
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "C", "D", "E"}, s)

	s, ok = Remove(s, "Z")
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "C", "D", "E"}, s)
}

func TestContains(t *testing.T) {
	s := []string{"A", "B", "C", "D", "E"}
	assert.True(t, Contains(s, "C"))
	assert.False(t, Contains(s, "Z"))
}

func TestReduceWithIndex(t *testing.T) {
	got := ReduceWithIndex([]string{"A", "B", "C", "D", "E"}, "", func(acc string, i int, e string) string {
		return acc + e + strconv.Itoa(i)
	})
	assert.Equal(t, "A0B1C2D3E4", got)
}

func TestZipObject(t *testing.T) {
	assert.Equal(t, map[string]int{"Frank": 12, "Ted": 77}, ZipObject([]string{"Frank", "Ted"}, []int{12, 77}))
	assert.Equal(t, map[string]int{"Frank": 12}, ZipObject([]string{"Frank", "Ted"}, []int{12}))
	assert.Empty(t, ZipObject([]string(nil), []int{1}))
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, IsNotEmpty([]int{1, 2, 3}))
	assert.False(t, IsNotEmpty([]int{}))
	assert.False(t, IsNotEmpty([]int(nil)))
}

func TestFlatten(t *testing.T) {
	nested := []any{"foo", []any{"bar"}, []any{[]any{"spam"}}, []any{[]any{[]string{"eggs"}}}}
	assert.Equal(t, []string{"foo", "bar", "spam", "eggs"}, Flatten[string](nested))

	assert.Equal(t, []int{1, 2, 3, 4}, Flatten[int]([][]int{{1, 2}, {3}, {}, {4}}))
	assert.Equal(t, []int{1, 2, 3}, Flatten[int]([]any{1, "skip", nil, [2]int{2, 3}}), "leaves of other types are dropped")
	assert.Empty(t, Flatten[string](nil))
}

func TestDifference(t *testing.T) {
	s := []string{"B", "A", "C", "E", "D"}
	assert.Equal(t, []string{"B", "A", "E", "D"}, Difference(s, "C"))
	assert.Equal(t, []string{"B", "A", "D"}, Difference(s, "E", "C"))
	assert.Equal(t, []string{"B", "A", "C", "E", "D"}, s, "input is not modified")
}

func TestMove(t *testing.T) {
	s := []string{"B", "A", "C", "E", "D"}
	require.True(t, Move(s, 1, 2))
	assert.Equal(t, []string{"B", "C", "A", "E", "D"}, s)

	Move(s, 0, 2)
	Move(s, 1, 2)
	Move(s, 4, 3)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, s)

	assert.False(t, Move(s, 0, 5))
	assert.False(t, Move(s, -1, 0))
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, s)
}
