package editor

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("слово ", n))
}

func TestReadingTimeMinutes(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{50, 1},
		{200, 1},
		{201, 2},
		{400, 2},
		{401, 3},
	}

	for _, c := range cases {
		if got := ReadingTimeMinutes(words(c.words)); got != c.want {
			t.Fatalf("%d слов: ожидалось %d мин, получено %d", c.words, c.want, got)
		}
	}
}

func TestReadingTimeMinutes_WhitespaceOnly(t *testing.T) {
	if got := ReadingTimeMinutes("   \n\t  "); got != 1 {
		t.Fatalf("пустой текст должен давать 1 минуту, получено %d", got)
	}
}
