package editor

import "strings"

// Средняя скорость чтения, слов в минуту.
const wordsPerMinute = 200

// ReadingTimeMinutes оценивает время чтения текста: ceil(слова/200),
// но не меньше одной минуты.
func ReadingTimeMinutes(plain string) int {
	words := len(strings.Fields(plain))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
