package nlparse

import "strconv"

// numberWords maps normalized Arabic number words to values. Feminine and
// masculine count forms are both listed because colloquial text mixes
// them freely.
var numberWords = map[string]int{
	"واحد":   1,
	"واحده":  1,
	"اثنين":  2,
	"اثنان":  2,
	"ثلاثه":  3,
	"ثلاث":   3,
	"اربعه":  4,
	"اربع":   4,
	"خمسه":   5,
	"خمس":    5,
	"سته":    6,
	"ست":     6,
	"سبعه":   7,
	"سبع":    7,
	"ثمانيه": 8,
	"ثماني":  8,
	"تسعه":   9,
	"تسع":    9,
	"عشره":   10,
	"عشر":    10,
	"عشرين":  20,
	"ثلاثين": 30,
}

// parseCount reads a count token: ASCII digits (Arabic-Indic digits were
// already normalized) or a number word.
func parseCount(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return n, true
	}
	if n, ok := numberWords[token]; ok {
		return n, true
	}
	return 0, false
}
