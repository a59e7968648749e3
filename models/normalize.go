package models

import (
	"strings"
	"unicode"
)

// titleWords normalizes a name to title case: first letter of every word
// upper, the rest lower ("summer LINEN shirt" -> "Summer Linen Shirt").
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
