package formula

import (
	"regexp"
	"strconv"
	"strings"
)

var refPattern = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)

// EncodeRef converts a zero-based (column, row) pair into its display label.
// Columns use base-26 letters with no zero digit (0 -> "A", 25 -> "Z",
// 26 -> "AA"), rows are 1-based in display form.
func EncodeRef(col, row int) string {
	var letters []byte
	c := col
	for {
		letters = append([]byte{byte('A' + c%26)}, letters...)
		c = c/26 - 1
		if c < 0 {
			break
		}
	}
	return string(letters) + strconv.Itoa(row+1)
}

// DecodeRef is the inverse of EncodeRef. It fails with a MalformedReference
// error when the label does not match `^[A-Za-z]+[0-9]+$` or addresses row 0.
func DecodeRef(label string) (col int, row int, err error) {
	if !refPattern.MatchString(label) {
		return 0, 0, NewMalformedReference(label)
	}

	letterEnd := 0
	for letterEnd < len(label) && isRefLetter(label[letterEnd]) {
		letterEnd++
	}

	for _, ch := range strings.ToUpper(label[:letterEnd]) {
		col = col*26 + int(ch-'A') + 1
	}
	col--

	rowNum, convErr := strconv.Atoi(label[letterEnd:])
	if convErr != nil || rowNum < 1 {
		return 0, 0, NewMalformedReference(label)
	}

	return col, rowNum - 1, nil
}

// NormalizeRef upper-cases the column letters of a reference label.
func NormalizeRef(label string) string {
	return strings.ToUpper(label)
}

// IsRef reports whether s has the shape of a cell reference label.
func IsRef(s string) bool {
	return refPattern.MatchString(s)
}

func isRefLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}
