// SPDX-License-Identifier: MIT

package builder

import "strconv"

// IDFn maps a zero-based vertex index to a vertex name.
// Implementations must be pure and never return an empty string.
type IDFn func(idx int) string

// DecimalID returns idx in base 10: 0→"0", 42→"42".
func DecimalID(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnID returns spreadsheet-style column names: 0→"A", 25→"Z", 26→"AA".
// Negative indexes fall back to DecimalID.
func ExcelColumnID(idx int) string {
	if idx < 0 {
		return DecimalID(idx)
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
