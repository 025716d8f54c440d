package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Formats an uint value into a fixed width binary string of n bits
func FormatUintBinary(value uint64, bits int) string {
	leadingZerosFormat := "%0" + fmt.Sprint(bits) + "s"
	return fmt.Sprintf(leadingZerosFormat, strconv.FormatUint(value, 2))
}

// Formats an uint value into an fixed width hex string of n characters
func FormatUintHex(value uint64, digits int) string {
	leadingZerosFormat := "0x%0" + fmt.Sprint(digits) + "s"
	return fmt.Sprintf(leadingZerosFormat, strconv.FormatUint(value, 16))
}

// Parses an unsigned integer of the given bit size written in any Go integer literal syntax
// ("0x00a10133", "0b0100_0001", "16708")
func ParseUint(text string, bits int) (uint64, error) {
	value, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(text), "_", ""), 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid %v bit integer '%v': %w", bits, text, err)
	}

	return value, nil
}

// Returns an string containing all formatted sequence items separated by a given separator
func FormatSlice[T any](input []T, separator string) string {
	var builder strings.Builder

	for i, value := range input {
		builder.WriteString(fmt.Sprint(value))

		if i < len(input)-1 {
			builder.WriteString(separator)
		}
	}

	return builder.String()
}

// Converts an arbitrary name (e.g. "fcvt.w.s") into an upper case C identifier ("FCVT_W_S")
func CIdentifier(name string) string {
	var builder strings.Builder

	for i, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if i == 0 && unicode.IsDigit(r) {
				builder.WriteRune('_')
			}
			builder.WriteRune(unicode.ToUpper(r))
		default:
			builder.WriteRune('_')
		}
	}

	return builder.String()
}
