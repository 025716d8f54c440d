// Package encoding implements the bit level building blocks of an instruction encoding:
// opcode patterns with don't care bits and operand fields scattered across an instruction word.
package encoding

import (
	"strings"

	"github.com/Manu343726/isagen/pkg/utils"
)

// Supported instruction word widths, in bits
const (
	CompressedWidth = 16
	StandardWidth   = 32
)

// Characters allowed as separators in pattern templates. They are ignored by the parser
const patternSeparators = " \t_|"

// Fixed bits of an instruction word. A word matches the pattern when word & Mask == Value
type BitPattern struct {
	// Instruction word width in bits (16 or 32)
	Width int
	// Bits set to 1 are fixed by the pattern
	Mask uint32
	// Expected value of the fixed bits. Never has bits outside of Mask set
	Value uint32
}

// Parses a pattern template like "0000000 ----- ----- 000 ----- 0110011" into a BitPattern.
// The leftmost character is the most significant bit. '0' and '1' are fixed bits, '-' means don't care
func ParsePattern(template string, width int) (BitPattern, error) {
	if width != CompressedWidth && width != StandardWidth {
		return BitPattern{}, utils.MakeError(ErrMalformedPattern, "unsupported width %v (expected %v or %v)", width, CompressedWidth, StandardWidth)
	}

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(patternSeparators, r) {
			return -1
		}
		return r
	}, template)

	if len(cleaned) != width {
		return BitPattern{}, utils.MakeError(ErrMalformedPattern, "'%v' has %v bits, expected %v", template, len(cleaned), width)
	}

	pattern := BitPattern{Width: width}

	for i, c := range cleaned {
		bit := width - 1 - i

		switch c {
		case '0':
			pattern.Mask |= 1 << bit
		case '1':
			pattern.Mask |= 1 << bit
			pattern.Value |= 1 << bit
		case '-':
		default:
			return BitPattern{}, utils.MakeError(ErrMalformedPattern, "'%v' has invalid character '%c' at bit %v", template, c, bit)
		}
	}

	return pattern, nil
}

// Like ParsePattern() but infers the width from the template length
func ParsePatternAuto(template string) (BitPattern, error) {
	length := 0
	for _, r := range template {
		if !strings.ContainsRune(patternSeparators, r) {
			length++
		}
	}

	return ParsePattern(template, length)
}

// Like ParsePattern() but panics on error. Meant for static instruction tables
func MustParsePattern(template string, width int) BitPattern {
	pattern, err := ParsePattern(template, width)
	if err != nil {
		panic(err)
	}

	return pattern
}

// Returns true if the word has all the fixed bits of the pattern
func (p BitPattern) Matches(word uint32) bool {
	return word&p.Mask == p.Value
}

// Number of fixed bits of the pattern
func (p BitPattern) Specificity() int {
	return utils.PopCount(p.Mask)
}

// Returns true if some word matches both patterns
func (p BitPattern) Overlaps(other BitPattern) bool {
	return (p.Value^other.Value)&p.Mask&other.Mask == 0
}

// Returns true if every word matching other also matches p, that is, p fixes a subset of the bits of other
// and both agree on them
func (p BitPattern) Covers(other BitPattern) bool {
	return p.Mask&other.Mask == p.Mask && other.Value&p.Mask == p.Value
}

// Returns true if the pattern is more specific than other: it fixes all the bits other fixes and at least one more
func (p BitPattern) StrictlyRefines(other BitPattern) bool {
	return other.Covers(p) && p.Mask != other.Mask
}

// Returns the smallest word matching the pattern
func (p BitPattern) Example() uint32 {
	return p.Value
}

// Returns the pattern template, most significant bit first, with no separators
func (p BitPattern) String() string {
	var builder strings.Builder

	for bit := p.Width - 1; bit >= 0; bit-- {
		switch {
		case p.Mask&(1<<bit) == 0:
			builder.WriteByte('-')
		case p.Value&(1<<bit) != 0:
			builder.WriteByte('1')
		default:
			builder.WriteByte('0')
		}
	}

	return builder.String()
}
