package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	pattern, err := ParsePattern("0000000 ----- ----- 000 ----- 0110011", 32)

	require.NoError(t, err)
	assert.Equal(t, uint32(0xfe00707f), pattern.Mask)
	assert.Equal(t, uint32(0x00000033), pattern.Value)
	assert.Equal(t, 17, pattern.Specificity())
	assert.Zero(t, pattern.Value&^pattern.Mask)
	assert.True(t, pattern.Matches(0x00a10133))
	assert.False(t, pattern.Matches(0x40a10133))
	assert.Equal(t, "0000000----------000-----0110011", pattern.String())
}

func TestParsePattern_Compressed(t *testing.T) {
	pattern, err := ParsePattern("100 1-- --- 00 000 10", 16)

	require.NoError(t, err)
	assert.Equal(t, 16, pattern.Width)
	assert.Equal(t, uint32(0xf07f), pattern.Mask)
	assert.Equal(t, uint32(0x9002), pattern.Value)
}

func TestParsePattern_Separators(t *testing.T) {
	spaced := MustParsePattern("0000000 ----- ----- 000 ----- 0110011", 32)
	underscored := MustParsePattern("0000000_-----_-----|000|-----_0110011", 32)

	assert.Equal(t, spaced, underscored)
}

func TestParsePattern_Malformed(t *testing.T) {
	_, err := ParsePattern("0000000------ 000-----0010011", 32)
	assert.ErrorIs(t, err, ErrMalformedPattern)

	_, err = ParsePattern("0000000 ----- ----- 0x0 ----- 0110011", 32)
	assert.ErrorIs(t, err, ErrMalformedPattern)

	_, err = ParsePattern("000000000000000000000000", 24)
	assert.ErrorIs(t, err, ErrMalformedPattern)
}

func TestParsePatternAuto(t *testing.T) {
	pattern, err := ParsePatternAuto("010 --- --- -- --- 00")

	require.NoError(t, err)
	assert.Equal(t, CompressedWidth, pattern.Width)

	_, err = ParsePatternAuto("0101")
	assert.ErrorIs(t, err, ErrMalformedPattern)
}

func TestBitPattern_Relations(t *testing.T) {
	addi := MustParsePattern("------- ----- ----- 000 ----- 0010011", 32)
	nop := MustParsePattern("0000000 00000 00000 000 00000 0010011", 32)
	slti := MustParsePattern("------- ----- ----- 010 ----- 0010011", 32)

	assert.True(t, addi.Overlaps(nop))
	assert.True(t, addi.Covers(nop))
	assert.False(t, nop.Covers(addi))
	assert.True(t, nop.StrictlyRefines(addi))
	assert.False(t, addi.StrictlyRefines(addi))
	assert.False(t, addi.Overlaps(slti))
	assert.True(t, addi.Matches(nop.Example()))
}

func TestBitPattern_DisjointFixedBits(t *testing.T) {
	slli := MustParsePattern("0000000 ----- ----- 000 ----- 0010011", 32)
	srai := MustParsePattern("0100000 ----- ----- 101 ----- 0010011", 32)

	assert.False(t, slli.Overlaps(srai))
	assert.False(t, srai.Overlaps(slli))
}
