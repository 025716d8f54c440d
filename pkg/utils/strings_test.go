package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUint(t *testing.T) {
	assert.Equal(t, "00101", FormatUintBinary(5, 5))
	assert.Equal(t, "0x0000007f", FormatUintHex(0x7f, 8))
	assert.Equal(t, "1, 2, 3", FormatSlice([]int{1, 2, 3}, ", "))
}

func TestParseUint(t *testing.T) {
	for _, text := range []string{"0x00a10133", "0X00A10133", "10551603", "0b1010_0001_0000_0001_0011_0011", " 0x00a1_0133 "} {
		value, err := ParseUint(text, 32)
		assert.NoError(t, err, text)
		assert.Equal(t, uint64(0x00a10133), value, text)
	}

	_, err := ParseUint("0x100000000", 32)
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = ParseUint("add", 32)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestCIdentifier(t *testing.T) {
	assert.Equal(t, "FCVT_W_S", CIdentifier("fcvt.w.s"))
	assert.Equal(t, "C_ADDI4SPN", CIdentifier("c.addi4spn"))
	assert.Equal(t, "LB_RR", CIdentifier("lb_rr"))
	assert.Equal(t, "P_MULSNR", CIdentifier("p.mulsNR"))
	assert.Equal(t, "_8BIT", CIdentifier("8bit"))
}

func TestSortedKeysAndEntries(t *testing.T) {
	input := map[string]int{"b": 2, "a": 1, "c": 3}

	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(input))

	var keys []string
	var values []int

	for key, value := range SortedEntries(input) {
		keys = append(keys, key)
		values = append(values, value)

		if key == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []int{1, 2}, values)
}

func TestFilterAndAny(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }

	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	assert.True(t, Any([]int{1, 2}, even))
	assert.False(t, Any([]int{1, 3}, even))
	assert.Equal(t, []int{1, 2, 3}, Sorted([]int{3, 1, 2}))
}
