package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint32(0x1f), AllOnes[uint32](5))
	assert.Equal(t, uint32(0xffffffff), AllOnes[uint32](32))
	assert.Equal(t, uint16(0), AllOnes[uint16](0))
}

func TestPopCountAndSetBits(t *testing.T) {
	assert.Equal(t, 3, PopCount(uint32(0b1011)))
	assert.Equal(t, []int{0, 1, 3}, SetBits(uint32(0b1011)))
	assert.Empty(t, SetBits(uint32(0)))
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, int64(-2048), SignExtend(0x1800, 13))
	assert.Equal(t, int64(0x7ff), SignExtend(0x7ff, 12))
	assert.Equal(t, int64(-1), SignExtend(0xfff, 12))
	assert.Equal(t, int64(5), SignExtend(5, 64))
}

func TestBitView(t *testing.T) {
	var value uint32 = 0xffffffff
	view := CreateBitView(&value)

	view.Write(0b00101, 7, 5)
	assert.Equal(t, uint32(0b00101), view.Read(7, 5))
	assert.Equal(t, uint32(0xfffff2ff), view.Value())

	view.Write(0xff, 0, 1)
	assert.Equal(t, uint32(0xfffff2ff), value)

	view.Write(0, 28, 4)
	assert.Equal(t, uint32(0x0ffff2ff), value)
	assert.Equal(t, uint32(0xf), view.Read(24, 4))
}
