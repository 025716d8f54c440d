package emitter

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func withColors(t *testing.T, enabled bool) {
	previous := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = previous })
}

const highlightSample = `#include <stdint.h>
/* decode */
static const uint32_t mask = 0x0000707fu; // mask
int isa_decode(uint32_t word) { return ISA_INSTR_ADD; }
const char *name = "add // not a comment";
`

func TestHighlight(t *testing.T) {
	withColors(t, true)

	var out bytes.Buffer
	require.NoError(t, Highlight(&out, highlightSample))

	text := out.String()
	assert.Contains(t, text, colorDirective.Sprint("#include"))
	assert.Contains(t, text, colorComment.Sprint("/* decode */"))
	assert.Contains(t, text, colorKeyword.Sprint("static"))
	assert.Contains(t, text, colorType.Sprint("uint32_t"))
	assert.Contains(t, text, colorNumber.Sprint("0x0000707fu"))
	assert.Contains(t, text, colorComment.Sprint("// mask"))
	assert.Contains(t, text, colorFunction.Sprint("isa_decode"))
	assert.Contains(t, text, colorMacro.Sprint("ISA_INSTR_ADD"))
	assert.Contains(t, text, colorString.Sprint(`"add // not a comment"`))

	assert.Equal(t, highlightSample, ansiEscape.ReplaceAllString(text, ""))
}

func TestHighlight_NoColor(t *testing.T) {
	withColors(t, false)

	var out bytes.Buffer
	require.NoError(t, Highlight(&out, highlightSample))
	assert.Equal(t, highlightSample, out.String())
}

func TestHighlight_GeneratedCode(t *testing.T) {
	withColors(t, true)

	header, source := render(t, riscvTable(t))

	for _, code := range []string{header, source} {
		var out bytes.Buffer
		require.NoError(t, Highlight(&out, code))
		assert.Equal(t, code, ansiEscape.ReplaceAllString(out.String(), ""))
	}
}
