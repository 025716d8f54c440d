package tools

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Manu343726/isagen/pkg/config"
	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/isa/riscv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T) *decoder.Table {
	table, err := decoder.NewBuilder(decoder.DefaultSettings()).Build(riscv.ISA(), instructions.NewFeatures())
	require.NoError(t, err)
	return table
}

func TestWriteDocs(t *testing.T) {
	var out bytes.Buffer

	// fld lives in a disabled subset, named instructions are documented anyway
	require.NoError(t, writeDocs(&out, riscv.ISA(), instructions.NewFeatures(), []string{"add", "fld"}))

	text := out.String()
	assert.Contains(t, text, "Format R, pattern")
	assert.Contains(t, text, "Encoding:")
	assert.Less(t, strings.Index(text, "add"), strings.Index(text, "fld"))
}

func TestWriteDocs_EnabledInstructions(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, writeDocs(&out, riscv.ISA(), instructions.NewFeatures(), nil))
	assert.Contains(t, out.String(), "c.nop")
	assert.NotContains(t, out.String(), "fld")
}

func TestWriteDocs_UnknownInstruction(t *testing.T) {
	err := writeDocs(io.Discard, riscv.ISA(), instructions.NewFeatures(), []string{"add", "frobnicate"})
	assert.ErrorIs(t, err, decoder.ErrUnknownInstruction)
	assert.ErrorContains(t, err, "frobnicate")
}

func newOutputCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().StringP("output", "o", "", "")
	return cmd
}

func TestWithOutput(t *testing.T) {
	fs := afero.NewMemMapFs()
	previous := config.Fs
	config.Fs = fs
	t.Cleanup(func() { config.Fs = previous })

	cmd := newOutputCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, withOutput(cmd, func(w io.Writer) error {
		_, err := io.WriteString(w, "to stdout")
		return err
	}))
	assert.Equal(t, "to stdout", stdout.String())

	require.NoError(t, cmd.Flags().Set("output", "/out/docs.txt"))
	require.NoError(t, withOutput(cmd, func(w io.Writer) error {
		_, err := io.WriteString(w, "to file")
		return err
	}))

	contents, err := afero.ReadFile(fs, "/out/docs.txt")
	require.NoError(t, err)
	assert.Equal(t, "to file", string(contents))

	failure := errors.New("write failed")
	assert.ErrorIs(t, withOutput(cmd, func(w io.Writer) error { return failure }), failure)
}

func TestBrowser_Rows(t *testing.T) {
	table := buildTable(t)
	rows := newBrowser(table).rows()

	require.Len(t, rows, len(table.Instructions))

	for i, row := range rows {
		assert.Len(t, row, len(browserColumns))
		assert.Equal(t, table.Instructions[i].Identifier, row[1])
	}

	nop, err := table.Lookup("nop")
	require.NoError(t, err)
	assert.Equal(t, "nop *", rows[nop.ID][0])
	assert.Equal(t, "32", rows[nop.ID][2])

	cnop, err := table.Lookup("c.nop")
	require.NoError(t, err)
	assert.Equal(t, "16", rows[cnop.ID][2])
}

func TestBrowser_Describe(t *testing.T) {
	table := buildTable(t)
	b := newBrowser(table)

	lw, err := table.Lookup("lw")
	require.NoError(t, err)

	description := b.describe(lw.ID)
	assert.Contains(t, description, "Identifier: LW")
	assert.Contains(t, description, "Word class: 32 bits")
	assert.Contains(t, description, ": 2 cycles")

	nop, err := table.Lookup("nop")
	require.NoError(t, err)
	assert.Contains(t, b.describe(nop.ID), "Canonical instruction: addi")

	assert.Empty(t, b.describe(decoder.NoInstruction))
}

func TestBrowser_Decode(t *testing.T) {
	table := buildTable(t)
	b := newBrowser(table)

	id, message := b.decode("0x00a10133")
	add, err := table.Lookup("add")
	require.NoError(t, err)
	assert.Equal(t, add.ID, id)
	assert.Equal(t, "0x00a10133: add x2, x2, x10", message)

	id, message = b.decode("0xffffffff")
	assert.Equal(t, decoder.NoInstruction, id)
	assert.Contains(t, message, "unknown instruction")

	id, message = b.decode("add")
	assert.Equal(t, decoder.NoInstruction, id)
	assert.Contains(t, message, "invalid")
}
