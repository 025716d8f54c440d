package emitter

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/isa/riscv"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riscvTable(t *testing.T, features ...string) *decoder.Table {
	t.Helper()

	settings := decoder.DefaultSettings()
	settings.Logger = slog.New(slog.DiscardHandler)

	table, err := decoder.NewBuilder(settings).Build(riscv.ISA(), instructions.NewFeatures(features...))
	require.NoError(t, err)
	return table
}

func newGenerator(t *testing.T) *Generator {
	t.Helper()

	settings := DefaultSettings()
	settings.Logger = slog.New(slog.DiscardHandler)

	generator, err := NewGenerator(settings)
	require.NoError(t, err)
	return generator
}

func render(t *testing.T, table *decoder.Table) (string, string) {
	t.Helper()

	var header, source bytes.Buffer
	require.NoError(t, newGenerator(t).Render(table, &header, &source))
	return header.String(), source.String()
}

func TestRender_Header(t *testing.T) {
	header, _ := render(t, riscvTable(t))

	assert.Contains(t, header, "#ifndef ISA_DECODER_H\n")
	assert.Contains(t, header, "#define ISA_DECODER_ABI_VERSION 1\n")
	assert.Contains(t, header, "  ISA_INSTR_ADD = ")
	assert.Contains(t, header, "#define ISA_INSTR_ADD_NB_OPERANDS 3\n")
	assert.Contains(t, header, "  ISA_OPERAND_WRITE_INT_REG = 0,\n")
	assert.Contains(t, header, "#define ISA_TAG_LOAD (1u << 0)\n")
	assert.Contains(t, header, "#define ISA_FPU_TIMING_DEFAULT \"timing_fpu_private.cfg\"\n")
	assert.Contains(t, header, "ISA_GROUP_FPU_INSTR_GROUP_FPU_ADD = ")
	assert.Contains(t, header, "int isa_decode(uint32_t word, isa_decoded_t *out);\n")
	assert.Contains(t, header, "isa_instr_id_e bxx_decode(const isa_decoded_t *decoded, const isa_instr_id_e *candidates, int nb_candidates);\n")
	assert.Contains(t, header, "isa_instr_id_e jal_decode(")
	assert.Contains(t, header, "isa_instr_id_e auipc_decode(")
}

func TestRender_Source(t *testing.T) {
	_, source := render(t, riscvTable(t))

	assert.Contains(t, source, "#include \"isa_decoder.h\"\n")
	assert.Contains(t, source, `[ISA_INSTR_NOP] = { "nop", "nop", 0xffffffffu, 0x00000013u, 32, ISA_FORMAT_Z, 0, ISA_INSTR_ADDI, -1, 0, ISA_GROUP_NONE },`)
	assert.Contains(t, source, "[ISA_INSTR_LW] = { 2, 0 },\n")
	assert.Contains(t, source, "[ISA_INSTR_ADD] = { 0, 0, 0 },\n")
	assert.Contains(t, source, `{ "p.mul", ISA_INSTR_P_MUL, ISA_INSTR_MUL },`)
	assert.Contains(t, source, "out[0] = (isa_operand_t){ .role = ISA_OPERAND_WRITE_INT_REG, .index = 0, .value = (int64_t)((word >> 7) & 0x1fu) };")
	assert.Contains(t, source, "isa_sign_extend(")
	assert.Contains(t, source, "static isa_instr_id_e isa_decode_0_0(uint32_t word)\n")
	assert.Contains(t, source, "static isa_instr_id_e isa_decode_1_0(uint32_t word)\n")
	assert.Contains(t, source, "if ((word & 0x00000003u) == 0x00000003u) {\n")
	assert.Contains(t, source, "else if ((word & 0x00000000u) == 0x00000000u) {\n")
	assert.Contains(t, source, "static const isa_instr_id_e isa_hook_candidates_0[] = { ISA_INSTR_AUIPC };")
}

func TestRender_HookCandidates(t *testing.T) {
	_, source := render(t, riscvTable(t))

	assert.Contains(t, source, "ISA_INSTR_BEQ, ISA_INSTR_BNE, ISA_INSTR_BLT, ISA_INSTR_BGE, ISA_INSTR_BLTU, ISA_INSTR_BGEU, ISA_INSTR_P_BEQIMM, ISA_INSTR_P_BNEIMM };")
	assert.Contains(t, source, "ISA_INSTR_C_BEQZ, ISA_INSTR_C_BNEZ };")
}

func TestRender_Deterministic(t *testing.T) {
	header, source := render(t, riscvTable(t, riscv.FeatureGap8))

	for range 3 {
		otherHeader, otherSource := render(t, riscvTable(t, riscv.FeatureGap8))
		assert.Equal(t, header, otherHeader)
		assert.Equal(t, source, otherSource)
	}
}

func TestRender_EveryFeature(t *testing.T) {
	for _, feature := range riscv.AllFeatures() {
		t.Run(feature, func(t *testing.T) {
			header, source := render(t, riscvTable(t, feature))
			assert.Contains(t, header, "Enabled features: "+feature)
			assert.NotEmpty(t, source)
		})
	}
}

func TestRender_EmptyTable(t *testing.T) {
	table, err := decoder.NewBuilder(decoder.Settings{Logger: slog.New(slog.DiscardHandler)}).Build(&instructions.InstructionSet{
		Name:   "empty",
		Widths: riscv.Widths(),
	}, nil)
	require.NoError(t, err)

	header, source := render(t, table)
	assert.Contains(t, header, "#define ISA_NB_INSTRUCTIONS 0\n")
	assert.Contains(t, source, "{ NULL, ISA_INSTR_NONE, ISA_INSTR_NONE }")
}

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))

	require.NoError(t, newGenerator(t).Write(fs, riscvTable(t), "/out/riscv_decoder.h", "/out/riscv_decoder.c"))

	header, err := afero.ReadFile(fs, "/out/riscv_decoder.h")
	require.NoError(t, err)
	assert.Contains(t, string(header), "#ifndef RISCV_DECODER_H\n")

	source, err := afero.ReadFile(fs, "/out/riscv_decoder.c")
	require.NoError(t, err)
	assert.Contains(t, string(source), "#include \"riscv_decoder.h\"\n")

	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// Fails to open files whose name contains the given text
type failingFs struct {
	afero.Fs
	fail string
}

func (fs failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if strings.Contains(name, fs.fail) {
		return nil, errors.New("disk full")
	}

	return fs.Fs.OpenFile(name, flag, perm)
}

func TestWrite_NoPartialOutput(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/out", 0o755))
	require.NoError(t, afero.WriteFile(base, "/out/isa_decoder.h", []byte("old header"), 0o644))

	err := newGenerator(t).Write(failingFs{Fs: base, fail: ".c.tmp"}, riscvTable(t), "/out/isa_decoder.h", "/out/isa_decoder.c")
	require.ErrorIs(t, err, ErrOutputWriteFailure)
	assert.Contains(t, err.Error(), "/out/isa_decoder.c")

	header, err := afero.ReadFile(base, "/out/isa_decoder.h")
	require.NoError(t, err)
	assert.Equal(t, "old header", string(header))

	exists, err := afero.Exists(base, "/out/isa_decoder.c")
	require.NoError(t, err)
	assert.False(t, exists)

	entries, err := afero.ReadDir(base, "/out")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWrite_FileMode(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))

	require.NoError(t, newGenerator(t).Write(fs, riscvTable(t), "/out/isa_decoder.h", "/out/isa_decoder.c"))

	for _, path := range []string{"/out/isa_decoder.h", "/out/isa_decoder.c"} {
		info, err := fs.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, OutputFileMode, info.Mode().Perm(), path)
	}
}

// Fails to move temporary files onto targets whose name ends with the given text
type failingRenameFs struct {
	afero.Fs
	fail string
}

func (fs failingRenameFs) Rename(oldname string, newname string) error {
	if strings.HasSuffix(newname, fs.fail) && strings.Contains(oldname, ".tmp") {
		return errors.New("device busy")
	}

	return fs.Fs.Rename(oldname, newname)
}

func TestWrite_SourceRenameFailureRestoresHeader(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/out", 0o755))
	require.NoError(t, afero.WriteFile(base, "/out/isa_decoder.h", []byte("old header"), 0o644))
	require.NoError(t, afero.WriteFile(base, "/out/isa_decoder.c", []byte("old source"), 0o644))

	err := newGenerator(t).Write(failingRenameFs{Fs: base, fail: "isa_decoder.c"}, riscvTable(t), "/out/isa_decoder.h", "/out/isa_decoder.c")
	require.ErrorIs(t, err, ErrOutputWriteFailure)
	assert.Contains(t, err.Error(), "device busy")

	header, err := afero.ReadFile(base, "/out/isa_decoder.h")
	require.NoError(t, err)
	assert.Equal(t, "old header", string(header))

	source, err := afero.ReadFile(base, "/out/isa_decoder.c")
	require.NoError(t, err)
	assert.Equal(t, "old source", string(source))

	entries, err := afero.ReadDir(base, "/out")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWrite_SourceRenameFailureRemovesNewHeader(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/out", 0o755))

	err := newGenerator(t).Write(failingRenameFs{Fs: base, fail: "isa_decoder.c"}, riscvTable(t), "/out/isa_decoder.h", "/out/isa_decoder.c")
	require.ErrorIs(t, err, ErrOutputWriteFailure)

	entries, err := afero.ReadDir(base, "/out")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWrite_ReadOnlyFs(t *testing.T) {
	err := newGenerator(t).Write(afero.NewReadOnlyFs(afero.NewMemMapFs()), riscvTable(t), "/isa_decoder.h", "/isa_decoder.c")
	assert.ErrorIs(t, err, ErrOutputWriteFailure)
}
