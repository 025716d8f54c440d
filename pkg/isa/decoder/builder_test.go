package decoder

import (
	"log/slog"
	"testing"

	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/isa/riscv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func testSettings() Settings {
	settings := DefaultSettings()
	settings.Logger = slog.New(slog.DiscardHandler)
	return settings
}

func newSet(definitions ...*instructions.InstructionDefinition) *instructions.InstructionSet {
	return &instructions.InstructionSet{
		Name:   "test",
		Widths: riscv.Widths(),
		Subsets: []*instructions.Subset{
			{Name: "test", Definitions: definitions},
		},
	}
}

func build(t *testing.T, definitions ...*instructions.InstructionDefinition) *Table {
	t.Helper()

	table, err := NewBuilder(testSettings()).Build(newSet(definitions...), nil)
	require.NoError(t, err)
	return table
}

func buildError(definitions ...*instructions.InstructionDefinition) error {
	_, err := NewBuilder(testSettings()).Build(newSet(definitions...), nil)
	return err
}

func TestBuild_DecodesAdd(t *testing.T) {
	table := build(t,
		instructions.Define("add", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"))

	decoded, ok := table.Decode(0x00a10133)
	require.True(t, ok)

	assert.Equal(t, "add", decoded.Instruction.Mnemonic())
	require.Len(t, decoded.Operands, 3)
	assert.Equal(t, int64(2), decoded.Operands[0].Value)
	assert.Equal(t, int64(2), decoded.Operands[1].Value)
	assert.Equal(t, int64(10), decoded.Operands[2].Value)
	assert.Equal(t, "add x2, x2, x10", decoded.String())
}

func TestBuild_DisjointPatternsCoexist(t *testing.T) {
	table := build(t,
		instructions.Define("slli", instructions.Format_I1U, "0000000 ----- ----- 001 ----- 0010011"),
		instructions.Define("srai", instructions.Format_I1U, "0100000 ----- ----- 101 ----- 0010011"))

	assert.Len(t, table.Instructions, 2)
	assert.Equal(t, InstructionID(1), table.Match(0x40115093))
	assert.Equal(t, NoInstruction, table.Match(0x00115093))
}

func TestBuild_IdenticalPatternsAreAmbiguous(t *testing.T) {
	err := buildError(
		instructions.Define("foo", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"),
		instructions.Define("bar", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"))

	require.ErrorIs(t, err, ErrAmbiguousEncoding)
	assert.Contains(t, err.Error(), "foo")
	assert.Contains(t, err.Error(), "bar")
}

func TestBuild_CrossingPatternsAreAmbiguous(t *testing.T) {
	err := buildError(
		instructions.Define("foo", instructions.Format_R, "0------ ----- ----- 000 ----- 0110011"),
		instructions.Define("bar", instructions.Format_R, "-1----- ----- ----- 000 ----- 0110011"))

	require.ErrorIs(t, err, ErrAmbiguousEncoding)
	assert.Contains(t, err.Error(), "foo")
	assert.Contains(t, err.Error(), "bar")
}

func TestBuild_NestedPatternsResolveBySpecificity(t *testing.T) {
	table := build(t,
		instructions.Define("c.mv", instructions.Format_CR2, "100 0-- --- -- --- 10"),
		instructions.Define("c.jr", instructions.Format_CR1, "100 0-- --- 00 000 10"),
		instructions.Define("c.sbreak", instructions.Format_CI1, "100 000 000 00 000 10"))

	assert.Equal(t, "c.sbreak", table.Instructions[table.Match(0x8002)].Mnemonic())
	assert.Equal(t, "c.jr", table.Instructions[table.Match(0x8082)].Mnemonic())
	assert.Equal(t, "c.mv", table.Instructions[table.Match(0x808a)].Mnemonic())
}

func TestBuild_DuplicateMnemonic(t *testing.T) {
	err := buildError(
		instructions.Define("add", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"),
		instructions.Define("add", instructions.Format_R, "0000000 ----- ----- 001 ----- 0110011"))

	assert.ErrorIs(t, err, instructions.ErrDuplicateMnemonic)
}

func TestBuild_IdentifierCollision(t *testing.T) {
	err := buildError(
		instructions.Define("p.add", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"),
		instructions.Define("p_add", instructions.Format_R, "0000000 ----- ----- 001 ----- 0110011"))

	assert.ErrorIs(t, err, instructions.ErrDuplicateMnemonic)
}

func TestBuild_AlternativeEncoding(t *testing.T) {
	table := build(t,
		instructions.Define("addi", instructions.Format_I, "------- ----- ----- 000 ----- 0010011"),
		instructions.Define("addi", instructions.Format_Z, "0000000 00000 00000 000 00000 0010011", instructions.WithAliasOf("addi")))

	require.Len(t, table.Instructions, 2)
	assert.Equal(t, "ADDI", table.Instructions[0].Identifier)
	assert.Equal(t, "ADDI_ALT1", table.Instructions[1].Identifier)

	decoded, ok := table.Decode(0x00000013)
	require.True(t, ok)
	assert.Equal(t, InstructionID(1), decoded.Instruction.ID)
	assert.Equal(t, InstructionID(0), decoded.Canonical.ID)
}

func TestBuild_Aliases(t *testing.T) {
	table := build(t,
		instructions.Define("addi", instructions.Format_I, "------- ----- ----- 000 ----- 0010011"),
		instructions.Define("nop", instructions.Format_Z, "0000000 00000 00000 000 00000 0010011", instructions.WithAliasOf("addi")),
		instructions.Define("mul", instructions.Format_R, "0000001 ----- ----- 000 ----- 0110011"),
		instructions.Define("p.mul", instructions.Format_R, "0000001 ----- ----- 000 ----- 0110011", instructions.WithAliasOf("mul")))

	decoded, ok := table.Decode(0x00000013)
	require.True(t, ok)
	assert.Equal(t, "nop", decoded.Instruction.Mnemonic())
	assert.Equal(t, "addi", decoded.Canonical.Mnemonic())
	assert.Empty(t, decoded.Operands)

	decoded, ok = table.Decode(0x02c58533)
	require.True(t, ok)
	assert.Equal(t, "mul", decoded.Instruction.Mnemonic())

	pmul, err := table.Lookup("p.mul")
	require.NoError(t, err)
	assert.True(t, pmul.Shadowed)

	id, err := table.Resolve("p.mul")
	require.NoError(t, err)
	assert.Equal(t, decoded.Instruction.ID, id)

	assert.Equal(t, []Alias{
		{Mnemonic: "nop", Alias: 1, Target: 0},
		{Mnemonic: "p.mul", Alias: 3, Target: 2},
	}, table.Aliases)

	_, err = table.Resolve("div")
	assert.ErrorIs(t, err, ErrUnknownInstruction)
}

func TestBuild_UnresolvedAliases(t *testing.T) {
	err := buildError(
		instructions.Define("nop", instructions.Format_Z, "0000000 00000 00000 000 00000 0010011", instructions.WithAliasOf("addi")))
	assert.ErrorIs(t, err, instructions.ErrUnresolvedAlias)

	err = buildError(
		instructions.Define("addi", instructions.Format_I, "------- ----- ----- 000 ----- 0010011"),
		instructions.Define("mv", instructions.Format_I, "000000000000 ----- 000 ----- 0010011", instructions.WithAliasOf("addi")),
		instructions.Define("nop", instructions.Format_Z, "0000000 00000 00000 000 00000 0010011", instructions.WithAliasOf("mv")))
	assert.ErrorIs(t, err, instructions.ErrUnresolvedAlias)

	err = buildError(
		instructions.Define("c.add", instructions.Format_CR, "100 1-- --- -- --- 10"),
		instructions.Define("add", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011", instructions.WithAliasOf("c.add")))
	assert.ErrorIs(t, err, instructions.ErrUnresolvedAlias)
}

func TestBuild_AliasOfDisabledInstruction(t *testing.T) {
	set := newSet(instructions.Define("nop", instructions.Format_Z, "0000000 00000 00000 000 00000 0010011", instructions.WithAliasOf("addi")))
	set.Subsets = append(set.Subsets, &instructions.Subset{
		Name:        "optional",
		Activation:  instructions.When("optional"),
		Definitions: []*instructions.InstructionDefinition{instructions.Define("addi", instructions.Format_I, "------- ----- ----- 000 ----- 0010011")},
	})

	_, err := NewBuilder(testSettings()).Build(set, nil)
	require.ErrorIs(t, err, instructions.ErrUnresolvedAlias)
	assert.Contains(t, err.Error(), "not enabled")

	_, err = NewBuilder(testSettings()).Build(set, instructions.NewFeatures("optional"))
	assert.NoError(t, err)
}

func TestBuild_AliasConflicts(t *testing.T) {
	err := buildError(
		instructions.Define("addi", instructions.Format_I, "------- ----- ----- 000 ----- 0010011"),
		instructions.Define("slti", instructions.Format_I, "------- ----- ----- 010 ----- 0010011", instructions.WithAliasOf("addi")))
	assert.ErrorIs(t, err, instructions.ErrAliasConflict)

	err = buildError(
		instructions.Define("jal", instructions.Format_UJ, "------- ----- ----- --- ----- 1101111", instructions.WithHook("jal_decode")),
		instructions.Define("j", instructions.Format_UJ, "------- ----- ----- --- 00000 1101111", instructions.WithAliasOf("jal"), instructions.WithHook("j_decode")))
	assert.ErrorIs(t, err, instructions.ErrAliasConflict)
}

func TestBuild_AliasInheritsHook(t *testing.T) {
	table := build(t,
		instructions.Define("jal", instructions.Format_UJ, "------- ----- ----- --- ----- 1101111", instructions.WithHook("jal_decode")),
		instructions.Define("j", instructions.Format_UJ, "------- ----- ----- --- 00000 1101111", instructions.WithAliasOf("jal")))

	decoded, ok := table.Decode(0x0080006f)
	require.True(t, ok)
	assert.Equal(t, "j", decoded.Instruction.Mnemonic())
	assert.Equal(t, "jal_decode", decoded.Instruction.Hook)
	require.NotNil(t, decoded.HookGroup)
	assert.Equal(t, []InstructionID{0}, decoded.HookGroup.Candidates)
}

func TestBuild_WidthMismatch(t *testing.T) {
	err := buildError(
		instructions.Define("c.bad", instructions.Format_CR, "100 1-- --- -- --- 11"))
	assert.ErrorIs(t, err, instructions.ErrWidthMismatch)

	err = buildError(
		instructions.Define("bad", instructions.Format_CR, "0000000 ----- ----- 000 ----- 0110011"))
	assert.ErrorIs(t, err, instructions.ErrWidthMismatch)
}

func TestBuild_ReportsAllErrors(t *testing.T) {
	err := buildError(
		instructions.Define("add", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"),
		instructions.Define("add2", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"),
		instructions.Define("nop", instructions.Format_Z, "0000000 00000 00000 000 00000 0010011", instructions.WithAliasOf("addi")))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousEncoding)
	assert.ErrorIs(t, err, instructions.ErrUnresolvedAlias)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestBuild_LoadLatency(t *testing.T) {
	table := build(t,
		instructions.Define("lw", instructions.Format_L, "------- ----- ----- 010 ----- 0000011", instructions.WithTags("load")),
		instructions.Define("lh", instructions.Format_L, "------- ----- ----- 001 ----- 0000011", instructions.WithTags("load"), instructions.WithLatency(0, 5)),
		instructions.Define("add", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"))

	lw, err := table.Lookup("lw")
	require.NoError(t, err)
	assert.Equal(t, DefaultLoadLatency, lw.Operands[0].Latency)
	assert.Equal(t, 0, lw.Operands[1].Base.Latency)

	lh, err := table.Lookup("lh")
	require.NoError(t, err)
	assert.Equal(t, 5, lh.Operands[0].Latency)

	add, err := table.Lookup("add")
	require.NoError(t, err)
	assert.Equal(t, BaselineLatency, add.Operands[0].Latency)

	// The format registry is left untouched
	assert.Equal(t, 0, instructions.Format_L.Descriptor().Operand(0).Latency)
}

func TestBuild_CustomLatencyPolicy(t *testing.T) {
	settings := testSettings()
	settings.LatencyPolicies = []LatencyPolicy{{Tag: "load", Latency: 3}, {Tag: "mul", Latency: 1}}

	table, err := NewBuilder(settings).Build(newSet(
		instructions.Define("lw", instructions.Format_L, "------- ----- ----- 010 ----- 0000011", instructions.WithTags("load")),
		instructions.Define("mul", instructions.Format_R, "0000001 ----- ----- 000 ----- 0110011", instructions.WithTags("mul"))), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Instructions[0].Operands[0].Latency)
	assert.Equal(t, 1, table.Instructions[1].Operands[0].Latency)
}

func TestBuild_InvalidLatencyOverride(t *testing.T) {
	err := buildError(
		instructions.Define("sw", instructions.Format_S, "------- ----- ----- 010 ----- 0100011", instructions.WithLatency(0, 2)))

	assert.ErrorIs(t, err, ErrInvalidLatency)
}

func TestBuild_HookGroups(t *testing.T) {
	table := build(t,
		instructions.Define("beq", instructions.Format_SB, "------- ----- ----- 000 ----- 1100011", instructions.WithHook("bxx_decode")),
		instructions.Define("bne", instructions.Format_SB, "------- ----- ----- 001 ----- 1100011", instructions.WithHook("bxx_decode")),
		instructions.Define("jal", instructions.Format_UJ, "------- ----- ----- --- ----- 1101111", instructions.WithHook("jal_decode")),
		instructions.Define("c.beqz", instructions.Format_CB1, "110 --- --- -- --- 01", instructions.WithHook("bxx_decode")))

	require.Len(t, table.HookGroups, 3)
	assert.Equal(t, &HookGroup{Class: 0, Hook: "bxx_decode", Candidates: []InstructionID{0, 1}}, table.HookGroups[0])
	assert.Equal(t, &HookGroup{Class: 0, Hook: "jal_decode", Candidates: []InstructionID{2}}, table.HookGroups[1])
	assert.Equal(t, &HookGroup{Class: 1, Hook: "bxx_decode", Candidates: []InstructionID{3}}, table.HookGroups[2])

	// bne x1, x2, 8
	decoded, ok := table.Decode(0x00209463)
	require.True(t, ok)
	assert.Same(t, table.HookGroups[0], decoded.HookGroup)
	assert.Equal(t, int64(8), decoded.Operands[2].Value)
}
