package decoder

import (
	"math/rand"
	"testing"

	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/isa/riscv"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRiscv(t *testing.T, features ...string) *Table {
	t.Helper()

	table, err := NewBuilder(testSettings()).Build(riscv.ISA(), instructions.NewFeatures(features...))
	require.NoError(t, err)
	return table
}

// Returns the most specific decodable instruction matching the word by scanning the whole class
func linearMatch(table *Table, word uint32) InstructionID {
	class := table.classOfWord(word)
	if class < 0 {
		return NoInstruction
	}

	word = table.Classes[class].Truncate(word)
	best := NoInstruction

	for _, id := range table.decodable(class) {
		pattern := table.Instructions[id].Pattern()
		if !pattern.Matches(word) {
			continue
		}

		if best == NoInstruction || pattern.Specificity() > table.Instructions[best].Pattern().Specificity() {
			best = id
		}
	}

	return best
}

func mnemonicOf(table *Table, word uint32) string {
	if decoded, ok := table.Decode(word); ok {
		return decoded.Instruction.Mnemonic()
	}

	return ""
}

func TestRiscv_BuildsWithEveryFeature(t *testing.T) {
	buildRiscv(t)

	for _, feature := range riscv.AllFeatures() {
		t.Run(feature, func(t *testing.T) {
			buildRiscv(t, feature)
		})
	}
}

func TestRiscv_Decode(t *testing.T) {
	table := buildRiscv(t)

	for _, test := range []struct {
		word     uint32
		mnemonic string
		asm      string
	}{
		{word: 0x00a10133, mnemonic: "add", asm: "add x2, x2, x10"},
		{word: 0x00c00093, mnemonic: "addi", asm: "addi x1, x0, 12"},
		{word: 0x00000013, mnemonic: "nop", asm: "nop"},
		{word: 0x00208463, mnemonic: "beq"},
		{word: 0x02c58533, mnemonic: "mul"},
		{word: 0x043100d3, mnemonic: "fadd.h"},
		{word: 0x043150d3, mnemonic: "fadd.ah"},
		{word: 0x0001, mnemonic: "c.nop"},
		{word: 0x0505, mnemonic: "c.addi"},
		{word: 0x7085, mnemonic: "c.lui"},
		{word: 0x4144, mnemonic: "c.lw"},
		{word: 0x8002, mnemonic: "c.sbreak"},
		{word: 0x9002, mnemonic: "c.ebreak"},
	} {
		t.Run(test.mnemonic, func(t *testing.T) {
			decoded, ok := table.Decode(test.word)
			require.True(t, ok)
			assert.Equal(t, test.mnemonic, decoded.Instruction.Mnemonic())

			if test.asm != "" {
				assert.Equal(t, test.asm, decoded.String())
			}
		})
	}
}

func TestRiscv_DecodeOperands(t *testing.T) {
	table := buildRiscv(t)

	decoded, ok := table.Decode(0x4144)
	require.True(t, ok)
	require.Len(t, decoded.Operands, 2)
	assert.Equal(t, int64(9), decoded.Operands[0].Value)
	assert.Equal(t, "4(x10)", decoded.Operands[1].String())
	assert.Equal(t, DefaultLoadLatency, decoded.Instruction.Operands[0].Latency)

	decoded, ok = table.Decode(0x7085)
	require.True(t, ok)
	require.Len(t, decoded.Operands, 3)
	assert.Equal(t, "c.lui", decoded.Instruction.Definition.Mnemonic)
	assert.Equal(t, int64(1), decoded.Operands[0].Value)
	assert.Equal(t, int64(1), decoded.Operands[1].Value)
	assert.Equal(t, int64(-0x1f000), decoded.Operands[2].Value)

	decoded, ok = table.Decode(0x00208463)
	require.True(t, ok)
	assert.Equal(t, int64(8), decoded.Operands[2].Value)
}

func TestRiscv_CompressedWordsIgnoreUpperHalf(t *testing.T) {
	table := buildRiscv(t)

	decoded, ok := table.Decode(0xdead0505)
	require.True(t, ok)
	assert.Equal(t, "c.addi", decoded.Instruction.Mnemonic())
	assert.Equal(t, uint32(0x0505), decoded.Word)
}

func TestRiscv_NoMatch(t *testing.T) {
	table := buildRiscv(t)

	assert.Equal(t, NoInstruction, table.Match(0xffffffff))

	_, ok := table.Decode(0xffffffff)
	assert.False(t, ok)
}

func TestRiscv_OptionalSubsets(t *testing.T) {
	// fld f1, 8(x2)
	const fld = 0x00813087

	assert.Empty(t, mnemonicOf(buildRiscv(t), fld))
	assert.Equal(t, "fld", mnemonicOf(buildRiscv(t, riscv.FeatureDouble), fld))

	// p.abs x10, x11 only exists in the second pulp revision
	assert.Equal(t, "p.abs", mnemonicOf(buildRiscv(t), 0x04058533))
	assert.Empty(t, mnemonicOf(buildRiscv(t, riscv.FeaturePulpV1), 0x04058533))
}

func TestRiscv_ShadowedAlias(t *testing.T) {
	table := buildRiscv(t)

	pmul, err := table.Lookup("p.mul")
	require.NoError(t, err)
	mul, err := table.Lookup("mul")
	require.NoError(t, err)

	assert.True(t, pmul.Shadowed)
	assert.Equal(t, mul.ID, pmul.Canonical)
	assert.Equal(t, mul.ID, table.Match(0x02c58533))
}

func TestRiscv_HookGroups(t *testing.T) {
	table := buildRiscv(t)

	mnemonics := func(group *HookGroup) []string {
		return utils.Map(group.Candidates, func(id InstructionID) string { return table.Instructions[id].Mnemonic() })
	}

	beq, err := table.Lookup("beq")
	require.NoError(t, err)
	group := table.HookGroupOf(beq.ID)
	require.NotNil(t, group)
	assert.Equal(t, riscv.BranchHook, group.Hook)
	assert.Equal(t, []string{"beq", "bne", "blt", "bge", "bltu", "bgeu", "p.beqimm", "p.bneimm"}, mnemonics(group))

	beqz, err := table.Lookup("c.beqz")
	require.NoError(t, err)
	group = table.HookGroupOf(beqz.ID)
	require.NotNil(t, group)
	assert.Equal(t, []string{"c.beqz", "c.bnez"}, mnemonics(group))

	add, err := table.Lookup("add")
	require.NoError(t, err)
	assert.Nil(t, table.HookGroupOf(add.ID))
}

func TestRiscv_TreeAgreesWithLinearScan(t *testing.T) {
	for _, features := range [][]string{nil, {riscv.FeatureGap8}, {riscv.FeaturePulpV1, riscv.FeatureDouble, riscv.FeatureAtomic}} {
		table := buildRiscv(t, features...)
		random := rand.New(rand.NewSource(42))

		for _, instruction := range table.Instructions {
			pattern := instruction.Pattern()
			free := utils.AllOnes[uint32](pattern.Width) &^ pattern.Mask

			words := []uint32{pattern.Value, pattern.Value | free}
			for range 8 {
				words = append(words, pattern.Value|(random.Uint32()&free))
			}

			for _, word := range words {
				expected := linearMatch(table, word)
				require.NotEqual(t, NoInstruction, expected, "%v", instruction)
				require.Equal(t, expected, table.Match(word), "word 0x%08x (%v)", word, instruction)
			}
		}

		for range 20000 {
			word := random.Uint32()
			require.Equal(t, linearMatch(table, word), table.Match(word), "word 0x%08x", word)
		}
	}
}

func TestRiscv_Deterministic(t *testing.T) {
	first := buildRiscv(t, riscv.FeatureGap8)
	second := buildRiscv(t, riscv.FeatureGap8)

	require.Len(t, second.Instructions, len(first.Instructions))

	for i := range first.Instructions {
		assert.Equal(t, first.Instructions[i].Identifier, second.Instructions[i].Identifier)
	}

	for i := range first.Trees {
		assert.Equal(t, first.Trees[i].Root, second.Trees[i].Root)
	}

	assert.Equal(t, first.HookGroups, second.HookGroups)
	assert.Equal(t, first.Aliases, second.Aliases)
}

func TestRiscv_TreeShape(t *testing.T) {
	table := buildRiscv(t)

	require.Len(t, table.Trees, 2)

	for _, tree := range table.Trees {
		assert.False(t, tree.Root.IsLeaf())
		assert.Greater(t, tree.Root.Depth(), 1)
		assert.LessOrEqual(t, tree.Root.MaxLeafSize(), 4)
	}
}
