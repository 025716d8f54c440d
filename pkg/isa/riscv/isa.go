// Package riscv contains the built-in RISC-V instruction set: the RV32 standard extensions plus the
// PULP and GAP8 vendor extensions, split into subsets enabled through feature flags.
package riscv

import (
	"github.com/Manu343726/isagen/pkg/isa/encoding"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
)

// Decode hooks the execution engine must implement
const (
	BranchHook = "bxx_decode"
	JumpHook   = "jal_decode"
	AuipcHook  = "auipc_decode"
)

// Instruction tags
const (
	TagLoad  = "load"
	TagStore = "store"
)

// Features enabling optional subsets
const (
	FeatureAtomic    = "a"
	FeatureDouble    = "d"
	FeaturePulpV1    = "pulp_v1"
	FeatureZeroriscy = "zeroriscy"
	FeatureGap8      = "gap8"
	FeaturePrivPulp  = "priv_pulp"
	FeaturePriv19    = "priv_1_9"
)

// Returns all the features recognized by the instruction set
func AllFeatures() []string {
	return []string{
		FeatureAtomic,
		FeatureDouble,
		FeaturePulpV1,
		FeatureZeroriscy,
		FeatureGap8,
		FeaturePrivPulp,
		FeaturePriv19,
	}
}

var (
	FpuGroup = &instructions.IsaGroup{
		Name: "fpu",
		Timing: &instructions.TimingTable{
			Name:    "fpu",
			Option:  "--fpu-timing",
			Default: "timing_fpu_private.cfg",
		},
	}

	Rv32mGroup = &instructions.IsaGroup{
		Name: "rv32m",
		Timing: &instructions.TimingTable{
			Name:    "rv32m",
			Option:  "--rv32m-timing",
			Default: "timing_rv32m_ri5cy.cfg",
		},
	}

	fpuOther = FpuGroup.Class("INSTR_GROUP_OTHER")
	fpuAdd   = FpuGroup.Class("INSTR_GROUP_FPU_ADD")
	fpuMul   = FpuGroup.Class("INSTR_GROUP_FPU_MUL")
	fpuDiv   = FpuGroup.Class("INSTR_GROUP_FPU_DIV")
	fpuFmadd = FpuGroup.Class("INSTR_GROUP_FPU_FMADD")
	fpuConv  = FpuGroup.Class("INSTR_GROUP_FPU_CONV")

	rv32mMul  = Rv32mGroup.Class("INSTR_GROUP_RV32M_MUL")
	rv32mMulh = Rv32mGroup.Class("INSTR_GROUP_RV32M_MULH")
	rv32mDiv  = Rv32mGroup.Class("INSTR_GROUP_RV32M_DIV")
)

var (
	define  = instructions.Define
	aliasOf = instructions.WithAliasOf
	label   = instructions.WithLabel
	group   = instructions.WithGroup

	load  = instructions.WithTags(TagLoad)
	store = instructions.WithTags(TagStore)

	branchHook = instructions.WithHook(BranchHook)
	jumpHook   = instructions.WithHook(JumpHook)
	auipcHook  = instructions.WithHook(AuipcHook)
)

// Returns the RISC-V word classes: 32 bit words have their two lowest bits set, any other word is a compressed 16 bit word
func Widths() []instructions.WidthClass {
	return []instructions.WidthClass{
		{
			Width:    encoding.StandardWidth,
			Selector: encoding.MustParsePattern("------- ----- ----- --- ----- -----11", encoding.StandardWidth),
		},
		{
			Width:    encoding.CompressedWidth,
			Selector: encoding.BitPattern{Width: encoding.CompressedWidth},
		},
	}
}

// Returns a new instance of the RISC-V instruction set
func ISA() *instructions.InstructionSet {
	return &instructions.InstructionSet{
		Name:   "riscv",
		Widths: Widths(),
		Groups: []*instructions.IsaGroup{FpuGroup, Rv32mGroup},
		Subsets: []*instructions.Subset{
			{Name: "priv_pulp_v2", Activation: instructions.Unless(FeaturePrivPulp, FeaturePriv19), Definitions: privPulpV2()},
			{Name: "i", Definitions: rv32i()},
			{Name: "rv32m", Definitions: rv32m()},
			{Name: "c", Definitions: rv32c()},
			{Name: "priv", Definitions: priv()},
			{Name: "pulp", Definitions: pulp()},
			{Name: "pulp_v2", Activation: instructions.Unless(FeaturePulpV1, FeatureZeroriscy), Definitions: pulpV2()},
			{Name: "fpu", Definitions: rv32f()},
			{Name: "f16", Definitions: rv32f16()},
			{Name: "f16alt", Definitions: rv32f16alt()},
			{Name: "f8", Definitions: rv32f8()},
			{Name: "rv32a", Activation: instructions.When(FeatureAtomic), Definitions: rv32a()},
			{Name: "fpud", Activation: instructions.When(FeatureDouble), Definitions: rv32d()},
			{Name: "pulp_v1", Activation: instructions.When(FeaturePulpV1), Definitions: pulpV1()},
			{Name: "pulp_zeroriscy", Activation: instructions.When(FeatureZeroriscy), Definitions: pulpZeroriscy()},
			{Name: "gap8", Activation: instructions.When(FeatureGap8), Definitions: gap8()},
			{Name: "priv_pulp", Activation: instructions.When(FeaturePrivPulp), Definitions: privPulp()},
			{Name: "priv_1_9", Activation: instructions.When(FeaturePriv19), Definitions: priv19()},
		},
	}
}
