package instructions

import (
	"strings"

	"github.com/Manu343726/isagen/pkg/utils"
)

// Represents the role an operand has within an instruction
type OperandRole uint

const (
	// Integer register written by the instruction
	OperandRole_WriteIntReg OperandRole = iota
	// Integer register read by the instruction
	OperandRole_ReadIntReg
	// Floating point register written by the instruction
	OperandRole_WriteFloatReg
	// Floating point register read by the instruction
	OperandRole_ReadFloatReg
	// Sign extended immediate
	OperandRole_SignedImm
	// Zero extended immediate
	OperandRole_UnsignedImm
	// Literal value not encoded in the instruction word
	OperandRole_Constant
	// Memory reference made of a base register and an optional offset
	OperandRole_Indirect

	TOTAL_OPERAND_ROLES
)

func (o OperandRole) String() string {
	switch o {
	case OperandRole_WriteIntReg:
		return "WriteIntReg"
	case OperandRole_ReadIntReg:
		return "ReadIntReg"
	case OperandRole_WriteFloatReg:
		return "WriteFloatReg"
	case OperandRole_ReadFloatReg:
		return "ReadFloatReg"
	case OperandRole_SignedImm:
		return "SignedImm"
	case OperandRole_UnsignedImm:
		return "UnsignedImm"
	case OperandRole_Constant:
		return "Constant"
	case OperandRole_Indirect:
		return "Indirect"
	}

	panic("unreachable")
}

// Returns the C enumerator suffix for the role, e.g. "WRITE_INT_REG"
func (o OperandRole) CName() string {
	name := o.String()
	var builder strings.Builder

	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			builder.WriteByte('_')
		}
		builder.WriteRune(r)
	}

	return utils.CIdentifier(builder.String())
}

// Parses a role from its name (as returned by String()), case insensitive
func ParseOperandRole(name string) (OperandRole, error) {
	for _, role := range AllOperandRoles() {
		if strings.EqualFold(role.String(), name) {
			return role, nil
		}
	}

	return 0, utils.MakeError(ErrUnknownRole, "'%v'", name)
}

// Returns all operand roles in declaration order
func AllOperandRoles() []OperandRole {
	return utils.Iota(int(TOTAL_OPERAND_ROLES), func(i int) OperandRole { return OperandRole(i) })
}

// Returns true if the operand names a register
func (o OperandRole) IsRegister() bool {
	return o <= OperandRole_ReadFloatReg
}

// Returns true if the operand names a register written by the instruction
func (o OperandRole) IsWrite() bool {
	return o == OperandRole_WriteIntReg || o == OperandRole_WriteFloatReg
}

// Returns true if the operand is an immediate value
func (o OperandRole) IsImmediate() bool {
	return o == OperandRole_SignedImm || o == OperandRole_UnsignedImm
}
