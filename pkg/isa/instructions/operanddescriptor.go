package instructions

import (
	"fmt"

	"github.com/Manu343726/isagen/pkg/isa/encoding"
)

// Register fields of compressed instructions only address registers x8-x15
const CompressedRegisterBias = 8

// Contains information about an instruction operand
type OperandDescriptor struct {
	// Role the operand takes in the instruction
	Role OperandRole
	// Role local slot (e.g. an instruction reading three registers has read operands 0, 1 and 2)
	Index int
	// Bits of the instruction word encoding the operand, nil if the operand is a literal
	Field *encoding.FieldExtractor
	// Value of the operand when it is not encoded in the instruction word (e.g. implicit x0 or sp registers)
	Literal int64
	// If true, the field encodes a compressed register number (x8-x15)
	Compressed bool
	// If true, the operand is not shown in the assembly syntax (useful for tied operands)
	HideName bool
	// Extra cycles before the value written into the register is available. Only meaningful for written registers
	Latency int
	// Base register of an indirect operand
	Base *OperandDescriptor
	// Offset (immediate or register) of an indirect operand, nil if the operand has no offset
	Offset *OperandDescriptor
	// If true, the base register of an indirect operand is updated with the computed address after the access
	PostIncrement bool
	// Position within the set of operands of the format, indexed from 0 to total operands - 1
	Position int
}

func newOperand(role OperandRole, index int, field encoding.FieldExtractor) *OperandDescriptor {
	return &OperandDescriptor{
		Role:  role,
		Index: index,
		Field: &field,
	}
}

// Integer register written by the instruction
func OutReg(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return newOperand(OperandRole_WriteIntReg, index, field)
}

// Integer register read by the instruction
func InReg(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return newOperand(OperandRole_ReadIntReg, index, field)
}

// Floating point register written by the instruction
func OutFReg(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return newOperand(OperandRole_WriteFloatReg, index, field)
}

// Floating point register read by the instruction
func InFReg(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return newOperand(OperandRole_ReadFloatReg, index, field)
}

// Compressed (x8-x15) integer register written by the instruction
func OutRegComp(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return OutReg(index, field).compressed()
}

// Compressed (x8-x15) integer register read by the instruction
func InRegComp(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return InReg(index, field).compressed()
}

// Compressed (f8-f15) floating point register written by the instruction
func OutFRegComp(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return OutFReg(index, field).compressed()
}

// Compressed (f8-f15) floating point register read by the instruction
func InFRegComp(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return InFReg(index, field).compressed()
}

// Sign extended immediate
func SignedImm(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return newOperand(OperandRole_SignedImm, index, field.WithSign(true))
}

// Zero extended immediate
func UnsignedImm(index int, field encoding.FieldExtractor) *OperandDescriptor {
	return newOperand(OperandRole_UnsignedImm, index, field.WithSign(false))
}

// Operand with a role but a fixed value not encoded in the instruction word
func Fixed(role OperandRole, index int, value int64) *OperandDescriptor {
	return &OperandDescriptor{
		Role:    role,
		Index:   index,
		Literal: value,
	}
}

// Literal immediate value
func Constant(index int, value int64) *OperandDescriptor {
	return Fixed(OperandRole_Constant, index, value)
}

// Memory reference computed as base register + offset. The offset may be nil
func Indirect(base *OperandDescriptor, offset *OperandDescriptor) *OperandDescriptor {
	return &OperandDescriptor{
		Role:   OperandRole_Indirect,
		Base:   base,
		Offset: offset,
	}
}

// Like Indirect() but the base register is updated with the computed address after the access
func IndirectPostInc(base *OperandDescriptor, offset *OperandDescriptor) *OperandDescriptor {
	operand := Indirect(base, offset)
	operand.PostIncrement = true
	return operand
}

func (o *OperandDescriptor) compressed() *OperandDescriptor {
	o.Compressed = true
	return o
}

// Hides the operand from the assembly syntax. Returns the operand
func (o *OperandDescriptor) Hidden() *OperandDescriptor {
	o.HideName = true
	return o
}

// Overrides the signedness of the operand field regardless of its role. Returns the operand
func (o *OperandDescriptor) WithSign(signed bool) *OperandDescriptor {
	if o.Field != nil {
		field := o.Field.WithSign(signed)
		o.Field = &field
	}

	return o
}

// Returns true if the operand value is not encoded in the instruction word
func (o *OperandDescriptor) IsLiteral() bool {
	return o.Role != OperandRole_Indirect && o.Field == nil
}

// Returns true if the operand is a memory reference
func (o *OperandDescriptor) IsIndirect() bool {
	return o.Role == OperandRole_Indirect
}

// Returns true if the operand is sign extended after extraction
func (o *OperandDescriptor) IsSigned() bool {
	return o.Field != nil && o.Field.Signed
}

// Returns the operand itself plus, for indirect operands, its base and offset
func (o *OperandDescriptor) Flatten() []*OperandDescriptor {
	result := []*OperandDescriptor{o}

	if o.Base != nil {
		result = append(result, o.Base.Flatten()...)
	}

	if o.Offset != nil {
		result = append(result, o.Offset.Flatten()...)
	}

	return result
}

// Instruction word bits read by the operand (including its base and offset)
func (o *OperandDescriptor) SourceMask() uint32 {
	var mask uint32

	for _, part := range o.Flatten() {
		if part.Field != nil {
			mask |= part.Field.SourceMask()
		}
	}

	return mask
}

// Returns a deep copy of the operand
func (o *OperandDescriptor) Clone() *OperandDescriptor {
	if o == nil {
		return nil
	}

	clone := *o

	if o.Field != nil {
		field := *o.Field
		field.Fragments = append([]encoding.Fragment(nil), o.Field.Fragments...)
		clone.Field = &field
	}

	clone.Base = o.Base.Clone()
	clone.Offset = o.Offset.Clone()

	return &clone
}

// Returns true if both operands read the same instruction bits the same way
func (o *OperandDescriptor) SameEncoding(other *OperandDescriptor) bool {
	if o.Field == nil || other.Field == nil {
		return o.Field == nil && other.Field == nil
	}

	return o.Field.Equal(*other.Field) && o.Compressed == other.Compressed
}

// Returns a short assembly-like name for the operand, e.g. "rd", "rs2", "fs1", "simm0", "[rs1+simm0]"
func (o *OperandDescriptor) Name() string {
	switch o.Role {
	case OperandRole_WriteIntReg:
		return "rd" + indexSuffix(o.Index)
	case OperandRole_ReadIntReg:
		return fmt.Sprintf("rs%v", o.Index+1)
	case OperandRole_WriteFloatReg:
		return "fd" + indexSuffix(o.Index)
	case OperandRole_ReadFloatReg:
		return fmt.Sprintf("fs%v", o.Index+1)
	case OperandRole_SignedImm:
		return fmt.Sprintf("simm%v", o.Index)
	case OperandRole_UnsignedImm:
		return fmt.Sprintf("uimm%v", o.Index)
	case OperandRole_Constant:
		return fmt.Sprintf("const%v", o.Index)
	case OperandRole_Indirect:
		name := "[" + o.Base.Name()
		if o.Offset != nil {
			name += "+" + o.Offset.Name()
		}
		name += "]"
		if o.PostIncrement {
			name += "!"
		}
		return name
	}

	panic("unreachable")
}

func indexSuffix(index int) string {
	if index == 0 {
		return ""
	}

	return fmt.Sprint(index)
}

// Returns an human readable string describing the operand
func (o *OperandDescriptor) String() string {
	switch {
	case o.IsIndirect():
		return o.Name()
	case o.IsLiteral():
		return fmt.Sprintf("<%v:%v=%v>", o.Role, o.Name(), o.Literal)
	default:
		return fmt.Sprintf("<%v:%v%v>", o.Role, o.Name(), o.Field)
	}
}

// Value of an operand extracted from an instruction word
type OperandValue struct {
	Descriptor *OperandDescriptor
	// Register number or immediate value. Indirect operands carry no value, see Base and Offset
	Value  int64
	Base   *OperandValue
	Offset *OperandValue
}

// Extracts the operand value from an instruction word
func (o *OperandDescriptor) Decode(word uint32) OperandValue {
	result := OperandValue{Descriptor: o}

	switch {
	case o.IsIndirect():
		base := o.Base.Decode(word)
		result.Base = &base

		if o.Offset != nil {
			offset := o.Offset.Decode(word)
			result.Offset = &offset
		}
	case o.IsLiteral():
		result.Value = o.Literal
	default:
		result.Value = o.Field.Extract(word)

		if o.Compressed {
			result.Value += CompressedRegisterBias
		}
	}

	return result
}

func (v OperandValue) String() string {
	switch {
	case v.Descriptor.IsIndirect():
		text := fmt.Sprintf("%v(%v)", v.offsetString(), v.Base)
		if v.Descriptor.PostIncrement {
			text += "!"
		}
		return text
	case v.Descriptor.Role.IsRegister():
		if v.Descriptor.Role == OperandRole_ReadFloatReg || v.Descriptor.Role == OperandRole_WriteFloatReg {
			return fmt.Sprintf("f%v", v.Value)
		}
		return fmt.Sprintf("x%v", v.Value)
	default:
		return fmt.Sprint(v.Value)
	}
}

func (v OperandValue) offsetString() string {
	if v.Offset == nil {
		return ""
	}

	return v.Offset.String()
}
