package instructions

import (
	"github.com/Manu343726/isagen/pkg/isa/encoding"
)

func frag(bit int, width int, shift int) encoding.Fragment {
	return encoding.Fragment{SourceBit: bit, Width: width, DestShift: shift}
}

func format32(f Format, name string, operands ...*OperandDescriptor) *FormatDescriptor {
	return &FormatDescriptor{Format: f, Name: name, Width: encoding.StandardWidth, Operands: operands}
}

func format16(f Format, name string, operands ...*OperandDescriptor) *FormatDescriptor {
	return &FormatDescriptor{Format: f, Name: name, Width: encoding.CompressedWidth, Operands: operands}
}

var (
	rd  = encoding.Range(7, 5)
	rs1 = encoding.Range(15, 5)
	rs2 = encoding.Range(20, 5)
	rs3 = encoding.Range(25, 5)
	rm  = encoding.Range(12, 3)

	imm12      = encoding.Range(20, 12)
	storeImm   = encoding.Ranges(frag(7, 5, 0), frag(25, 7, 5))
	branchImm  = encoding.Ranges(frag(7, 1, 11), frag(8, 4, 1), frag(25, 6, 5), frag(31, 1, 12))
	shiftImm   = encoding.Ranges(frag(25, 1, 0), frag(20, 5, 1))
	jumpImm    = encoding.Ranges(frag(12, 8, 12), frag(20, 1, 11), frag(21, 10, 1), frag(31, 1, 20))
	cRd        = encoding.Range(7, 5)
	cRs2       = encoding.Range(2, 5)
	cRdPrime   = encoding.Range(2, 3)
	cRs1Prime  = encoding.Range(7, 3)
	cImm6      = encoding.Ranges(frag(2, 5, 0), frag(12, 1, 5))
	cLwspImm   = encoding.Ranges(frag(4, 3, 2), frag(12, 1, 5), frag(2, 2, 6))
	cSwspImm   = encoding.Ranges(frag(9, 4, 2), frag(7, 2, 6))
	cMemImm    = encoding.Ranges(frag(6, 1, 2), frag(10, 3, 3), frag(5, 1, 6))
	cJumpImm   = encoding.Ranges(frag(3, 3, 1), frag(11, 1, 4), frag(2, 1, 5), frag(7, 1, 6), frag(6, 1, 7), frag(9, 2, 8), frag(8, 1, 10), frag(12, 1, 11))
	cBranchImm = encoding.Ranges(frag(3, 2, 1), frag(10, 2, 3), frag(2, 1, 5), frag(5, 2, 6), frag(12, 1, 8))
)

// Integer register x2, the stack pointer
const stackPointer = 2

// Integer register x1, the link register
const linkRegister = 1

var Formats FormatsDescriptor = NewFormatsDescriptor([]*FormatDescriptor{
	format32(Format_Z, "Z"),
	format32(Format_F, "F",
		InReg(0, rs1)),
	format32(Format_R, "R",
		OutReg(0, rd),
		InReg(0, rs1),
		InReg(1, rs2)),
	format32(Format_RF, "RF",
		OutFReg(0, rd),
		InFReg(0, rs1),
		InFReg(1, rs2),
		UnsignedImm(0, rm)),
	format32(Format_RF2, "RF2",
		OutReg(0, rd),
		InFReg(0, rs1),
		InFReg(1, rs2),
		UnsignedImm(0, rm)),
	format32(Format_R2F1, "R2F1",
		OutReg(0, rd),
		InFReg(0, rs1),
		UnsignedImm(0, rm)),
	format32(Format_R2F2, "R2F2",
		OutFReg(0, rd),
		InReg(0, rs1),
		UnsignedImm(0, rm)),
	format32(Format_R2F3, "R2F3",
		OutFReg(0, rd),
		InFReg(0, rs1),
		UnsignedImm(0, rm)),
	format32(Format_R3F, "R3F",
		OutReg(0, rd),
		InFReg(0, rs1)),
	format32(Format_R3F2, "R3F2",
		OutFReg(0, rd),
		InReg(0, rs1)),
	format32(Format_R4U, "R4U",
		OutFReg(0, rd),
		InFReg(0, rs1),
		InFReg(1, rs2),
		InFReg(2, encoding.Range(27, 5)),
		UnsignedImm(0, rm)),
	format32(Format_RRRR, "RRRR",
		OutReg(0, rd),
		InReg(2, rd).Hidden(),
		InReg(0, rs1),
		InReg(1, rs2)),
	format32(Format_RRRR2, "RRRR2",
		OutReg(0, rd),
		InReg(0, rd).Hidden(),
		InReg(1, rs1),
		InReg(2, rs2)),
	format32(Format_RRRS, "RRRS",
		OutReg(0, rd),
		InReg(0, rd),
		InReg(1, rs1),
		SignedImm(0, shiftImm)),
	format32(Format_RRRU, "RRRU",
		OutReg(0, rd),
		InReg(0, rd),
		InReg(1, rs1),
		UnsignedImm(0, shiftImm)),
	format32(Format_RRRU2, "RRRU2",
		OutReg(0, rd),
		InReg(0, rs1),
		InReg(1, rs2),
		UnsignedImm(0, encoding.Range(25, 5))),
	format32(Format_RRRRU, "RRRRU",
		OutReg(0, rd),
		InReg(2, rd),
		InReg(0, rs1),
		InReg(1, rs2),
		UnsignedImm(0, encoding.Range(25, 5))),
	format32(Format_R1, "R1",
		OutReg(0, rd),
		InReg(0, rs1)),
	format32(Format_RRU, "RRU",
		OutReg(0, rd),
		InReg(0, rs1),
		UnsignedImm(0, shiftImm)),
	format32(Format_RRS, "RRS",
		OutReg(0, rd),
		InReg(0, rs1),
		SignedImm(0, shiftImm)),
	format32(Format_RRU2, "RRU2",
		OutReg(0, rd),
		InReg(0, rs1),
		UnsignedImm(0, shiftImm)),
	format32(Format_LR, "LR",
		OutReg(0, rd),
		Indirect(InReg(0, rs1), InReg(1, rs2))),
	format32(Format_LRPOST, "LRPOST",
		OutReg(0, rd),
		IndirectPostInc(InReg(0, rs1), InReg(1, rs2))),
	format32(Format_RR, "RR",
		OutReg(0, rd),
		InReg(0, rs1),
		InReg(1, rs2),
		InReg(2, rs3)),
	format32(Format_SR, "SR",
		InReg(1, rs2),
		Indirect(InReg(0, rs1), InReg(2, rd))),
	format32(Format_SR_OLD, "SR_OLD",
		InReg(1, rs2),
		Indirect(InReg(0, rs1), InReg(2, rs3))),
	format32(Format_I, "I",
		OutReg(0, rd),
		InReg(0, rs1),
		SignedImm(0, imm12)),
	format32(Format_L, "L",
		OutReg(0, rd),
		Indirect(InReg(0, rs1), SignedImm(0, imm12))),
	format32(Format_LRES, "LRES",
		OutReg(0, rd),
		Indirect(InReg(0, rs1), nil),
		UnsignedImm(0, encoding.Range(25, 1)),
		UnsignedImm(1, encoding.Range(26, 1))),
	format32(Format_FL, "FL",
		OutFReg(0, rd),
		Indirect(InReg(0, rs1), SignedImm(0, imm12))),
	format32(Format_LPOST, "LPOST",
		OutReg(0, rd),
		IndirectPostInc(InReg(0, rs1), SignedImm(0, imm12))),
	format32(Format_IU, "IU",
		OutReg(0, rd),
		InReg(0, rs1),
		UnsignedImm(0, imm12)),
	format32(Format_IUR, "IUR",
		OutReg(0, rd),
		UnsignedImm(1, rs1),
		UnsignedImm(0, imm12)),
	format32(Format_I1U, "I1U",
		OutReg(0, rd),
		InReg(0, rs1),
		UnsignedImm(0, rs2)),
	format32(Format_I2U, "I2U",
		OutReg(0, rd),
		UnsignedImm(0, imm12),
		UnsignedImm(1, rs1)),
	format32(Format_I3U, "I3U",
		UnsignedImm(0, encoding.Range(20, 8))),
	format32(Format_I4U, "I4U",
		OutReg(0, rd),
		InReg(0, rs1),
		UnsignedImm(0, rs3),
		UnsignedImm(1, rs2)),
	format32(Format_I5U, "I5U",
		OutReg(0, rd),
		InReg(1, rd).Hidden(),
		InReg(0, rs1),
		UnsignedImm(0, rs3),
		UnsignedImm(1, rs2)),
	format32(Format_I5U2, "I5U2",
		OutReg(0, rd),
		InReg(1, rd).Hidden(),
		InReg(0, rs1),
		InReg(2, rs2)),
	format32(Format_IOU, "IOU",
		UnsignedImm(0, rs1)),
	format32(Format_S, "S",
		InReg(1, rs2),
		Indirect(InReg(0, rs1), SignedImm(0, storeImm))),
	format32(Format_SCOND, "SCOND",
		OutReg(0, rd),
		InReg(1, rs2),
		Indirect(InReg(0, rs1), nil),
		UnsignedImm(0, encoding.Range(25, 1)),
		UnsignedImm(1, encoding.Range(26, 1))),
	format32(Format_FS, "FS",
		InFReg(1, rs2),
		Indirect(InReg(0, rs1), SignedImm(0, storeImm))),
	format32(Format_SPOST, "SPOST",
		InReg(1, rs2),
		IndirectPostInc(InReg(0, rs1), SignedImm(0, storeImm))),
	format32(Format_S1, "S1",
		InReg(0, rs1),
		InReg(1, rs2),
		InReg(2, rs3)),
	format32(Format_SRPOST, "SRPOST",
		InReg(1, rs2),
		IndirectPostInc(InReg(0, rs1), InReg(2, rd))),
	format32(Format_SB, "SB",
		InReg(0, rs1),
		InReg(1, rs2),
		SignedImm(0, branchImm)),
	format32(Format_SB2, "SB2",
		InReg(0, rs1),
		SignedImm(0, branchImm),
		SignedImm(1, rs2)),
	format32(Format_U, "U",
		OutReg(0, rd),
		UnsignedImm(0, encoding.RangeShifted(12, 20, 12))),
	format32(Format_UJ, "UJ",
		OutReg(0, rd),
		SignedImm(0, jumpImm)),
	format32(Format_HL0, "HL0",
		UnsignedImm(0, encoding.Range(7, 1)),
		InReg(0, rs1),
		UnsignedImm(1, imm12)),
	format32(Format_HL1, "HL1",
		UnsignedImm(0, encoding.Range(7, 1)),
		UnsignedImm(1, imm12),
		UnsignedImm(2, rs1)),

	format16(Format_CR, "CR",
		OutReg(0, cRd),
		InReg(0, cRd),
		InReg(1, cRs2)),
	format16(Format_CR1, "CR1",
		Fixed(OperandRole_WriteIntReg, 0, 0),
		InReg(0, cRd),
		Fixed(OperandRole_ReadIntReg, 1, 0),
		Fixed(OperandRole_SignedImm, 0, 0)),
	format16(Format_CR2, "CR2",
		OutReg(0, cRd),
		Fixed(OperandRole_ReadIntReg, 0, 0),
		InReg(1, cRs2)),
	format16(Format_CR3, "CR3",
		Fixed(OperandRole_WriteIntReg, 0, linkRegister),
		InReg(0, cRd),
		InReg(1, cRs2),
		Fixed(OperandRole_SignedImm, 0, 0)),
	format16(Format_CI1, "CI1",
		OutReg(0, cRd),
		InReg(0, cRd),
		SignedImm(0, cImm6)),
	format16(Format_CI1U, "CI1U",
		OutReg(0, cRd),
		InReg(0, cRd),
		UnsignedImm(0, cImm6)),
	format16(Format_CI2, "CI2",
		OutReg(0, cRd),
		InReg(0, cRd),
		SignedImm(0, encoding.Ranges(frag(2, 5, 2), frag(12, 1, 7)))),
	format16(Format_CI3, "CI3",
		OutReg(0, cRd),
		Indirect(Fixed(OperandRole_ReadIntReg, 0, stackPointer), SignedImm(0, cLwspImm).WithSign(false))),
	format16(Format_FCI3, "FCI3",
		OutFReg(0, cRd),
		Indirect(Fixed(OperandRole_ReadIntReg, 0, stackPointer), SignedImm(0, cLwspImm).WithSign(false))),
	format16(Format_CI4, "CI4",
		Fixed(OperandRole_WriteIntReg, 0, stackPointer),
		Fixed(OperandRole_ReadIntReg, 0, stackPointer),
		SignedImm(0, encoding.Ranges(frag(6, 1, 4), frag(2, 1, 5), frag(5, 1, 6), frag(3, 2, 7), frag(12, 1, 9)))),
	format16(Format_CI5, "CI5",
		OutReg(0, cRd),
		InReg(0, cRd),
		UnsignedImm(0, encoding.Ranges(frag(2, 5, 12), frag(12, 1, 17))).WithSign(true)),
	format16(Format_CI6, "CI6",
		OutReg(0, cRd),
		Fixed(OperandRole_ReadIntReg, 0, 0),
		SignedImm(0, cImm6)),
	format16(Format_CSS, "CSS",
		InReg(1, cRs2),
		Indirect(Fixed(OperandRole_ReadIntReg, 0, stackPointer), SignedImm(0, cSwspImm).WithSign(false))),
	format16(Format_FCSS, "FCSS",
		InFReg(1, cRs2),
		Indirect(Fixed(OperandRole_ReadIntReg, 0, stackPointer), SignedImm(0, cSwspImm).WithSign(false))),
	format16(Format_CIW, "CIW",
		OutRegComp(0, cRdPrime),
		Fixed(OperandRole_ReadIntReg, 0, stackPointer),
		SignedImm(0, encoding.Ranges(frag(6, 1, 2), frag(5, 1, 3), frag(11, 2, 4), frag(7, 4, 6))).WithSign(false)),
	format16(Format_CL, "CL",
		OutRegComp(0, cRdPrime),
		Indirect(InRegComp(0, cRs1Prime), SignedImm(0, cMemImm).WithSign(false))),
	format16(Format_FCL, "FCL",
		OutFRegComp(0, cRdPrime),
		Indirect(InRegComp(0, cRs1Prime), SignedImm(0, cMemImm).WithSign(false))),
	format16(Format_CS, "CS",
		InRegComp(1, cRdPrime),
		Indirect(InRegComp(0, cRs1Prime), SignedImm(0, cMemImm).WithSign(false))),
	format16(Format_FCS, "FCS",
		InFRegComp(1, cRdPrime),
		Indirect(InRegComp(0, cRs1Prime), SignedImm(0, cMemImm).WithSign(false))),
	format16(Format_CS2, "CS2",
		OutRegComp(0, cRs1Prime),
		InRegComp(0, cRs1Prime),
		InRegComp(1, cRdPrime)),
	format16(Format_CB1, "CB1",
		InRegComp(0, cRs1Prime),
		Fixed(OperandRole_ReadIntReg, 1, 0),
		SignedImm(0, cBranchImm)),
	format16(Format_CB2, "CB2",
		OutRegComp(0, cRs1Prime),
		InRegComp(0, cRs1Prime),
		UnsignedImm(0, cImm6)),
	format16(Format_CB2S, "CB2S",
		OutRegComp(0, cRs1Prime),
		InRegComp(0, cRs1Prime),
		SignedImm(0, cImm6)),
	format16(Format_CJ, "CJ",
		Fixed(OperandRole_WriteIntReg, 0, 0),
		SignedImm(0, cJumpImm)),
	format16(Format_CJ1, "CJ1",
		Fixed(OperandRole_WriteIntReg, 0, linkRegister),
		SignedImm(0, cJumpImm)),
})
