package riscv

import "github.com/Manu343726/isagen/pkg/isa/instructions"

// Single precision floating point
func rv32f() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("flw", instructions.Format_FL, "------- ----- ----- 010 ----- 0000111", load),
		define("fsw", instructions.Format_FS, "------- ----- ----- 010 ----- 0100111"),
		define("fmadd.s", instructions.Format_R4U, "-----00 ----- ----- --- ----- 1000011", group(fpuFmadd)),
		define("fmsub.s", instructions.Format_R4U, "-----00 ----- ----- --- ----- 1000111", group(fpuFmadd)),
		define("fnmsub.s", instructions.Format_R4U, "-----00 ----- ----- --- ----- 1001011", group(fpuFmadd)),
		define("fnmadd.s", instructions.Format_R4U, "-----00 ----- ----- --- ----- 1001111", group(fpuFmadd)),
		define("fadd.s", instructions.Format_RF, "0000000 ----- ----- --- ----- 1010011", group(fpuAdd)),
		define("fsub.s", instructions.Format_RF, "0000100 ----- ----- --- ----- 1010011", group(fpuAdd)),
		define("fmul.s", instructions.Format_RF, "0001000 ----- ----- --- ----- 1010011", group(fpuMul)),
		define("fdiv.s", instructions.Format_RF, "0001100 ----- ----- --- ----- 1010011", group(fpuDiv)),
		define("fsqrt.s", instructions.Format_R2F3, "0101100 00000 ----- --- ----- 1010011", group(fpuDiv)),
		define("fsgnj.s", instructions.Format_RF, "0010000 ----- ----- 000 ----- 1010011", group(fpuConv)),
		define("fsgnjn.s", instructions.Format_RF, "0010000 ----- ----- 001 ----- 1010011", group(fpuConv)),
		define("fsgnjx.s", instructions.Format_RF, "0010000 ----- ----- 010 ----- 1010011", group(fpuConv)),
		define("fmin.s", instructions.Format_RF, "0010100 ----- ----- 000 ----- 1010011", group(fpuConv)),
		define("fmax.s", instructions.Format_RF, "0010100 ----- ----- 001 ----- 1010011", group(fpuConv)),
		define("fcvt.w.s", instructions.Format_R2F1, "1100000 00000 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.wu.s", instructions.Format_R2F1, "1100000 00001 ----- --- ----- 1010011", group(fpuConv)),
		define("fmv.x.s", instructions.Format_R3F, "1110000 00000 ----- 000 ----- 1010011"),
		define("feq.s", instructions.Format_RF2, "1010000 ----- ----- 010 ----- 1010011"),
		define("flt.s", instructions.Format_RF2, "1010000 ----- ----- 001 ----- 1010011"),
		define("fle.s", instructions.Format_RF2, "1010000 ----- ----- 000 ----- 1010011"),
		define("fclass.s", instructions.Format_R3F, "1110000 00000 ----- 001 ----- 1010011"),
		define("fcvt.s.w", instructions.Format_R2F2, "1101000 00000 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.s.wu", instructions.Format_R2F2, "1101000 00001 ----- --- ----- 1010011", group(fpuConv)),
		define("fmv.s.x", instructions.Format_R3F2, "1111000 00000 ----- 000 ----- 1010011"),
		define("c.fsw", instructions.Format_FCS, "111 --- --- -- --- 00"),
		define("c.fswsp", instructions.Format_FCSS, "111 --- --- -- --- 10"),
		define("c.flw", instructions.Format_FCL, "011 --- --- -- --- 00", load),
		define("c.flwsp", instructions.Format_FCI3, "011 --- --- -- --- 10", load),
	}
}

// Double precision loads and stores
func rv32d() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("fld", instructions.Format_FL, "------- ----- ----- 011 ----- 0000111", load),
		define("fsd", instructions.Format_FS, "------- ----- ----- 011 ----- 0100111"),
		define("c.fsd", instructions.Format_FCS, "101 --- --- -- --- 00"),
		define("c.fsdsp", instructions.Format_FCSS, "101 --- --- -- --- 10"),
		define("c.fld", instructions.Format_FCL, "001 --- --- -- --- 00", load),
		define("c.fldsp", instructions.Format_FCI3, "001 --- --- -- --- 10", load),
	}
}

// Half precision floating point
func rv32f16() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("flh", instructions.Format_FL, "------- ----- ----- 001 ----- 0000111", load),
		define("fsh", instructions.Format_FS, "------- ----- ----- 001 ----- 0100111"),
		define("fmadd.h", instructions.Format_R4U, "-----10 ----- ----- --- ----- 1000011", group(fpuFmadd)),
		define("fmsub.h", instructions.Format_R4U, "-----10 ----- ----- --- ----- 1000111", group(fpuFmadd)),
		define("fnmsub.h", instructions.Format_R4U, "-----10 ----- ----- --- ----- 1001011", group(fpuFmadd)),
		define("fnmadd.h", instructions.Format_R4U, "-----10 ----- ----- --- ----- 1001111", group(fpuFmadd)),
		define("fadd.h", instructions.Format_RF, "0000010 ----- ----- --- ----- 1010011", group(fpuAdd)),
		define("fsub.h", instructions.Format_RF, "0000110 ----- ----- --- ----- 1010011", group(fpuAdd)),
		define("fmul.h", instructions.Format_RF, "0001010 ----- ----- --- ----- 1010011", group(fpuMul)),
		define("fdiv.h", instructions.Format_RF, "0001110 ----- ----- --- ----- 1010011", group(fpuDiv)),
		define("fsqrt.h", instructions.Format_R2F3, "0101110 00000 ----- --- ----- 1010011", group(fpuDiv)),
		define("fsgnj.h", instructions.Format_RF, "0010010 ----- ----- 000 ----- 1010011", group(fpuConv)),
		define("fsgnjn.h", instructions.Format_RF, "0010010 ----- ----- 001 ----- 1010011", group(fpuConv)),
		define("fsgnjx.h", instructions.Format_RF, "0010010 ----- ----- 010 ----- 1010011", group(fpuConv)),
		define("fmin.h", instructions.Format_RF, "0010110 ----- ----- 000 ----- 1010011", group(fpuConv)),
		define("fmax.h", instructions.Format_RF, "0010110 ----- ----- 001 ----- 1010011", group(fpuConv)),
		define("fcvt.w.h", instructions.Format_R2F1, "1100010 00000 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.wu.h", instructions.Format_R2F1, "1100010 00001 ----- --- ----- 1010011", group(fpuConv)),
		define("fmv.x.h", instructions.Format_R3F, "1110010 00000 ----- 000 ----- 1010011", group(fpuOther)),
		define("feq.h", instructions.Format_RF2, "1010010 ----- ----- 010 ----- 1010011", group(fpuOther)),
		define("flt.h", instructions.Format_RF2, "1010010 ----- ----- 001 ----- 1010011", group(fpuOther)),
		define("fle.h", instructions.Format_RF2, "1010010 ----- ----- 000 ----- 1010011", group(fpuOther)),
		define("fclass.h", instructions.Format_R3F, "1110010 00000 ----- 001 ----- 1010011", group(fpuOther)),
		define("fcvt.h.w", instructions.Format_R2F2, "1101010 00000 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.h.wu", instructions.Format_R2F2, "1101010 00001 ----- --- ----- 1010011", group(fpuConv)),
		define("fmv.h.x", instructions.Format_R3F2, "1111010 00000 ----- 000 ----- 1010011", group(fpuOther)),
		define("fcvt.s.h", instructions.Format_R2F2, "0100000 00010 ----- 000 ----- 1010011", group(fpuConv)),
		define("fcvt.h.s", instructions.Format_R2F2, "0100010 00000 ----- --- ----- 1010011", group(fpuConv)),
	}
}

// Alternative half precision (bfloat-like) floating point, rounding mode fixed to 101
func rv32f16alt() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("fmadd.ah", instructions.Format_R4U, "-----10 ----- ----- 101 ----- 1000011", group(fpuFmadd)),
		define("fmsub.ah", instructions.Format_R4U, "-----10 ----- ----- 101 ----- 1000111", group(fpuFmadd)),
		define("fnmsub.ah", instructions.Format_R4U, "-----10 ----- ----- 101 ----- 1001011", group(fpuFmadd)),
		define("fnmadd.ah", instructions.Format_R4U, "-----10 ----- ----- 101 ----- 1001111", group(fpuFmadd)),
		define("fadd.ah", instructions.Format_RF, "0000010 ----- ----- 101 ----- 1010011", group(fpuAdd)),
		define("fsub.ah", instructions.Format_RF, "0000110 ----- ----- 101 ----- 1010011", group(fpuAdd)),
		define("fmul.ah", instructions.Format_RF, "0001010 ----- ----- 101 ----- 1010011", group(fpuMul)),
		define("fdiv.ah", instructions.Format_RF, "0001110 ----- ----- 101 ----- 1010011", group(fpuDiv)),
		define("fsqrt.ah", instructions.Format_R2F3, "0101110 00000 ----- 101 ----- 1010011", group(fpuDiv)),
		define("fsgnj.ah", instructions.Format_RF, "0010010 ----- ----- 100 ----- 1010011", group(fpuConv)),
		define("fsgnjn.ah", instructions.Format_RF, "0010010 ----- ----- 101 ----- 1010011", group(fpuConv)),
		define("fsgnjx.ah", instructions.Format_RF, "0010010 ----- ----- 110 ----- 1010011", group(fpuConv)),
		define("fmin.ah", instructions.Format_RF, "0010110 ----- ----- 100 ----- 1010011", group(fpuConv)),
		define("fmax.ah", instructions.Format_RF, "0010110 ----- ----- 101 ----- 1010011", group(fpuConv)),
		define("fcvt.w.ah", instructions.Format_R2F1, "1100010 00000 ----- 101 ----- 1010011", group(fpuConv)),
		define("fcvt.wu.ah", instructions.Format_R2F1, "1100010 00001 ----- 101 ----- 1010011", group(fpuConv)),
		define("fmv.x.ah", instructions.Format_R3F, "1110010 00000 ----- 100 ----- 1010011", group(fpuOther)),
		define("feq.ah", instructions.Format_RF2, "1010010 ----- ----- 110 ----- 1010011", group(fpuOther)),
		define("flt.ah", instructions.Format_RF2, "1010010 ----- ----- 101 ----- 1010011", group(fpuOther)),
		define("fle.ah", instructions.Format_RF2, "1010010 ----- ----- 100 ----- 1010011", group(fpuOther)),
		define("fclass.ah", instructions.Format_R3F, "1110010 00000 ----- 101 ----- 1010011", group(fpuOther)),
		define("fcvt.ah.w", instructions.Format_R2F2, "1101010 00000 ----- 101 ----- 1010011", group(fpuConv)),
		define("fcvt.ah.wu", instructions.Format_R2F2, "1101010 00001 ----- 101 ----- 1010011", group(fpuConv)),
		define("fmv.ah.x", instructions.Format_R3F2, "1111010 00000 ----- 100 ----- 1010011", group(fpuOther)),
		define("fcvt.s.ah", instructions.Format_R2F2, "0100000 00110 ----- 000 ----- 1010011", group(fpuConv)),
		define("fcvt.ah.s", instructions.Format_R2F2, "0100010 00000 ----- 101 ----- 1010011", group(fpuConv)),
		define("fcvt.h.ah", instructions.Format_R2F2, "0100010 00110 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.ah.h", instructions.Format_R2F2, "0100010 00010 ----- 101 ----- 1010011", group(fpuConv)),
	}
}

// Quarter precision floating point
func rv32f8() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("flb", instructions.Format_FL, "------- ----- ----- 000 ----- 0000111", load),
		define("fsb", instructions.Format_FS, "------- ----- ----- 000 ----- 0100111"),
		define("fmadd.b", instructions.Format_R4U, "-----11 ----- ----- --- ----- 1000011", group(fpuFmadd)),
		define("fmsub.b", instructions.Format_R4U, "-----11 ----- ----- --- ----- 1000111", group(fpuFmadd)),
		define("fnmsub.b", instructions.Format_R4U, "-----11 ----- ----- --- ----- 1001011", group(fpuFmadd)),
		define("fnmadd.b", instructions.Format_R4U, "-----11 ----- ----- --- ----- 1001111", group(fpuFmadd)),
		define("fadd.b", instructions.Format_RF, "0000011 ----- ----- --- ----- 1010011", group(fpuAdd)),
		define("fsub.b", instructions.Format_RF, "0000111 ----- ----- --- ----- 1010011", group(fpuAdd)),
		define("fmul.b", instructions.Format_RF, "0001011 ----- ----- --- ----- 1010011", group(fpuMul)),
		define("fdiv.b", instructions.Format_RF, "0001111 ----- ----- --- ----- 1010011", group(fpuDiv)),
		define("fsqrt.b", instructions.Format_R2F3, "0101111 00000 ----- --- ----- 1010011", group(fpuDiv)),
		define("fsgnj.b", instructions.Format_RF, "0010011 ----- ----- 000 ----- 1010011", group(fpuConv)),
		define("fsgnjn.b", instructions.Format_RF, "0010011 ----- ----- 001 ----- 1010011", group(fpuConv)),
		define("fsgnjx.b", instructions.Format_RF, "0010011 ----- ----- 010 ----- 1010011", group(fpuConv)),
		define("fmin.b", instructions.Format_RF, "0010111 ----- ----- 000 ----- 1010011", group(fpuConv)),
		define("fmax.b", instructions.Format_RF, "0010111 ----- ----- 001 ----- 1010011", group(fpuConv)),
		define("fcvt.w.b", instructions.Format_R2F1, "1100011 00000 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.wu.b", instructions.Format_R2F1, "1100011 00001 ----- --- ----- 1010011", group(fpuConv)),
		define("fmv.x.b", instructions.Format_R3F, "1110011 00000 ----- 000 ----- 1010011", group(fpuOther)),
		define("feq.b", instructions.Format_RF2, "1010011 ----- ----- 010 ----- 1010011", group(fpuOther)),
		define("flt.b", instructions.Format_RF2, "1010011 ----- ----- 001 ----- 1010011", group(fpuOther)),
		define("fle.b", instructions.Format_RF2, "1010011 ----- ----- 000 ----- 1010011", group(fpuOther)),
		define("fclass.b", instructions.Format_R3F, "1110011 00000 ----- 001 ----- 1010011", group(fpuOther)),
		define("fcvt.b.w", instructions.Format_R2F2, "1101011 00000 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.b.wu", instructions.Format_R2F2, "1101011 00001 ----- --- ----- 1010011", group(fpuConv)),
		define("fmv.b.x", instructions.Format_R3F2, "1111011 00000 ----- 000 ----- 1010011", group(fpuOther)),
		define("fcvt.s.b", instructions.Format_R2F2, "0100000 00011 ----- 000 ----- 1010011", group(fpuConv)),
		define("fcvt.b.s", instructions.Format_R2F2, "0100011 00000 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.h.b", instructions.Format_R2F2, "0100010 00011 ----- 000 ----- 1010011", group(fpuConv)),
		define("fcvt.b.h", instructions.Format_R2F2, "0100011 00010 ----- --- ----- 1010011", group(fpuConv)),
		define("fcvt.ah.b", instructions.Format_R2F2, "0100010 00011 ----- 101 ----- 1010011", group(fpuConv)),
		define("fcvt.b.ah", instructions.Format_R2F2, "0100011 00110 ----- --- ----- 1010011", group(fpuConv)),
	}
}
