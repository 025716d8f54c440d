package riscv

import "github.com/Manu343726/isagen/pkg/isa/instructions"

// Base integer instructions
func rv32i() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("lui", instructions.Format_U, "------- ----- ----- --- ----- 0110111"),
		define("auipc", instructions.Format_U, "------- ----- ----- --- ----- 0010111", auipcHook),
		define("jal", instructions.Format_UJ, "------- ----- ----- --- ----- 1101111", jumpHook),
		define("jalr", instructions.Format_I, "------- ----- ----- 000 ----- 1100111"),
		define("beq", instructions.Format_SB, "------- ----- ----- 000 ----- 1100011", branchHook),
		define("bne", instructions.Format_SB, "------- ----- ----- 001 ----- 1100011", branchHook),
		define("blt", instructions.Format_SB, "------- ----- ----- 100 ----- 1100011", branchHook),
		define("bge", instructions.Format_SB, "------- ----- ----- 101 ----- 1100011", branchHook),
		define("bltu", instructions.Format_SB, "------- ----- ----- 110 ----- 1100011", branchHook),
		define("bgeu", instructions.Format_SB, "------- ----- ----- 111 ----- 1100011", branchHook),
		define("lb", instructions.Format_L, "------- ----- ----- 000 ----- 0000011", load),
		define("lh", instructions.Format_L, "------- ----- ----- 001 ----- 0000011", load),
		define("lw", instructions.Format_L, "------- ----- ----- 010 ----- 0000011", load),
		define("lbu", instructions.Format_L, "------- ----- ----- 100 ----- 0000011", load),
		define("lhu", instructions.Format_L, "------- ----- ----- 101 ----- 0000011", load),
		define("sb", instructions.Format_S, "------- ----- ----- 000 ----- 0100011", store),
		define("sh", instructions.Format_S, "------- ----- ----- 001 ----- 0100011", store),
		define("sw", instructions.Format_S, "------- ----- ----- 010 ----- 0100011", store),
		define("addi", instructions.Format_I, "------- ----- ----- 000 ----- 0010011"),
		define("nop", instructions.Format_Z, "0000000 00000 00000 000 00000 0010011", aliasOf("addi")),
		define("slti", instructions.Format_I, "------- ----- ----- 010 ----- 0010011"),
		define("sltiu", instructions.Format_I, "------- ----- ----- 011 ----- 0010011"),
		define("xori", instructions.Format_I, "------- ----- ----- 100 ----- 0010011"),
		define("ori", instructions.Format_I, "------- ----- ----- 110 ----- 0010011"),
		define("andi", instructions.Format_I, "------- ----- ----- 111 ----- 0010011"),
		define("slli", instructions.Format_I1U, "0000000 ----- ----- 001 ----- 0010011"),
		define("srli", instructions.Format_I1U, "0000000 ----- ----- 101 ----- 0010011"),
		define("srai", instructions.Format_I1U, "0100000 ----- ----- 101 ----- 0010011"),
		define("add", instructions.Format_R, "0000000 ----- ----- 000 ----- 0110011"),
		define("sub", instructions.Format_R, "0100000 ----- ----- 000 ----- 0110011"),
		define("sll", instructions.Format_R, "0000000 ----- ----- 001 ----- 0110011"),
		define("slt", instructions.Format_R, "0000000 ----- ----- 010 ----- 0110011"),
		define("sltu", instructions.Format_R, "0000000 ----- ----- 011 ----- 0110011"),
		define("xor", instructions.Format_R, "0000000 ----- ----- 100 ----- 0110011"),
		define("srl", instructions.Format_R, "0000000 ----- ----- 101 ----- 0110011"),
		define("sra", instructions.Format_R, "0100000 ----- ----- 101 ----- 0110011"),
		define("or", instructions.Format_R, "0000000 ----- ----- 110 ----- 0110011"),
		define("and", instructions.Format_R, "0000000 ----- ----- 111 ----- 0110011"),
		define("fence", instructions.Format_I3U, "0000--- ----- 00000 000 00000 0001111"),
		define("fence.i", instructions.Format_I, "0000000 00000 00000 001 00000 0001111"),
		define("sbreak", instructions.Format_I, "0000000 00001 00000 000 00000 1110011"),
	}
}

// Integer multiplication and division
func rv32m() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("mul", instructions.Format_R, "0000001 ----- ----- 000 ----- 0110011", group(rv32mMul)),
		define("mulh", instructions.Format_R, "0000001 ----- ----- 001 ----- 0110011", group(rv32mMulh)),
		define("mulhsu", instructions.Format_R, "0000001 ----- ----- 010 ----- 0110011", group(rv32mMulh)),
		define("mulhu", instructions.Format_R, "0000001 ----- ----- 011 ----- 0110011", group(rv32mMulh)),
		define("div", instructions.Format_R, "0000001 ----- ----- 100 ----- 0110011", group(rv32mDiv)),
		define("divu", instructions.Format_R, "0000001 ----- ----- 101 ----- 0110011", group(rv32mDiv)),
		define("rem", instructions.Format_R, "0000001 ----- ----- 110 ----- 0110011", group(rv32mDiv)),
		define("remu", instructions.Format_R, "0000001 ----- ----- 111 ----- 0110011", group(rv32mDiv)),
	}
}

// Load reserved / store conditional
func rv32a() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("lr.w", instructions.Format_LRES, "00010 -- 00000 ----- 010 ----- 0101111"),
		define("sc.w", instructions.Format_SCOND, "00011 -- ----- ----- 010 ----- 0101111"),
	}
}

// Compressed instructions
func rv32c() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("c.addi4spn", instructions.Format_CIW, "000 --- --- -- --- 00"),
		define("c.lw", instructions.Format_CL, "010 --- --- -- --- 00", load),
		define("c.sw", instructions.Format_CS, "110 --- --- -- --- 00"),
		define("c.nop", instructions.Format_CI1, "000 000 000 00 000 01"),
		define("c.addi", instructions.Format_CI1, "000 --- --- -- --- 01"),
		define("c.jal", instructions.Format_CJ1, "001 --- --- -- --- 01", jumpHook),
		define("c.li", instructions.Format_CI6, "010 --- --- -- --- 01"),
		define("c.addi16sp", instructions.Format_CI4, "011 -00 010 -- --- 01"),
		define("c.lui", instructions.Format_CI5, "011 --- --- -- --- 01"),
		define("c.srli", instructions.Format_CB2, "100 -00 --- -- --- 01"),
		define("c.srai", instructions.Format_CB2, "100 -01 --- -- --- 01"),
		define("c.andi", instructions.Format_CB2S, "100 -10 --- -- --- 01"),
		define("c.sub", instructions.Format_CS2, "100 011 --- 00 --- 01"),
		define("c.xor", instructions.Format_CS2, "100 011 --- 01 --- 01"),
		define("c.or", instructions.Format_CS2, "100 011 --- 10 --- 01"),
		define("c.and", instructions.Format_CS2, "100 011 --- 11 --- 01"),
		define("c.j", instructions.Format_CJ, "101 --- --- -- --- 01", jumpHook),
		define("c.beqz", instructions.Format_CB1, "110 --- --- -- --- 01", branchHook),
		define("c.bnez", instructions.Format_CB1, "111 --- --- -- --- 01", branchHook),
		define("c.slli", instructions.Format_CI1U, "000 --- --- -- --- 10"),
		define("c.lwsp", instructions.Format_CI3, "010 --- --- -- --- 10", load),
		define("c.jr", instructions.Format_CR1, "100 0-- --- 00 000 10"),
		define("c.mv", instructions.Format_CR2, "100 0-- --- -- --- 10"),
		define("c.ebreak", instructions.Format_CR, "100 100 000 00 000 10"),
		define("c.jalr", instructions.Format_CR3, "100 1-- --- 00 000 10"),
		define("c.add", instructions.Format_CR, "100 1-- --- -- --- 10"),
		define("c.swsp", instructions.Format_CSS, "110 --- --- -- --- 10"),
		define("c.sbreak", instructions.Format_CI1, "100 000 000 00 000 10"),
	}
}
