package riscv

import "github.com/Manu343726/isagen/pkg/isa/instructions"

// CSR access
func priv() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("csrrw", instructions.Format_IU, "------- ----- ----- 001 ----- 1110011"),
		define("csrrs", instructions.Format_IU, "------- ----- ----- 010 ----- 1110011"),
		define("csrrc", instructions.Format_IU, "------- ----- ----- 011 ----- 1110011"),
		define("csrrwi", instructions.Format_IUR, "------- ----- ----- 101 ----- 1110011"),
		define("csrrsi", instructions.Format_IUR, "------- ----- ----- 110 ----- 1110011"),
		define("csrrci", instructions.Format_IUR, "------- ----- ----- 111 ----- 1110011"),
	}
}

// Privileged instructions of the current PULP cores
func privPulpV2() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("mret", instructions.Format_Z, "0011000 00010 00000 000 00000 1110011"),
		define("wfi", instructions.Format_Z, "0001000 00101 00000 000 00000 1110011"),
	}
}

// Privileged instructions of the legacy PULP cores
func privPulp() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("eret", instructions.Format_Z, "0001000 00000 00000 000 00000 1110011"),
		define("wfi", instructions.Format_Z, "0001000 00010 00000 000 00000 1110011"),
	}
}

// Privileged architecture 1.9 instructions
func priv19() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("wfi", instructions.Format_Z, "0001000 00101 00000 000 00000 1110011"),
	}
}
