package riscv

import "github.com/Manu343726/isagen/pkg/isa/instructions"

// PULP extensions common to all versions: register-register and post-increment loads and stores,
// extra ALU operations and hardware loops
func pulp() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("lb_rr", instructions.Format_LR, "0000000 ----- ----- 111 ----- 0000011", label("p.lb"), load),
		define("lh_rr", instructions.Format_LR, "0001000 ----- ----- 111 ----- 0000011", label("p.lh"), load),
		define("lw_rr", instructions.Format_LR, "0010000 ----- ----- 111 ----- 0000011", label("p.lw"), load),
		define("lbu_rr", instructions.Format_LR, "0100000 ----- ----- 111 ----- 0000011", label("p.lbu"), load),
		define("lhu_rr", instructions.Format_LR, "0101000 ----- ----- 111 ----- 0000011", label("p.lhu"), load),
		define("lb_postinc", instructions.Format_LPOST, "------- ----- ----- 000 ----- 0001011", label("p.lb"), load),
		define("lh_postinc", instructions.Format_LPOST, "------- ----- ----- 001 ----- 0001011", label("p.lh"), load),
		define("lw_postinc", instructions.Format_LPOST, "------- ----- ----- 010 ----- 0001011", label("p.lw"), load),
		define("lbu_postinc", instructions.Format_LPOST, "------- ----- ----- 100 ----- 0001011", label("p.lbu"), load),
		define("lhu_postinc", instructions.Format_LPOST, "------- ----- ----- 101 ----- 0001011", label("p.lhu"), load),
		define("sb_postinc", instructions.Format_SPOST, "------- ----- ----- 000 ----- 0101011", label("p.sb")),
		define("sh_postinc", instructions.Format_SPOST, "------- ----- ----- 001 ----- 0101011", label("p.sh")),
		define("sw_postinc", instructions.Format_SPOST, "------- ----- ----- 010 ----- 0101011", label("p.sw")),
		define("lb_rr_postinc", instructions.Format_LRPOST, "0000000 ----- ----- 111 ----- 0001011", label("p.lb"), load),
		define("lh_rr_postinc", instructions.Format_LRPOST, "0001000 ----- ----- 111 ----- 0001011", label("p.lh"), load),
		define("lw_rr_postinc", instructions.Format_LRPOST, "0010000 ----- ----- 111 ----- 0001011", label("p.lw"), load),
		define("lbu_rr_postinc", instructions.Format_LRPOST, "0100000 ----- ----- 111 ----- 0001011", label("p.lbu"), load),
		define("lhu_rr_postinc", instructions.Format_LRPOST, "0101000 ----- ----- 111 ----- 0001011", label("p.lhu"), load),
		define("sb_rr_postinc", instructions.Format_SRPOST, "0000000 ----- ----- 100 ----- 0101011", label("p.sb")),
		define("sh_rr_postinc", instructions.Format_SRPOST, "0000000 ----- ----- 101 ----- 0101011", label("p.sh")),
		define("sw_rr_postinc", instructions.Format_SRPOST, "0000000 ----- ----- 110 ----- 0101011", label("p.sw")),
		define("p.avgu", instructions.Format_R, "0000010 ----- ----- 001 ----- 0110011"),
		define("p.slet", instructions.Format_R, "0000010 ----- ----- 010 ----- 0110011"),
		define("p.sletu", instructions.Format_R, "0000010 ----- ----- 011 ----- 0110011"),
		define("p.min", instructions.Format_R, "0000010 ----- ----- 100 ----- 0110011"),
		define("p.minu", instructions.Format_R, "0000010 ----- ----- 101 ----- 0110011"),
		define("p.max", instructions.Format_R, "0000010 ----- ----- 110 ----- 0110011"),
		define("p.maxu", instructions.Format_R, "0000010 ----- ----- 111 ----- 0110011"),
		define("p.ror", instructions.Format_R, "0000100 ----- ----- 101 ----- 0110011"),
		define("p.ff1", instructions.Format_R1, "0001000 00000 ----- 000 ----- 0110011"),
		define("p.fl1", instructions.Format_R1, "0001000 00000 ----- 001 ----- 0110011"),
		define("p.clb", instructions.Format_R1, "0001000 00000 ----- 010 ----- 0110011"),
		define("p.cnt", instructions.Format_R1, "0001000 00000 ----- 011 ----- 0110011"),
		define("p.exths", instructions.Format_R1, "0001000 00000 ----- 100 ----- 0110011"),
		define("p.exthz", instructions.Format_R1, "0001000 00000 ----- 101 ----- 0110011"),
		define("p.extbs", instructions.Format_R1, "0001000 00000 ----- 110 ----- 0110011"),
		define("p.extbz", instructions.Format_R1, "0001000 00000 ----- 111 ----- 0110011"),
		define("lp.starti", instructions.Format_HL0, "------- ----- ----- 000 0000- 1111011"),
		define("lp.endi", instructions.Format_HL0, "------- ----- ----- 001 0000- 1111011"),
		define("lp.count", instructions.Format_HL0, "------- ----- ----- 010 0000- 1111011"),
		define("lp.counti", instructions.Format_HL0, "------- ----- ----- 011 0000- 1111011"),
		define("lp.setup", instructions.Format_HL0, "------- ----- ----- 100 0000- 1111011"),
		define("lp.setupi", instructions.Format_HL1, "------- ----- ----- 101 0000- 1111011"),
	}
}

// First PULP extension version
func pulpV1() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("p.abs", instructions.Format_R1, "0001010 00000 ----- 000 ----- 0110011"),
		define("sb_rr", instructions.Format_SR_OLD, "------- ----- ----- 100 ----- 0100011", label("p.sb")),
		define("sh_rr", instructions.Format_SR_OLD, "------- ----- ----- 101 ----- 0100011", label("p.sh")),
		define("sw_rr", instructions.Format_SR_OLD, "------- ----- ----- 110 ----- 0100011", label("p.sw")),
		define("p.mac", instructions.Format_RR, "00----- ----- ----- 000 ----- 1011011"),
		define("p.mac.sl.sl", instructions.Format_RR, "11----- ----- ----- 100 ----- 1011011"),
		define("p.mac.sl.sh", instructions.Format_RR, "11----- ----- ----- 101 ----- 1011011"),
		define("p.mac.sl.zl", instructions.Format_RR, "10----- ----- ----- 100 ----- 1011011"),
		define("p.mac.sl.zh", instructions.Format_RR, "10----- ----- ----- 101 ----- 1011011"),
		define("p.mac.sh.sl", instructions.Format_RR, "11----- ----- ----- 110 ----- 1011011"),
		define("p.mac.sh.sh", instructions.Format_RR, "11----- ----- ----- 111 ----- 1011011"),
		define("p.mac.sh.zl", instructions.Format_RR, "10----- ----- ----- 110 ----- 1011011"),
		define("p.mac.sh.zh", instructions.Format_RR, "10----- ----- ----- 111 ----- 1011011"),
		define("p.mac.zl.sl", instructions.Format_RR, "01----- ----- ----- 100 ----- 1011011"),
		define("p.mac.zl.sh", instructions.Format_RR, "01----- ----- ----- 101 ----- 1011011"),
		define("p.mac.zl.zl", instructions.Format_RR, "00----- ----- ----- 100 ----- 1011011"),
		define("p.mac.zl.zh", instructions.Format_RR, "00----- ----- ----- 101 ----- 1011011"),
		define("p.mac.zh.sl", instructions.Format_RR, "01----- ----- ----- 110 ----- 1011011"),
		define("p.mac.zh.sh", instructions.Format_RR, "01----- ----- ----- 111 ----- 1011011"),
		define("p.mac.zh.zl", instructions.Format_RR, "00----- ----- ----- 110 ----- 1011011"),
		define("p.mac.zh.zh", instructions.Format_RR, "00----- ----- ----- 111 ----- 1011011"),
	}
}

// Zero-riscy core extensions
func pulpZeroriscy() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("p.elw", instructions.Format_L, "------- ----- ----- 110 ----- 0000011", load),
	}
}

// Second PULP extension version: SIMD, dot products, multiply-accumulate and bit manipulation
func pulpV2() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("p.abs", instructions.Format_R1, "0000010 00000 ----- 000 ----- 0110011"),
		define("sb_rr", instructions.Format_SR, "0000000 ----- ----- 100 ----- 0100011", label("p.sb")),
		define("sh_rr", instructions.Format_SR, "0000000 ----- ----- 101 ----- 0100011", label("p.sh")),
		define("sw_rr", instructions.Format_SR, "0000000 ----- ----- 110 ----- 0100011", label("p.sw")),
		define("p.elw", instructions.Format_L, "------- ----- ----- 110 ----- 0000011", load),
		define("pv.add.h", instructions.Format_R, "000000- ----- ----- 000 ----- 1010111"),
		define("pv.add.sc.h", instructions.Format_R, "000000- ----- ----- 100 ----- 1010111"),
		define("pv.add.sci.h", instructions.Format_RRS, "000000- ----- ----- 110 ----- 1010111"),
		define("pv.add.b", instructions.Format_R, "000000- ----- ----- 001 ----- 1010111"),
		define("pv.add.sc.b", instructions.Format_R, "000000- ----- ----- 101 ----- 1010111"),
		define("pv.add.sci.b", instructions.Format_RRS, "000000- ----- ----- 111 ----- 1010111"),
		define("pv.sub.h", instructions.Format_R, "000010- ----- ----- 000 ----- 1010111"),
		define("pv.sub.sc.h", instructions.Format_R, "000010- ----- ----- 100 ----- 1010111"),
		define("pv.sub.sci.h", instructions.Format_RRS, "000010- ----- ----- 110 ----- 1010111"),
		define("pv.sub.b", instructions.Format_R, "000010- ----- ----- 001 ----- 1010111"),
		define("pv.sub.sc.b", instructions.Format_R, "000010- ----- ----- 101 ----- 1010111"),
		define("pv.sub.sci.b", instructions.Format_RRS, "000010- ----- ----- 111 ----- 1010111"),
		define("pv.avg.h", instructions.Format_R, "000100- ----- ----- 000 ----- 1010111"),
		define("pv.avg.sc.h", instructions.Format_R, "000100- ----- ----- 100 ----- 1010111"),
		define("pv.avg.sci.h", instructions.Format_RRS, "000100- ----- ----- 110 ----- 1010111"),
		define("pv.avg.b", instructions.Format_R, "000100- ----- ----- 001 ----- 1010111"),
		define("pv.avg.sc.b", instructions.Format_R, "000100- ----- ----- 101 ----- 1010111"),
		define("pv.avg.sci.b", instructions.Format_RRS, "000100- ----- ----- 111 ----- 1010111"),
		define("pv.avgu.h", instructions.Format_R, "000110- ----- ----- 000 ----- 1010111"),
		define("pv.avgu.sc.h", instructions.Format_R, "000110- ----- ----- 100 ----- 1010111"),
		define("pv.avgu.sci.h", instructions.Format_RRU, "000110- ----- ----- 110 ----- 1010111"),
		define("pv.avgu.b", instructions.Format_R, "000110- ----- ----- 001 ----- 1010111"),
		define("pv.avgu.sc.b", instructions.Format_R, "000110- ----- ----- 101 ----- 1010111"),
		define("pv.avgu.sci.b", instructions.Format_RRU, "000110- ----- ----- 111 ----- 1010111"),
		define("pv.min.h", instructions.Format_R, "001000- ----- ----- 000 ----- 1010111"),
		define("pv.min.sc.h", instructions.Format_R, "001000- ----- ----- 100 ----- 1010111"),
		define("pv.min.sci.h", instructions.Format_RRS, "001000- ----- ----- 110 ----- 1010111"),
		define("pv.min.b", instructions.Format_R, "001000- ----- ----- 001 ----- 1010111"),
		define("pv.min.sc.b", instructions.Format_R, "001000- ----- ----- 101 ----- 1010111"),
		define("pv.min.sci.b", instructions.Format_RRS, "001000- ----- ----- 111 ----- 1010111"),
		define("pv.minu.h", instructions.Format_R, "001010- ----- ----- 000 ----- 1010111"),
		define("pv.minu.sc.h", instructions.Format_R, "001010- ----- ----- 100 ----- 1010111"),
		define("pv.minu.sci.h", instructions.Format_RRU, "001010- ----- ----- 110 ----- 1010111"),
		define("pv.minu.b", instructions.Format_R, "001010- ----- ----- 001 ----- 1010111"),
		define("pv.minu.sc.b", instructions.Format_R, "001010- ----- ----- 101 ----- 1010111"),
		define("pv.minu.sci.b", instructions.Format_RRU, "001010- ----- ----- 111 ----- 1010111"),
		define("pv.max.h", instructions.Format_R, "001100- ----- ----- 000 ----- 1010111"),
		define("pv.max.sc.h", instructions.Format_R, "001100- ----- ----- 100 ----- 1010111"),
		define("pv.max.sci.h", instructions.Format_RRS, "001100- ----- ----- 110 ----- 1010111"),
		define("pv.max.b", instructions.Format_R, "001100- ----- ----- 001 ----- 1010111"),
		define("pv.max.sc.b", instructions.Format_R, "001100- ----- ----- 101 ----- 1010111"),
		define("pv.max.sci.b", instructions.Format_RRS, "001100- ----- ----- 111 ----- 1010111"),
		define("pv.maxu.h", instructions.Format_R, "001110- ----- ----- 000 ----- 1010111"),
		define("pv.maxu.sc.h", instructions.Format_R, "001110- ----- ----- 100 ----- 1010111"),
		define("pv.maxu.sci.h", instructions.Format_RRU, "001110- ----- ----- 110 ----- 1010111"),
		define("pv.maxu.b", instructions.Format_R, "001110- ----- ----- 001 ----- 1010111"),
		define("pv.maxu.sc.b", instructions.Format_R, "001110- ----- ----- 101 ----- 1010111"),
		define("pv.maxu.sci.b", instructions.Format_RRU, "001110- ----- ----- 111 ----- 1010111"),
		define("pv.srl.h", instructions.Format_R, "010000- ----- ----- 000 ----- 1010111"),
		define("pv.srl.sc.h", instructions.Format_R, "010000- ----- ----- 100 ----- 1010111"),
		define("pv.srl.sci.h", instructions.Format_RRU, "010000- ----- ----- 110 ----- 1010111"),
		define("pv.srl.b", instructions.Format_R, "010000- ----- ----- 001 ----- 1010111"),
		define("pv.srl.sc.b", instructions.Format_R, "010000- ----- ----- 101 ----- 1010111"),
		define("pv.srl.sci.b", instructions.Format_RRU, "010000- ----- ----- 111 ----- 1010111"),
		define("pv.sra.h", instructions.Format_R, "010010- ----- ----- 000 ----- 1010111"),
		define("pv.sra.sc.h", instructions.Format_R, "010010- ----- ----- 100 ----- 1010111"),
		define("pv.sra.sci.h", instructions.Format_RRS, "010010- ----- ----- 110 ----- 1010111"),
		define("pv.sra.b", instructions.Format_R, "010010- ----- ----- 001 ----- 1010111"),
		define("pv.sra.sc.b", instructions.Format_R, "010010- ----- ----- 101 ----- 1010111"),
		define("pv.sra.sci.b", instructions.Format_RRS, "010010- ----- ----- 111 ----- 1010111"),
		define("pv.sll.h", instructions.Format_R, "010100- ----- ----- 000 ----- 1010111"),
		define("pv.sll.sc.h", instructions.Format_R, "010100- ----- ----- 100 ----- 1010111"),
		define("pv.sll.sci.h", instructions.Format_RRU, "010100- ----- ----- 110 ----- 1010111"),
		define("pv.sll.b", instructions.Format_R, "010100- ----- ----- 001 ----- 1010111"),
		define("pv.sll.sc.b", instructions.Format_R, "010100- ----- ----- 101 ----- 1010111"),
		define("pv.sll.sci.b", instructions.Format_RRU, "010100- ----- ----- 111 ----- 1010111"),
		define("pv.or.h", instructions.Format_R, "010110- ----- ----- 000 ----- 1010111"),
		define("pv.or.sc.h", instructions.Format_R, "010110- ----- ----- 100 ----- 1010111"),
		define("pv.or.sci.h", instructions.Format_RRS, "010110- ----- ----- 110 ----- 1010111"),
		define("pv.or.b", instructions.Format_R, "010110- ----- ----- 001 ----- 1010111"),
		define("pv.or.sc.b", instructions.Format_R, "010110- ----- ----- 101 ----- 1010111"),
		define("pv.or.sci.b", instructions.Format_RRS, "010110- ----- ----- 111 ----- 1010111"),
		define("pv.xor.h", instructions.Format_R, "011000- ----- ----- 000 ----- 1010111"),
		define("pv.xor.sc.h", instructions.Format_R, "011000- ----- ----- 100 ----- 1010111"),
		define("pv.xor.sci.h", instructions.Format_RRS, "011000- ----- ----- 110 ----- 1010111"),
		define("pv.xor.b", instructions.Format_R, "011000- ----- ----- 001 ----- 1010111"),
		define("pv.xor.sc.b", instructions.Format_R, "011000- ----- ----- 101 ----- 1010111"),
		define("pv.xor.sci.b", instructions.Format_RRS, "011000- ----- ----- 111 ----- 1010111"),
		define("pv.and.h", instructions.Format_R, "011010- ----- ----- 000 ----- 1010111"),
		define("pv.and.sc.h", instructions.Format_R, "011010- ----- ----- 100 ----- 1010111"),
		define("pv.and.sci.h", instructions.Format_RRS, "011010- ----- ----- 110 ----- 1010111"),
		define("pv.and.b", instructions.Format_R, "011010- ----- ----- 001 ----- 1010111"),
		define("pv.and.sc.b", instructions.Format_R, "011010- ----- ----- 101 ----- 1010111"),
		define("pv.and.sci.b", instructions.Format_RRS, "011010- ----- ----- 111 ----- 1010111"),
		define("pv.abs.h", instructions.Format_R1, "0111000 ----- ----- 000 ----- 1010111"),
		define("pv.abs.b", instructions.Format_R1, "0111000 ----- ----- 001 ----- 1010111"),
		define("pv.extract.h", instructions.Format_RRU, "011110- ----- ----- 110 ----- 1010111"),
		define("pv.extract.b", instructions.Format_RRU, "011110- ----- ----- 111 ----- 1010111"),
		define("pv.extractu.h", instructions.Format_RRU, "100100- ----- ----- 110 ----- 1010111"),
		define("pv.extractu.b", instructions.Format_RRU, "100100- ----- ----- 111 ----- 1010111"),
		define("pv.insert.h", instructions.Format_RRRU, "101100- ----- ----- 110 ----- 1010111"),
		define("pv.insert.b", instructions.Format_RRRU, "101100- ----- ----- 111 ----- 1010111"),
		define("pv.dotsp.h", instructions.Format_R, "100110- ----- ----- 000 ----- 1010111"),
		define("pv.dotsp.h.sc", instructions.Format_R, "100110- ----- ----- 100 ----- 1010111"),
		define("pv.dotsp.h.sci", instructions.Format_RRS, "100110- ----- ----- 110 ----- 1010111"),
		define("pv.dotsp.b", instructions.Format_R, "100110- ----- ----- 001 ----- 1010111"),
		define("pv.dotsp.b.sc", instructions.Format_R, "100110- ----- ----- 101 ----- 1010111"),
		define("pv.dotsp.b.sci", instructions.Format_RRS, "100110- ----- ----- 111 ----- 1010111"),
		define("pv.dotup.h", instructions.Format_R, "100000- ----- ----- 000 ----- 1010111"),
		define("pv.dotup.h.sc", instructions.Format_R, "100000- ----- ----- 100 ----- 1010111"),
		define("pv.dotup.h.sci", instructions.Format_RRU, "100000- ----- ----- 110 ----- 1010111"),
		define("pv.dotup.b", instructions.Format_R, "100000- ----- ----- 001 ----- 1010111"),
		define("pv.dotup.b.sc", instructions.Format_R, "100000- ----- ----- 101 ----- 1010111"),
		define("pv.dotup.b.sci", instructions.Format_RRU, "100000- ----- ----- 111 ----- 1010111"),
		define("pv.dotusp.h", instructions.Format_R, "100010- ----- ----- 000 ----- 1010111"),
		define("pv.dotusp.h.sc", instructions.Format_R, "100010- ----- ----- 100 ----- 1010111"),
		define("pv.dotusp.h.sci", instructions.Format_RRS, "100010- ----- ----- 110 ----- 1010111"),
		define("pv.dotusp.b", instructions.Format_R, "100010- ----- ----- 001 ----- 1010111"),
		define("pv.dotusp.b.sc", instructions.Format_R, "100010- ----- ----- 101 ----- 1010111"),
		define("pv.dotusp.b.sci", instructions.Format_RRS, "100010- ----- ----- 111 ----- 1010111"),
		define("pv.sdotsp.h", instructions.Format_RRRR, "101110- ----- ----- 000 ----- 1010111"),
		define("pv.sdotsp.h.sc", instructions.Format_RRRR, "101110- ----- ----- 100 ----- 1010111"),
		define("pv.sdotsp.h.sci", instructions.Format_RRRS, "101110- ----- ----- 110 ----- 1010111"),
		define("pv.sdotsp.b", instructions.Format_RRRR, "101110- ----- ----- 001 ----- 1010111"),
		define("pv.sdotsp.b.sc", instructions.Format_RRRR, "101110- ----- ----- 101 ----- 1010111"),
		define("pv.sdotsp.b.sci", instructions.Format_RRRS, "101110- ----- ----- 111 ----- 1010111"),
		define("pv.sdotup.h", instructions.Format_RRRR, "101000- ----- ----- 000 ----- 1010111"),
		define("pv.sdotup.h.sc", instructions.Format_RRRR, "101000- ----- ----- 100 ----- 1010111"),
		define("pv.sdotup.h.sci", instructions.Format_RRRU, "101000- ----- ----- 110 ----- 1010111"),
		define("pv.sdotup.b", instructions.Format_RRRR, "101000- ----- ----- 001 ----- 1010111"),
		define("pv.sdotup.b.sc", instructions.Format_RRRR, "101000- ----- ----- 101 ----- 1010111"),
		define("pv.sdotup.b.sci", instructions.Format_RRRU, "101000- ----- ----- 111 ----- 1010111"),
		define("pv.sdotusp.h", instructions.Format_RRRR, "101010- ----- ----- 000 ----- 1010111"),
		define("pv.sdotusp.h.sc", instructions.Format_RRRR, "101010- ----- ----- 100 ----- 1010111"),
		define("pv.sdotusp.h.sci", instructions.Format_RRRS, "101010- ----- ----- 110 ----- 1010111"),
		define("pv.sdotusp.b", instructions.Format_RRRR, "101010- ----- ----- 001 ----- 1010111"),
		define("pv.sdotusp.b.sc", instructions.Format_RRRR, "101010- ----- ----- 101 ----- 1010111"),
		define("pv.sdotusp.b.sci", instructions.Format_RRRS, "101010- ----- ----- 111 ----- 1010111"),
		define("pv.shuffle.h", instructions.Format_R, "110000- ----- ----- 000 ----- 1010111"),
		define("pv.shuffle.h.sci", instructions.Format_RRU, "110000- ----- ----- 110 ----- 1010111"),
		define("pv.shuffle.b", instructions.Format_R, "110000- ----- ----- 001 ----- 1010111"),
		define("pv.shufflei0.b.sci", instructions.Format_RRU2, "110000- ----- ----- 111 ----- 1010111"),
		define("pv.shufflei1.b.sci", instructions.Format_RRU2, "111010- ----- ----- 111 ----- 1010111"),
		define("pv.shufflei2.b.sci", instructions.Format_RRU2, "111100- ----- ----- 111 ----- 1010111"),
		define("pv.shufflei3.b.sci", instructions.Format_RRU2, "111110- ----- ----- 111 ----- 1010111"),
		define("pv.shuffle2.h", instructions.Format_RRRR, "110010- ----- ----- 000 ----- 1010111"),
		define("pv.shuffle2.b", instructions.Format_RRRR, "110010- ----- ----- 001 ----- 1010111"),
		define("pv.pack.h", instructions.Format_RRRR, "110100- ----- ----- 000 ----- 1010111"),
		define("pv.packhi.b", instructions.Format_RRRR, "110110- ----- ----- 001 ----- 1010111"),
		define("pv.packlo.b", instructions.Format_RRRR, "111000- ----- ----- 001 ----- 1010111"),
		define("pv.cmpeq.h", instructions.Format_R, "000001- ----- ----- 000 ----- 1010111"),
		define("pv.cmpeq.sc.h", instructions.Format_R, "000001- ----- ----- 100 ----- 1010111"),
		define("pv.cmpeq.sci.h", instructions.Format_RRS, "000001- ----- ----- 110 ----- 1010111"),
		define("pv.cmpeq.b", instructions.Format_R, "000001- ----- ----- 001 ----- 1010111"),
		define("pv.cmpeq.sc.b", instructions.Format_R, "000001- ----- ----- 101 ----- 1010111"),
		define("pv.cmpeq.sci.b", instructions.Format_RRS, "000001- ----- ----- 111 ----- 1010111"),
		define("pv.cmpne.h", instructions.Format_R, "000011- ----- ----- 000 ----- 1010111"),
		define("pv.cmpne.sc.h", instructions.Format_R, "000011- ----- ----- 100 ----- 1010111"),
		define("pv.cmpne.sci.h", instructions.Format_RRS, "000011- ----- ----- 110 ----- 1010111"),
		define("pv.cmpne.b", instructions.Format_R, "000011- ----- ----- 001 ----- 1010111"),
		define("pv.cmpne.sc.b", instructions.Format_R, "000011- ----- ----- 101 ----- 1010111"),
		define("pv.cmpne.sci.b", instructions.Format_RRS, "000011- ----- ----- 111 ----- 1010111"),
		define("pv.cmpgt.h", instructions.Format_R, "000101- ----- ----- 000 ----- 1010111"),
		define("pv.cmpgt.sc.h", instructions.Format_R, "000101- ----- ----- 100 ----- 1010111"),
		define("pv.cmpgt.sci.h", instructions.Format_RRS, "000101- ----- ----- 110 ----- 1010111"),
		define("pv.cmpgt.b", instructions.Format_R, "000101- ----- ----- 001 ----- 1010111"),
		define("pv.cmpgt.sc.b", instructions.Format_R, "000101- ----- ----- 101 ----- 1010111"),
		define("pv.cmpgt.sci.b", instructions.Format_RRS, "000101- ----- ----- 111 ----- 1010111"),
		define("pv.cmpge.h", instructions.Format_R, "000111- ----- ----- 000 ----- 1010111"),
		define("pv.cmpge.sc.h", instructions.Format_R, "000111- ----- ----- 100 ----- 1010111"),
		define("pv.cmpge.sci.h", instructions.Format_RRS, "000111- ----- ----- 110 ----- 1010111"),
		define("pv.cmpge.b", instructions.Format_R, "000111- ----- ----- 001 ----- 1010111"),
		define("pv.cmpge.sc.b", instructions.Format_R, "000111- ----- ----- 101 ----- 1010111"),
		define("pv.cmpge.sci.b", instructions.Format_RRS, "000111- ----- ----- 111 ----- 1010111"),
		define("pv.cmplt.h", instructions.Format_R, "001001- ----- ----- 000 ----- 1010111"),
		define("pv.cmplt.sc.h", instructions.Format_R, "001001- ----- ----- 100 ----- 1010111"),
		define("pv.cmplt.sci.h", instructions.Format_RRS, "001001- ----- ----- 110 ----- 1010111"),
		define("pv.cmplt.b", instructions.Format_R, "001001- ----- ----- 001 ----- 1010111"),
		define("pv.cmplt.sc.b", instructions.Format_R, "001001- ----- ----- 101 ----- 1010111"),
		define("pv.cmplt.sci.b", instructions.Format_RRS, "001001- ----- ----- 111 ----- 1010111"),
		define("pv.cmple.h", instructions.Format_R, "001011- ----- ----- 000 ----- 1010111"),
		define("pv.cmple.sc.h", instructions.Format_R, "001011- ----- ----- 100 ----- 1010111"),
		define("pv.cmple.sci.h", instructions.Format_RRS, "001011- ----- ----- 110 ----- 1010111"),
		define("pv.cmple.b", instructions.Format_R, "001011- ----- ----- 001 ----- 1010111"),
		define("pv.cmple.sc.b", instructions.Format_R, "001011- ----- ----- 101 ----- 1010111"),
		define("pv.cmple.sci.b", instructions.Format_RRS, "001011- ----- ----- 111 ----- 1010111"),
		define("pv.cmpgtu.h", instructions.Format_R, "001101- ----- ----- 000 ----- 1010111"),
		define("pv.cmpgtu.sc.h", instructions.Format_R, "001101- ----- ----- 100 ----- 1010111"),
		define("pv.cmpgtu.sci.h", instructions.Format_RRU, "001101- ----- ----- 110 ----- 1010111"),
		define("pv.cmpgtu.b", instructions.Format_R, "001101- ----- ----- 001 ----- 1010111"),
		define("pv.cmpgtu.sc.b", instructions.Format_R, "001101- ----- ----- 101 ----- 1010111"),
		define("pv.cmpgtu.sci.b", instructions.Format_RRU, "001101- ----- ----- 111 ----- 1010111"),
		define("pv.cmpgeu.h", instructions.Format_R, "001111- ----- ----- 000 ----- 1010111"),
		define("pv.cmpgeu.sc.h", instructions.Format_R, "001111- ----- ----- 100 ----- 1010111"),
		define("pv.cmpgeu.sci.h", instructions.Format_RRU, "001111- ----- ----- 110 ----- 1010111"),
		define("pv.cmpgeu.b", instructions.Format_R, "001111- ----- ----- 001 ----- 1010111"),
		define("pv.cmpgeu.sc.b", instructions.Format_R, "001111- ----- ----- 101 ----- 1010111"),
		define("pv.cmpgeu.sci.b", instructions.Format_RRU, "001111- ----- ----- 111 ----- 1010111"),
		define("pv.cmpltu.h", instructions.Format_R, "010001- ----- ----- 000 ----- 1010111"),
		define("pv.cmpltu.sc.h", instructions.Format_R, "010001- ----- ----- 100 ----- 1010111"),
		define("pv.cmpltu.sci.h", instructions.Format_RRU, "010001- ----- ----- 110 ----- 1010111"),
		define("pv.cmpltu.b", instructions.Format_R, "010001- ----- ----- 001 ----- 1010111"),
		define("pv.cmpltu.sc.b", instructions.Format_R, "010001- ----- ----- 101 ----- 1010111"),
		define("pv.cmpltu.sci.b", instructions.Format_RRU, "010001- ----- ----- 111 ----- 1010111"),
		define("pv.cmpleu.h", instructions.Format_R, "010011- ----- ----- 000 ----- 1010111"),
		define("pv.cmpleu.sc.h", instructions.Format_R, "010011- ----- ----- 100 ----- 1010111"),
		define("pv.cmpleu.sci.h", instructions.Format_RRU, "010011- ----- ----- 110 ----- 1010111"),
		define("pv.cmpleu.b", instructions.Format_R, "010011- ----- ----- 001 ----- 1010111"),
		define("pv.cmpleu.sc.b", instructions.Format_R, "010011- ----- ----- 101 ----- 1010111"),
		define("pv.cmpleu.sci.b", instructions.Format_RRU, "010011- ----- ----- 111 ----- 1010111"),
		define("p.beqimm", instructions.Format_SB2, "------- ----- ----- 010 ----- 1100011", branchHook),
		define("p.bneimm", instructions.Format_SB2, "------- ----- ----- 011 ----- 1100011", branchHook),
		define("p.mac", instructions.Format_RRRR, "0100001 ----- ----- 000 ----- 0110011"),
		define("p.msu", instructions.Format_RRRR, "0100001 ----- ----- 001 ----- 0110011"),
		define("p.mul", instructions.Format_R, "0000001 ----- ----- 000 ----- 0110011", aliasOf("mul")),
		define("p.muls", instructions.Format_R, "1000000 ----- ----- 000 ----- 1011011"),
		define("p.mulhhs", instructions.Format_R, "1100000 ----- ----- 000 ----- 1011011"),
		define("p.mulsN", instructions.Format_RRRU2, "10----- ----- ----- 000 ----- 1011011"),
		define("p.mulhhsN", instructions.Format_RRRU2, "11----- ----- ----- 000 ----- 1011011"),
		define("p.mulsNR", instructions.Format_RRRU2, "10----- ----- ----- 100 ----- 1011011"),
		define("p.mulhhsNR", instructions.Format_RRRU2, "11----- ----- ----- 100 ----- 1011011"),
		define("p.mulu", instructions.Format_R, "0000000 ----- ----- 000 ----- 1011011"),
		define("p.mulhhu", instructions.Format_R, "0100000 ----- ----- 000 ----- 1011011"),
		define("p.muluN", instructions.Format_RRRU2, "00----- ----- ----- 000 ----- 1011011"),
		define("p.mulhhuN", instructions.Format_RRRU2, "01----- ----- ----- 000 ----- 1011011"),
		define("p.muluNR", instructions.Format_RRRU2, "00----- ----- ----- 100 ----- 1011011"),
		define("p.mulhhuNR", instructions.Format_RRRU2, "01----- ----- ----- 100 ----- 1011011"),
		define("p.macs", instructions.Format_RRRR, "1000000 ----- ----- 001 ----- 1011011"),
		define("p.machhs", instructions.Format_RRRR, "1100000 ----- ----- 001 ----- 1011011"),
		define("p.macsN", instructions.Format_RRRRU, "10----- ----- ----- 001 ----- 1011011"),
		define("p.machhsN", instructions.Format_RRRRU, "11----- ----- ----- 001 ----- 1011011"),
		define("p.macsNR", instructions.Format_RRRRU, "10----- ----- ----- 101 ----- 1011011"),
		define("p.machhsNR", instructions.Format_RRRRU, "11----- ----- ----- 101 ----- 1011011"),
		define("p.macu", instructions.Format_RRRR, "0000000 ----- ----- 001 ----- 1011011"),
		define("p.machhu", instructions.Format_RRRR, "0100000 ----- ----- 001 ----- 1011011"),
		define("p.macuN", instructions.Format_RRRRU, "00----- ----- ----- 001 ----- 1011011"),
		define("p.machhuN", instructions.Format_RRRRU, "01----- ----- ----- 001 ----- 1011011"),
		define("p.macuNR", instructions.Format_RRRRU, "00----- ----- ----- 101 ----- 1011011"),
		define("p.machhuNR", instructions.Format_RRRRU, "01----- ----- ----- 101 ----- 1011011"),
		define("p.addNi", instructions.Format_RRRU2, "00----- ----- ----- 010 ----- 1011011"),
		define("p.adduNi", instructions.Format_RRRU2, "10----- ----- ----- 010 ----- 1011011"),
		define("p.addRNi", instructions.Format_RRRU2, "00----- ----- ----- 110 ----- 1011011"),
		define("p.adduRNi", instructions.Format_RRRU2, "10----- ----- ----- 110 ----- 1011011"),
		define("p.subNi", instructions.Format_RRRU2, "00----- ----- ----- 011 ----- 1011011"),
		define("p.subuNi", instructions.Format_RRRU2, "10----- ----- ----- 011 ----- 1011011"),
		define("p.subRNi", instructions.Format_RRRU2, "00----- ----- ----- 111 ----- 1011011"),
		define("p.subuRNi", instructions.Format_RRRU2, "10----- ----- ----- 111 ----- 1011011"),
		define("p.addN", instructions.Format_RRRR2, "0100000 ----- ----- 010 ----- 1011011"),
		define("p.adduN", instructions.Format_RRRR2, "1100000 ----- ----- 010 ----- 1011011"),
		define("p.addRN", instructions.Format_RRRR2, "0100000 ----- ----- 110 ----- 1011011"),
		define("p.adduRN", instructions.Format_RRRR2, "1100000 ----- ----- 110 ----- 1011011"),
		define("p.subN", instructions.Format_RRRR2, "0100000 ----- ----- 011 ----- 1011011"),
		define("p.subuN", instructions.Format_RRRR2, "1100000 ----- ----- 011 ----- 1011011"),
		define("p.subRN", instructions.Format_RRRR2, "0100000 ----- ----- 111 ----- 1011011"),
		define("p.subuRN", instructions.Format_RRRR2, "1100000 ----- ----- 111 ----- 1011011"),
		define("p.clipi", instructions.Format_I1U, "0001010 ----- ----- 001 ----- 0110011"),
		define("p.clipui", instructions.Format_I1U, "0001010 ----- ----- 010 ----- 0110011"),
		define("p.clip", instructions.Format_R, "0001010 ----- ----- 101 ----- 0110011"),
		define("p.clipu", instructions.Format_R, "0001010 ----- ----- 110 ----- 0110011"),
		define("p.extracti", instructions.Format_I4U, "11----- ----- ----- 000 ----- 0110011"),
		define("p.extractui", instructions.Format_I4U, "11----- ----- ----- 001 ----- 0110011"),
		define("p.extract", instructions.Format_R, "10----- ----- ----- 000 ----- 0110011"),
		define("p.extractu", instructions.Format_R, "10----- ----- ----- 001 ----- 0110011"),
		define("p.inserti", instructions.Format_I5U, "11----- ----- ----- 010 ----- 0110011"),
		define("p.insert", instructions.Format_I5U2, "10----- ----- ----- 010 ----- 0110011"),
		define("p.bseti", instructions.Format_I4U, "11----- ----- ----- 100 ----- 0110011"),
		define("p.bclri", instructions.Format_I4U, "11----- ----- ----- 011 ----- 0110011"),
		define("p.bset", instructions.Format_R, "10----- ----- ----- 100 ----- 0110011"),
		define("p.bclr", instructions.Format_R, "10----- ----- ----- 011 ----- 0110011"),
	}
}

// GAP8 complex arithmetic and vector extensions
func gap8() []*instructions.InstructionDefinition {
	return []*instructions.InstructionDefinition{
		define("pv.cplxmul.s", instructions.Format_R, "010101- ----- ----- 000 ----- 1010111"),
		define("pv.cplxmul.s.div2", instructions.Format_R, "0101010 ----- ----- 010 ----- 1010111"),
		define("pv.cplxmul.s.div4", instructions.Format_R, "0101011 ----- ----- 010 ----- 1010111"),
		define("pv.cplxmul.s.sc", instructions.Format_R, "010101- ----- ----- 100 ----- 1010111"),
		define("pv.cplxmul.s.sci", instructions.Format_RRS, "010101- ----- ----- 110 ----- 1010111"),
		define("pv.cplxconj.h", instructions.Format_R1, "0101110 00000 ----- 000 ----- 1010111"),
		define("pv.subrotmj.h", instructions.Format_R, "011011- ----- ----- 000 ----- 1010111"),
		define("pv.subrotmj.h.div2", instructions.Format_R, "0110110 ----- ----- 010 ----- 1010111"),
		define("pv.subrotmj.h.div4", instructions.Format_R, "0110111 ----- ----- 010 ----- 1010111"),
		define("pv.add.h.div2", instructions.Format_R, "0000000 ----- ----- 010 ----- 1010111"),
		define("pv.add.h.div4", instructions.Format_R, "0000001 ----- ----- 010 ----- 1010111"),
		define("pv.sub.h.div2", instructions.Format_R, "0000100 ----- ----- 010 ----- 1010111"),
		define("pv.sub.h.div4", instructions.Format_R, "0000101 ----- ----- 010 ----- 1010111"),
		define("pv.add.b.div2", instructions.Format_R, "0000000 ----- ----- 011 ----- 1010111"),
		define("pv.add.b.div4", instructions.Format_R, "0000001 ----- ----- 011 ----- 1010111"),
		define("pv.sub.b.div2", instructions.Format_R, "0000100 ----- ----- 011 ----- 1010111"),
		define("pv.sub.b.div4", instructions.Format_R, "0000101 ----- ----- 011 ----- 1010111"),
		define("pv.vitop.max", instructions.Format_R, "011001- ----- ----- 001 ----- 1010111"),
		define("pv.vitop.sel", instructions.Format_R, "011001- ----- ----- 000 ----- 1010111"),
		define("pv.pack.h.h", instructions.Format_R, "110100- ----- ----- 110 ----- 1010111"),
		define("pv.pack.h.l", instructions.Format_R, "110100- ----- ----- 100 ----- 1010111"),
	}
}
