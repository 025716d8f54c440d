package encoding

import (
	"fmt"
	"strings"

	"github.com/Manu343726/isagen/pkg/utils"
)

// A contiguous slice of an instruction word that is copied into a contiguous range of bits of an operand value
type Fragment struct {
	// Least significant bit of the slice within the instruction word
	SourceBit int
	// Number of bits of the slice
	Width int
	// Least significant bit of the destination range within the operand value
	DestShift int
}

// Returns the last bit of the fragment within the instruction word
func (f Fragment) SourceTop() int {
	return f.SourceBit + f.Width - 1
}

// Returns the last bit of the fragment within the operand value
func (f Fragment) DestTop() int {
	return f.DestShift + f.Width - 1
}

// Instruction word bits read by the fragment
func (f Fragment) SourceMask() uint32 {
	return utils.AllOnes[uint32](f.Width) << f.SourceBit
}

// Operand value bits written by the fragment
func (f Fragment) DestMask() uint64 {
	return utils.AllOnes[uint64](f.Width) << f.DestShift
}

func (f Fragment) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("%v->%v", f.SourceBit, f.DestShift)
	}

	return fmt.Sprintf("%v:%v->%v:%v", f.SourceTop(), f.SourceBit, f.DestTop(), f.DestShift)
}

// Assembles an operand value out of one or more fragments of an instruction word.
//
// The logical width of the value is given by the highest destination bit written by any fragment,
// destination bits not written by any fragment read as zero. When Signed is set, the assembled value
// is sign extended from its logical width.
type FieldExtractor struct {
	Fragments []Fragment
	Signed    bool
}

// Field made of a single slice of the instruction word copied to the low bits of the value
func Range(bit int, width int) FieldExtractor {
	return RangeShifted(bit, width, 0)
}

// Field made of a single slice of the instruction word copied to bit shift of the value
func RangeShifted(bit int, width int, shift int) FieldExtractor {
	return Ranges(Fragment{SourceBit: bit, Width: width, DestShift: shift})
}

// Field made of multiple fragments, in declaration order
func Ranges(fragments ...Fragment) FieldExtractor {
	return FieldExtractor{
		Fragments: fragments,
	}
}

// Returns a copy of the extractor with the given signedness
func (e FieldExtractor) WithSign(signed bool) FieldExtractor {
	e.Signed = signed
	return e
}

// Number of bits of the assembled value
func (e FieldExtractor) LogicalWidth() int {
	width := 0

	for _, f := range e.Fragments {
		width = max(width, f.DestShift+f.Width)
	}

	return width
}

// Instruction word bits read by the extractor
func (e FieldExtractor) SourceMask() uint32 {
	return utils.Reduce(e.Fragments, func(f Fragment, mask uint32) uint32 { return mask | f.SourceMask() })
}

// Value bits written by some fragment
func (e FieldExtractor) DestMask() uint64 {
	return utils.Reduce(e.Fragments, func(f Fragment, mask uint64) uint64 { return mask | f.DestMask() })
}

// Returns true if both extractors read exactly the same bits in the same way
func (e FieldExtractor) Equal(other FieldExtractor) bool {
	if e.Signed != other.Signed || len(e.Fragments) != len(other.Fragments) {
		return false
	}

	for i := range e.Fragments {
		if e.Fragments[i] != other.Fragments[i] {
			return false
		}
	}

	return true
}

// Checks that all fragments fit into an instruction word of the given width and that
// no two fragments write the same value bits
func (e FieldExtractor) Validate(wordWidth int) error {
	if len(e.Fragments) == 0 {
		return utils.MakeError(ErrInvalidField, "field has no fragments")
	}

	var written uint64

	for _, f := range e.Fragments {
		if f.Width <= 0 || f.SourceBit < 0 || f.DestShift < 0 {
			return utils.MakeError(ErrInvalidField, "fragment %v has invalid bounds", f)
		}

		if f.SourceTop() >= wordWidth {
			return utils.MakeError(ErrInvalidField, "fragment %v reads bit %v of a %v bit word", f, f.SourceTop(), wordWidth)
		}

		if f.DestTop() >= 64 {
			return utils.MakeError(ErrInvalidField, "fragment %v writes past bit 63", f)
		}

		if written&f.DestMask() != 0 {
			return utils.MakeError(ErrInvalidField, "fragment %v overlaps the destination bits of a previous fragment", f)
		}

		written |= f.DestMask()
	}

	return nil
}

// Returns the raw (not sign extended) assembled value
func (e FieldExtractor) ExtractRaw(word uint32) uint64 {
	view := utils.CreateBitView(&word)

	return utils.Reduce(e.Fragments, func(f Fragment, value uint64) uint64 {
		return value | uint64(view.Read(f.SourceBit, f.Width))<<f.DestShift
	})
}

// Assembles the field value out of an instruction word
func (e FieldExtractor) Extract(word uint32) int64 {
	raw := e.ExtractRaw(word)

	if e.Signed {
		return utils.SignExtend(raw, e.LogicalWidth())
	}

	return int64(raw)
}

// Returns the range of values representable by the field, [min, max]
func (e FieldExtractor) Bounds() (int64, int64) {
	width := e.LogicalWidth()

	if width == 0 {
		return 0, 0
	}

	if e.Signed {
		return -(int64(1) << (width - 1)), (int64(1) << (width - 1)) - 1
	}

	if width >= 63 {
		return 0, int64(^uint64(0) >> 1)
	}

	return 0, (int64(1) << width) - 1
}

// Places a value into the instruction word bits read by the field. This is the inverse of Extract():
// for every value v accepted, Extract(Encode(v)) == v
func (e FieldExtractor) Encode(value int64) (uint32, error) {
	lowest, highest := e.Bounds()

	if value < lowest || value > highest {
		return 0, utils.MakeError(ErrFieldWidthOverflow, "%v is out of the [%v, %v] range of field %v", value, lowest, highest, e)
	}

	raw := uint64(value) & utils.AllOnes[uint64](e.LogicalWidth())

	if gaps := raw &^ e.DestMask(); gaps != 0 {
		return 0, utils.MakeError(ErrFieldWidthOverflow, "%v sets bits %v which are not encoded by field %v", value, utils.SetBits(gaps), e)
	}

	var word, written uint32
	view := utils.CreateBitView(&word)

	for _, f := range e.Fragments {
		bits := uint32(raw>>f.DestShift) & utils.AllOnes[uint32](f.Width)

		if shared := written & f.SourceMask(); shared != 0 && (word^(bits<<f.SourceBit))&shared != 0 {
			return 0, utils.MakeError(ErrFieldWidthOverflow, "%v requires conflicting values for word bits %v of field %v", value, utils.SetBits(shared), e)
		}

		view.Write(bits, f.SourceBit, f.Width)
		written |= f.SourceMask()
	}

	return word, nil
}

// Returns a human readable description of the fragments, e.g. "{31->12, 30:25->10:5}"
func (e FieldExtractor) String() string {
	var builder strings.Builder

	if e.Signed {
		builder.WriteString("s")
	}

	builder.WriteString("{")
	builder.WriteString(utils.FormatSlice(e.Fragments, ", "))
	builder.WriteString("}")

	return builder.String()
}
