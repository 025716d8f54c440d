package instructions

import (
	"fmt"

	"github.com/Manu343726/isagen/pkg/isa/encoding"
	"github.com/Manu343726/isagen/pkg/utils"
)

// Identifies an instruction format: the operand layout shared by a family of instructions
type Format uint

const (
	Format_Z Format = iota
	Format_F
	Format_R
	Format_RF
	Format_RF2
	Format_R2F1
	Format_R2F2
	Format_R2F3
	Format_R3F
	Format_R3F2
	Format_R4U
	Format_RRRR
	Format_RRRR2
	Format_RRRS
	Format_RRRU
	Format_RRRU2
	Format_RRRRU
	Format_R1
	Format_RRU
	Format_RRS
	Format_RRU2
	Format_LR
	Format_LRPOST
	Format_RR
	Format_SR
	Format_SR_OLD
	Format_I
	Format_L
	Format_LRES
	Format_FL
	Format_LPOST
	Format_IU
	Format_IUR
	Format_I1U
	Format_I2U
	Format_I3U
	Format_I4U
	Format_I5U
	Format_I5U2
	Format_IOU
	Format_S
	Format_SCOND
	Format_FS
	Format_SPOST
	Format_S1
	Format_SRPOST
	Format_SB
	Format_SB2
	Format_U
	Format_UJ
	Format_HL0
	Format_HL1

	Format_CR
	Format_CR1
	Format_CR2
	Format_CR3
	Format_CI1
	Format_CI1U
	Format_CI2
	Format_CI3
	Format_FCI3
	Format_CI4
	Format_CI5
	Format_CI6
	Format_CSS
	Format_FCSS
	Format_CIW
	Format_CL
	Format_FCL
	Format_CS
	Format_FCS
	Format_CS2
	Format_CB1
	Format_CB2
	Format_CB2S
	Format_CJ
	Format_CJ1

	TOTAL_FORMATS
)

// Returns the format name
func (f Format) String() string {
	if descriptor := Formats.Descriptor(f); descriptor != nil {
		return descriptor.Name
	}

	return fmt.Sprintf("Format(%d)", uint(f))
}

// Returns the format descriptor
func (f Format) Descriptor() *FormatDescriptor {
	return Formats.Descriptor(f)
}

// Contains information describing an instruction format
type FormatDescriptor struct {
	Format Format
	// Format name, as used in instruction tables
	Name string
	// Instruction word width in bits
	Width int
	// Format operands, in extraction order
	Operands []*OperandDescriptor
}

// Returns the operand at the given position
func (d *FormatDescriptor) Operand(position int) *OperandDescriptor {
	return d.Operands[position]
}

// Instruction word bits used by operands
func (d *FormatDescriptor) OperandsMask() uint32 {
	return utils.Reduce(d.Operands, func(o *OperandDescriptor, mask uint32) uint32 { return mask | o.SourceMask() })
}

// Checks that all operand fields fit into the format width and that operands only share bits
// when they read them the same way (tied operands)
func (d *FormatDescriptor) Validate() error {
	if d.Width != encoding.CompressedWidth && d.Width != encoding.StandardWidth {
		return utils.MakeError(ErrWidthMismatch, "format %v has unsupported width %v", d.Name, d.Width)
	}

	var leaves []*OperandDescriptor

	for _, operand := range d.Operands {
		if operand.IsIndirect() && operand.Base == nil {
			return utils.MakeError(encoding.ErrInvalidField, "format %v: indirect operand %v has no base", d.Name, operand.Position)
		}

		for _, part := range operand.Flatten() {
			if part.Field == nil {
				continue
			}

			if err := part.Field.Validate(d.Width); err != nil {
				return fmt.Errorf("format %v operand %v: %w", d.Name, part.Name(), err)
			}

			for _, previous := range leaves {
				if previous.Field.SourceMask()&part.Field.SourceMask() != 0 && !previous.SameEncoding(part) {
					return utils.MakeError(encoding.ErrInvalidField, "format %v: operands %v and %v share bits %v with different layouts",
						d.Name, previous.Name(), part.Name(), utils.SetBits(previous.Field.SourceMask()&part.Field.SourceMask()))
				}
			}

			leaves = append(leaves, part)
		}
	}

	return nil
}

// Contains information about all supported formats
type FormatsDescriptor struct {
	formats map[Format]*FormatDescriptor
	byName  map[string]Format
}

// Returns the descriptor of a format
func (d *FormatsDescriptor) Descriptor(f Format) *FormatDescriptor {
	return d.formats[f]
}

// Returns all formats, in declaration order
func (d *FormatsDescriptor) AllFormats() []*FormatDescriptor {
	return utils.Map(utils.Iota(int(TOTAL_FORMATS), func(i int) Format { return Format(i) }), d.Descriptor)
}

// Returns the format with the given name
func (d *FormatsDescriptor) ParseFormat(name string) (Format, error) {
	if format, hasFormat := d.byName[name]; hasFormat {
		return format, nil
	}

	return 0, utils.MakeError(ErrUnknownFormat, "'%v'", name)
}

// Returns the format with the given name
func ParseFormat(name string) (Format, error) {
	return Formats.ParseFormat(name)
}

// Initializes a formats descriptor. Panics if a format is missing or invalid
func NewFormatsDescriptor(formats []*FormatDescriptor) FormatsDescriptor {
	result := FormatsDescriptor{
		formats: make(map[Format]*FormatDescriptor, len(formats)),
		byName:  make(map[string]Format, len(formats)),
	}

	for _, format := range formats {
		if _, duplicated := result.formats[format.Format]; duplicated {
			panic(fmt.Sprintf("format %v (%v) registered twice", uint(format.Format), format.Name))
		}

		for i, operand := range format.Operands {
			operand.Position = i
		}

		if err := format.Validate(); err != nil {
			panic(err)
		}

		result.formats[format.Format] = format
		result.byName[format.Name] = format.Format
	}

	for i := range utils.Indices(int(TOTAL_FORMATS)) {
		if _, hasFormat := result.formats[Format(i)]; !hasFormat {
			panic(fmt.Sprintf("missing entry for format %v in formats table. Make sure you've added all formats in the NewFormatsDescriptor() call", i))
		}
	}

	return result
}
