package instructions

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Manu343726/isagen/pkg/isa/encoding"
	"github.com/Manu343726/isagen/pkg/utils"
)

// Contains information describing an instruction encoding
type InstructionDefinition struct {
	// Unique instruction name
	Mnemonic string
	// Assembler name when it differs from the mnemonic (e.g. "p.lb" for the "lb_rr" register-register load)
	Label string
	// Fixed bits identifying the instruction
	Pattern encoding.BitPattern
	// Operand layout
	Format Format
	// Name of the execution engine routine that finishes decoding the instruction, empty if none
	Hook string
	// Mnemonic of the canonical instruction this one is an alias of, empty if not an alias
	AliasOf string
	// Free form tags (e.g. "load", "store")
	Tags []string
	// Cost class, nil if the instruction is not part of any group
	Group *InstrGroup
	// Latency of specific operands, by operand position within the format. Overrides any latency policy
	LatencyOverrides map[int]int
	// Instruction description (for documentation and debugging)
	Description string
}

// Customizes an instruction definition
type DefinitionOption func(*InstructionDefinition)

// Sets the decode hook of the instruction
func WithHook(hook string) DefinitionOption {
	return func(d *InstructionDefinition) {
		d.Hook = hook
	}
}

// Marks the instruction as an alias of another
func WithAliasOf(mnemonic string) DefinitionOption {
	return func(d *InstructionDefinition) {
		d.AliasOf = mnemonic
	}
}

// Adds tags to the instruction
func WithTags(tags ...string) DefinitionOption {
	return func(d *InstructionDefinition) {
		d.Tags = append(d.Tags, tags...)
	}
}

// Sets the cost class of the instruction
func WithGroup(group *InstrGroup) DefinitionOption {
	return func(d *InstructionDefinition) {
		d.Group = group
	}
}

// Sets the assembler name of the instruction
func WithLabel(label string) DefinitionOption {
	return func(d *InstructionDefinition) {
		d.Label = label
	}
}

// Sets the latency of the operand at the given format position
func WithLatency(position int, cycles int) DefinitionOption {
	return func(d *InstructionDefinition) {
		if d.LatencyOverrides == nil {
			d.LatencyOverrides = make(map[int]int)
		}

		d.LatencyOverrides[position] = cycles
	}
}

// Sets the instruction description
func WithDescription(description string) DefinitionOption {
	return func(d *InstructionDefinition) {
		d.Description = description
	}
}

// Initializes an instruction definition. The pattern width is inferred from the template
func NewDefinition(mnemonic string, format Format, template string, options ...DefinitionOption) (*InstructionDefinition, error) {
	if format >= TOTAL_FORMATS {
		return nil, utils.MakeError(ErrUnknownFormat, "instruction %v uses format %v", mnemonic, uint(format))
	}

	pattern, err := encoding.ParsePatternAuto(template)
	if err != nil {
		return nil, fmt.Errorf("instruction %v: %w", mnemonic, err)
	}

	definition := &InstructionDefinition{
		Mnemonic: mnemonic,
		Pattern:  pattern,
		Format:   format,
	}

	for _, option := range options {
		option(definition)
	}

	return definition, nil
}

// Like NewDefinition() but panics on error. Meant for static instruction tables
func Define(mnemonic string, format Format, template string, options ...DefinitionOption) *InstructionDefinition {
	definition, err := NewDefinition(mnemonic, format, template, options...)
	if err != nil {
		panic(err)
	}

	return definition
}

// Returns true if the definition is an alias of another instruction
func (d *InstructionDefinition) IsAlias() bool {
	return d.AliasOf != ""
}

// Returns true if the definition has the given tag
func (d *InstructionDefinition) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

// Returns the assembler name of the instruction
func (d *InstructionDefinition) AsmName() string {
	if d.Label != "" {
		return d.Label
	}

	return d.Mnemonic
}

// Returns the format descriptor of the instruction
func (d *InstructionDefinition) FormatDescriptor() *FormatDescriptor {
	return Formats.Descriptor(d.Format)
}

// Checks that the pattern width matches the format width and that no fixed bit overlaps an operand field
func (d *InstructionDefinition) CheckWidth() error {
	format := d.FormatDescriptor()

	if format.Width != d.Pattern.Width {
		return utils.MakeError(ErrWidthMismatch, "instruction %v has a %v bit pattern but format %v is %v bits wide", d.Mnemonic, d.Pattern.Width, format.Name, format.Width)
	}

	return nil
}

// Returns a human readable string representation of the instruction
func (d *InstructionDefinition) String() string {
	var builder strings.Builder

	builder.WriteString(d.AsmName())

	visible := utils.Filter(d.FormatDescriptor().Operands, func(o *OperandDescriptor) bool { return !o.HideName && !o.IsLiteral() })

	if len(visible) > 0 {
		builder.WriteString(" ")
		builder.WriteString(strings.Join(utils.Map(visible, (*OperandDescriptor).Name), ", "))
	}

	return builder.String()
}

// Returns the bit layout of the instruction word: fixed bits and operand fields, from bit 0 upwards
func (d *InstructionDefinition) Layout() []LayoutField {
	width := d.Pattern.Width
	owners := make([]string, width)

	for _, operand := range d.FormatDescriptor().Operands {
		for _, part := range operand.Flatten() {
			if part.Field == nil {
				continue
			}

			for _, f := range part.Field.Fragments {
				for bit := 0; bit < f.Width; bit++ {
					label := fieldLabel(part.Name(), f)
					source := f.SourceBit + bit

					if owners[source] == "" {
						owners[source] = label
					} else if !strings.Contains(owners[source], label) {
						owners[source] += "/" + label
					}
				}
			}
		}
	}

	var fields []LayoutField

	for bit := 0; bit < width; {
		begin := bit
		fixed := d.Pattern.Mask&(1<<bit) != 0
		owner := owners[bit]

		for bit < width && (d.Pattern.Mask&(1<<bit) != 0) == fixed && owners[bit] == owner {
			bit++
		}

		if !fixed && owner == "" {
			continue
		}

		name := owner
		if fixed {
			name = utils.FormatUintBinary(uint64(d.Pattern.Value>>begin)&utils.AllOnes[uint64](bit-begin), bit-begin)
		}

		fields = append(fields, LayoutField{
			Name:  name,
			Begin: begin,
			Width: bit - begin,
		})
	}

	return fields
}

func fieldLabel(name string, f encoding.Fragment) string {
	if f.Width == 1 {
		return fmt.Sprintf("%v[%v]", name, f.DestShift)
	}

	return fmt.Sprintf("%v[%v:%v]", name, f.DestTop(), f.DestShift)
}

// Returns full documentation for the instruction
func (d *InstructionDefinition) Documentation(leftpad int) (string, error) {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v\n\n", d))

	leftpad_str += "  "
	leftpad += 2

	if d.Description != "" {
		builder.WriteString(leftpad_str)
		builder.WriteString("Description:\n\n  ")
		builder.WriteString(leftpad_str)
		builder.WriteString(d.Description)
		builder.WriteString("\n\n")
	}

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("Format %v, pattern %v (mask %v, value %v)\n\n",
		d.Format, d.Pattern, utils.FormatUintHex(uint64(d.Pattern.Mask), d.Pattern.Width/4), utils.FormatUintHex(uint64(d.Pattern.Value), d.Pattern.Width/4)))

	if d.IsAlias() {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("Alias of: %v\n\n", d.AliasOf))
	}

	if d.Hook != "" {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("Decode hook: %v\n\n", d.Hook))
	}

	builder.WriteString(leftpad_str)
	builder.WriteString("Encoding:\n\n")

	diagram, err := EncodingDiagram(d.Layout(), d.Pattern.Width, leftpad+2)
	if err != nil {
		return "", fmt.Errorf("error generating documentation for instruction %s: %w", d.Mnemonic, err)
	}

	builder.WriteString(diagram)
	builder.WriteString("\n")

	operands := d.FormatDescriptor().Operands

	if len(operands) > 0 {
		builder.WriteString(leftpad_str)
		builder.WriteString("Operands:\n\n")

		for _, operand := range operands {
			builder.WriteString(leftpad_str)
			builder.WriteString(fmt.Sprintf("  %v: %v\n", operand.Position, operand))
		}

		builder.WriteString("\n")
	}

	if len(d.Tags) > 0 {
		tags := append([]string(nil), d.Tags...)
		sort.Strings(tags)

		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("Tags: %v\n", strings.Join(tags, ", ")))
	}

	return builder.String(), nil
}
