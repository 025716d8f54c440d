// Package decoder compiles an instruction set into a validated decode table: a decision tree per word
// class returning, for any instruction word, the most specific matching instruction.
package decoder

import (
	"fmt"

	"github.com/Manu343726/isagen/pkg/isa/encoding"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/utils"
)

// Index of an instruction within a decode table
type InstructionID int

// Returned by lookups when no instruction matches
const NoInstruction InstructionID = -1

// An instruction definition enabled in a decode table
type Instruction struct {
	ID InstructionID
	// Upper case C identifier of the instruction, unique within the table
	Identifier string
	Definition *instructions.InstructionDefinition
	// Index of the word class of the instruction
	Class int
	// Instruction this one is an alias of. Equal to ID for canonical instructions
	Canonical InstructionID
	// Hook of the instruction. Aliases inherit the hook of their canonical instruction
	Hook string
	// Format operands with latencies annotated
	Operands []*instructions.OperandDescriptor
	// True if the instruction is never returned by the decision tree because its alias target has the same pattern
	Shadowed bool
}

// Returns the instruction mnemonic
func (i *Instruction) Mnemonic() string {
	return i.Definition.Mnemonic
}

// Returns the instruction pattern
func (i *Instruction) Pattern() encoding.BitPattern {
	return i.Definition.Pattern
}

// Returns true if the instruction is an alias of another
func (i *Instruction) IsAlias() bool {
	return i.Canonical != i.ID
}

func (i *Instruction) String() string {
	return fmt.Sprintf("%v (%v)", i.Definition, i.Definition.Pattern)
}

// Set of canonical instructions of a word class sharing a decode hook. The execution engine hook
// makes the final pick among them
type HookGroup struct {
	Class      int
	Hook       string
	Candidates []InstructionID
}

// Alias index entry
type Alias struct {
	Mnemonic string
	Alias    InstructionID
	Target   InstructionID
}

// Decision tree of a word class
type Tree struct {
	Class instructions.WidthClass
	Root  *Node
}

// Compiled, read-only decode table
type Table struct {
	Name     string
	Features instructions.Features
	Classes  []instructions.WidthClass
	// All enabled instructions in declaration order, indexed by ID
	Instructions []*Instruction
	// Decision trees, one per word class
	Trees      []*Tree
	Aliases    []Alias
	HookGroups []*HookGroup

	byMnemonic map[string]*Instruction
}

// Result of decoding an instruction word
type Decoded struct {
	Word uint32
	// Instruction matched by the word (which may be an alias)
	Instruction *Instruction
	// Instruction the engine must execute
	Canonical *Instruction
	// Values of the format operands of the matched instruction, in format order
	Operands []instructions.OperandValue
	// Hook candidate group of the canonical instruction, nil if it has no hook
	HookGroup *HookGroup
}

// Returns the instruction with the given ID
func (t *Table) Instruction(id InstructionID) *Instruction {
	if id < 0 || int(id) >= len(t.Instructions) {
		return nil
	}

	return t.Instructions[id]
}

// Returns the instruction with the given mnemonic
func (t *Table) Lookup(mnemonic string) (*Instruction, error) {
	if instruction, found := t.byMnemonic[mnemonic]; found {
		return instruction, nil
	}

	return nil, utils.MakeError(ErrUnknownInstruction, "'%v'", mnemonic)
}

// Returns the ID of the instruction a mnemonic resolves to, following aliases
func (t *Table) Resolve(mnemonic string) (InstructionID, error) {
	instruction, err := t.Lookup(mnemonic)
	if err != nil {
		return NoInstruction, err
	}

	return instruction.Canonical, nil
}

// Returns the hook group of an instruction, nil if the instruction has no hook
func (t *Table) HookGroupOf(id InstructionID) *HookGroup {
	instruction := t.Instruction(id)
	if instruction == nil || instruction.Hook == "" {
		return nil
	}

	for _, group := range t.HookGroups {
		if group.Class == instruction.Class && group.Hook == instruction.Hook {
			return group
		}
	}

	return nil
}

// Returns the ID of the most specific instruction matching the word, NoInstruction if none matches
func (t *Table) Match(word uint32) InstructionID {
	class := t.classOfWord(word)
	if class < 0 {
		return NoInstruction
	}

	return t.Trees[class].Root.lookup(t, t.Classes[class].Truncate(word))
}

// Decodes an instruction word. Returns false if no instruction matches
func (t *Table) Decode(word uint32) (*Decoded, bool) {
	id := t.Match(word)
	if id == NoInstruction {
		return nil, false
	}

	instruction := t.Instructions[id]
	word = t.Classes[instruction.Class].Truncate(word)

	decoded := &Decoded{
		Word:        word,
		Instruction: instruction,
		Canonical:   t.Instructions[instruction.Canonical],
		HookGroup:   t.HookGroupOf(instruction.Canonical),
		Operands:    make([]instructions.OperandValue, 0, len(instruction.Operands)),
	}

	for _, operand := range instruction.Operands {
		decoded.Operands = append(decoded.Operands, operand.Decode(word))
	}

	return decoded, true
}

func (t *Table) classOfWord(word uint32) int {
	for i, class := range t.Classes {
		if class.Contains(word) {
			return i
		}
	}

	return -1
}

// Returns the instructions of a word class, in declaration order
func (t *Table) ClassInstructions(class int) []*Instruction {
	return utils.Filter(t.Instructions, func(i *Instruction) bool { return i.Class == class })
}

// Returns the decoded instruction in assembly syntax, e.g. "addi x1, x0, 12"
func (d *Decoded) String() string {
	text := d.Instruction.Definition.AsmName()
	first := true

	for _, operand := range d.Operands {
		if operand.Descriptor.HideName || operand.Descriptor.IsLiteral() {
			continue
		}

		if first {
			text += " "
			first = false
		} else {
			text += ", "
		}

		text += operand.String()
	}

	return text
}
