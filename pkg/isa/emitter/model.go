package emitter

import (
	"fmt"
	"strings"

	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/isa/encoding"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/utils"
)

// Version of the layout of the emitted tables. Bumped on any change the execution engine must adapt to
const ABIVersion = 1

const (
	instructionPrefix = "ISA_INSTR_"
	formatPrefix      = "ISA_FORMAT_"
	rolePrefix        = "ISA_OPERAND_"
	tagPrefix         = "ISA_TAG_"
	groupPrefix       = "ISA_GROUP_"
	noInstruction     = instructionPrefix + "NONE"
	noGroup           = groupPrefix + "NONE"
	noTags            = "0"
)

type model struct {
	Isa         string
	Features    []string
	Header      string
	HeaderGuard string
	ABIVersion  int
	MaxOperands int

	Instructions []instructionView
	Formats      []formatView
	Roles        []string
	Tags         []string
	Groups       []groupView
	Timings      []timingView
	Classes      []classView
	Nodes        []nodeView
	Aliases      []aliasView
	HookGroups   []hookGroupView
	Hooks        []string
}

type instructionView struct {
	Identifier string
	Mnemonic   string
	Label      string
	Pattern    string
	Mask       string
	Value      string
	Width      int
	Format     string
	Operands   int
	Canonical  string
	HookGroup  int
	Tags       string
	Group      string
	Latencies  []int
}

type formatView struct {
	Identifier string
	Name       string
	Function   string
	Operands   []string
}

type groupView struct {
	Identifier string
	Isa        string
	Class      string
}

type timingView struct {
	Identifier string
	Option     string
	Default    string
}

type classView struct {
	Width         int
	Bytes         int
	SelectorMask  string
	SelectorValue string
	WordMask      string
	Root          string
}

type caseView struct {
	Key    string
	Target string
}

type candidateView struct {
	Mask       string
	Value      string
	Identifier string
}

type nodeView struct {
	Function   string
	Mask       string
	Cases      []caseView
	Fallback   string
	Candidates []candidateView
}

// Returns true if the node is a leaf
func (n nodeView) IsLeaf() bool {
	return n.Mask == ""
}

type aliasView struct {
	Mnemonic string
	Alias    string
	Target   string
}

type hookGroupView struct {
	Array      string
	Hook       string
	Candidates []string
}

func hex32(value uint32) string {
	return utils.FormatUintHex(uint64(value), 8) + "u"
}

func instructionIdentifier(instruction *decoder.Instruction) string {
	return instructionPrefix + instruction.Identifier
}

func groupIdentifier(group *instructions.InstrGroup) string {
	if group == nil {
		return noGroup
	}

	return groupPrefix + utils.CIdentifier(group.Isa.Name+"_"+group.Name)
}

func tagIdentifier(tag string) string {
	return tagPrefix + utils.CIdentifier(tag)
}

// Returns the C expression assembling the value of a field from the instruction word
func fieldExpression(field *encoding.FieldExtractor) string {
	parts := utils.Map(field.Fragments, func(f encoding.Fragment) string {
		part := fmt.Sprintf("((word >> %d) & 0x%xu)", f.SourceBit, utils.AllOnes[uint32](f.Width))
		if f.DestShift > 0 {
			part = fmt.Sprintf("(%v << %d)", part, f.DestShift)
		}
		return part
	})

	expression := strings.Join(parts, " | ")
	if len(parts) > 1 {
		expression = "(" + expression + ")"
	}

	if field.Signed {
		return fmt.Sprintf("isa_sign_extend(%v, %d)", expression, field.LogicalWidth())
	}

	return "(int64_t)" + expression
}

// Returns the C expression computing the value of a non indirect operand
func operandExpression(operand *instructions.OperandDescriptor) string {
	if operand.IsLiteral() {
		return fmt.Sprint(operand.Literal)
	}

	expression := fieldExpression(operand.Field)
	if operand.Compressed {
		expression = fmt.Sprintf("%v + %d", expression, instructions.CompressedRegisterBias)
	}

	return expression
}

// Returns the C statement filling the decoded operand at the given position
func operandStatement(position int, operand *instructions.OperandDescriptor) string {
	fields := []string{
		".role = " + rolePrefix + operand.Role.CName(),
		fmt.Sprintf(".index = %d", operand.Index),
	}

	if operand.IsIndirect() {
		fields = append(fields,
			".value = "+operandExpression(operand.Base),
			".indirect = 1")

		if operand.Offset != nil {
			fields = append(fields,
				".offset_role = "+rolePrefix+operand.Offset.Role.CName(),
				".offset = "+operandExpression(operand.Offset))
		}

		if operand.PostIncrement {
			fields = append(fields, ".post_increment = 1")
		}
	} else {
		fields = append(fields, ".value = "+operandExpression(operand))
	}

	return fmt.Sprintf("out[%d] = (isa_operand_t){ %v };", position, strings.Join(fields, ", "))
}

type modelBuilder struct {
	table   *decoder.Table
	model   *model
	formats map[instructions.Format]int
	tags    []string
}

func newModel(table *decoder.Table, header string) *model {
	b := &modelBuilder{
		table: table,
		model: &model{
			Isa:         table.Name,
			Features:    table.Features.Names(),
			Header:      header,
			HeaderGuard: utils.CIdentifier(header),
			ABIVersion:  ABIVersion,
			Roles:       utils.Map(instructions.AllOperandRoles(), instructions.OperandRole.CName),
		},
		formats: make(map[instructions.Format]int),
	}

	b.tags = instructions.Tags(utils.Map(table.Instructions, func(i *decoder.Instruction) *instructions.InstructionDefinition { return i.Definition }))
	b.model.Tags = utils.Map(b.tags, tagIdentifier)

	b.buildFormats()
	b.buildGroups()
	b.buildHookGroups()
	b.buildInstructions()
	b.buildTrees()
	b.buildAliases()

	return b.model
}

// Formats used by the enabled instructions, in format enum order
func (b *modelBuilder) buildFormats() {
	used := make(map[instructions.Format]bool)

	for _, instruction := range b.table.Instructions {
		used[instruction.Definition.Format] = true
	}

	for format := range instructions.TOTAL_FORMATS {
		if !used[format] {
			continue
		}

		descriptor := format.Descriptor()
		view := formatView{
			Identifier: formatPrefix + utils.CIdentifier(descriptor.Name),
			Name:       descriptor.Name,
			Function:   "isa_extract_" + strings.ToLower(utils.CIdentifier(descriptor.Name)),
		}

		for position, operand := range descriptor.Operands {
			view.Operands = append(view.Operands, operandStatement(position, operand))
		}

		b.formats[format] = len(b.model.Formats)
		b.model.Formats = append(b.model.Formats, view)
		b.model.MaxOperands = max(b.model.MaxOperands, len(descriptor.Operands))
	}

	b.model.MaxOperands = max(b.model.MaxOperands, 1)
}

// Instruction group classes used by the enabled instructions, by order of first appearance
func (b *modelBuilder) buildGroups() {
	seenClasses := make(map[string]bool)
	seenGroups := make(map[*instructions.IsaGroup]bool)

	for _, instruction := range b.table.Instructions {
		group := instruction.Definition.Group
		if group == nil || seenClasses[groupIdentifier(group)] {
			continue
		}

		seenClasses[groupIdentifier(group)] = true
		b.model.Groups = append(b.model.Groups, groupView{
			Identifier: groupIdentifier(group),
			Isa:        group.Isa.Name,
			Class:      group.Name,
		})

		if !seenGroups[group.Isa] && group.Isa.Timing != nil {
			seenGroups[group.Isa] = true
			b.model.Timings = append(b.model.Timings, timingView{
				Identifier: "ISA_" + utils.CIdentifier(group.Isa.Name) + "_TIMING",
				Option:     group.Isa.Timing.Option,
				Default:    group.Isa.Timing.Default,
			})
		}
	}
}

func (b *modelBuilder) buildHookGroups() {
	hooks := make(map[string]bool)

	for i, group := range b.table.HookGroups {
		b.model.HookGroups = append(b.model.HookGroups, hookGroupView{
			Array: fmt.Sprintf("isa_hook_candidates_%d", i),
			Hook:  group.Hook,
			Candidates: utils.Map(group.Candidates, func(id decoder.InstructionID) string {
				return instructionIdentifier(b.table.Instructions[id])
			}),
		})

		hooks[group.Hook] = true
	}

	b.model.Hooks = utils.SortedKeys(hooks)
}

func (b *modelBuilder) hookGroupIndex(instruction *decoder.Instruction) int {
	group := b.table.HookGroupOf(instruction.Canonical)

	for i, candidate := range b.table.HookGroups {
		if candidate == group {
			return i
		}
	}

	return -1
}

func (b *modelBuilder) buildInstructions() {
	for _, instruction := range b.table.Instructions {
		definition := instruction.Definition
		pattern := definition.Pattern

		tags := utils.Map(utils.Filter(b.tags, definition.HasTag), tagIdentifier)
		tagsExpression := noTags
		if len(tags) > 0 {
			tagsExpression = strings.Join(tags, " | ")
		}

		b.model.Instructions = append(b.model.Instructions, instructionView{
			Identifier: instructionIdentifier(instruction),
			Mnemonic:   definition.Mnemonic,
			Label:      definition.AsmName(),
			Pattern:    pattern.String(),
			Mask:       hex32(pattern.Mask),
			Value:      hex32(pattern.Value),
			Width:      pattern.Width,
			Format:     b.model.Formats[b.formats[definition.Format]].Identifier,
			Operands:   len(instruction.Operands),
			Canonical:  instructionIdentifier(b.table.Instructions[instruction.Canonical]),
			HookGroup:  b.hookGroupIndex(instruction),
			Tags:       tagsExpression,
			Group:      groupIdentifier(definition.Group),
			Latencies:  utils.Map(instruction.Operands, func(o *instructions.OperandDescriptor) int { return o.Latency }),
		})
	}
}

// Flattens the decision trees into one C function per node, in depth first order
func (b *modelBuilder) buildTrees() {
	for class, tree := range b.table.Trees {
		counter := 0
		root := b.buildNode(class, tree.Root, &counter)

		b.model.Classes = append(b.model.Classes, classView{
			Width:         tree.Class.Width,
			Bytes:         tree.Class.Width / 8,
			SelectorMask:  hex32(tree.Class.Selector.Mask),
			SelectorValue: hex32(tree.Class.Selector.Value),
			WordMask:      hex32(utils.AllOnes[uint32](tree.Class.Width)),
			Root:          root,
		})
	}
}

func (b *modelBuilder) buildNode(class int, node *decoder.Node, counter *int) string {
	view := nodeView{
		Function: fmt.Sprintf("isa_decode_%d_%d", class, *counter),
	}
	*counter++

	// Reserve the slot so nodes are emitted in depth first order
	index := len(b.model.Nodes)
	b.model.Nodes = append(b.model.Nodes, view)

	if node.IsLeaf() {
		for _, id := range node.Candidates {
			instruction := b.table.Instructions[id]
			view.Candidates = append(view.Candidates, candidateView{
				Mask:       hex32(instruction.Pattern().Mask),
				Value:      hex32(instruction.Pattern().Value),
				Identifier: instructionIdentifier(instruction),
			})
		}
	} else {
		view.Mask = hex32(node.Mask)

		for _, branch := range node.Children {
			view.Cases = append(view.Cases, caseView{
				Key:    hex32(branch.Key),
				Target: b.buildNode(class, branch.Node, counter),
			})
		}

		if node.Fallback != nil {
			view.Fallback = b.buildNode(class, node.Fallback, counter)
		}
	}

	b.model.Nodes[index] = view
	return view.Function
}

func (b *modelBuilder) buildAliases() {
	for _, alias := range b.table.Aliases {
		b.model.Aliases = append(b.model.Aliases, aliasView{
			Mnemonic: alias.Mnemonic,
			Alias:    instructionIdentifier(b.table.Instructions[alias.Alias]),
			Target:   instructionIdentifier(b.table.Instructions[alias.Target]),
		})
	}
}
