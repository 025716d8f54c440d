package decoder

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/utils"
	"go.uber.org/multierr"
)

// Compiles instruction sets into decode tables
type Builder struct {
	settings Settings
	logger   *slog.Logger
}

// Creates a decode table builder
func NewBuilder(settings Settings) *Builder {
	logger := settings.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Builder{
		settings: settings,
		logger:   logger.With(slog.String("component", "decoder")),
	}
}

// Compiles the subsets of the instruction set enabled by the given features into a decode table.
// All validation errors are reported together
func (b *Builder) Build(set *instructions.InstructionSet, features instructions.Features) (*Table, error) {
	b.warnUnusedFeatures(set, features)

	table := &Table{
		Name:       set.Name,
		Features:   features,
		Classes:    set.Widths,
		byMnemonic: make(map[string]*Instruction),
	}

	definitions := set.Definitions(features)

	b.logger.Debug("building decode table",
		slog.String("isa", set.Name),
		slog.Any("features", features.Names()),
		slog.Int("subsets", len(set.ActiveSubsets(features))),
		slog.Int("definitions", len(definitions)))

	err := b.register(table, set, definitions)
	err = multierr.Append(err, b.resolveAliases(table, set))
	err = multierr.Append(err, b.checkOverlaps(table))
	err = multierr.Append(err, b.annotateLatencies(table))

	if err != nil {
		b.logger.Error("invalid instruction set", slog.String("isa", set.Name), slog.Int("errors", len(multierr.Errors(err))))
		return nil, err
	}

	b.buildHookGroups(table)
	b.buildTrees(table)

	return table, nil
}

func (b *Builder) warnUnusedFeatures(set *instructions.InstructionSet, features instructions.Features) {
	used := make(map[string]bool)

	for _, subset := range set.Subsets {
		for _, feature := range append(slices.Clone(subset.Activation.When), subset.Activation.Unless...) {
			used[feature] = true
		}
	}

	for _, feature := range features.Names() {
		if !used[feature] {
			b.logger.Warn("feature does not affect any subset", slog.String("feature", feature))
		}
	}
}

// Assigns IDs, identifiers and word classes, checking for duplicates
func (b *Builder) register(table *Table, set *instructions.InstructionSet, definitions []*instructions.InstructionDefinition) error {
	var err error
	identifiers := make(map[string]*Instruction)

	for i, definition := range definitions {
		instruction := &Instruction{
			ID:         InstructionID(i),
			Definition: definition,
			Canonical:  InstructionID(i),
			Hook:       definition.Hook,
			Identifier: utils.CIdentifier(definition.Mnemonic),
		}

		table.Instructions = append(table.Instructions, instruction)

		class, classErr := set.ClassOf(definition)
		if classErr != nil {
			err = multierr.Append(err, classErr)
			class = -1
		}
		instruction.Class = class

		if previous, duplicated := table.byMnemonic[definition.Mnemonic]; duplicated {
			// A repeated mnemonic is only allowed as an alternative encoding of the same instruction
			if definition.AliasOf != definition.Mnemonic {
				err = multierr.Append(err, utils.MakeError(instructions.ErrDuplicateMnemonic, "%v (%v and %v)", definition.Mnemonic, previous.Pattern(), definition.Pattern))
				continue
			}

			instruction.Identifier = fmt.Sprintf("%v_ALT%v", instruction.Identifier, i)
		} else {
			table.byMnemonic[definition.Mnemonic] = instruction
		}

		if previous, collides := identifiers[instruction.Identifier]; collides {
			err = multierr.Append(err, utils.MakeError(instructions.ErrDuplicateMnemonic, "%v and %v map to the same identifier %v", previous.Mnemonic(), definition.Mnemonic, instruction.Identifier))
			continue
		}

		identifiers[instruction.Identifier] = instruction
	}

	return err
}

// Links aliases with their canonical instructions
func (b *Builder) resolveAliases(table *Table, set *instructions.InstructionSet) error {
	var err error

	for _, instruction := range table.Instructions {
		definition := instruction.Definition
		if !definition.IsAlias() {
			continue
		}

		target, found := table.byMnemonic[definition.AliasOf]

		switch {
		case !found && set.Lookup(definition.AliasOf) != nil:
			err = multierr.Append(err, utils.MakeError(instructions.ErrUnresolvedAlias, "%v is an alias of %v, which is not enabled", definition.Mnemonic, definition.AliasOf))
			continue
		case !found:
			err = multierr.Append(err, utils.MakeError(instructions.ErrUnresolvedAlias, "%v is an alias of unknown instruction %v", definition.Mnemonic, definition.AliasOf))
			continue
		case target == instruction:
			err = multierr.Append(err, utils.MakeError(instructions.ErrUnresolvedAlias, "%v is an alias of itself", definition.Mnemonic))
			continue
		case target.Definition.IsAlias():
			err = multierr.Append(err, utils.MakeError(instructions.ErrUnresolvedAlias, "%v is an alias of %v, which is an alias too", definition.Mnemonic, target.Mnemonic()))
			continue
		case target.Class != instruction.Class:
			err = multierr.Append(err, utils.MakeError(instructions.ErrUnresolvedAlias, "%v and its target %v belong to different word classes", definition.Mnemonic, target.Mnemonic()))
			continue
		}

		if !target.Pattern().Covers(definition.Pattern) {
			err = multierr.Append(err, utils.MakeError(instructions.ErrAliasConflict, "%v (%v) matches words its target %v (%v) does not", definition.Mnemonic, definition.Pattern, target.Mnemonic(), target.Pattern()))
			continue
		}

		if definition.Hook != "" && definition.Hook != target.Hook {
			err = multierr.Append(err, utils.MakeError(instructions.ErrAliasConflict, "%v declares hook %v but its target %v has hook '%v'", definition.Mnemonic, definition.Hook, target.Mnemonic(), target.Hook))
			continue
		}

		instruction.Canonical = target.ID
		instruction.Hook = target.Hook
		instruction.Shadowed = definition.Pattern == target.Pattern()

		table.Aliases = append(table.Aliases, Alias{
			Mnemonic: definition.Mnemonic,
			Alias:    instruction.ID,
			Target:   target.ID,
		})
	}

	return err
}

// Returns the instructions the decision trees of a word class are built from
func (t *Table) decodable(class int) []InstructionID {
	var result []InstructionID

	for _, instruction := range t.Instructions {
		if instruction.Class == class && !instruction.Shadowed {
			result = append(result, instruction.ID)
		}
	}

	return result
}

// Checks that every pair of overlapping patterns can be resolved by specificity
func (b *Builder) checkOverlaps(table *Table) error {
	var err error

	for class := range table.Classes {
		candidates := table.decodable(class)

		for i, first := range candidates {
			for _, second := range candidates[i+1:] {
				a := table.Instructions[first]
				c := table.Instructions[second]

				if !a.Pattern().Overlaps(c.Pattern()) || a.Pattern().StrictlyRefines(c.Pattern()) || c.Pattern().StrictlyRefines(a.Pattern()) {
					continue
				}

				shared := a.Pattern().Mask & c.Pattern().Mask
				err = multierr.Append(err, utils.MakeError(ErrAmbiguousEncoding, "%v (%v) and %v (%v) match the same words, fixed bits %v agree and neither pattern is more specific",
					a.Mnemonic(), a.Pattern(), c.Mnemonic(), c.Pattern(), utils.SetBits(shared)))
			}
		}
	}

	return err
}

// Clones the format operands of every instruction and assigns latencies to written registers
func (b *Builder) annotateLatencies(table *Table) error {
	var err error

	for _, instruction := range table.Instructions {
		definition := instruction.Definition
		format := definition.FormatDescriptor()

		for position := range utils.SortedEntries(definition.LatencyOverrides) {
			if position < 0 || position >= len(format.Operands) || !format.Operands[position].Role.IsWrite() {
				err = multierr.Append(err, utils.MakeError(ErrInvalidLatency, "%v: operand %v of format %v is not a written register", definition.Mnemonic, position, format.Name))
			}
		}

		latency := b.settings.latencyOf(definition)
		instruction.Operands = utils.Map(format.Operands, (*instructions.OperandDescriptor).Clone)

		for _, operand := range instruction.Operands {
			if !operand.Role.IsWrite() {
				continue
			}

			operand.Latency = latency

			if override, hasOverride := definition.LatencyOverrides[operand.Position]; hasOverride {
				operand.Latency = override
			}
		}
	}

	return err
}

// Groups the canonical instructions of each word class sharing a hook, by order of first appearance
func (b *Builder) buildHookGroups(table *Table) {
	for _, instruction := range table.Instructions {
		if instruction.IsAlias() || instruction.Hook == "" {
			continue
		}

		group := table.HookGroupOf(instruction.ID)
		if group == nil {
			group = &HookGroup{
				Class: instruction.Class,
				Hook:  instruction.Hook,
			}
			table.HookGroups = append(table.HookGroups, group)
		}

		group.Candidates = append(group.Candidates, instruction.ID)
	}
}

func (b *Builder) buildTrees(table *Table) {
	for class, width := range table.Classes {
		builder := treeBuilder{table: table, width: width.Width}
		tree := &Tree{
			Class: width,
			Root:  builder.build(table.decodable(class), width.Selector.Mask),
		}

		table.Trees = append(table.Trees, tree)

		b.logger.Debug("decision tree built",
			slog.Int("width", width.Width),
			slog.Int("instructions", len(table.decodable(class))),
			slog.Int("depth", tree.Root.Depth()),
			slog.Int("max_leaf_size", tree.Root.MaxLeafSize()))
	}
}
