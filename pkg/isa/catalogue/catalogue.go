// Package catalogue reads and writes instruction sets as YAML documents, so instruction sets can be
// described without recompiling the generator.
package catalogue

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/isagen/pkg/isa/encoding"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Bit field boundaries used to split pattern templates, most significant field first
var templateFields = map[int][]int{
	encoding.StandardWidth:   {7, 5, 5, 3, 5, 7},
	encoding.CompressedWidth: {3, 3, 3, 2, 3, 2},
}

// Returns the template of a pattern, split in the usual instruction fields
func Template(pattern encoding.BitPattern) string {
	raw := pattern.String()

	fields, found := templateFields[pattern.Width]
	if !found {
		return raw
	}

	parts := make([]string, 0, len(fields))

	for _, width := range fields {
		parts = append(parts, raw[:width])
		raw = raw[width:]
	}

	return strings.Join(parts, " ")
}

// Reads an instruction set from a YAML catalogue
func Load(r io.Reader) (*instructions.InstructionSet, error) {
	var document Document

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&document); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, utils.MakeError(ErrInvalidCatalogue, "empty document")
		}

		return nil, utils.MakeError(ErrInvalidCatalogue, "%w", err)
	}

	return FromDocument(&document)
}

// Reads an instruction set from a YAML catalogue file
func LoadFile(fs afero.Fs, path string) (*instructions.InstructionSet, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue: %w", err)
	}
	defer file.Close()

	set, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	return set, nil
}

// Writes an instruction set as a YAML catalogue
func Export(w io.Writer, set *instructions.InstructionSet) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(ToDocument(set)); err != nil {
		return fmt.Errorf("failed to export catalogue: %w", err)
	}

	return encoder.Close()
}

// Returns the catalogue document describing an instruction set
func ToDocument(set *instructions.InstructionSet) *Document {
	document := &Document{
		Name: set.Name,
	}

	for _, width := range set.Widths {
		document.Widths = append(document.Widths, WidthDocument{
			Width:    width.Width,
			Selector: Template(width.Selector),
		})
	}

	groups := make(map[*instructions.IsaGroup]*GroupDocument)
	var groupOrder []*instructions.IsaGroup

	addGroup := func(group *instructions.IsaGroup) *GroupDocument {
		if doc, found := groups[group]; found {
			return doc
		}

		doc := &GroupDocument{Name: group.Name}
		if group.Timing != nil {
			doc.Timing = &TimingDocument{
				Name:    group.Timing.Name,
				Option:  group.Timing.Option,
				Default: group.Timing.Default,
			}
		}

		groups[group] = doc
		groupOrder = append(groupOrder, group)
		return doc
	}

	for _, group := range set.Groups {
		addGroup(group)
	}

	for _, subset := range set.Subsets {
		subsetDocument := SubsetDocument{
			Name:   subset.Name,
			When:   subset.Activation.When,
			Unless: subset.Activation.Unless,
		}

		for _, definition := range subset.Definitions {
			instruction := InstructionDocument{
				Mnemonic:    definition.Mnemonic,
				Pattern:     Template(definition.Pattern),
				Format:      definition.Format.String(),
				Label:       definition.Label,
				Alias:       definition.AliasOf,
				Hook:        definition.Hook,
				Tags:        definition.Tags,
				Latency:     definition.LatencyOverrides,
				Description: definition.Description,
			}

			if definition.Group != nil {
				group := addGroup(definition.Group.Isa)
				if !utils.Any(group.Classes, func(class string) bool { return class == definition.Group.Name }) {
					group.Classes = append(group.Classes, definition.Group.Name)
				}

				instruction.Group = definition.Group.String()
			}

			subsetDocument.Instructions = append(subsetDocument.Instructions, instruction)
		}

		document.Subsets = append(document.Subsets, subsetDocument)
	}

	for _, group := range groupOrder {
		document.Groups = append(document.Groups, *groups[group])
	}

	return document
}

// Builds the instruction set described by a catalogue document. All errors found are reported together
func FromDocument(document *Document) (*instructions.InstructionSet, error) {
	var err error

	set := &instructions.InstructionSet{
		Name: document.Name,
	}

	if set.Name == "" {
		err = multierr.Append(err, utils.MakeError(ErrInvalidCatalogue, "missing instruction set name"))
	}

	for _, width := range document.Widths {
		selector, parseErr := encoding.ParsePattern(width.Selector, width.Width)
		if parseErr != nil {
			err = multierr.Append(err, utils.MakeError(ErrInvalidCatalogue, "width %v selector: %w", width.Width, parseErr))
			continue
		}

		set.Widths = append(set.Widths, instructions.WidthClass{Width: width.Width, Selector: selector})
	}

	if len(set.Widths) == 0 {
		err = multierr.Append(err, utils.MakeError(ErrInvalidCatalogue, "no word widths declared"))
	}

	classes := make(map[string]*instructions.InstrGroup)

	for _, groupDocument := range document.Groups {
		if set.Group(groupDocument.Name) != nil {
			err = multierr.Append(err, utils.MakeError(ErrInvalidCatalogue, "duplicated group %v", groupDocument.Name))
			continue
		}

		group := &instructions.IsaGroup{Name: groupDocument.Name}
		if groupDocument.Timing != nil {
			group.Timing = &instructions.TimingTable{
				Name:    groupDocument.Timing.Name,
				Option:  groupDocument.Timing.Option,
				Default: groupDocument.Timing.Default,
			}
		}

		set.Groups = append(set.Groups, group)

		for _, className := range groupDocument.Classes {
			class := group.Class(className)
			classes[class.String()] = class
		}
	}

	for _, subsetDocument := range document.Subsets {
		subset := &instructions.Subset{
			Name: subsetDocument.Name,
			Activation: instructions.Activation{
				When:   subsetDocument.When,
				Unless: subsetDocument.Unless,
			},
		}

		for _, instruction := range subsetDocument.Instructions {
			definition, definitionErr := fromInstructionDocument(instruction, classes)
			if definitionErr != nil {
				err = multierr.Append(err, utils.MakeError(ErrInvalidCatalogue, "subset %v: %w", subset.Name, definitionErr))
				continue
			}

			subset.Definitions = append(subset.Definitions, definition)
		}

		set.Subsets = append(set.Subsets, subset)
	}

	if err != nil {
		return nil, err
	}

	return set, nil
}

func fromInstructionDocument(document InstructionDocument, classes map[string]*instructions.InstrGroup) (*instructions.InstructionDefinition, error) {
	format, err := instructions.ParseFormat(document.Format)
	if err != nil {
		return nil, fmt.Errorf("instruction %v: %w", document.Mnemonic, err)
	}

	options := []instructions.DefinitionOption{
		instructions.WithHook(document.Hook),
		instructions.WithAliasOf(document.Alias),
		instructions.WithLabel(document.Label),
		instructions.WithDescription(document.Description),
	}

	if len(document.Tags) > 0 {
		options = append(options, instructions.WithTags(document.Tags...))
	}

	if document.Group != "" {
		class, found := classes[document.Group]
		if !found {
			return nil, fmt.Errorf("instruction %v: undeclared group class %v", document.Mnemonic, document.Group)
		}

		options = append(options, instructions.WithGroup(class))
	}

	for position, cycles := range utils.SortedEntries(document.Latency) {
		options = append(options, instructions.WithLatency(position, cycles))
	}

	return instructions.NewDefinition(document.Mnemonic, format, document.Pattern, options...)
}
