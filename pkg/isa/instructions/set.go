package instructions

import (
	"slices"

	"github.com/Manu343726/isagen/pkg/isa/encoding"
	"github.com/Manu343726/isagen/pkg/utils"
)

// Set of enabled feature flags (e.g. "d", "gap8")
type Features map[string]bool

// Creates a feature set with the given features enabled
func NewFeatures(names ...string) Features {
	features := make(Features, len(names))

	for _, name := range names {
		features[name] = true
	}

	return features
}

// Returns true if the feature is enabled
func (f Features) Has(name string) bool {
	return f[name]
}

// Returns a copy of the feature set with extra features enabled
func (f Features) With(names ...string) Features {
	result := NewFeatures(f.Names()...)

	for _, name := range names {
		result[name] = true
	}

	return result
}

// Returns the enabled features, sorted by name
func (f Features) Names() []string {
	return utils.Filter(utils.SortedKeys(f), f.Has)
}

// Predicate enabling an instruction subset
type Activation struct {
	// Features that must all be enabled. An empty list always holds
	When []string
	// Features that disable the subset if any of them is enabled
	Unless []string
}

// Subset enabled regardless of features
var Always = Activation{}

// Activation requiring all the given features
func When(features ...string) Activation {
	return Activation{When: features}
}

// Activation holding unless one of the given features is enabled
func Unless(features ...string) Activation {
	return Activation{Unless: features}
}

// Returns true if the predicate holds for the given features
func (a Activation) Active(features Features) bool {
	return !slices.ContainsFunc(a.When, func(f string) bool { return !features.Has(f) }) &&
		!slices.ContainsFunc(a.Unless, features.Has)
}

// Named list of instruction definitions enabled or disabled as a whole
type Subset struct {
	Name        string
	Activation  Activation
	Definitions []*InstructionDefinition
}

// Returns the definition with the given mnemonic, nil if the subset does not contain it
func (s *Subset) Lookup(mnemonic string) *InstructionDefinition {
	for _, definition := range s.Definitions {
		if definition.Mnemonic == mnemonic {
			return definition
		}
	}

	return nil
}

// Class of instruction words sharing a width. The selector fixes the bits that identify words of the class
type WidthClass struct {
	Width    int
	Selector encoding.BitPattern
}

// Returns true if the word belongs to the class
func (c WidthClass) Contains(word uint32) bool {
	return c.Selector.Matches(word)
}

// Keeps only the bits of the word that belong to the class width
func (c WidthClass) Truncate(word uint32) uint32 {
	return word & utils.AllOnes[uint32](c.Width)
}

// Ordered collection of instruction subsets describing an instruction set architecture
type InstructionSet struct {
	Name string
	// Word width classes, the first class whose selector matches a word wins
	Widths []WidthClass
	// Instruction groups referenced by definitions
	Groups []*IsaGroup
	// Subsets in declaration order. Definitions keep this order in the decode table
	Subsets []*Subset
}

// Returns the subsets enabled by the given features, in declaration order
func (s *InstructionSet) ActiveSubsets(features Features) []*Subset {
	return utils.Filter(s.Subsets, func(subset *Subset) bool { return subset.Activation.Active(features) })
}

// Returns the definitions of all subsets enabled by the given features, in declaration order
func (s *InstructionSet) Definitions(features Features) []*InstructionDefinition {
	var result []*InstructionDefinition

	for _, subset := range s.ActiveSubsets(features) {
		result = append(result, subset.Definitions...)
	}

	return result
}

// Returns the subset with the given name, nil if there is none
func (s *InstructionSet) Subset(name string) *Subset {
	for _, subset := range s.Subsets {
		if subset.Name == name {
			return subset
		}
	}

	return nil
}

// Searches a definition across all subsets (enabled or not). Returns the first match
func (s *InstructionSet) Lookup(mnemonic string) *InstructionDefinition {
	for _, subset := range s.Subsets {
		if definition := subset.Lookup(mnemonic); definition != nil {
			return definition
		}
	}

	return nil
}

// Returns the group with the given name, nil if there is none
func (s *InstructionSet) Group(name string) *IsaGroup {
	for _, group := range s.Groups {
		if group.Name == name {
			return group
		}
	}

	return nil
}

// Returns the index of the width class every word matching the definition falls into.
// Fails with ErrWidthMismatch if the definition width does not match its format width or if
// the fixed bits of the definition do not force its words into a single class of the same width
func (s *InstructionSet) ClassOf(definition *InstructionDefinition) (int, error) {
	if err := definition.CheckWidth(); err != nil {
		return 0, err
	}

	for i, class := range s.Widths {
		if !class.Selector.Overlaps(definition.Pattern) {
			continue
		}

		if class.Width != definition.Pattern.Width {
			return 0, utils.MakeError(ErrWidthMismatch, "%v bit instruction %v (%v) may be decoded as a %v bit word", definition.Pattern.Width, definition.Mnemonic, definition.Pattern, class.Width)
		}

		if !class.Selector.Covers(definition.Pattern) {
			return 0, utils.MakeError(ErrWidthMismatch, "instruction %v (%v) does not fix the %v bit word selector %v", definition.Mnemonic, definition.Pattern, class.Width, class.Selector)
		}

		return i, nil
	}

	return 0, utils.MakeError(ErrWidthMismatch, "no %v bit word class for instruction %v", definition.Pattern.Width, definition.Mnemonic)
}

// Returns the index of the width class of a raw word, -1 if no class matches
func (s *InstructionSet) ClassOfWord(word uint32) int {
	for i, class := range s.Widths {
		if class.Contains(word) {
			return i
		}
	}

	return -1
}

// Returns the names of the tags used by the given definitions, sorted
func Tags(definitions []*InstructionDefinition) []string {
	tags := make(map[string]bool)

	for _, definition := range definitions {
		for _, tag := range definition.Tags {
			tags[tag] = true
		}
	}

	return utils.SortedKeys(tags)
}
