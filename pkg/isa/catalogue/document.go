package catalogue

// Catalogue file contents
type Document struct {
	Name    string           `yaml:"name"`
	Widths  []WidthDocument  `yaml:"widths"`
	Groups  []GroupDocument  `yaml:"groups,omitempty"`
	Subsets []SubsetDocument `yaml:"subsets"`
}

// Word class: words matching the selector template are Width bits long
type WidthDocument struct {
	Width    int    `yaml:"width"`
	Selector string `yaml:"selector"`
}

type TimingDocument struct {
	Name    string `yaml:"name"`
	Option  string `yaml:"option,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// Instruction group and the cost classes declared in it
type GroupDocument struct {
	Name    string          `yaml:"name"`
	Timing  *TimingDocument `yaml:"timing,omitempty"`
	Classes []string        `yaml:"classes,omitempty"`
}

type SubsetDocument struct {
	Name         string                `yaml:"name"`
	When         []string              `yaml:"when,omitempty"`
	Unless       []string              `yaml:"unless,omitempty"`
	Instructions []InstructionDocument `yaml:"instructions"`
}

type InstructionDocument struct {
	Mnemonic string   `yaml:"mnemonic"`
	Pattern  string   `yaml:"pattern"`
	Format   string   `yaml:"format"`
	Label    string   `yaml:"label,omitempty"`
	Alias    string   `yaml:"alias,omitempty"`
	Hook     string   `yaml:"hook,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	// Cost class as "group/class"
	Group string `yaml:"group,omitempty"`
	// Operand latencies by format position
	Latency     map[int]int `yaml:"latency,omitempty"`
	Description string      `yaml:"description,omitempty"`
}
