package instructions

// Timing configuration file consumed by the execution engine to assign costs to an instruction group
type TimingTable struct {
	Name string
	// Command line option of the execution engine overriding the timing file
	Option string
	// Default timing file
	Default string
}

// A family of instructions sharing a timing table (e.g. the FPU or the multiplier)
type IsaGroup struct {
	Name   string
	Timing *TimingTable
}

// A cost class within an IsaGroup (e.g. FPU additions)
type InstrGroup struct {
	Isa  *IsaGroup
	Name string
}

func (g *InstrGroup) String() string {
	if g == nil {
		return "none"
	}

	return g.Isa.Name + "/" + g.Name
}

// Creates a group class
func (g *IsaGroup) Class(name string) *InstrGroup {
	return &InstrGroup{
		Isa:  g,
		Name: name,
	}
}
