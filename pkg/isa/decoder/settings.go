package decoder

import (
	"log/slog"

	"github.com/Manu343726/isagen/pkg/isa/instructions"
)

// Extra cycles before the registers written by instructions with a given tag are available
type LatencyPolicy struct {
	Tag     string
	Latency int
}

// Loaded values are available two cycles after the load
const DefaultLoadLatency = 2

// Latency of written registers not covered by any policy or override
const BaselineLatency = 0

// Returns the default latency policies
func DefaultLatencyPolicies() []LatencyPolicy {
	return []LatencyPolicy{
		{Tag: "load", Latency: DefaultLoadLatency},
	}
}

// Decode table builder settings
type Settings struct {
	// Latency policies, the first policy matching a tag of the instruction wins
	LatencyPolicies []LatencyPolicy
	// Logger used to report build progress. If nil, slog.Default() is used
	Logger *slog.Logger
}

// Returns the default builder settings
func DefaultSettings() Settings {
	return Settings{
		LatencyPolicies: DefaultLatencyPolicies(),
	}
}

func (s *Settings) latencyOf(definition *instructions.InstructionDefinition) int {
	for _, policy := range s.LatencyPolicies {
		if definition.HasTag(policy.Tag) {
			return policy.Latency
		}
	}

	return BaselineLatency
}
