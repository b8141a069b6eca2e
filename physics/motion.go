package physics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/peculiar-particles/core"
)

// ErrUnknownMotion is returned when a motion name cannot be parsed
var ErrUnknownMotion = errors.New("unknown motion")

// Motion selects the rule applied to every particle for a run
type Motion uint8

const (
	MotionLinear  Motion = iota // straight approach to the pointer
	MotionOrbital               // approach plus a tangential swirl
)

// DefaultMotion is used when nothing else is configured
const DefaultMotion = MotionOrbital

// Rule maps a particle and the current pointer context to its next state
type Rule func(p core.Particle, s core.Surface, ptr core.Pointer) core.Particle

var rules = [...]Rule{
	MotionLinear:  LinearFollow,
	MotionOrbital: OrbitalFollow,
}

// Rule returns the update rule of the variant
// Unknown variants return a rule that leaves particles untouched
func (m Motion) Rule() Rule {
	if int(m) < len(rules) {
		return rules[m]
	}
	return still
}

// Apply runs the variant's rule on one particle
func (m Motion) Apply(p core.Particle, s core.Surface, ptr core.Pointer) core.Particle {
	return m.Rule()(p, s, ptr)
}

// String returns the configuration name of the motion
func (m Motion) String() string {
	switch m {
	case MotionLinear:
		return "linear"
	case MotionOrbital:
		return "orbital"
	default:
		return "Motion(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMotion accepts names and the numeric selections 0 and 1
func ParseMotion(s string) (Motion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "0":
		return MotionLinear, nil
	case "orbital", "orbit", "1":
		return MotionOrbital, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMotion, s)
}

func still(p core.Particle, _ core.Surface, _ core.Pointer) core.Particle {
	return p
}
