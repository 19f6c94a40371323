package game

// EffectKind identifies one of the closed set of status effects. Using a
// dedicated type instead of plain string makes code safer and self-documenting.
type EffectKind string

const (
	Burned       EffectKind = "burned"
	Frozen       EffectKind = "frozen"
	Bleeding     EffectKind = "bleeding"
	Stunned      EffectKind = "stunned"
	Enraged      EffectKind = "enraged"
	Poisoned     EffectKind = "poisoned"
	Regenerating EffectKind = "regenerating"
	Strengthened EffectKind = "strengthened"
	Weakened     EffectKind = "weakened"
	Shielded     EffectKind = "shielded"
)

// EffectKinds lists the closed set, for config validation.
var EffectKinds = []EffectKind{
	Burned, Frozen, Bleeding, Stunned, Enraged,
	Poisoned, Regenerating, Strengthened, Weakened, Shielded,
}

// ValidEffectKind reports whether the kind belongs to the closed set.
func ValidEffectKind(kind EffectKind) bool {
	for _, k := range EffectKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// EffectTarget says which side of an encounter an ability effect lands on.
type EffectTarget string

const (
	TargetSelf     EffectTarget = "self"
	TargetOpponent EffectTarget = "opponent"
)

// EffectApplication describes one status effect an ability applies when used.
// Duration and Power of zero mean "use the kind's default".
type EffectApplication struct {
	Kind     EffectKind   `json:"kind" yaml:"kind"`
	Target   EffectTarget `json:"target" yaml:"target"`
	Duration int          `json:"duration" yaml:"duration"`
	Power    int          `json:"power" yaml:"power"`
}

// Ability is a named special move mapping to one or two effect applications.
// MinLevel gates player abilities; enemy abilities leave it at zero.
type Ability struct {
	Key         string              `json:"key" yaml:"key"`
	Name        string              `json:"name" yaml:"name"`
	Description string              `json:"description" yaml:"description"`
	MinLevel    int                 `json:"min_level" yaml:"min_level"`
	Effects     []EffectApplication `json:"effects" yaml:"effects"`
}
