package combat

type StatusKind string

const (
	Burn   StatusKind = "BURN"
	Freeze StatusKind = "FREEZE"
	Stun   StatusKind = "STUN"
)

// StatusEffect is a timed modifier owned by exactly one fighter.
// STUN deals no damage and is never ticked; it is consumed when the
// stunned fighter's turn is skipped.
type StatusEffect struct {
	Kind          StatusKind
	turns         int
	damagePerTurn int
	active        bool
}

func NewStatusEffect(kind StatusKind, turns, damagePerTurn int) *StatusEffect {
	if turns < 0 {
		turns = 0
	}
	if damagePerTurn < 0 {
		damagePerTurn = 0
	}
	return &StatusEffect{Kind: kind, turns: turns, damagePerTurn: damagePerTurn, active: true}
}

func (s *StatusEffect) RemainingTurns() int { return s.turns }
func (s *StatusEffect) DamagePerTurn() int  { return s.damagePerTurn }
func (s *StatusEffect) Active() bool        { return s.active }

func (s *StatusEffect) CalculateDamage() int {
	if !s.active || s.turns <= 0 {
		return 0
	}
	return s.damagePerTurn
}

func (s *StatusEffect) DecrementTurns() { s.turns-- }

func (s *StatusEffect) IncrementDamage(amount int) { s.damagePerTurn += amount }

func (s *StatusEffect) SetMaximumDuration(turns int) {
	if turns > s.turns {
		s.turns = turns
	}
}

func (s *StatusEffect) Deactivate() { s.active = false }

// StillActive deactivates the effect once its turns run out.
func (s *StatusEffect) StillActive() bool {
	if s.turns > 0 {
		return s.active
	}
	s.active = false
	return false
}

func (s *StatusEffect) Duplicate() *StatusEffect {
	cp := *s
	return &cp
}

// StatusView is a read-only copy used in snapshots.
type StatusView struct {
	Kind          StatusKind `json:"kind"`
	Turns         int        `json:"turns"`
	DamagePerTurn int        `json:"damage_per_turn"`
}
