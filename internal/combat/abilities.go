package combat

import "math"

// smite: one strong blow per battle.
type smite struct {
	bonus float64
	used  bool
}

func (a *smite) Name(*Fighter) string { return "Retribution Strike" }
func (a *smite) Ready(*Fighter) bool  { return !a.used }
func (a *smite) Reset()               { a.used = false }

func (a *smite) Execute(self, target *Fighter) int {
	if a.used {
		return self.PerformAttack(target)
	}
	a.used = true
	extra := int(math.Floor(float64(self.strength) * a.bonus))
	return target.SufferDamage(self.strength + extra)
}

// volley: fire arrows once per battle, then the ice-arrows allowance.
type volley struct {
	fireTurns  int
	fireDamage int
	fireUsed   bool
}

func (a *volley) Name(self *Fighter) string {
	if a.fireUsed && self.CanUseIceArrows() {
		return IceArrowsName
	}
	return "Fire Arrows"
}

func (a *volley) Ready(self *Fighter) bool {
	return !a.fireUsed || self.CanUseIceArrows()
}

func (a *volley) Reset() { a.fireUsed = false }

func (a *volley) Execute(self, target *Fighter) int {
	if !a.fireUsed {
		a.fireUsed = true
		target.ApplyStatus(NewStatusEffect(Burn, a.fireTurns, a.fireDamage))
		return 0
	}
	if self.CanUseIceArrows() {
		return self.UseIceArrows(target)
	}
	return self.PerformAttack(target)
}

// charm: always-available stun, no immediate damage.
type charm struct {
	turns int
}

func (a *charm) Name(*Fighter) string { return "Enchantment" }
func (a *charm) Ready(*Fighter) bool  { return true }
func (a *charm) Reset()               {}

func (a *charm) Execute(_, target *Fighter) int {
	target.ApplyStatus(NewStatusEffect(Stun, a.turns, 0))
	return 0
}

const IceArrowsName = "Ice Arrows"
