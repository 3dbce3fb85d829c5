package combat

import (
	"fmt"

	"arena/internal/config"
)

type Class string

const (
	Paladin  Class = config.ClassPaladin
	Ranger   Class = config.ClassRanger
	Sorcerer Class = config.ClassSorcerer
)

func (c Class) Title() string {
	switch c {
	case Paladin:
		return "Paladin"
	case Ranger:
		return "Ranger"
	case Sorcerer:
		return "Sorcerer"
	}
	return string(c)
}

// Ability is the per-class special move. Implementations keep their own
// per-battle usage state and must be reset between battles.
type Ability interface {
	Name(self *Fighter) string
	Ready(self *Fighter) bool
	Execute(self, target *Fighter) int
	Reset()
}

// Fighter holds the shared health/status core; class behaviour lives in ability.
type Fighter struct {
	name      string
	class     Class
	health    int
	maxHealth int
	strength  int

	statuses []*StatusEffect
	immune   map[StatusKind]bool
	cleanse  bool

	ability Ability
	ice     iceArrows
}

type iceArrows struct {
	cfg  config.IceArrowsConfig
	used int
}

// NewFighter builds a fighter of the given class using rules for the class
// constants. A nil rules uses config.Default().
func NewFighter(class Class, name string, health, strength int, rules *config.Rules) (*Fighter, error) {
	if rules == nil {
		rules = config.Default()
	}
	if health < 0 {
		health = 0
	}
	if strength < 0 {
		strength = 0
	}
	f := &Fighter{
		name:      name,
		class:     class,
		health:    health,
		maxHealth: health,
		strength:  strength,
		immune:    map[StatusKind]bool{},
		ice:       iceArrows{cfg: rules.IceArrowsFor(string(class))},
	}
	switch class {
	case Paladin:
		f.ability = &smite{bonus: rules.Classes.Paladin.SmiteBonus}
	case Ranger:
		f.ability = &volley{fireTurns: rules.Classes.Ranger.FireTurns, fireDamage: rules.Classes.Ranger.FireDamage}
	case Sorcerer:
		f.ability = &charm{turns: rules.Classes.Sorcerer.StunTurns}
		f.immune[Freeze] = rules.Classes.Sorcerer.FreezeImmune
		f.cleanse = true
	default:
		return nil, fmt.Errorf("unknown fighter class %q", class)
	}
	return f, nil
}

func mustFighter(class Class, name string, health, strength int) *Fighter {
	f, err := NewFighter(class, name, health, strength, nil)
	if err != nil {
		panic(err)
	}
	return f
}

func NewPaladin(name string, health, strength int) *Fighter {
	return mustFighter(Paladin, name, health, strength)
}

func NewRanger(name string, health, strength int) *Fighter {
	return mustFighter(Ranger, name, health, strength)
}

func NewSorcerer(name string, health, strength int) *Fighter {
	return mustFighter(Sorcerer, name, health, strength)
}

func (f *Fighter) Name() string   { return f.name }
func (f *Fighter) Class() Class   { return f.class }
func (f *Fighter) Health() int    { return f.health }
func (f *Fighter) MaxHealth() int { return f.maxHealth }
func (f *Fighter) Strength() int  { return f.strength }
func (f *Fighter) IsAlive() bool  { return f.health > 0 }

func (f *Fighter) Info() string {
	return fmt.Sprintf("(%s) %s", f.class.Title(), f.name)
}

func (f *Fighter) AbilityName() string { return f.ability.Name(f) }
func (f *Fighter) CanUseAbility() bool { return f.ability.Ready(f) }
func (f *Fighter) ExecuteAbility(target *Fighter) int {
	return f.ability.Execute(f, target)
}

func (f *Fighter) PerformAttack(target *Fighter) int {
	return target.SufferDamage(f.strength)
}

// SufferDamage returns the health actually removed. Negative amounts are ignored.
func (f *Fighter) SufferDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > f.health {
		amount = f.health
	}
	f.health -= amount
	return amount
}

func (f *Fighter) RestoreHealth(amount int) {
	if amount <= 0 {
		return
	}
	f.health += amount
	if f.health > f.maxHealth {
		f.health = f.maxHealth
	}
}

func (f *Fighter) CanUseIceArrows() bool {
	return f.ice.used < f.ice.cfg.Uses
}

// UseIceArrows deals strength damage and stacks a freeze on target. Once the
// allowance is spent it degrades to a plain attack.
func (f *Fighter) UseIceArrows(target *Fighter) int {
	if !f.CanUseIceArrows() {
		return f.PerformAttack(target)
	}
	f.ice.used++

	dealt := target.SufferDamage(f.strength)

	perTurn := f.ice.cfg.DamagePerTurn
	if f.ice.cfg.DamageDivisor > 0 {
		perTurn = f.strength / f.ice.cfg.DamageDivisor
	}
	target.ApplyStatus(NewStatusEffect(Freeze, f.ice.cfg.FreezeTurns, perTurn))
	return dealt
}

func (f *Fighter) IceArrowsUsed() int { return f.ice.used }

// ApplyStatus attaches effect. An active FREEZE absorbs a new one by summing
// damage and keeping the longer duration.
func (f *Fighter) ApplyStatus(effect *StatusEffect) {
	if effect == nil || f.immune[effect.Kind] {
		return
	}
	if effect.Kind == Freeze {
		if cur := f.firstActive(Freeze); cur != nil {
			cur.IncrementDamage(effect.DamagePerTurn())
			cur.SetMaximumDuration(effect.RemainingTurns())
			return
		}
	}
	f.statuses = append(f.statuses, effect)
}

func (f *Fighter) firstActive(kind StatusKind) *StatusEffect {
	for _, s := range f.statuses {
		if s.Kind == kind && s.Active() {
			return s
		}
	}
	return nil
}

func (f *Fighter) HasStatus(kind StatusKind) bool {
	return f.firstActive(kind) != nil
}

func (f *Fighter) RemoveStatus(kind StatusKind) {
	for i, s := range f.statuses {
		if s.Kind == kind && s.Active() {
			s.Deactivate()
			f.statuses = append(f.statuses[:i], f.statuses[i+1:]...)
			return
		}
	}
}

func (f *Fighter) ClearStatuses() {
	for _, s := range f.statuses {
		s.Deactivate()
	}
	f.statuses = nil
}

// Cleanse strips every effect from a fighter that has the cleanse trait.
func (f *Fighter) Cleanse() bool {
	if !f.cleanse {
		return false
	}
	f.ClearStatuses()
	return true
}

// ProcessStatusEffects ticks every active non-STUN effect once, prunes the
// expired ones and applies the summed damage in a single step.
func (f *Fighter) ProcessStatusEffects() int {
	total := 0
	for _, s := range f.statuses {
		if !s.Active() || s.Kind == Stun {
			continue
		}
		total += s.CalculateDamage()
		s.DecrementTurns()
		if s.RemainingTurns() <= 0 {
			s.Deactivate()
		}
	}

	kept := f.statuses[:0]
	for _, s := range f.statuses {
		if s.Active() {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(f.statuses); i++ {
		f.statuses[i] = nil
	}
	f.statuses = kept

	return f.SufferDamage(total)
}

// tickLabel names the effect a status tick will be narrated as.
func (f *Fighter) tickLabel() string {
	for _, kind := range []StatusKind{Burn, Freeze} {
		if s := f.firstActive(kind); s != nil && s.CalculateDamage() > 0 {
			return kind.Label()
		}
	}
	return ""
}

func (k StatusKind) Label() string {
	switch k {
	case Burn:
		return "burning"
	case Freeze:
		return "frostbite"
	case Stun:
		return "charmed"
	}
	return string(k)
}

func (f *Fighter) Statuses() []StatusView {
	out := make([]StatusView, 0, len(f.statuses))
	for _, s := range f.statuses {
		if s.Active() {
			out = append(out, StatusView{Kind: s.Kind, Turns: s.RemainingTurns(), DamagePerTurn: s.DamagePerTurn()})
		}
	}
	return out
}

// ResetForNewBattle drops statuses and usage counters. Health carries over.
func (f *Fighter) ResetForNewBattle() {
	f.ClearStatuses()
	f.ice.used = 0
	f.ability.Reset()
}

type FighterSnapshot struct {
	Name      string       `json:"name"`
	Class     Class        `json:"class"`
	Health    int          `json:"health"`
	MaxHealth int          `json:"max_health"`
	Strength  int          `json:"strength"`
	Statuses  []StatusView `json:"statuses,omitempty"`
}

func (f *Fighter) Snapshot() FighterSnapshot {
	return FighterSnapshot{
		Name:      f.name,
		Class:     f.class,
		Health:    f.health,
		MaxHealth: f.maxHealth,
		Strength:  f.strength,
		Statuses:  f.Statuses(),
	}
}
