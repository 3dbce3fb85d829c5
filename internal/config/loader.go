package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads a rules file on top of Default. An empty path yields the defaults.
func Load(path string) (*Rules, error) {
	r := Default()
	if path == "" {
		return r, nil
	}
	if err := loadYAML(path, r); err != nil {
		return nil, fmt.Errorf("failed to load rules %s: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("rules %s: %w", path, err)
	}
	return r, nil
}

func (r *Rules) Validate() error {
	probs := []struct {
		name string
		v    float64
	}{
		{"ability_probability", r.AbilityProbability},
		{"first_actor_threshold", r.FirstActorThreshold},
		{"ability_choice_threshold", r.AbilityChoiceThreshold},
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", p.name, p.v)
		}
	}
	if r.SuddenDeathTurn < 1 {
		return fmt.Errorf("sudden_death_turn must be >= 1, got %d", r.SuddenDeathTurn)
	}

	g := r.Generator
	if g.Health.Min < 1 || g.Health.Min > g.Health.Max {
		return fmt.Errorf("generator.health: invalid range %d..%d", g.Health.Min, g.Health.Max)
	}
	if g.Strength.Min < 0 || g.Strength.Min > g.Strength.Max {
		return fmt.Errorf("generator.strength: invalid range %d..%d", g.Strength.Min, g.Strength.Max)
	}
	if len(g.Names) == 0 {
		return fmt.Errorf("generator.names is empty")
	}
	if len(g.Classes) == 0 {
		return fmt.Errorf("generator.classes is empty")
	}
	for _, c := range g.Classes {
		if !KnownClass(c) {
			return fmt.Errorf("generator.classes: unknown class %q", c)
		}
	}

	if err := r.Classes.Default.validate("classes.default"); err != nil {
		return err
	}
	if err := r.Classes.Ranger.IceArrows.validate("classes.ranger.ice_arrows"); err != nil {
		return err
	}
	if r.Classes.Paladin.SmiteBonus < 0 {
		return fmt.Errorf("classes.paladin.smite_bonus must be >= 0")
	}
	if r.Classes.Ranger.FireTurns < 1 || r.Classes.Ranger.FireDamage < 0 {
		return fmt.Errorf("classes.ranger: fire_turns must be >= 1 and fire_damage >= 0")
	}
	if r.Classes.Sorcerer.StunTurns < 1 {
		return fmt.Errorf("classes.sorcerer.stun_turns must be >= 1")
	}
	return nil
}

func (ic IceArrowsConfig) validate(field string) error {
	if ic.Uses < 0 {
		return fmt.Errorf("%s.uses must be >= 0, got %d", field, ic.Uses)
	}
	if ic.FreezeTurns < 1 {
		return fmt.Errorf("%s.freeze_turns must be >= 1, got %d", field, ic.FreezeTurns)
	}
	if ic.DamagePerTurn < 0 || ic.DamageDivisor < 0 {
		return fmt.Errorf("%s: freeze damage values must be >= 0", field)
	}
	return nil
}
