package config

// Rules is the balance document for a tournament run.
type Rules struct {
	AbilityProbability     float64         `yaml:"ability_probability"`
	FirstActorThreshold    float64         `yaml:"first_actor_threshold"`
	AbilityChoiceThreshold float64         `yaml:"ability_choice_threshold"`
	SuddenDeathTurn        int             `yaml:"sudden_death_turn"`
	Generator              GeneratorConfig `yaml:"generator"`
	Classes                ClassesConfig   `yaml:"classes"`
}

type GeneratorConfig struct {
	Health   Range    `yaml:"health"`
	Strength Range    `yaml:"strength"`
	Names    []string `yaml:"names"`
	Classes  []string `yaml:"classes"`
}

// Range is inclusive on both ends.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type ClassesConfig struct {
	Default  IceArrowsConfig `yaml:"default"`
	Paladin  PaladinConfig   `yaml:"paladin"`
	Ranger   RangerConfig    `yaml:"ranger"`
	Sorcerer SorcererConfig  `yaml:"sorcerer"`
}

// IceArrowsConfig describes the ice-arrows action every class carries.
// DamageDivisor > 0 makes the freeze damage floor(strength/DamageDivisor)
// instead of the flat DamagePerTurn.
type IceArrowsConfig struct {
	Uses          int `yaml:"uses"`
	FreezeTurns   int `yaml:"freeze_turns"`
	DamagePerTurn int `yaml:"damage_per_turn"`
	DamageDivisor int `yaml:"damage_divisor"`
}

type PaladinConfig struct {
	SmiteBonus float64 `yaml:"smite_bonus"`
}

type RangerConfig struct {
	FireTurns  int             `yaml:"fire_turns"`
	FireDamage int             `yaml:"fire_damage"`
	IceArrows  IceArrowsConfig `yaml:"ice_arrows"`
}

type SorcererConfig struct {
	StunTurns    int  `yaml:"stun_turns"`
	FreezeImmune bool `yaml:"freeze_immune"`
}

const (
	ClassPaladin  = "paladin"
	ClassRanger   = "ranger"
	ClassSorcerer = "sorcerer"
)

var knownClasses = map[string]bool{ClassPaladin: true, ClassRanger: true, ClassSorcerer: true}

func KnownClass(name string) bool { return knownClasses[name] }

func Default() *Rules {
	return &Rules{
		AbilityProbability:     0.5,
		FirstActorThreshold:    0.5,
		AbilityChoiceThreshold: 0.5,
		SuddenDeathTurn:        500,
		Generator: GeneratorConfig{
			Health:   Range{Min: 50, Max: 150},
			Strength: Range{Min: 5, Max: 50},
			Names: []string{
				"Arthur", "William", "Lancelot", "Gawain", "Galahad", "Percival",
				"Eldar", "Legolas", "Robin", "Harold", "Alaric", "Theoden",
				"Gandalf", "Merlin", "Harry", "Hermione", "Dumbledore", "Voldemort",
			},
			Classes: []string{ClassPaladin, ClassRanger, ClassSorcerer},
		},
		Classes: ClassesConfig{
			Default: IceArrowsConfig{Uses: 1, FreezeTurns: 3, DamagePerTurn: 2},
			Paladin: PaladinConfig{SmiteBonus: 0.3},
			Ranger: RangerConfig{
				FireTurns:  100,
				FireDamage: 2,
				IceArrows:  IceArrowsConfig{Uses: 2, FreezeTurns: 3, DamageDivisor: 2},
			},
			Sorcerer: SorcererConfig{StunTurns: 1, FreezeImmune: true},
		},
	}
}

// IceArrowsFor returns the ice-arrows allowance of a class.
func (r *Rules) IceArrowsFor(class string) IceArrowsConfig {
	if class == ClassRanger {
		return r.Classes.Ranger.IceArrows
	}
	return r.Classes.Default
}
