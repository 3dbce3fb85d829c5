package roster

import (
	"fmt"

	"arena/internal/combat"
	"arena/internal/config"
	"arena/internal/util"
)

type Params struct {
	Name     string
	Health   int
	Strength int
}

// Generator draws random fighters from the pools and ranges in Rules.
type Generator struct {
	Rules *config.Rules
}

func New(rules *config.Rules) *Generator {
	if rules == nil {
		rules = config.Default()
	}
	return &Generator{Rules: rules}
}

// Generate draws, per fighter and in this order: class, name, health, strength.
func (g *Generator) Generate(count int, src util.Source) ([]*combat.Fighter, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative fighter count %d", count)
	}
	classes := g.Rules.Generator.Classes
	if len(classes) == 0 {
		return nil, fmt.Errorf("no fighter classes configured")
	}
	out := make([]*combat.Fighter, 0, count)
	for i := 0; i < count; i++ {
		class := combat.Class(classes[util.Intn(src, len(classes))])
		f, err := g.FromParams(class, g.RandomParams(src))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (g *Generator) FromParams(class combat.Class, p Params) (*combat.Fighter, error) {
	return combat.NewFighter(class, p.Name, p.Health, p.Strength, g.Rules)
}

func (g *Generator) RandomParams(src util.Source) Params {
	gc := g.Rules.Generator
	return Params{
		Name:     g.RandomName(src),
		Health:   drawRange(src, gc.Health),
		Strength: drawRange(src, gc.Strength),
	}
}

func (g *Generator) RandomName(src util.Source) string {
	names := g.Rules.Generator.Names
	if len(names) == 0 {
		return "Nameless"
	}
	return names[util.Intn(src, len(names))]
}

func (g *Generator) Names() []string {
	return append([]string(nil), g.Rules.Generator.Names...)
}

func drawRange(src util.Source, r config.Range) int {
	return r.Min + util.Intn(src, r.Max-r.Min+1)
}
