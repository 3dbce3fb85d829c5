package combat

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"arena/internal/config"
	"arena/internal/util"
)

// Generator builds the opening roster. It must draw only from src.
type Generator interface {
	Generate(count int, src util.Source) ([]*Fighter, error)
}

// Engine runs a single-elimination tournament. It is not safe for concurrent
// use; every random draw goes through rng in a fixed order so a seeded source
// replays the same tournament.
type Engine struct {
	rules *config.Rules
	gen   Generator
	rec   Recorder
	rng   util.Source
	base  *zap.Logger
	log   *zap.Logger

	roster   []*Fighter
	entrants []string
	round    int
	runID    string
	pinnedID bool
	seq      int
}

type Option func(*Engine)

func WithRules(r *config.Rules) Option {
	return func(e *Engine) {
		if r != nil {
			e.rules = r
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.base = l
		}
	}
}

// WithRunID pins the run id instead of generating one on Initialize.
func WithRunID(id string) Option {
	return func(e *Engine) {
		e.runID = id
		e.pinnedID = id != ""
	}
}

func NewEngine(gen Generator, rec Recorder, rng util.Source, opts ...Option) *Engine {
	e := &Engine{
		rules: config.Default(),
		gen:   gen,
		rec:   rec,
		rng:   rng,
		base:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.base
	return e
}

func (e *Engine) Round() int    { return e.round }
func (e *Engine) RunID() string { return e.runID }

func (e *Engine) AliveCount() int {
	n := 0
	for _, f := range e.roster {
		if f.IsAlive() {
			n++
		}
	}
	return n
}

func (e *Engine) Roster() []*Fighter {
	return append([]*Fighter(nil), e.roster...)
}

// Initialize validates count and generates the roster.
func (e *Engine) Initialize(count int) error {
	if count%2 != 0 {
		e.log.Warn("invalid tournament size", zap.Int("fighters", count))
		return fmt.Errorf("%w: got %d (odd)", ErrInvalidSize, count)
	}
	if count < 2 {
		e.log.Warn("invalid tournament size", zap.Int("fighters", count))
		return fmt.Errorf("%w: got %d", ErrInvalidSize, count)
	}

	fighters, err := e.gen.Generate(count, e.rng)
	if err != nil {
		return fmt.Errorf("generate roster: %w", err)
	}
	if len(fighters) != count {
		return fmt.Errorf("generate roster: want %d fighters, got %d", count, len(fighters))
	}

	if !e.pinnedID {
		e.runID = uuid.NewString()
	}
	e.log = e.base.With(zap.String("run_id", e.runID))
	e.roster = fighters
	e.entrants = e.entrants[:0]
	for _, f := range fighters {
		e.entrants = append(e.entrants, f.Info())
	}
	e.round = 0
	e.seq = 0

	e.emit(Event{Type: EventTournamentStart, RunID: e.runID, Amount: count})
	e.log.Info("tournament initialized", zap.Int("fighters", count))
	return nil
}

// Run plays rounds until one fighter remains and returns it.
func (e *Engine) Run() (*Fighter, error) {
	if len(e.roster) == 0 {
		return nil, ErrNotInitialized
	}

	for len(e.roster) > 1 {
		e.round++
		e.emit(Event{Type: EventRoundStart})
		e.log.Debug("round started", zap.Int("round", e.round), zap.Int("fighters", len(e.roster)))

		e.playRound()

		e.roster = survivors(e.roster)
		for _, f := range e.roster {
			f.ResetForNewBattle()
		}
		e.log.Debug("round finished", zap.Int("round", e.round), zap.Int("survivors", len(e.roster)))
	}

	champion := e.roster[0]
	e.emit(Event{Type: EventChampion, Actor: champion.Info()})
	e.log.Info("tournament finished",
		zap.String("champion", champion.Info()),
		zap.Int("rounds", e.round),
		zap.Int("health", champion.Health()))
	return champion, nil
}

// Result summarizes the run for export.
func (e *Engine) Result(champion *Fighter) Result {
	res := Result{
		RunID:    e.runID,
		Fighters: len(e.entrants),
		Rounds:   e.round,
		Roster:   append([]string(nil), e.entrants...),
	}
	if champion != nil {
		res.Champion = champion.Snapshot()
	}
	return res
}

func (e *Engine) playRound() {
	pairs, bye := PairUp(Shuffle(e.roster, e.rng))
	if bye != nil {
		e.emit(Event{Type: EventBye, Actor: bye.Info()})
	}
	for _, p := range pairs {
		e.battle(p[0], p[1])
	}
}

func (e *Engine) battle(f1, f2 *Fighter) *Fighter {
	e.emit(Event{Type: EventBattleStart, Actor: f1.Info(), Target: f2.Info()})

	active, passive := f2, f1
	if e.rng.Float64() < e.rules.FirstActorThreshold {
		active, passive = f1, f2
	}

	turns := 0
	sudden := false
	for f1.IsAlive() && f2.IsAlive() {
		// Slot 1 ticks first; a kill there ends the battle before slot 2 ticks.
		if e.tickStatus(f1) {
			e.tickStatus(f2)
		}
		if !passive.IsAlive() {
			break
		}
		if !active.IsAlive() {
			active, passive = passive, active
			continue
		}

		turns++
		if !sudden && turns >= e.rules.SuddenDeathTurn {
			sudden = true
			for f1.HasStatus(Stun) {
				f1.RemoveStatus(Stun)
			}
			for f2.HasStatus(Stun) {
				f2.RemoveStatus(Stun)
			}
			e.emit(Event{Type: EventSuddenDeath, Actor: f1.Info(), Target: f2.Info(), Amount: turns})
			e.log.Info("sudden death", zap.String("fighter1", f1.Info()), zap.String("fighter2", f2.Info()), zap.Int("turn", turns))
		}

		if !sudden && active.HasStatus(Stun) {
			active.RemoveStatus(Stun)
			e.emit(Event{Type: EventSkipTurn, Actor: active.Info(), Reason: Stun.Label()})
			active, passive = passive, active
			continue
		}

		if sudden {
			dmg := active.strength
			if dmg < 1 {
				dmg = 1
			}
			dealt := passive.SufferDamage(dmg)
			e.emit(Event{Type: EventAttack, Actor: active.Info(), Target: passive.Info(), Amount: dealt})
		} else {
			e.act(active, passive)
		}

		if !passive.IsAlive() {
			e.emit(Event{Type: EventDeath, Actor: passive.Info()})
			break
		}
		active, passive = passive, active
	}

	winner := f1
	if !f1.IsAlive() {
		winner = f2
	}
	e.emit(Event{Type: EventBattleWinner, Actor: winner.Info()})
	e.log.Debug("battle finished",
		zap.Int("round", e.round),
		zap.String("winner", winner.Info()),
		zap.Int("winner_health", winner.Health()),
		zap.Int("turns", turns))
	return winner
}

// act resolves one normal turn: ability draw, optional sub-choice draw, action.
func (e *Engine) act(active, passive *Fighter) {
	wants := e.rng.Float64() < e.rules.AbilityProbability
	canClass := active.CanUseAbility()
	canIce := active.CanUseIceArrows()

	if !wants || !(canClass || canIce) {
		dealt := active.PerformAttack(passive)
		e.emit(Event{Type: EventAttack, Actor: active.Info(), Target: passive.Info(), Amount: dealt})
		return
	}

	useClass := canClass && (!canIce || e.rng.Float64() < e.rules.AbilityChoiceThreshold)
	if useClass {
		name := active.AbilityName()
		dealt := active.ExecuteAbility(passive)
		e.emit(Event{Type: EventAbility, Actor: active.Info(), Target: passive.Info(), Ability: name, Amount: dealt})
		return
	}
	dealt := active.UseIceArrows(passive)
	e.emit(Event{Type: EventAbility, Actor: active.Info(), Target: passive.Info(), Ability: IceArrowsName, Amount: dealt})
}

// tickStatus applies damage over time and reports whether f is still alive.
func (e *Engine) tickStatus(f *Fighter) bool {
	label := f.tickLabel()
	dmg := f.ProcessStatusEffects()
	if dmg > 0 {
		if label != "" {
			e.emit(Event{Type: EventStatusDamage, Actor: f.Info(), Reason: label, Amount: dmg})
		}
		if !f.IsAlive() {
			e.emit(Event{Type: EventDeath, Actor: f.Info()})
		}
	}
	return f.IsAlive()
}

func (e *Engine) emit(ev Event) {
	if e.rec == nil {
		return
	}
	e.seq++
	ev.Seq = e.seq
	ev.Round = e.round
	e.rec.Record(ev)
}
