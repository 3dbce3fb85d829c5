package combat

import "encoding/json"

type EventType string

const (
	EventTournamentStart EventType = "TournamentStart"
	EventRoundStart      EventType = "RoundStart"
	EventBattleStart     EventType = "BattleStart"
	EventAttack          EventType = "Attack"
	EventAbility         EventType = "Ability"
	EventStatusDamage    EventType = "StatusDamage"
	EventSkipTurn        EventType = "SkipTurn"
	EventDeath           EventType = "Death"
	EventBye             EventType = "Bye"
	EventSuddenDeath     EventType = "SuddenDeath"
	EventBattleWinner    EventType = "BattleWinner"
	EventChampion        EventType = "Champion"
)

// Event is one narration point. Actor/Target carry Fighter.Info() strings.
type Event struct {
	Seq     int       `json:"seq"`
	Round   int       `json:"round"`
	Type    EventType `json:"type"`
	RunID   string    `json:"run_id,omitempty"`
	Actor   string    `json:"actor,omitempty"`
	Target  string    `json:"target,omitempty"`
	Ability string    `json:"ability,omitempty"`
	Amount  int       `json:"amount,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

// Recorder consumes narration events in emission order.
type Recorder interface {
	Record(ev Event)
}

type RecorderFunc func(Event)

func (f RecorderFunc) Record(ev Event) { f(ev) }

// Result is the exported summary of one tournament run.
type Result struct {
	RunID    string          `json:"run_id"`
	Seed     int64           `json:"seed,omitempty"`
	Fighters int             `json:"fighters"`
	Rounds   int             `json:"rounds"`
	Champion FighterSnapshot `json:"champion"`
	Roster   []string        `json:"roster"`
	Events   []Event         `json:"events,omitempty"`
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
