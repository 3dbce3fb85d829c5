package recording

import (
	"fmt"

	"arena/internal/combat"
)

const banner = "═══════════════════════════════════════"

// Render turns one event into its narration text.
func Render(ev combat.Event) string {
	switch ev.Type {
	case combat.EventTournamentStart:
		return fmt.Sprintf("The tournament begins! %d fighters enter the arena.", ev.Amount)
	case combat.EventRoundStart:
		return fmt.Sprintf("\nRound %d.\n", ev.Round)
	case combat.EventBattleStart:
		return fmt.Sprintf("%s vs %s", ev.Actor, ev.Target)
	case combat.EventAttack:
		return fmt.Sprintf("%s hits %s for %d damage", ev.Actor, ev.Target, ev.Amount)
	case combat.EventAbility:
		if ev.Amount > 0 {
			return fmt.Sprintf("%s uses (%s) and deals %d damage to %s", ev.Actor, ev.Ability, ev.Amount, ev.Target)
		}
		return fmt.Sprintf("%s uses (%s) on %s", ev.Actor, ev.Ability, ev.Target)
	case combat.EventStatusDamage:
		return fmt.Sprintf("%s takes %d damage from %q", ev.Actor, ev.Amount, ev.Reason)
	case combat.EventSkipTurn:
		return fmt.Sprintf("%s skips a turn: %s", ev.Actor, ev.Reason)
	case combat.EventDeath:
		return fmt.Sprintf("%s dies\n", ev.Actor)
	case combat.EventBye:
		return fmt.Sprintf("%s advances without a fight", ev.Actor)
	case combat.EventSuddenDeath:
		return fmt.Sprintf("Sudden death after %d turns: %s and %s trade plain blows", ev.Amount, ev.Actor, ev.Target)
	case combat.EventBattleWinner:
		return fmt.Sprintf("\n%s wins in round %d!", ev.Actor, ev.Round)
	case combat.EventChampion:
		return fmt.Sprintf("\n%s\n%s becomes the tournament champion!\n%s\n", banner, ev.Actor, banner)
	}
	return fmt.Sprintf("%s %s", ev.Type, ev.Actor)
}
