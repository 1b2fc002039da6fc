package report

// Subjects
const (
	SubjectSleep          = "Sleep report"
	SubjectAttackFormat   = "Attack report: %s"
	SubjectDuelFormat     = "Duel report: %s"
	SubjectWorksCancelled = "Works cancelled"
	SubjectCashLost       = "Yang lost"
)

// Narrative templates
const (
	TmplSleep = "You slept well and woke up fully rested.\nHP: %d/%d, stamina: %d/%d."

	TmplPvEVictory = "You defeated %s after %d rounds, dealing %d damage and losing %d hp.\nYou gained %d experience and %d yang."
	TmplPvEDefeat  = "%s defeated you after %d rounds. You dealt %d damage and lost %d hp."
	TmplPvEDraw    = "You fought %s for %d rounds without a winner. You dealt %d damage and lost %d hp; %s has %d hp left."

	TmplPvPVictory = "You won the duel against %s in %d rounds, dealing %d damage and losing %d hp.\nYou gained %d experience and %d yang."
	TmplPvPDefeat  = "You lost the duel against %s after %d rounds. You dealt %d damage and lost %d hp."
	TmplPvPDraw    = "Your duel against %s ended in a draw after %d rounds. You dealt %d damage and lost %d hp; %s has %d hp left."

	TmplLevelUp = "\nYou reached level %d!"

	TmplWorksCancelled = "You died, so your remaining %d queued works were cancelled.\n%d stamina was returned to you."
	TmplCashLost       = "You died and lost the %d yang you were carrying. Your bank balance is untouched."

	CombatLogHeader = "\n\nCombat log:\n"
)

// Info report texts
const (
	SubjectDuelAborted = "Duel aborted"
	TmplDuelAborted    = "Your queued duel could not take place because the opponent's data was unreadable. The stamina spent on it is not returned."
)

// Listing defaults
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	MaxSubjectLength = 255
	MaxContentLength = 10000
)
