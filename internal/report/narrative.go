package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/combat"
	"github.com/mt2web/mt2web/internal/domain"
)

func newReport(characterID uuid.UUID, t domain.ReportType, subject, content string, stats *domain.CombatStats) domain.Report {
	return domain.Report{
		ID:          uuid.New(),
		CharacterID: characterID,
		Type:        t,
		Subject:     subject,
		Content:     content,
		Read:        false,
		Stats:       stats,
		CreatedAt:   time.Now().UTC(),
	}
}

// Sleep narrates a completed sleep work
func Sleep(c *domain.Character) domain.Report {
	content := fmt.Sprintf(TmplSleep, c.HP.Current, c.HP.Max, c.Stamina.Current, c.Stamina.Max)
	return newReport(c.ID, domain.ReportTypeSleep, SubjectSleep, content, nil)
}

// Attack narrates a resolved PvE fight
func Attack(characterID uuid.UUID, o combat.Outcome, eff combat.Effects) domain.Report {
	var content string
	switch o.Result {
	case domain.CombatVictory:
		content = fmt.Sprintf(TmplPvEVictory, o.OpponentName, o.Rounds, o.DamageDealt, o.HPLost, o.ExpGained, o.YangGained)
	case domain.CombatDefeat:
		content = fmt.Sprintf(TmplPvEDefeat, o.OpponentName, o.Rounds, o.DamageDealt, o.HPLost)
	default:
		content = fmt.Sprintf(TmplPvEDraw, o.OpponentName, o.Rounds, o.DamageDealt, o.HPLost, o.OpponentName, o.OpponentHPRemaining)
	}
	content = withLevelUp(content, eff) + combatLog(o)
	subject := fmt.Sprintf(SubjectAttackFormat, o.OpponentName)
	return newReport(characterID, domain.ReportTypeAttack, subject, content, o.Stats())
}

// Duel narrates a resolved PvP fight
func Duel(characterID uuid.UUID, o combat.Outcome, eff combat.Effects) domain.Report {
	var content string
	switch o.Result {
	case domain.CombatVictory:
		content = fmt.Sprintf(TmplPvPVictory, o.OpponentName, o.Rounds, o.DamageDealt, o.HPLost, o.ExpGained, o.YangGained)
	case domain.CombatDefeat:
		content = fmt.Sprintf(TmplPvPDefeat, o.OpponentName, o.Rounds, o.DamageDealt, o.HPLost)
	default:
		content = fmt.Sprintf(TmplPvPDraw, o.OpponentName, o.Rounds, o.DamageDealt, o.HPLost, o.OpponentName, o.OpponentHPRemaining)
	}
	content = withLevelUp(content, eff) + combatLog(o)
	subject := fmt.Sprintf(SubjectDuelFormat, o.OpponentName)
	return newReport(characterID, domain.ReportTypeDuel, subject, content, o.Stats())
}

// WorksCancelled narrates the queue being flushed after a death
func WorksCancelled(characterID uuid.UUID, cancelled, staminaRefunded int) domain.Report {
	content := fmt.Sprintf(TmplWorksCancelled, cancelled, staminaRefunded)
	return newReport(characterID, domain.ReportTypeInfo, SubjectWorksCancelled, content, nil)
}

// CashLost narrates the cash wipe after a death
func CashLost(characterID uuid.UUID, amount int64) domain.Report {
	content := fmt.Sprintf(TmplCashLost, amount)
	return newReport(characterID, domain.ReportTypeInfo, SubjectCashLost, content, nil)
}

// Info is a free-form informational report
func Info(characterID uuid.UUID, subject, content string) domain.Report {
	return newReport(characterID, domain.ReportTypeInfo, subject, content, nil)
}

// DuelAborted reports a duel whose opponent snapshot could not be used
func DuelAborted(characterID uuid.UUID) domain.Report {
	return Info(characterID, SubjectDuelAborted, TmplDuelAborted)
}

func withLevelUp(content string, eff combat.Effects) string {
	if !eff.Grant.LeveledUp {
		return content
	}
	return content + fmt.Sprintf(TmplLevelUp, eff.Grant.NewLevel)
}

func combatLog(o combat.Outcome) string {
	if len(o.Log) == 0 {
		return ""
	}
	return CombatLogHeader + strings.Join(o.Log, "\n")
}
