package work

import (
	"context"
	"errors"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/logger"
	"github.com/mt2web/mt2web/internal/repository"
	"github.com/mt2web/mt2web/internal/worker"
)

// DuelTallyJob records a finished duel on the opponent's side. The opponent
// may have been renamed or deleted since the duel was queued, so it is looked
// up by id first and by name as a fallback.
type DuelTallyJob struct {
	characters repository.Character
	opponent   domain.OpponentSnapshot
	won        int
	lost       int
}

// Process implements worker.Job. Failures are logged, never retried.
func (j *DuelTallyJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if j.won == 0 && j.lost == 0 {
		return nil
	}

	target, err := j.characters.GetCharacter(ctx, j.opponent.CharacterID)
	if errors.Is(err, domain.ErrCharacterNotFound) && j.opponent.Name != "" {
		target, err = findByName(ctx, j.characters, j.opponent.Name)
	}
	if err != nil {
		if errors.Is(err, domain.ErrCharacterNotFound) || errors.Is(err, domain.ErrOpponentNotFound) {
			log.Info(LogMsgDuelTallyOpponentGone, "opponent", j.opponent.Name)
			return nil
		}
		log.Error(LogMsgDuelTallyFailed, "opponent", j.opponent.Name, "error", err)
		return nil
	}

	if err := j.characters.IncrementDuelCounters(ctx, target.ID, j.won, j.lost); err != nil {
		log.Error(LogMsgDuelTallyFailed, "opponent_id", target.ID, "error", err)
	}
	return nil
}

var _ worker.Job = (*DuelTallyJob)(nil)
