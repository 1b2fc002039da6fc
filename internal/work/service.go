package work

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/combat"
	"github.com/mt2web/mt2web/internal/concurrency"
	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/event"
	"github.com/mt2web/mt2web/internal/logger"
	"github.com/mt2web/mt2web/internal/metrics"
	"github.com/mt2web/mt2web/internal/report"
	"github.com/mt2web/mt2web/internal/repository"
	"github.com/mt2web/mt2web/internal/worker"
)

// MobCatalog resolves attack targets
type MobCatalog interface {
	Get(id string) (domain.Mob, error)
}

// Config tunes travel time computation
type Config struct {
	TravelSpeed   float64
	MaxTravelTime time.Duration
}

// CreateRequest describes a work to queue. Exactly one target field is used,
// depending on Kind: MobID for attacks, OpponentID or OpponentName for duels.
type CreateRequest struct {
	Kind         domain.WorkKind
	Type         domain.WorkType
	MobID        string
	OpponentID   *uuid.UUID
	OpponentName string
}

// Service defines the work lifecycle operations
type Service interface {
	// ListWorks advances the queue against the current time and returns it
	ListWorks(ctx context.Context, characterID uuid.UUID) ([]domain.Work, error)
	CreateWork(ctx context.Context, characterID uuid.UUID, req CreateRequest) (*domain.Work, error)
	CancelWork(ctx context.Context, characterID, workID uuid.UUID) error
	GetWork(ctx context.Context, workID uuid.UUID) (*domain.Work, error)
	UpdateWork(ctx context.Context, workID uuid.UUID, patch domain.WorkPatch) (*domain.Work, error)
}

type service struct {
	works      repository.Work
	characters repository.Character
	mobs       MobCatalog
	resolver   *combat.Resolver
	locks      *concurrency.LockManager
	executor   worker.Executor
	publisher  event.Publisher
	cfg        Config
	now        func() time.Time
}

// NewService creates a new work service. A nil executor runs follow-up jobs
// inline and a nil publisher drops events.
func NewService(
	works repository.Work,
	characters repository.Character,
	mobs MobCatalog,
	resolver *combat.Resolver,
	locks *concurrency.LockManager,
	executor worker.Executor,
	publisher event.Publisher,
	cfg Config,
) Service {
	if cfg.TravelSpeed <= 0 {
		cfg.TravelSpeed = DefaultTravelSpeed
	}
	if cfg.MaxTravelTime <= 0 {
		cfg.MaxTravelTime = DefaultMaxTravelTime
	}
	if resolver == nil {
		resolver = combat.NewResolver(nil)
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	if executor == nil {
		executor = worker.Inline{}
	}
	if publisher == nil {
		publisher = event.Nop{}
	}
	return &service{
		works:      works,
		characters: characters,
		mobs:       mobs,
		resolver:   resolver,
		locks:      locks,
		executor:   executor,
		publisher:  publisher,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// advanceResult collects everything an advance pass produced that must be
// acted on after commit
type advanceResult struct {
	events    []event.Event
	followUps []worker.Job
}

func (r *advanceResult) publish(evt event.Event) {
	r.events = append(r.events, evt)
}

// ListWorks is the single place where queued works move forward in time
func (s *service) ListWorks(ctx context.Context, characterID uuid.UUID) ([]domain.Work, error) {
	unlock := s.locks.Lock(characterID.String())
	defer unlock()

	tx, err := s.works.BeginWorkTx(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.now()
	works, res, err := s.advance(ctx, tx, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.afterCommit(ctx, res)

	setCountdowns(works, now)
	return works, nil
}

// advance moves the head of the queue through its phases and resolves it when
// its job deadline has passed. It returns the queue as it stands afterwards.
func (s *service) advance(ctx context.Context, tx repository.WorkTx, now time.Time) ([]domain.Work, *advanceResult, error) {
	log := logger.FromContext(ctx)
	res := &advanceResult{}

	char, err := tx.GetCharacterForUpdate(ctx)
	if err != nil {
		return nil, nil, err
	}
	works, err := tx.ListWorks(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list works: %w", err)
	}
	if len(works) == 0 {
		return works, res, nil
	}

	head := &works[0]
	charDirty := false

	if !head.IsInProgress && !now.Before(head.TravelEndTime) {
		head.IsInProgress = true
		if dest, ok := head.Destination(); ok {
			char.Position = dest
			charDirty = true
		}
		// A head whose job is also over is resolved and deleted below
		if now.Before(head.JobEndTime) {
			if err := tx.UpdateWork(ctx, head); err != nil {
				return nil, nil, fmt.Errorf("failed to start work: %w", err)
			}
		}
		log.Debug(LogMsgWorkStarted, "work_id", head.ID, "kind", head.Kind)
	}

	if !head.IsInProgress || now.Before(head.JobEndTime) {
		if charDirty {
			if err := tx.UpdateCharacter(ctx, char); err != nil {
				return nil, nil, fmt.Errorf("failed to update character: %w", err)
			}
		}
		return works, res, nil
	}

	completed := *head
	rep, result, eff := s.complete(ctx, char, &completed, res)

	if err := tx.DeleteWork(ctx, completed.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to delete completed work: %w", err)
	}
	reports := []domain.Report{rep}
	remaining := works[1:]

	if eff.Died {
		cashLost := char.Money.Cash
		refunded := 0
		for i := range remaining {
			if err := tx.DeleteWork(ctx, remaining[i].ID); err != nil {
				return nil, nil, fmt.Errorf("failed to cancel work: %w", err)
			}
			refunded += remaining[i].StaminaCost
			res.publish(event.NewWorkCancelledEvent(&remaining[i], CancelReasonDeath))
		}
		before := char.Stamina.Current
		char.Stamina.Add(refunded)
		char.Money.Cash = 0

		reports = append(reports,
			report.WorksCancelled(char.ID, len(remaining), char.Stamina.Current-before),
			report.CashLost(char.ID, cashLost),
		)
		res.publish(event.NewCharacterDiedEvent(char.ID.String(), len(remaining), cashLost))
		log.Info(LogMsgCharacterDied, "character_id", char.ID, "cancelled", len(remaining), "cash_lost", cashLost)
		remaining = nil
	}

	if err := tx.UpdateCharacter(ctx, char); err != nil {
		return nil, nil, fmt.Errorf("failed to update character: %w", err)
	}
	for i := range reports {
		if err := tx.CreateReport(ctx, &reports[i]); err != nil {
			return nil, nil, fmt.Errorf("failed to create report: %w", err)
		}
	}

	res.publish(event.NewWorkCompletedEvent(&completed, result))
	for i := range reports {
		res.publish(event.NewReportCreatedEvent(&reports[i]))
	}
	if eff.Grant.LeveledUp {
		res.publish(event.NewLevelUpEvent(char.ID.String(), eff.Grant.OldLevel, eff.Grant.NewLevel))
	}
	log.Info(LogMsgWorkCompleted, "work_id", completed.ID, "kind", completed.Kind, "result", result)

	if remaining == nil {
		remaining = []domain.Work{}
	}
	return remaining, res, nil
}

// complete resolves a work whose job phase is over and applies its effects to char
func (s *service) complete(ctx context.Context, char *domain.Character, w *domain.Work, res *advanceResult) (domain.Report, domain.CombatResult, combat.Effects) {
	log := logger.FromContext(ctx)
	noEffects := combat.Effects{}

	switch w.Kind {
	case domain.WorkKindSleep:
		char.HP.Restore()
		char.Stamina.Restore()
		return report.Sleep(char), "", noEffects

	case domain.WorkKindAttack:
		if w.Target == nil {
			log.Warn(LogMsgMissingTarget, "work_id", w.ID)
			return report.Info(char.ID, SubjectAttackAborted, TmplAttackAborted), "", noEffects
		}
		outcome := s.resolver.ResolvePvE(combat.FromCharacter(char), w.Target, w.Type)
		metrics.CombatRounds.WithLabelValues(metrics.ModePvE).Observe(float64(outcome.Rounds))
		eff := combat.ApplyOutcome(char, outcome)
		return report.Attack(char.ID, outcome, eff), outcome.Result, eff

	case domain.WorkKindDuel:
		if err := w.Opponent.Validate(); err != nil {
			log.Warn(LogMsgCorruptOpponent, "work_id", w.ID, "error", err)
			return report.DuelAborted(char.ID), "", noEffects
		}
		outcome := s.resolver.ResolvePvP(combat.FromCharacter(char), combat.FromOpponent(w.Opponent))
		metrics.CombatRounds.WithLabelValues(metrics.ModePvP).Observe(float64(outcome.Rounds))
		eff := combat.ApplyOutcome(char, outcome)

		won, lost := tally(outcome.Result)
		char.DuelsWon += won
		char.DuelsLost += lost
		// The opponent sees the mirrored result
		res.followUps = append(res.followUps, &DuelTallyJob{
			characters: s.characters,
			opponent:   *w.Opponent,
			won:        lost,
			lost:       won,
		})
		return report.Duel(char.ID, outcome, eff), outcome.Result, eff
	}

	// Unknown kinds cannot be stored, but a corrupted row still gets consumed
	log.Warn(LogMsgMissingTarget, "work_id", w.ID, "kind", w.Kind)
	return report.Info(char.ID, SubjectAttackAborted, TmplAttackAborted), "", noEffects
}

func tally(result domain.CombatResult) (won, lost int) {
	switch result {
	case domain.CombatVictory:
		return 1, 0
	case domain.CombatDefeat:
		return 0, 1
	}
	return 0, 0
}

func (s *service) afterCommit(ctx context.Context, res *advanceResult) {
	log := logger.FromContext(ctx)
	for _, evt := range res.events {
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
	for _, job := range res.followUps {
		if !s.executor.Submit(job) {
			log.Warn(LogMsgDuelTallyRejected)
		}
	}
}

// CreateWork validates and queues a new work behind the existing ones
func (s *service) CreateWork(ctx context.Context, characterID uuid.UUID, req CreateRequest) (*domain.Work, error) {
	log := logger.FromContext(ctx)

	if _, err := domain.ParseWorkKind(string(req.Kind)); err != nil {
		return nil, err
	}
	if _, err := domain.ParseWorkType(string(req.Type)); err != nil {
		return nil, err
	}

	w := &domain.Work{
		ID:          uuid.New(),
		CharacterID: characterID,
		Kind:        req.Kind,
		Type:        req.Type,
		JobDuration: req.Type.JobDuration(),
	}

	switch req.Kind {
	case domain.WorkKindAttack:
		mob, err := s.mobs.Get(req.MobID)
		if err != nil {
			return nil, err
		}
		w.Target = mob.Snapshot()
	case domain.WorkKindDuel:
		opp, err := s.resolveOpponent(ctx, req)
		if err != nil {
			return nil, err
		}
		if opp.ID == characterID {
			return nil, fmt.Errorf("%w: cannot duel yourself", domain.ErrInvalidOpponent)
		}
		if opp.IsDead() {
			return nil, fmt.Errorf("%w: %s has no hp left", domain.ErrInvalidOpponent, opp.Name)
		}
		snap := opp.Snapshot()
		if err := snap.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOpponent, err)
		}
		w.Opponent = &snap
	}

	unlock := s.locks.Lock(characterID.String())
	defer unlock()

	tx, err := s.works.BeginWorkTx(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.now()
	queue, res, err := s.advance(ctx, tx, now)
	if err != nil {
		return nil, err
	}
	// advance may have changed the character
	char, err := tx.GetCharacterForUpdate(ctx)
	if err != nil {
		return nil, err
	}

	if len(queue) >= domain.MaxQueuedWorks {
		return nil, domain.ErrWorkQueueFull
	}
	if req.Kind != domain.WorkKindSleep {
		if char.IsDead() {
			return nil, domain.ErrCharacterDead
		}
		w.StaminaCost = req.Type.StaminaCost()
	}
	if char.Stamina.Current < w.StaminaCost {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientStamina, w.StaminaCost, char.Stamina.Current)
	}

	origin := char.Position
	start := now
	w.CreatedAt = now
	if n := len(queue); n > 0 {
		tail := &queue[n-1]
		if dest, ok := tail.Destination(); ok {
			origin = dest
		}
		if tail.JobEndTime.After(start) {
			start = tail.JobEndTime
		}
		if !w.CreatedAt.After(tail.CreatedAt) {
			w.CreatedAt = tail.CreatedAt.Add(createdAtStep)
		}
	}
	if dest, ok := w.Destination(); ok {
		w.TravelDuration = travelDuration(origin, dest, s.cfg.TravelSpeed, s.cfg.MaxTravelTime)
	}
	w.TravelEndTime = start.Add(w.TravelDuration)
	w.JobEndTime = w.TravelEndTime.Add(w.JobDuration)

	char.Stamina.Sub(w.StaminaCost)
	if err := tx.UpdateCharacter(ctx, char); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	if err := tx.CreateWork(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to create work: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	res.publish(event.NewWorkCreatedEvent(w))
	s.afterCommit(ctx, res)

	queue = append(queue, *w)
	setCountdowns(queue, now)
	*w = queue[len(queue)-1]

	log.Info(LogMsgWorkCreated, "character_id", characterID, "work_id", w.ID, "kind", w.Kind, "type", w.Type,
		"travel", w.TravelDuration, "job_end", w.JobEndTime)
	return w, nil
}

// resolveOpponent finds the duel target by id, then exact name, then case-folded name
func (s *service) resolveOpponent(ctx context.Context, req CreateRequest) (*domain.Character, error) {
	if req.OpponentID != nil {
		opp, err := s.characters.GetCharacter(ctx, *req.OpponentID)
		if errors.Is(err, domain.ErrCharacterNotFound) {
			return nil, domain.ErrOpponentNotFound
		}
		return opp, err
	}
	if req.OpponentName == "" {
		return nil, fmt.Errorf("%w: no opponent given", domain.ErrInvalidOpponent)
	}
	return findByName(ctx, s.characters, req.OpponentName)
}

func findByName(ctx context.Context, characters repository.Character, name string) (*domain.Character, error) {
	opp, err := characters.GetCharacterByName(ctx, name)
	if err == nil {
		return opp, nil
	}
	if !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, err
	}

	// Oldest character wins when several names fold to the same key
	matches, err := characters.FindCharactersByFoldedName(ctx, domain.FoldName(name))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrOpponentNotFound
	}
	return &matches[0], nil
}

// CancelWork removes a queued work and refunds its stamina. Works that already
// finished by the time of the call are completed instead.
func (s *service) CancelWork(ctx context.Context, characterID, workID uuid.UUID) error {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(characterID.String())
	defer unlock()

	tx, err := s.works.BeginWorkTx(ctx, characterID)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	queue, res, err := s.advance(ctx, tx, s.now())
	if err != nil {
		return err
	}

	var target *domain.Work
	for i := range queue {
		if queue[i].ID == workID {
			target = &queue[i]
			break
		}
	}
	if target == nil {
		// Still commit whatever the advance resolved
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		s.afterCommit(ctx, res)
		return domain.ErrWorkNotFound
	}

	char, err := tx.GetCharacterForUpdate(ctx)
	if err != nil {
		return err
	}
	char.Stamina.Add(target.StaminaCost)

	if err := tx.DeleteWork(ctx, target.ID); err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}
	if err := tx.UpdateCharacter(ctx, char); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	res.publish(event.NewWorkCancelledEvent(target, CancelReasonUser))
	s.afterCommit(ctx, res)

	log.Info(LogMsgWorkCancelled, "character_id", characterID, "work_id", workID, "refund", target.StaminaCost)
	return nil
}

// GetWork returns a single work without advancing the queue
func (s *service) GetWork(ctx context.Context, workID uuid.UUID) (*domain.Work, error) {
	return s.works.GetWork(ctx, workID)
}

// UpdateWork applies a manual correction to a queued work
func (s *service) UpdateWork(ctx context.Context, workID uuid.UUID, patch domain.WorkPatch) (*domain.Work, error) {
	current, err := s.works.GetWork(ctx, workID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(current.CharacterID.String())
	defer unlock()

	tx, err := s.works.BeginWorkTx(ctx, current.CharacterID)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	queue, err := tx.ListWorks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	var w *domain.Work
	for i := range queue {
		if queue[i].ID == workID {
			w = &queue[i]
			break
		}
	}
	if w == nil {
		return nil, domain.ErrWorkNotFound
	}

	if err := patch.Apply(w); err != nil {
		return nil, err
	}
	if err := tx.UpdateWork(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to update work: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgWorkPatched, "work_id", workID)
	return w, nil
}
