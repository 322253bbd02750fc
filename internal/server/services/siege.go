package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	"github.com/dmitrijs2005/vaultsiege/internal/server/catalog"
	"github.com/dmitrijs2005/vaultsiege/internal/server/combat"
	"github.com/dmitrijs2005/vaultsiege/internal/server/mastery"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

// Challenge event types reported to the progress sink.
const (
	ChallengeSiegeAttack = "siege_attack"
	ChallengePPStolen    = "pp_stolen"
	ChallengeShieldBreak = "shield_break"
	ChallengeDefend      = "siege_defend"
)

// AttackRequest selects a move and/or an action card. TargetID is ignored
// for self-targeted selections.
type AttackRequest struct {
	AttackerID string
	TargetID   string
	MoveID     string
	CardID     string
}

// AttackResult is what the caller sees of a resolved action.
type AttackResult struct {
	Success            bool
	Message            string
	Kind               models.EventKind
	TotalDamage        int64
	ShieldDamage       int64
	VaultHealthDamage  int64
	PPStolen           int64
	OvershieldAbsorbed bool
	XPGained           int64
	MovesRemaining     int64
	Attacker           *models.Vault
	Event              models.AttackEvent
}

// SiegeService resolves attacks and owns the event-sourced daily quota.
type SiegeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	env         *Env
	progress    notify.ProgressSink
	log         logging.Logger
}

// NewSiegeService constructs a SiegeService. Challenge progress is recorded
// through the challenges repository.
func NewSiegeService(db *sql.DB, m repomanager.RepositoryManager, env *Env) *SiegeService {
	return &SiegeService{
		db:          db,
		repomanager: m,
		env:         env,
		progress:    m.Challenges(db),
		log:         env.Logger.With("module", "siege_service"),
	}
}

// Attack resolves one move or card use. The quota is replayed from the event
// log, both vaults are written under their version tokens and the event is
// appended in the same transaction, so a lost race rolls back completely and
// is retried against fresh state. Notifications and challenge progress run
// in the background after commit and never fail the attack.
func (s *SiegeService) Attack(ctx context.Context, req AttackRequest) (*AttackResult, error) {
	ctx, span := tracer.Start(ctx, "SiegeService.Attack", trace.WithAttributes(
		attribute.String("siege.attacker", req.AttackerID),
		attribute.String("siege.target", req.TargetID),
		attribute.String("siege.move", req.MoveID),
		attribute.String("siege.card", req.CardID),
	))
	defer span.End()

	res, out, err := s.attack(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64("siege.pp_stolen", res.PPStolen),
		attribute.Bool("siege.absorbed", res.OvershieldAbsorbed),
	)

	background(ctx, func(ctx context.Context) { s.afterAttack(ctx, req, out) })
	return res, nil
}

func (s *SiegeService) attack(ctx context.Context, req AttackRequest) (*AttackResult, combat.Outcome, error) {
	if req.MoveID == "" && req.CardID == "" {
		return nil, combat.Outcome{}, common.ErrNoMoveSelected
	}

	move, err := s.selectMove(ctx, req.AttackerID, req.MoveID)
	if err != nil {
		return nil, combat.Outcome{}, err
	}
	card, err := s.selectCard(ctx, req.AttackerID, req.CardID)
	if err != nil {
		return nil, combat.Outcome{}, err
	}
	equipped, err := s.repomanager.Artifacts(s.db).Equipped(ctx, req.AttackerID)
	if err != nil {
		return nil, combat.Outcome{}, fmt.Errorf("error loading artifacts: %w", err)
	}

	var (
		res *AttackResult
		out combat.Outcome
	)
	err = retryOnConflict(ctx, func() error {
		now := s.env.Clock.Now()
		return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			remaining, err := remainingMoves(ctx, s.repomanager.Events(tx), s.env, req.AttackerID, now)
			if err != nil {
				return err
			}
			if remaining <= 0 {
				return common.ErrQuotaExhausted
			}

			attacker, err := loadVault(ctx, s.repomanager, tx, s.env, req.AttackerID, now, true)
			if err != nil {
				return err
			}

			in := combat.Input{
				Attacker: attacker.vault,
				Move:     move,
				Card:     card,
				Equipped: equipped,
				Catalog:  s.env.Catalog,
				Rng:      s.env.Rng,
				Now:      now,
				Cooldown: s.env.Params.CooldownDuration,
			}
			if req.TargetID != "" && offensive(move, card) {
				target, err := loadVault(ctx, s.repomanager, tx, s.env, req.TargetID, now, false)
				if err != nil {
					return fmt.Errorf("error loading target vault: %w", err)
				}
				in.Target = target.vault
			}

			out, err = combat.Resolve(in)
			if err != nil {
				return err
			}

			if out.PPStolen > 0 || out.XP > 0 {
				p, err := s.repomanager.Profiles(tx).Credit(ctx, req.AttackerID, out.PPStolen, out.XP)
				if err != nil {
					return fmt.Errorf("error crediting profile: %w", err)
				}
				vault.ApplyCurrency(out.Attacker, p.Balance)
			}
			syncQuota(out.Attacker, remaining-1, s.env.Params.MaxMovesPerDay)
			if err := s.repomanager.Vaults(tx).Update(ctx, out.Attacker); err != nil {
				return err
			}
			if out.Kind == models.EventAttack && out.Target != nil {
				if err := s.repomanager.Vaults(tx).Update(ctx, out.Target); err != nil {
					return err
				}
			}

			if card != nil {
				if err := s.repomanager.Cards(tx).ConsumeUse(ctx, req.AttackerID, card.ID); err != nil {
					return err
				}
			}

			ev := out.Event(in)
			if err := s.repomanager.Events(tx).Append(ctx, &ev); err != nil {
				return fmt.Errorf("error appending event: %w", err)
			}

			res = &AttackResult{
				Success:            true,
				Message:            out.Message(),
				Kind:               out.Kind,
				TotalDamage:        out.TotalDamage,
				ShieldDamage:       out.ShieldDamage,
				VaultHealthDamage:  out.VaultHealthDamage,
				PPStolen:           out.PPStolen,
				OvershieldAbsorbed: out.OvershieldAbsorbed,
				XPGained:           out.XP,
				MovesRemaining:     remaining - 1,
				Attacker:           out.Attacker,
				Event:              ev,
			}
			return nil
		})
	})
	if err != nil {
		return nil, combat.Outcome{}, err
	}
	return res, out, nil
}

// offensive reports whether the selection needs a target vault.
func offensive(move *combat.MoveSelection, card *catalog.Card) bool {
	if move != nil {
		return move.Def.Type == models.MoveAttack
	}
	return card != nil && (card.Kind == models.CardShieldBreach || card.Kind == models.CardVaultDamage)
}

// selectMove resolves the catalog move and the attacker's overlay. Moves that
// start unlocked need no stored row.
func (s *SiegeService) selectMove(ctx context.Context, playerID, moveID string) (*combat.MoveSelection, error) {
	if moveID == "" {
		return nil, nil
	}
	def, ok := s.env.Catalog.Move(moveID)
	if !ok {
		return nil, common.ErrUnknownMove
	}
	pm, err := s.repomanager.Moves(s.db).Get(ctx, playerID, moveID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		if !def.StartsUnlocked {
			return nil, common.ErrMoveLocked
		}
		reset := mastery.Reset(playerID, def, true)
		pm = &reset
	case err != nil:
		return nil, fmt.Errorf("error loading move: %w", err)
	case !pm.Unlocked && !def.StartsUnlocked:
		return nil, common.ErrMoveLocked
	}
	return &combat.MoveSelection{Def: def, Player: *pm}, nil
}

func (s *SiegeService) selectCard(ctx context.Context, playerID, cardID string) (*catalog.Card, error) {
	if cardID == "" {
		return nil, nil
	}
	def, ok := s.env.Catalog.Card(cardID)
	if !ok {
		return nil, common.ErrUnknownCard
	}
	pc, err := s.repomanager.Cards(s.db).Get(ctx, playerID, cardID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return nil, common.ErrCardUnavailable
	case err != nil:
		return nil, fmt.Errorf("error loading card: %w", err)
	case !pc.Unlocked || pc.UsesRemaining <= 0:
		return nil, common.ErrCardUnavailable
	}
	return &def, nil
}

// afterAttack runs the best-effort side effects of a committed action.
func (s *SiegeService) afterAttack(ctx context.Context, req AttackRequest, out combat.Outcome) {
	now := s.env.Clock.Now()
	day := s.env.Day.DayStart(now)

	if out.Kind == models.EventDefend {
		s.increment(ctx, req.AttackerID, day, ChallengeDefend, 1)
		return
	}

	s.increment(ctx, req.AttackerID, day, ChallengeSiegeAttack, 1)
	if out.PPStolen > 0 {
		s.increment(ctx, req.AttackerID, day, ChallengePPStolen, out.PPStolen)
		s.notify(ctx, notify.Notification{
			Type:     notify.TypeCurrency,
			PlayerID: req.AttackerID,
			Payload:  map[string]any{"source": "siege", "amount": out.PPStolen},
		})
	}
	if out.ShieldBroken {
		s.increment(ctx, req.AttackerID, day, ChallengeShieldBreak, 1)
	}

	if out.Target == nil {
		return
	}
	target := out.Target.PlayerID
	s.notify(ctx, notify.Notification{
		Type:     notify.TypeAttacked,
		PlayerID: target,
		Payload: map[string]any{
			"attacker":            req.AttackerID,
			"shield_damage":       out.ShieldDamage,
			"vault_health_damage": out.VaultHealthDamage,
			"absorbed":            out.OvershieldAbsorbed,
		},
	})
	if out.ShieldBroken {
		s.notify(ctx, notify.Notification{Type: notify.TypeShieldDown, PlayerID: target})
	}
	if out.CooldownStarted {
		s.notify(ctx, notify.Notification{
			Type:     notify.TypeCooldown,
			PlayerID: target,
			Payload:  map[string]any{"until": now.Add(s.env.Params.CooldownDuration)},
		})
	}
}

func (s *SiegeService) increment(ctx context.Context, playerID string, day time.Time, eventType string, amount int64) {
	if s.progress == nil {
		return
	}
	if err := s.progress.Increment(ctx, playerID, day, eventType, amount); err != nil {
		s.log.Warn(ctx, "challenge progress dropped", "player", playerID, "event", eventType, "error", err)
	}
}

func (s *SiegeService) notify(ctx context.Context, n notify.Notification) {
	n.At = s.env.Clock.Now()
	if err := s.env.Notifier.Notify(ctx, n); err != nil {
		s.log.Warn(ctx, "notification dropped", "type", n.Type, "player", n.PlayerID, "error", err)
	}
}

// RemainingMoves replays the player's events for the current game day.
func (s *SiegeService) RemainingMoves(ctx context.Context, playerID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "SiegeService.RemainingMoves")
	defer span.End()

	return remainingMoves(ctx, s.repomanager.Events(s.db), s.env, playerID, s.env.Clock.Now())
}

// RestoreMoves refunds up to n moves the player has spent today and returns
// the new remaining count. Only spent moves are refunded, so the quota never
// exceeds the daily limit.
func (s *SiegeService) RestoreMoves(ctx context.Context, playerID string, n int64) (int64, error) {
	ctx, span := tracer.Start(ctx, "SiegeService.RestoreMoves")
	defer span.End()

	if n <= 0 {
		return 0, fmt.Errorf("%w: restore count must be positive", common.ErrInvalidArgument)
	}
	now := s.env.Clock.Now()

	var remaining int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Events(tx)
		before, err := remainingMoves(ctx, repo, s.env, playerID, now)
		if err != nil {
			return err
		}
		spent := s.env.Params.MaxMovesPerDay - before
		if spent <= 0 {
			return common.ErrNothingToRestore
		}
		for i := int64(0); i < min(n, spent); i++ {
			ev := models.AttackEvent{Kind: models.EventRestore, AttackerID: playerID, At: now}
			if err := repo.Append(ctx, &ev); err != nil {
				return fmt.Errorf("error appending event: %w", err)
			}
		}
		remaining, err = remainingMoves(ctx, repo, s.env, playerID, now)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return remaining, nil
}

// ChallengeProgress returns today's challenge counters for the player.
func (s *SiegeService) ChallengeProgress(ctx context.Context, playerID string) (map[string]int64, error) {
	day := s.env.Day.DayStart(s.env.Clock.Now())
	return s.repomanager.Challenges(s.db).Progress(ctx, playerID, day)
}
