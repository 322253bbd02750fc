package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	"github.com/dmitrijs2005/vaultsiege/internal/server/catalog"
	"github.com/dmitrijs2005/vaultsiege/internal/server/mastery"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/repomanager"
)

// MoveView is a catalog move merged with the player's progress.
type MoveView struct {
	Move         catalog.Move
	Unlocked     bool
	MasteryLevel int
	Stats        models.MoveStats
	// NextCost is the price of the next mastery level, 0 at max.
	NextCost int64
	// Multiplier is the draw of the last upgrade, set only by UpgradeMove.
	Multiplier float64
}

// MasteryService manages move unlocks and mastery upgrades, plus the
// artifact and action-card loadout that feeds attacks.
type MasteryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	env         *Env
	log         logging.Logger
}

func NewMasteryService(db *sql.DB, m repomanager.RepositoryManager, env *Env) *MasteryService {
	return &MasteryService{
		db:          db,
		repomanager: m,
		env:         env,
		log:         env.Logger.With("module", "mastery_service"),
	}
}

// ListMoves returns every catalog move with the player's overlay applied.
func (s *MasteryService) ListMoves(ctx context.Context, playerID string) ([]MoveView, error) {
	stored, err := s.repomanager.Moves(s.db).List(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("error listing moves: %w", err)
	}
	byID := make(map[string]models.PlayerMove, len(stored))
	for _, m := range stored {
		byID[m.MoveID] = m
	}

	defs := s.env.Catalog.Moves()
	out := make([]MoveView, 0, len(defs))
	for _, def := range defs {
		pm, ok := byID[def.ID]
		if !ok {
			pm = mastery.Reset(playerID, def, false)
		}
		out = append(out, s.view(def, pm))
	}
	return out, nil
}

// UnlockMove makes a move usable. Existing mastery is kept.
func (s *MasteryService) UnlockMove(ctx context.Context, playerID, moveID string) (*MoveView, error) {
	def, ok := s.env.Catalog.Move(moveID)
	if !ok {
		return nil, common.ErrUnknownMove
	}

	repo := s.repomanager.Moves(s.db)
	pm, err := repo.Get(ctx, playerID, moveID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		reset := mastery.Reset(playerID, def, true)
		if err := repo.Save(ctx, &reset); err != nil {
			return nil, fmt.Errorf("error saving move: %w", err)
		}
		pm = &reset
	case err != nil:
		return nil, fmt.Errorf("error loading move: %w", err)
	case !pm.Unlocked:
		if err := repo.Unlock(ctx, playerID, moveID); err != nil {
			return nil, fmt.Errorf("error unlocking move: %w", err)
		}
		pm.Unlocked = true
	}

	v := s.view(def, *pm)
	return &v, nil
}

// UpgradeMove pays for and applies one mastery level. The drawn multiplier
// compounds on the current stats. The level is written conditionally on the
// level that was read, so two racing upgrades cannot both charge for the
// same level; the loser retries against fresh state.
func (s *MasteryService) UpgradeMove(ctx context.Context, playerID, moveID string) (*MoveView, error) {
	ctx, span := tracer.Start(ctx, "MasteryService.UpgradeMove")
	defer span.End()

	def, ok := s.env.Catalog.Move(moveID)
	if !ok {
		return nil, common.ErrUnknownMove
	}

	var (
		pm   *models.PlayerMove
		mult float64
	)
	err := retryOnConflict(ctx, func() error {
		return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			var err error
			pm, err = s.playerMove(ctx, tx, playerID, def)
			if err != nil {
				return err
			}
			if pm.MasteryLevel >= models.MaxMastery {
				return common.ErrMaxMastery
			}

			cost := mastery.UpgradeCost(s.env.MasteryBaseCost, pm.MasteryLevel+1)
			profiles := s.repomanager.Profiles(tx)
			p, err := profiles.Get(ctx, playerID)
			if err != nil {
				return err
			}
			if p.Balance < cost {
				return common.ErrInsufficientFunds
			}

			from := pm.MasteryLevel
			pm.Stats, mult, err = mastery.Upgrade(pm.Stats, from, s.env.Rng)
			if err != nil {
				return err
			}
			pm.MasteryLevel++
			if err := s.repomanager.Moves(tx).UpdateLevel(ctx, pm, from); err != nil {
				return fmt.Errorf("error saving move: %w", err)
			}

			p, err = profiles.Debit(ctx, playerID, cost)
			if err != nil {
				return err
			}

			// keep the vault copy of the balance aligned with the debit
			return s.repomanager.Vaults(tx).SyncCurrency(ctx, playerID, p.Balance)
		})
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if pm.MasteryLevel == models.MaxMastery {
		s.notify(ctx, notify.Notification{
			Type:     notify.TypeMilestone,
			PlayerID: playerID,
			Payload:  map[string]any{"move": moveID, "mastery": pm.MasteryLevel},
		})
	}

	v := s.view(def, *pm)
	v.Multiplier = mult
	return &v, nil
}

// ResetMove returns a move to mastery 1 with the catalog base stats. The
// unlock state is kept and nothing is refunded.
func (s *MasteryService) ResetMove(ctx context.Context, playerID, moveID string) (*MoveView, error) {
	def, ok := s.env.Catalog.Move(moveID)
	if !ok {
		return nil, common.ErrUnknownMove
	}
	pm, err := s.playerMove(ctx, s.db, playerID, def)
	if err != nil {
		return nil, err
	}
	reset := mastery.Reset(playerID, def, pm.Unlocked)
	if err := s.repomanager.Moves(s.db).Save(ctx, &reset); err != nil {
		return nil, fmt.Errorf("error saving move: %w", err)
	}
	v := s.view(def, reset)
	return &v, nil
}

// EquipArtifact adds an artifact to the player's loadout.
func (s *MasteryService) EquipArtifact(ctx context.Context, playerID, artifactID string) ([]string, error) {
	if _, ok := s.env.Catalog.Artifact(artifactID); !ok {
		return nil, common.ErrUnknownArtifact
	}
	repo := s.repomanager.Artifacts(s.db)
	if err := repo.Equip(ctx, playerID, artifactID); err != nil {
		return nil, fmt.Errorf("error equipping artifact: %w", err)
	}
	return repo.Equipped(ctx, playerID)
}

// UnequipArtifact removes an artifact from the loadout.
func (s *MasteryService) UnequipArtifact(ctx context.Context, playerID, artifactID string) ([]string, error) {
	repo := s.repomanager.Artifacts(s.db)
	if err := repo.Unequip(ctx, playerID, artifactID); err != nil {
		return nil, fmt.Errorf("error unequipping artifact: %w", err)
	}
	return repo.Equipped(ctx, playerID)
}

// GrantCard unlocks an action card and adds its per-grant uses.
func (s *MasteryService) GrantCard(ctx context.Context, playerID, cardID string) (*models.PlayerCard, error) {
	def, ok := s.env.Catalog.Card(cardID)
	if !ok {
		return nil, common.ErrUnknownCard
	}
	repo := s.repomanager.Cards(s.db)
	if err := repo.Grant(ctx, playerID, cardID, def.UsesPerGrant); err != nil {
		return nil, fmt.Errorf("error granting card: %w", err)
	}
	return repo.Get(ctx, playerID, cardID)
}

// playerMove loads the overlay, synthesising it for moves that start
// unlocked. Locked moves cannot be upgraded or reset.
func (s *MasteryService) playerMove(ctx context.Context, db dbx.DBTX, playerID string, def catalog.Move) (*models.PlayerMove, error) {
	pm, err := s.repomanager.Moves(db).Get(ctx, playerID, def.ID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		if !def.StartsUnlocked {
			return nil, common.ErrMoveLocked
		}
		reset := mastery.Reset(playerID, def, true)
		return &reset, nil
	case err != nil:
		return nil, fmt.Errorf("error loading move: %w", err)
	case !pm.Unlocked && !def.StartsUnlocked:
		return nil, common.ErrMoveLocked
	}
	return pm, nil
}

func (s *MasteryService) view(def catalog.Move, pm models.PlayerMove) MoveView {
	v := MoveView{
		Move:         def,
		Unlocked:     pm.Unlocked || def.StartsUnlocked,
		MasteryLevel: pm.MasteryLevel,
		Stats:        pm.Stats,
	}
	if pm.MasteryLevel < models.MaxMastery {
		v.NextCost = mastery.UpgradeCost(s.env.MasteryBaseCost, pm.MasteryLevel+1)
	}
	return v
}

func (s *MasteryService) notify(ctx context.Context, n notify.Notification) {
	n.At = s.env.Clock.Now()
	background(ctx, func(ctx context.Context) {
		if err := s.env.Notifier.Notify(ctx, n); err != nil {
			s.log.Warn(ctx, "notification dropped", "type", n.Type, "player", n.PlayerID, "error", err)
		}
	})
}
