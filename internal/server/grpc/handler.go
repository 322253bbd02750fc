package grpc

import (
	"context"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/vaultsiege/internal/proto"
	"github.com/dmitrijs2005/vaultsiege/internal/server/services"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

func (s *GRPCServer) GetVault(ctx context.Context, req *pb.GetVaultRequest) (*pb.GetVaultResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.vaults.GetVault(ctx, playerID)
	if err != nil {
		return nil, s.toStatus(ctx, "GetVault", err)
	}

	return &pb.GetVaultResponse{Vault: toAPIVault(st)}, nil
}

func (s *GRPCServer) CollectGenerator(ctx context.Context, req *pb.CollectGeneratorRequest) (*pb.CollectGeneratorResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, collected, err := s.vaults.CollectGenerator(ctx, playerID)
	if err != nil {
		return nil, s.toStatus(ctx, "CollectGenerator", err)
	}

	return &pb.CollectGeneratorResponse{Collected: collected, Vault: toAPIVault(st)}, nil
}

func (s *GRPCServer) UpgradeVault(ctx context.Context, req *pb.UpgradeVaultRequest) (*pb.UpgradeVaultResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, cost, err := s.vaults.UpgradeVault(ctx, playerID, vault.UpgradeKind(req.GetKind()))
	if err != nil {
		return nil, s.toStatus(ctx, "UpgradeVault", err)
	}

	s.logger.Info(ctx, "Vault upgraded", "player_id", playerID, "kind", req.GetKind(), "cost", cost)
	return &pb.UpgradeVaultResponse{Cost: cost, Vault: toAPIVault(st)}, nil
}

func (s *GRPCServer) Attack(ctx context.Context, req *pb.AttackRequest) (*pb.AttackResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.siege.Attack(ctx, services.AttackRequest{
		AttackerID: playerID,
		TargetID:   req.GetTargetId(),
		MoveID:     req.GetMoveId(),
		CardID:     req.GetCardId(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "Attack", err)
	}

	return &pb.AttackResponse{
		Success:            res.Success,
		Message:            res.Message,
		Kind:               string(res.Kind),
		EventId:            res.Event.ID,
		TotalDamage:        res.TotalDamage,
		ShieldDamage:       res.ShieldDamage,
		VaultHealthDamage:  res.VaultHealthDamage,
		PpStolen:           res.PPStolen,
		OvershieldAbsorbed: res.OvershieldAbsorbed,
		XpGained:           res.XPGained,
		MovesRemaining:     res.MovesRemaining,
	}, nil
}

func (s *GRPCServer) RemainingMoves(ctx context.Context, req *pb.RemainingMovesRequest) (*pb.RemainingMovesResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.siege.RemainingMoves(ctx, playerID)
	if err != nil {
		return nil, s.toStatus(ctx, "RemainingMoves", err)
	}

	return &pb.RemainingMovesResponse{MovesRemaining: n}, nil
}

func (s *GRPCServer) RestoreMoves(ctx context.Context, req *pb.RestoreMovesRequest) (*pb.RestoreMovesResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if req.GetPlayerId() == "" {
		return nil, status.Error(codes.InvalidArgument, "player_id is required")
	}

	n, err := s.siege.RestoreMoves(ctx, req.GetPlayerId(), req.GetCount())
	if err != nil {
		return nil, s.toStatus(ctx, "RestoreMoves", err)
	}

	s.logger.Info(ctx, "Moves restored", "player_id", req.GetPlayerId(), "count", req.GetCount(), "remaining", n)
	return &pb.RestoreMovesResponse{MovesRemaining: n}, nil
}

func (s *GRPCServer) ChallengeProgress(ctx context.Context, req *pb.ChallengeProgressRequest) (*pb.ChallengeProgressResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := s.siege.ChallengeProgress(ctx, playerID)
	if err != nil {
		return nil, s.toStatus(ctx, "ChallengeProgress", err)
	}

	counters := make([]*pb.ChallengeCounter, 0, len(progress))
	for eventType, amount := range progress {
		counters = append(counters, &pb.ChallengeCounter{EventType: eventType, Amount: amount})
	}
	sort.Slice(counters, func(i, j int) bool { return counters[i].EventType < counters[j].EventType })

	return &pb.ChallengeProgressResponse{Progress: counters}, nil
}

func (s *GRPCServer) ListMoves(ctx context.Context, req *pb.ListMovesRequest) (*pb.ListMovesResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.mastery.ListMoves(ctx, playerID)
	if err != nil {
		return nil, s.toStatus(ctx, "ListMoves", err)
	}

	moves := make([]*pb.Move, 0, len(views))
	for _, v := range views {
		moves = append(moves, toAPIMove(v))
	}

	return &pb.ListMovesResponse{Moves: moves}, nil
}

func (s *GRPCServer) UnlockMove(ctx context.Context, req *pb.MoveRequest) (*pb.MoveResponse, error) {
	return s.moveCall(ctx, "UnlockMove", req, s.mastery.UnlockMove)
}

func (s *GRPCServer) UpgradeMove(ctx context.Context, req *pb.MoveRequest) (*pb.MoveResponse, error) {
	return s.moveCall(ctx, "UpgradeMove", req, s.mastery.UpgradeMove)
}

func (s *GRPCServer) ResetMove(ctx context.Context, req *pb.MoveRequest) (*pb.MoveResponse, error) {
	return s.moveCall(ctx, "ResetMove", req, s.mastery.ResetMove)
}

func (s *GRPCServer) moveCall(ctx context.Context, method string, req *pb.MoveRequest,
	fn func(ctx context.Context, playerID, moveID string) (*services.MoveView, error)) (*pb.MoveResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	v, err := fn(ctx, playerID, req.GetMoveId())
	if err != nil {
		return nil, s.toStatus(ctx, method, err)
	}

	return &pb.MoveResponse{Move: toAPIMove(*v)}, nil
}

func (s *GRPCServer) EquipArtifact(ctx context.Context, req *pb.ArtifactRequest) (*pb.ArtifactsResponse, error) {
	return s.artifactCall(ctx, "EquipArtifact", req, s.mastery.EquipArtifact)
}

func (s *GRPCServer) UnequipArtifact(ctx context.Context, req *pb.ArtifactRequest) (*pb.ArtifactsResponse, error) {
	return s.artifactCall(ctx, "UnequipArtifact", req, s.mastery.UnequipArtifact)
}

func (s *GRPCServer) artifactCall(ctx context.Context, method string, req *pb.ArtifactRequest,
	fn func(ctx context.Context, playerID, artifactID string) ([]string, error)) (*pb.ArtifactsResponse, error) {
	playerID, err := playerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	equipped, err := fn(ctx, playerID, req.GetArtifactId())
	if err != nil {
		return nil, s.toStatus(ctx, method, err)
	}

	return &pb.ArtifactsResponse{Equipped: equipped}, nil
}

func (s *GRPCServer) GrantCard(ctx context.Context, req *pb.GrantCardRequest) (*pb.GrantCardResponse, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if req.GetPlayerId() == "" {
		return nil, status.Error(codes.InvalidArgument, "player_id is required")
	}

	c, err := s.mastery.GrantCard(ctx, req.GetPlayerId(), req.GetCardId())
	if err != nil {
		return nil, s.toStatus(ctx, "GrantCard", err)
	}

	s.logger.Info(ctx, "Card granted", "player_id", req.GetPlayerId(), "card_id", c.CardID)
	return &pb.GrantCardResponse{CardId: c.CardID, Unlocked: c.Unlocked, UsesRemaining: c.UsesRemaining}, nil
}

func toAPIVault(st *services.VaultStatus) *pb.Vault {
	v := st.Vault
	out := &pb.Vault{
		PlayerId:                 v.PlayerID,
		Capacity:                 v.Capacity,
		CurrentPp:                v.CurrentPP,
		VaultHealth:              v.VaultHealth,
		MaxVaultHealth:           v.MaxVaultHealth,
		ShieldStrength:           v.ShieldStrength,
		MaxShieldStrength:        v.MaxShieldStrength,
		Overshield:               v.Overshield,
		GeneratorLevel:           v.GeneratorLevel,
		GeneratorPendingPp:       v.GeneratorPendingPP,
		GeneratorPpPerDay:        st.Rates.PPPerDay,
		GeneratorShieldsPerDay:   st.Rates.ShieldsPerDay,
		MovesRemaining:           st.MovesRemaining,
		MaxMovesPerDay:           v.MaxMovesPerDay,
		CooldownRemainingSeconds: int64(st.CooldownRemaining.Seconds()),
		CapacityUpgrades:         v.CapacityUpgrades,
		ShieldUpgrades:           v.ShieldUpgrades,
		GeneratorUpgrades:        v.GeneratorUpgrades,
		Balance:                  st.Balance,
		Xp:                       st.XP,
	}
	if v.VaultHealthCooldown != nil {
		out.CooldownSince = timestamppb.New(*v.VaultHealthCooldown)
	}
	return out
}

func toAPIMove(v services.MoveView) *pb.Move {
	return &pb.Move{
		Id:           v.Move.ID,
		Name:         v.Move.Name,
		Category:     string(v.Move.Category),
		Type:         string(v.Move.Type),
		Element:      v.Move.Element,
		Level:        int32(v.Move.Level),
		Unlocked:     v.Unlocked,
		MasteryLevel: int32(v.MasteryLevel),
		Stats: &pb.MoveStats{
			Damage:         v.Stats.Damage,
			PpSteal:        v.Stats.PPSteal,
			ShieldBoost:    v.Stats.ShieldBoost,
			Healing:        v.Stats.Healing,
			DebuffStrength: v.Stats.DebuffStrength,
			BuffStrength:   v.Stats.BuffStrength,
		},
		NextCost:   v.NextCost,
		Multiplier: v.Multiplier,
	}
}
