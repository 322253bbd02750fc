package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	pb "github.com/dmitrijs2005/vaultsiege/internal/proto"
)

// captureOutput redirects printlnFn for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	out := &[]string{}
	printlnFn = func(a ...any) (int, error) {
		*out = append(*out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	return out
}

type fakeAPI struct {
	token string

	vault     *pb.Vault
	attack    *pb.AttackResponse
	moves     []*pb.Move
	equipped  []string
	remaining int64
	progress  []*pb.ChallengeCounter
	err       error

	gotTarget, gotMove, gotCard string
	gotAction, gotID            string
	gotEquip                    bool
	gotKind                     string
	gotPlayer                   string
	gotCount                    int64
	closed                      bool
}

func (f *fakeAPI) SetAccessToken(token string) { f.token = token }
func (f *fakeAPI) HasAccessToken() bool        { return f.token != "" }
func (f *fakeAPI) Close() error                { f.closed = true; return nil }

func (f *fakeAPI) GetVault(ctx context.Context) (*pb.Vault, error) {
	return f.vault, f.err
}

func (f *fakeAPI) CollectGenerator(ctx context.Context) (*pb.CollectGeneratorResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.CollectGeneratorResponse{Collected: 50, Vault: f.vault}, nil
}

func (f *fakeAPI) UpgradeVault(ctx context.Context, kind string) (*pb.UpgradeVaultResponse, error) {
	f.gotKind = kind
	if f.err != nil {
		return nil, f.err
	}
	return &pb.UpgradeVaultResponse{Cost: 200, Vault: f.vault}, nil
}

func (f *fakeAPI) Attack(ctx context.Context, targetID, moveID, cardID string) (*pb.AttackResponse, error) {
	f.gotTarget, f.gotMove, f.gotCard = targetID, moveID, cardID
	return f.attack, f.err
}

func (f *fakeAPI) RemainingMoves(ctx context.Context) (int64, error) {
	return f.remaining, f.err
}

func (f *fakeAPI) ListMoves(ctx context.Context) ([]*pb.Move, error) {
	return f.moves, f.err
}

func (f *fakeAPI) MoveAction(ctx context.Context, action, moveID string) (*pb.Move, error) {
	f.gotAction, f.gotID = action, moveID
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Move{Id: moveID, Unlocked: true, MasteryLevel: 2, NextCost: 200}, nil
}

func (f *fakeAPI) SetArtifact(ctx context.Context, artifactID string, equip bool) ([]string, error) {
	f.gotID, f.gotEquip = artifactID, equip
	return f.equipped, f.err
}

func (f *fakeAPI) ChallengeProgress(ctx context.Context) ([]*pb.ChallengeCounter, error) {
	return f.progress, f.err
}

func (f *fakeAPI) RestoreMoves(ctx context.Context, playerID string, count int64) (int64, error) {
	f.gotPlayer, f.gotCount = playerID, count
	return f.remaining, f.err
}

func (f *fakeAPI) GrantCard(ctx context.Context, playerID, cardID string) (*pb.GrantCardResponse, error) {
	f.gotPlayer, f.gotID = playerID, cardID
	if f.err != nil {
		return nil, f.err
	}
	return &pb.GrantCardResponse{CardId: cardID, Unlocked: true, UsesRemaining: 1}, nil
}
