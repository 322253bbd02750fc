package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/vaultsiege/internal/client/client"
	"github.com/dmitrijs2005/vaultsiege/internal/client/config"
	pb "github.com/dmitrijs2005/vaultsiege/internal/proto"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

type siegeAPI interface {
	SetAccessToken(token string)
	HasAccessToken() bool
	GetVault(ctx context.Context) (*pb.Vault, error)
	CollectGenerator(ctx context.Context) (*pb.CollectGeneratorResponse, error)
	UpgradeVault(ctx context.Context, kind string) (*pb.UpgradeVaultResponse, error)
	Attack(ctx context.Context, targetID, moveID, cardID string) (*pb.AttackResponse, error)
	RemainingMoves(ctx context.Context) (int64, error)
	ListMoves(ctx context.Context) ([]*pb.Move, error)
	MoveAction(ctx context.Context, action, moveID string) (*pb.Move, error)
	SetArtifact(ctx context.Context, artifactID string, equip bool) ([]string, error)
	ChallengeProgress(ctx context.Context) ([]*pb.ChallengeCounter, error)
	RestoreMoves(ctx context.Context, playerID string, count int64) (int64, error)
	GrantCard(ctx context.Context, playerID, cardID string) (*pb.GrantCardResponse, error)
	Close() error
}

type App struct {
	config *config.Config
	api    siegeAPI
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewSiegeClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	apiClient.SetAccessToken(c.AccessToken)

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	printlnFn("siegectl (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.api.HasAccessToken()
}
