// Package grpc exposes the siege services as vaultsiege.v1.SiegeService.
package grpc

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	pb "github.com/dmitrijs2005/vaultsiege/internal/proto"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/services"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

type vaultSvc interface {
	GetVault(ctx context.Context, playerID string) (*services.VaultStatus, error)
	CollectGenerator(ctx context.Context, playerID string) (*services.VaultStatus, int64, error)
	UpgradeVault(ctx context.Context, playerID string, kind vault.UpgradeKind) (*services.VaultStatus, int64, error)
}

type siegeSvc interface {
	Attack(ctx context.Context, req services.AttackRequest) (*services.AttackResult, error)
	RemainingMoves(ctx context.Context, playerID string) (int64, error)
	RestoreMoves(ctx context.Context, playerID string, n int64) (int64, error)
	ChallengeProgress(ctx context.Context, playerID string) (map[string]int64, error)
}

type masterySvc interface {
	ListMoves(ctx context.Context, playerID string) ([]services.MoveView, error)
	UnlockMove(ctx context.Context, playerID, moveID string) (*services.MoveView, error)
	UpgradeMove(ctx context.Context, playerID, moveID string) (*services.MoveView, error)
	ResetMove(ctx context.Context, playerID, moveID string) (*services.MoveView, error)
	EquipArtifact(ctx context.Context, playerID, artifactID string) ([]string, error)
	UnequipArtifact(ctx context.Context, playerID, artifactID string) ([]string, error)
	GrantCard(ctx context.Context, playerID, cardID string) (*models.PlayerCard, error)
}

type GRPCServer struct {
	pb.UnimplementedSiegeServiceServer
	address   string
	vaults    vaultSvc
	siege     siegeSvc
	mastery   masterySvc
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.SiegeServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, vs vaultSvc, ss siegeSvc, ms masterySvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		vaults:    vs,
		siege:     ss,
		mastery:   ms,
		jwtSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves SiegeService until ctx
// is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.address, err)
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String(),
		"service", pb.SiegeService_ServiceDesc.ServiceName)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterSiegeServiceServer(srv, s)
	return srv
}
