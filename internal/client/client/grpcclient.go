package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	pb "github.com/dmitrijs2005/vaultsiege/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.SiegeServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken == "" {
		return ErrNoToken
	}
	return invoker(withAccessToken(ctx, s.accessToken), method, req, reply, cc, opts...)
}

func NewSiegeClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewSiegeServiceClient(conn)
	return nil
}

// SetAccessToken replaces the token attached to subsequent calls.
func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) HasAccessToken() bool {
	return s.accessToken != ""
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.FailedPrecondition, codes.NotFound, codes.Aborted:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) GetVault(ctx context.Context) (*pb.Vault, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetVault(ctx, &pb.GetVaultRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetVault(), nil
}

func (s *GRPCClient) CollectGenerator(ctx context.Context) (*pb.CollectGeneratorResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CollectGenerator(ctx, &pb.CollectGeneratorRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) UpgradeVault(ctx context.Context, kind string) (*pb.UpgradeVaultResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpgradeVault(ctx, &pb.UpgradeVaultRequest{Kind: kind})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Attack(ctx context.Context, targetID, moveID, cardID string) (*pb.AttackResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Attack(ctx, &pb.AttackRequest{TargetId: targetID, MoveId: moveID, CardId: cardID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) RemainingMoves(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.RemainingMoves(ctx, &pb.RemainingMovesRequest{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetMovesRemaining(), nil
}

func (s *GRPCClient) ListMoves(ctx context.Context) ([]*pb.Move, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListMoves(ctx, &pb.ListMovesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetMoves(), nil
}

// MoveAction runs one of unlock, upgrade or reset on a move.
func (s *GRPCClient) MoveAction(ctx context.Context, action, moveID string) (*pb.Move, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.MoveRequest{MoveId: moveID}
	var (
		resp *pb.MoveResponse
		err  error
	)
	switch action {
	case "unlock":
		resp, err = s.client.UnlockMove(ctx, req)
	case "upgrade":
		resp, err = s.client.UpgradeMove(ctx, req)
	case "reset":
		resp, err = s.client.ResetMove(ctx, req)
	default:
		return nil, fmt.Errorf("unknown move action %q", action)
	}
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetMove(), nil
}

func (s *GRPCClient) SetArtifact(ctx context.Context, artifactID string, equip bool) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.ArtifactRequest{ArtifactId: artifactID}
	var (
		resp *pb.ArtifactsResponse
		err  error
	)
	if equip {
		resp, err = s.client.EquipArtifact(ctx, req)
	} else {
		resp, err = s.client.UnequipArtifact(ctx, req)
	}
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetEquipped(), nil
}

func (s *GRPCClient) ChallengeProgress(ctx context.Context) ([]*pb.ChallengeCounter, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ChallengeProgress(ctx, &pb.ChallengeProgressRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetProgress(), nil
}

// RestoreMoves refunds spent moves for playerID. The server accepts it only
// with an admin token.
func (s *GRPCClient) RestoreMoves(ctx context.Context, playerID string, count int64) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.RestoreMoves(ctx, &pb.RestoreMovesRequest{PlayerId: playerID, Count: count})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetMovesRemaining(), nil
}

// GrantCard hands a card to playerID. Admin token only.
func (s *GRPCClient) GrantCard(ctx context.Context, playerID, cardID string) (*pb.GrantCardResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GrantCard(ctx, &pb.GrantCardRequest{PlayerId: playerID, CardId: cardID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}
