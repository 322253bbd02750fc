package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/server/auth"
)

type ctxKey string

const (
	PlayerIDKey ctxKey = "playerID"
	AdminKey    ctxKey = "admin"
)

// accessTokenInterceptor authenticates every SiegeService call and stores
// the token's player and admin flag in the context.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, PlayerIDKey, claims.PlayerID)
	ctx = context.WithValue(ctx, AdminKey, claims.Admin)

	return handler(ctx, req)
}

func playerIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(PlayerIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return id, nil
}

// requireAdmin guards operator-only calls such as move restores and card
// grants.
func requireAdmin(ctx context.Context) error {
	if _, err := playerIDFromContext(ctx); err != nil {
		return err
	}
	if admin, _ := ctx.Value(AdminKey).(bool); !admin {
		return status.Error(codes.PermissionDenied, common.ErrForbidden.Error())
	}
	return nil
}
