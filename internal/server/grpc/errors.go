package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
)

var (
	invalidArgument = []error{
		common.ErrNoTarget,
		common.ErrNoMoveSelected,
		common.ErrNoApplicableEffect,
		common.ErrSelfAttack,
		common.ErrUnknownMove,
		common.ErrUnknownCard,
		common.ErrUnknownArtifact,
		common.ErrInvalidUpgrade,
		common.ErrInvalidArgument,
	}
	failedPrecondition = []error{
		common.ErrVaultOnCooldown,
		common.ErrQuotaExhausted,
		common.ErrInsufficientFunds,
		common.ErrMoveLocked,
		common.ErrMaxMastery,
		common.ErrCardUnavailable,
		common.ErrNothingToRestore,
	}
)

func matchesAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// toStatus maps a service error onto a gRPC status. Domain errors keep their
// message; anything unexpected is logged and hidden behind "internal error".
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case matchesAny(err, invalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case matchesAny(err, failedPrecondition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
