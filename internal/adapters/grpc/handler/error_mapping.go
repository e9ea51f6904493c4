package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payrun"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/roster"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, payroll.ErrInvalidInput),
		errors.Is(err, roster.ErrInvalidRecord),
		errors.Is(err, roster.ErrDuplicateEmployeeID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, payrun.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
