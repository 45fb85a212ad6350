package service

import (
	"errors"
	"strings"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var zeroMoney = decimal.MustNew(0, 2)

var domainErrors = []error{
	domain.ErrDataNotFound,
	domain.ErrValidation,
	domain.ErrBusinessRule,
	domain.ErrInvalidState,
	domain.ErrInsufficientStock,
	domain.ErrConflictingData,
	domain.ErrForbidden,
	domain.ErrInternal,
}

// storeError lets domain errors through and logs anything else, hiding it behind ErrInternal.
func storeError(logger *zap.Logger, msg string, err error) error {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	logger.Error(msg, zap.Error(err))
	return domain.ErrInternal
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
