package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ClientService struct {
	repo   port.ClientStore
	now    func() time.Time
	logger *zap.Logger
}

func NewClientService(repo port.ClientStore, logger *zap.Logger) (*ClientService, error) {
	return &ClientService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}, nil
}

func validateClient(client *domain.Client) error {
	client.Name = strings.TrimSpace(client.Name)
	client.Email = strings.TrimSpace(client.Email)
	if client.Name == "" {
		return domain.Validationf("name is required")
	}
	if _, err := mail.ParseAddress(client.Email); err != nil {
		return domain.Validationf("email is not valid")
	}
	return nil
}

func (s *ClientService) CreateClient(ctx context.Context, actor domain.Actor, client *domain.Client) (*domain.Client, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}

	client.Tier = domain.TierBasic
	client.TotalOrders = 0
	client.TotalSpent = zeroMoney
	client.FirstOrderAt = nil
	client.LastOrderAt = nil

	created, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return nil, storeError(s.logger, "Create client", err)
	}
	return created, nil
}

func (s *ClientService) GetClient(ctx context.Context, actor domain.Actor, clientID uint64) (*domain.Client, error) {
	if !actor.CanAccessClient(clientID) {
		return nil, domain.ErrForbidden
	}
	client, err := s.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, storeError(s.logger, "Get client", err)
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, actor domain.Actor) ([]*domain.Client, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	list, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, storeError(s.logger, "List clients", err)
	}
	return list, nil
}

// UpdateClient changes contact fields only; ledger fields keep their stored values.
func (s *ClientService) UpdateClient(ctx context.Context, actor domain.Actor, client *domain.Client) (*domain.Client, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateClient(client); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetClient(ctx, client.ID)
	if err != nil {
		return nil, storeError(s.logger, "Get client", err)
	}
	existing.Name = client.Name
	existing.Email = client.Email

	saved, err := s.repo.SaveClient(ctx, existing)
	if err != nil {
		return nil, storeError(s.logger, "Save client", err)
	}
	return saved, nil
}

// DeleteClient removes a client that never ordered. Orders are kept forever, so a client with
// orders stays.
func (s *ClientService) DeleteClient(ctx context.Context, actor domain.Actor, clientID uint64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	err := s.repo.DeleteClient(ctx, clientID)
	if err != nil {
		return storeError(s.logger, "Delete client", err)
	}
	s.logger.Info("Client deleted", zap.Uint64("client", clientID))
	return nil
}

// RecordConfirmedOrder updates the client's running totals and tier. Callers run it inside the
// confirming transaction.
func (s *ClientService) RecordConfirmedOrder(ctx context.Context, clientID uint64, amount decimal.Decimal) (*domain.Client, error) {
	client, err := s.repo.GetClientForUpdate(ctx, clientID)
	if err != nil {
		return nil, storeError(s.logger, "Get client", err)
	}

	previous := client.Tier
	if err := client.RecordOrder(amount, s.now()); err != nil {
		s.logger.Error("Record order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	saved, err := s.repo.SaveClient(ctx, client)
	if err != nil {
		return nil, storeError(s.logger, "Save client", err)
	}

	if previous != saved.Tier {
		s.logger.Info("Client tier changed",
			zap.Uint64("client", clientID),
			zap.String("from", string(previous)),
			zap.String("to", string(saved.Tier)))
	}
	return saved, nil
}
