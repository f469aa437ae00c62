package service

import (
	"context"
	"fmt"
	"time"

	"github.com/salesdesk/salesdesk/internal/domain"
	"github.com/salesdesk/salesdesk/pkg/logger"
)

type AccountService struct {
	repo     domain.AccountRepository
	location *time.Location
	logger   logger.Logger
}

func NewAccountService(repo domain.AccountRepository, location *time.Location, logger logger.Logger) *AccountService {
	return &AccountService{
		repo:     repo,
		location: location,
		logger:   logger,
	}
}

func (s *AccountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	filter.CreatedFrom, filter.CreatedBefore = filter.Range.Bounds(s.location)

	accounts, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithField("referenceid", filter.ReferenceID).Error(fmt.Sprintf("Failed to list accounts: %v", err))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isClientError(err) {
			return nil, err
		}
		s.logger.WithField("account_id", id).Error(fmt.Sprintf("Failed to get account: %v", err))
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, account); err != nil {
		s.logger.WithField("referenceid", account.ReferenceID).Error(fmt.Sprintf("Failed to create account: %v", err))
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, account *domain.Account) error {
	if account.ID <= 0 {
		return domain.NewValidationError("id is required")
	}

	if err := s.repo.Update(ctx, account); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("account_id", account.ID).Error(fmt.Sprintf("Failed to update account: %v", err))
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// UpdateAccountStatus sets the status of one account. Repeating it with the same status succeeds.
func (s *AccountService) UpdateAccountStatus(ctx context.Context, id int64, status string) error {
	if !domain.IsValidAccountStatus(status) {
		return domain.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithFields(map[string]interface{}{
			"account_id": id,
			"status":     status,
		}).Error(fmt.Sprintf("Failed to update account status: %v", err))
		return fmt.Errorf("failed to update account status: %w", err)
	}
	return nil
}

func (s *AccountService) BulkUpdateAccounts(ctx context.Context, ids domain.IDList, changes domain.AccountChanges) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids is required")
	}
	if changes.IsEmpty() {
		return 0, domain.NewValidationError("nothing to update")
	}

	updated, err := s.repo.BulkUpdate(ctx, ids, changes)
	if err != nil {
		s.logger.WithField("count", len(ids)).Error(fmt.Sprintf("Failed to bulk update accounts: %v", err))
		return 0, fmt.Errorf("failed to bulk update accounts: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"requested": len(ids),
		"updated":   updated,
	}).Info("Accounts updated")
	return updated, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isClientError(err) {
			return err
		}
		s.logger.WithField("account_id", id).Error(fmt.Sprintf("Failed to delete account: %v", err))
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
