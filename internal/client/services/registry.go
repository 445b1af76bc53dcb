// Package services contains the application services behind the CLI.
// This file defines the registry service: driver creation and licence
// registration gated by validation.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/driverdesk/internal/common"
	"github.com/dmitrijs2005/driverdesk/internal/drivers"
	"github.com/dmitrijs2005/driverdesk/internal/logging"
	"github.com/dmitrijs2005/driverdesk/internal/validation"
	"github.com/google/uuid"
)

// Validator checks user input before it is stored.
type Validator interface {
	ValidateDriver(f drivers.Fields) error
	ValidateLicense(l drivers.License) error
}

// RegistryService defines the driver registration operations.
//
// Contract:
//   - NewDriverID: identifier shown to the user before the record exists.
//   - CreateDriver: validate all fields, then store. Nothing is stored when
//     validation fails; the error is validation.Errors.
//   - AddLicense: common.ErrNotFound for an unknown driver, validation.Errors
//     for bad licence fields, otherwise appends.
//   - Get / List: read access to the store.
type RegistryService interface {
	NewDriverID() string
	CreateDriver(ctx context.Context, id string, f drivers.Fields) error
	AddLicense(ctx context.Context, driverID string, lic drivers.License) error
	Get(ctx context.Context, id string) (drivers.Driver, error)
	List(ctx context.Context) ([]drivers.Driver, error)
}

type registryService struct {
	store     drivers.Store
	validator Validator
	logger    logging.Logger
	newID     func() string
}

// NewRegistryService constructs a RegistryService over the given store.
func NewRegistryService(store drivers.Store, v Validator, logger logging.Logger) RegistryService {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &registryService{
		store:     store,
		validator: v,
		logger:    logger.With("component", "registry"),
		newID:     uuid.NewString,
	}
}

func (s *registryService) NewDriverID() string {
	return s.newID()
}

func (s *registryService) CreateDriver(ctx context.Context, id string, f drivers.Fields) error {
	if id == "" {
		return fmt.Errorf("driver id is empty: %w", common.ErrValidation)
	}
	if err := s.validator.ValidateDriver(f); err != nil {
		s.logValidation(ctx, "driver rejected", err, "driver_id", id)
		return err
	}
	if err := s.store.CreateDriver(ctx, id, f); err != nil {
		return fmt.Errorf("create driver: %w", err)
	}
	s.logger.Info(ctx, "driver created", "driver_id", id)
	return nil
}

func (s *registryService) AddLicense(ctx context.Context, driverID string, lic drivers.License) error {
	if _, err := s.store.Get(ctx, driverID); err != nil {
		s.logger.Warn(ctx, "license for unknown driver", "driver_id", driverID)
		return err
	}
	if err := s.validator.ValidateLicense(lic); err != nil {
		s.logValidation(ctx, "license rejected", err, "driver_id", driverID)
		return err
	}
	if err := s.store.AppendLicense(ctx, driverID, lic); err != nil {
		return fmt.Errorf("append license: %w", err)
	}
	s.logger.Info(ctx, "license added", "driver_id", driverID, "number", lic.Number)
	return nil
}

func (s *registryService) Get(ctx context.Context, id string) (drivers.Driver, error) {
	return s.store.Get(ctx, id)
}

func (s *registryService) List(ctx context.Context) ([]drivers.Driver, error) {
	return s.store.List(ctx)
}

func (s *registryService) logValidation(ctx context.Context, msg string, err error, args ...any) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		args = append(args, "failed_fields", verrs.Fields())
	}
	s.logger.Info(ctx, msg, args...)
}
