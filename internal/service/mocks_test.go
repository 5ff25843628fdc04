package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clonestore/internal/model"
	"clonestore/internal/repo"
)

type mockPlasmidRepo struct{ mock.Mock }

func (m *mockPlasmidRepo) Insert(ctx context.Context, p *model.Plasmid) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *mockPlasmidRepo) Get(ctx context.Context, id string) (*model.Plasmid, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Plasmid); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlasmidRepo) Archive(ctx context.Context, id string, flag bool) error {
	return m.Called(ctx, id, flag).Error(0)
}

var _ repo.PlasmidRepository = (*mockPlasmidRepo)(nil)

type mockOrganismRepo struct{ mock.Mock }

func (m *mockOrganismRepo) Insert(ctx context.Context, o *model.Microorganism) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}

func (m *mockOrganismRepo) Get(ctx context.Context, id string) (*model.Microorganism, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*model.Microorganism); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrganismRepo) Archive(ctx context.Context, id string, flag bool) error {
	return m.Called(ctx, id, flag).Error(0)
}

func (m *mockOrganismRepo) UpdateStorageLocation(ctx context.Context, id, newLocation string) error {
	return m.Called(ctx, id, newLocation).Error(0)
}

var _ repo.MicroorganismRepository = (*mockOrganismRepo)(nil)

type mockGenericRepo struct{ mock.Mock }

func (m *mockGenericRepo) Insert(ctx context.Context, g *model.GenericObject) (string, error) {
	args := m.Called(ctx, g)
	return args.String(0), args.Error(1)
}

func (m *mockGenericRepo) Get(ctx context.Context, id string) (*model.GenericObject, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*model.GenericObject); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGenericRepo) Archive(ctx context.Context, id string, flag bool) error {
	return m.Called(ctx, id, flag).Error(0)
}

func (m *mockGenericRepo) UpdateStorageLocation(ctx context.Context, id, newLocation string) error {
	return m.Called(ctx, id, newLocation).Error(0)
}

var _ repo.GenericObjectRepository = (*mockGenericRepo)(nil)

type mockStorageRepo struct{ mock.Mock }

func (m *mockStorageRepo) Occupy(ctx context.Context, location, plasmidID, host string) error {
	return m.Called(ctx, location, plasmidID, host).Error(0)
}

func (m *mockStorageRepo) Vacate(ctx context.Context, location string) error {
	return m.Called(ctx, location).Error(0)
}

func (m *mockStorageRepo) Lookup(ctx context.Context, location string) (*model.StorageSlot, error) {
	args := m.Called(ctx, location)
	if s, ok := args.Get(0).(*model.StorageSlot); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStorageRepo) LocationsFor(ctx context.Context, plasmidID string) ([]model.StorageSlot, error) {
	args := m.Called(ctx, plasmidID)
	if s, ok := args.Get(0).([]model.StorageSlot); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.StorageRepository = (*mockStorageRepo)(nil)

type mockSearchRepo struct{ mock.Mock }

func (m *mockSearchRepo) Query(ctx context.Context, mode repo.SearchMode, term string) ([]model.SearchResult, error) {
	args := m.Called(ctx, mode, term)
	if r, ok := args.Get(0).([]model.SearchResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.SearchRepository = (*mockSearchRepo)(nil)

type mockPrinterRepo struct{ mock.Mock }

func (m *mockPrinterRepo) Setup(ctx context.Context, p *model.Printer) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPrinterRepo) Get(ctx context.Context) (*model.Printer, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).(*model.Printer); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.PrinterRepository = (*mockPrinterRepo)(nil)

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Register(ctx context.Context, token string, startTime int64) error {
	return m.Called(ctx, token, startTime).Error(0)
}

func (m *mockSessionRepo) Get(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if s, ok := args.Get(0).(*model.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

var _ repo.SessionRepository = (*mockSessionRepo)(nil)
