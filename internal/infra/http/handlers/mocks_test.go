package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/divai-site/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, identity string, at time.Time) (*entity.Lead, error) {
	args := m.Called(ctx, identity, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListRecent(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Aggregate(ctx context.Context) (entity.LeadStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.LeadStats), args.Error(1)
}
