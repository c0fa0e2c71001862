package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nuitinfo/podium-live/internal/statistics/model"
	"github.com/nuitinfo/podium-live/internal/statistics/repository"
)

type mockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*mockRepository)(nil)

func (m *mockRepository) GetLeaderboardStatistics(ctx context.Context) (*model.LeaderboardStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaderboardStatistics), args.Error(1)
}

func TestGetLeaderboardStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps repository figures", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		repo.On("GetLeaderboardStatistics", ctx).Return(&model.LeaderboardStatistics{
			TeamCount:    10,
			TopScore:     420,
			AverageScore: 263.0,
		}, nil)

		resp, err := svc.GetLeaderboardStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 10, resp.Statistics.TeamCount)
		assert.Equal(t, 420, resp.Statistics.TopScore)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		repo := new(mockRepository)
		svc := New(repo, zap.NewNop().Sugar())

		repo.On("GetLeaderboardStatistics", ctx).Return(nil, errors.New("db down"))

		resp, err := svc.GetLeaderboardStatistics(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}
