package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mattermost-notifier/internal/domain/model"
)

type ItemProviderMock struct {
	mock.Mock
}

func (m *ItemProviderMock) Items(ctx context.Context) ([]model.FeedItem, error) {
	args := m.Called(ctx)

	items, _ := args.Get(0).([]model.FeedItem)
	return items, args.Error(1)
}
