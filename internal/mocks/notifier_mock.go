package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mattermost-notifier/internal/domain/model"
)

type NotifierMock struct {
	mock.Mock
}

func (m *NotifierMock) Notify(ctx context.Context, msg *model.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
