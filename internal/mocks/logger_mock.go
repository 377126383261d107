package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type LoggerMock struct {
	mock.Mock
}

// NewQuietLogger returns a LoggerMock that accepts any call.
func NewQuietLogger() *LoggerMock {
	m := new(LoggerMock)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		m.On(method, mock.Anything, mock.Anything, mock.Anything).Maybe()
	}
	return m
}

func (m *LoggerMock) Debug(ctx context.Context, msg string, args ...any) {
	m.Called(ctx, msg, args)
}

func (m *LoggerMock) Info(ctx context.Context, msg string, args ...any) {
	m.Called(ctx, msg, args)
}

func (m *LoggerMock) Warn(ctx context.Context, msg string, args ...any) {
	m.Called(ctx, msg, args)
}

func (m *LoggerMock) Error(ctx context.Context, msg string, args ...any) {
	m.Called(ctx, msg, args)
}
