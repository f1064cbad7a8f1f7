package testhelpers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockObjectStore is a mock implementation of the object store used for
// recipe images and plan archives
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) PutJSON(ctx context.Context, objectKey string, v interface{}) error {
	args := m.Called(ctx, objectKey, v)
	return args.Error(0)
}
