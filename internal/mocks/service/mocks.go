// Package service provides testify mocks of the domain services.
package service

import (
	"context"

	"accounts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted on test cleanup.
func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	register(t, &m.Mock)

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted on test cleanup.
func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	register(t, &m.Mock)

	return m
}

func (m *MockTokenService) Issue(claims service.Claims) (string, error) {
	args := m.Called(claims)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Parse(tokenString string, claims jwt.Claims) error {
	return m.Called(tokenString, claims).Error(0)
}

// MockAvatarResolver is a mock of service.AvatarResolver.
type MockAvatarResolver struct {
	mock.Mock
}

// NewMockAvatarResolver creates a mock whose expectations are asserted on test cleanup.
func NewMockAvatarResolver(t testingT) *MockAvatarResolver {
	m := &MockAvatarResolver{}
	register(t, &m.Mock)

	return m
}

func (m *MockAvatarResolver) URL(email string) string {
	return m.Called(email).String(0)
}

// MockEventPublisher is a mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock whose expectations are asserted on test cleanup.
func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	register(t, &m.Mock)

	return m
}

func (m *MockEventPublisher) PublishAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}
