package repository

import (
	"context"

	"carecorner/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCredentialRepository is a mock type for the CredentialRepository type
type MockCredentialRepository struct {
	mock.Mock
}

type MockCredentialRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCredentialRepository) EXPECT() *MockCredentialRepository_Expecter {
	return &MockCredentialRepository_Expecter{mock: &_m.Mock}
}

// UpdatePassword provides a mock function with given fields: ctx, userID, hash
func (_m *MockCredentialRepository) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	ret := _m.Called(ctx, userID, hash)

	return ret.Error(0)
}

func (_e *MockCredentialRepository_Expecter) UpdatePassword(ctx interface{}, userID interface{}, hash interface{}) *mock.Call {
	return _e.mock.On("UpdatePassword", ctx, userID, hash)
}

// PasswordColumnLength provides a mock function with given fields: ctx
func (_m *MockCredentialRepository) PasswordColumnLength(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)

	r0, _ := ret.Get(0).(int)

	return r0, ret.Error(1)
}

func (_e *MockCredentialRepository_Expecter) PasswordColumnLength(ctx interface{}) *mock.Call {
	return _e.mock.On("PasswordColumnLength", ctx)
}

// WidenPasswordColumn provides a mock function with given fields: ctx, length
func (_m *MockCredentialRepository) WidenPasswordColumn(ctx context.Context, length int) error {
	ret := _m.Called(ctx, length)

	return ret.Error(0)
}

func (_e *MockCredentialRepository_Expecter) WidenPasswordColumn(ctx interface{}, length interface{}) *mock.Call {
	return _e.mock.On("WidenPasswordColumn", ctx, length)
}

// FindUnhashed provides a mock function with given fields: ctx, hashPrefixes
func (_m *MockCredentialRepository) FindUnhashed(ctx context.Context, hashPrefixes []string) ([]*entity.Credential, error) {
	ret := _m.Called(ctx, hashPrefixes)

	r0, _ := ret.Get(0).([]*entity.Credential)

	return r0, ret.Error(1)
}

func (_e *MockCredentialRepository_Expecter) FindUnhashed(ctx interface{}, hashPrefixes interface{}) *mock.Call {
	return _e.mock.On("FindUnhashed", ctx, hashPrefixes)
}

// NewMockCredentialRepository creates a new instance of MockCredentialRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCredentialRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialRepository {
	m := &MockCredentialRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
