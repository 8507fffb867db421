// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"carecorner/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock type for the TransactionManager type
type MockTransactionManager struct {
	mock.Mock
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function with given fields: ctx, fn.
// A func(context.Context, func(repository.RepositoryFactory) error) error return value is invoked.
func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

func (_e *MockTransactionManager_Expecter) Execute(ctx interface{}, fn interface{}) *mock.Call {
	return _e.mock.On("Execute", ctx, fn)
}

// NewMockTransactionManager creates a new instance of MockTransactionManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// RunWith returns an Execute return value that runs fn against factory, mimicking a real transaction.
func RunWith(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// NewUserRepository provides a mock function with no fields
func (_m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	ret := _m.Called()

	r0, _ := ret.Get(0).(repository.UserRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) NewUserRepository() *mock.Call {
	return _e.mock.On("NewUserRepository")
}

// NewCredentialRepository provides a mock function with no fields
func (_m *MockRepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	ret := _m.Called()

	r0, _ := ret.Get(0).(repository.CredentialRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) NewCredentialRepository() *mock.Call {
	return _e.mock.On("NewCredentialRepository")
}

// NewPostRepository provides a mock function with no fields
func (_m *MockRepositoryFactory) NewPostRepository() repository.PostRepository {
	ret := _m.Called()

	r0, _ := ret.Get(0).(repository.PostRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) NewPostRepository() *mock.Call {
	return _e.mock.On("NewPostRepository")
}

// NewCommentRepository provides a mock function with no fields
func (_m *MockRepositoryFactory) NewCommentRepository() repository.CommentRepository {
	ret := _m.Called()

	r0, _ := ret.Get(0).(repository.CommentRepository)

	return r0
}

func (_e *MockRepositoryFactory_Expecter) NewCommentRepository() *mock.Call {
	return _e.mock.On("NewCommentRepository")
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
