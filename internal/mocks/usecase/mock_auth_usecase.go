// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"carecorner/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock type for the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	ret := _m.Called(ctx, input)

	r0, _ := ret.Get(0).(*usecase.AuthOutput)

	return r0, ret.Error(1)
}

func (_e *MockAuthUsecase_Expecter) Register(ctx interface{}, input interface{}) *mock.Call {
	return _e.mock.On("Register", ctx, input)
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	ret := _m.Called(ctx, input)

	r0, _ := ret.Get(0).(*usecase.AuthOutput)

	return r0, ret.Error(1)
}

func (_e *MockAuthUsecase_Expecter) Login(ctx interface{}, input interface{}) *mock.Call {
	return _e.mock.On("Login", ctx, input)
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
