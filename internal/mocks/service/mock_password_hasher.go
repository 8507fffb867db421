// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock type for the PasswordHasher type
type MockPasswordHasher struct {
	mock.Mock
}

type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

// Hash provides a mock function with given fields: password
func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	r0, _ := ret.Get(0).(string)

	return r0, ret.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Hash(password interface{}) *mock.Call {
	return _e.mock.On("Hash", password)
}

// Verify provides a mock function with given fields: hash, password
func (_m *MockPasswordHasher) Verify(hash string, password string) (bool, error) {
	ret := _m.Called(hash, password)

	r0, _ := ret.Get(0).(bool)

	return r0, ret.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Verify(hash interface{}, password interface{}) *mock.Call {
	return _e.mock.On("Verify", hash, password)
}

// NeedsRehash provides a mock function with given fields: hash
func (_m *MockPasswordHasher) NeedsRehash(hash string) bool {
	ret := _m.Called(hash)

	r0, _ := ret.Get(0).(bool)

	return r0
}

func (_e *MockPasswordHasher_Expecter) NeedsRehash(hash interface{}) *mock.Call {
	return _e.mock.On("NeedsRehash", hash)
}

// RecognizedPrefixes provides a mock function with no fields
func (_m *MockPasswordHasher) RecognizedPrefixes() []string {
	ret := _m.Called()

	r0, _ := ret.Get(0).([]string)

	return r0
}

func (_e *MockPasswordHasher_Expecter) RecognizedPrefixes() *mock.Call {
	return _e.mock.On("RecognizedPrefixes")
}

// NewMockPasswordHasher creates a new instance of MockPasswordHasher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
