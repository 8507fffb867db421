package repository

import (
	"context"

	"carecorner/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock type for the PostRepository type
type MockPostRepository struct {
	mock.Mock
}

type MockPostRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPostRepository) EXPECT() *MockPostRepository_Expecter {
	return &MockPostRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, post
func (_m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	ret := _m.Called(ctx, post)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Post) error); ok {
		return rf(ctx, post)
	}

	return ret.Error(0)
}

func (_e *MockPostRepository_Expecter) Create(ctx interface{}, post interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, post)
}

// ListSummaries provides a mock function with given fields: ctx
func (_m *MockPostRepository) ListSummaries(ctx context.Context) ([]*entity.PostSummary, error) {
	ret := _m.Called(ctx)

	r0, _ := ret.Get(0).([]*entity.PostSummary)

	return r0, ret.Error(1)
}

func (_e *MockPostRepository_Expecter) ListSummaries(ctx interface{}) *mock.Call {
	return _e.mock.On("ListSummaries", ctx)
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockPostRepository) FindByID(ctx context.Context, id int64) (*entity.PostDetail, error) {
	ret := _m.Called(ctx, id)

	r0, _ := ret.Get(0).(*entity.PostDetail)

	return r0, ret.Error(1)
}

func (_e *MockPostRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

// Exists provides a mock function with given fields: ctx, id
func (_m *MockPostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)

	r0, _ := ret.Get(0).(bool)

	return r0, ret.Error(1)
}

func (_e *MockPostRepository_Expecter) Exists(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Exists", ctx, id)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockPostRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockPostRepository creates a new instance of MockPostRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPostRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPostRepository {
	m := &MockPostRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCommentRepository is a mock type for the CommentRepository type
type MockCommentRepository struct {
	mock.Mock
}

type MockCommentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommentRepository) EXPECT() *MockCommentRepository_Expecter {
	return &MockCommentRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, comment
func (_m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	ret := _m.Called(ctx, comment)

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Comment) error); ok {
		return rf(ctx, comment)
	}

	return ret.Error(0)
}

func (_e *MockCommentRepository_Expecter) Create(ctx interface{}, comment interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, comment)
}

// ListByPost provides a mock function with given fields: ctx, postID
func (_m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	ret := _m.Called(ctx, postID)

	r0, _ := ret.Get(0).([]*entity.Comment)

	return r0, ret.Error(1)
}

func (_e *MockCommentRepository_Expecter) ListByPost(ctx interface{}, postID interface{}) *mock.Call {
	return _e.mock.On("ListByPost", ctx, postID)
}

// NewMockCommentRepository creates a new instance of MockCommentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
