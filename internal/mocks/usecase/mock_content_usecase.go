package usecase

import (
	"context"

	"carecorner/internal/domain/entity"
	"carecorner/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockContentUsecase is a mock type for the ContentUsecase type
type MockContentUsecase struct {
	mock.Mock
}

type MockContentUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockContentUsecase) EXPECT() *MockContentUsecase_Expecter {
	return &MockContentUsecase_Expecter{mock: &_m.Mock}
}

// ListPosts provides a mock function with given fields: ctx
func (_m *MockContentUsecase) ListPosts(ctx context.Context) ([]*entity.PostSummary, error) {
	ret := _m.Called(ctx)

	r0, _ := ret.Get(0).([]*entity.PostSummary)

	return r0, ret.Error(1)
}

func (_e *MockContentUsecase_Expecter) ListPosts(ctx interface{}) *mock.Call {
	return _e.mock.On("ListPosts", ctx)
}

// CreatePost provides a mock function with given fields: ctx, input
func (_m *MockContentUsecase) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	ret := _m.Called(ctx, input)

	r0, _ := ret.Get(0).(*entity.Post)

	return r0, ret.Error(1)
}

func (_e *MockContentUsecase_Expecter) CreatePost(ctx interface{}, input interface{}) *mock.Call {
	return _e.mock.On("CreatePost", ctx, input)
}

// GetPostDetail provides a mock function with given fields: ctx, postID
func (_m *MockContentUsecase) GetPostDetail(ctx context.Context, postID int64) (*entity.PostDetail, error) {
	ret := _m.Called(ctx, postID)

	r0, _ := ret.Get(0).(*entity.PostDetail)

	return r0, ret.Error(1)
}

func (_e *MockContentUsecase_Expecter) GetPostDetail(ctx interface{}, postID interface{}) *mock.Call {
	return _e.mock.On("GetPostDetail", ctx, postID)
}

// DeletePost provides a mock function with given fields: ctx, postID
func (_m *MockContentUsecase) DeletePost(ctx context.Context, postID int64) error {
	ret := _m.Called(ctx, postID)

	return ret.Error(0)
}

func (_e *MockContentUsecase_Expecter) DeletePost(ctx interface{}, postID interface{}) *mock.Call {
	return _e.mock.On("DeletePost", ctx, postID)
}

// AddComment provides a mock function with given fields: ctx, input
func (_m *MockContentUsecase) AddComment(ctx context.Context, input *usecase.AddCommentInput) (*entity.Comment, error) {
	ret := _m.Called(ctx, input)

	r0, _ := ret.Get(0).(*entity.Comment)

	return r0, ret.Error(1)
}

func (_e *MockContentUsecase_Expecter) AddComment(ctx interface{}, input interface{}) *mock.Call {
	return _e.mock.On("AddComment", ctx, input)
}

// NewMockContentUsecase creates a new instance of MockContentUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockContentUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContentUsecase {
	m := &MockContentUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
