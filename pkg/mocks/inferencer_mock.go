package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taleweaver/pkg/inference"
)

// MockInferencer is a mock type for the inference.Inferencer type
type MockInferencer struct {
	mock.Mock
}

// Infer provides a mock function with given fields: ctx, prompt
func (_m *MockInferencer) Infer(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, prompt)
	} else {
		r0 = ret.String(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, prompt)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockInferencer creates a new instance of MockInferencer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockInferencer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInferencer {
	m := &MockInferencer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ inference.Inferencer = (*MockInferencer)(nil)
