package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taleweaver/pkg/schema"
)

// MockGenerator is a mock type for the tui.Generator type
type MockGenerator struct {
	mock.Mock
}

// Rewrite provides a mock function with given fields: ctx, req
func (_m *MockGenerator) Rewrite(ctx context.Context, req schema.RewriteRequest) (string, error) {
	ret := _m.Called(ctx, req)
	return ret.String(0), ret.Error(1)
}

// Generate provides a mock function with given fields: ctx, req
func (_m *MockGenerator) Generate(ctx context.Context, req schema.AlternateUniverseRequest) (string, error) {
	ret := _m.Called(ctx, req)
	return ret.String(0), ret.Error(1)
}

// SuggestQuotes provides a mock function with given fields: ctx, highlightedText
func (_m *MockGenerator) SuggestQuotes(ctx context.Context, highlightedText string) (string, error) {
	ret := _m.Called(ctx, highlightedText)
	return ret.String(0), ret.Error(1)
}

// NewMockGenerator creates a new instance of MockGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGenerator {
	m := &MockGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
