package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockCatalogProviderForTest creates a new mock CatalogProvider for testing
func NewMockCatalogProviderForTest(t *testing.T) *MockCatalogProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCatalogProvider(ctrl)
}

// NewMockSubmissionAdapterForTest creates a new mock SubmissionAdapter for testing
func NewMockSubmissionAdapterForTest(t *testing.T) *MockSubmissionAdapter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSubmissionAdapter(ctrl)
}
