// Package mocks provides testify mock implementations of the port and
// service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicematch/internal/domain"
	"invoicematch/internal/service"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractBytes(content []byte, filename string) (string, error) {
	args := m.Called(content, filename)
	return args.String(0), args.Error(1)
}

// MockReconciliationClient is a mock implementation of port.ReconciliationClient.
type MockReconciliationClient struct {
	mock.Mock
}

func (m *MockReconciliationClient) Reconcile(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockClaimSubmitter is a mock implementation of port.ClaimSubmitter.
type MockClaimSubmitter struct {
	mock.Mock
}

func (m *MockClaimSubmitter) Submit(ctx context.Context, claim domain.Claim) (string, error) {
	args := m.Called(ctx, claim)
	return args.String(0), args.Error(1)
}

// MockClaimForwarder is a mock implementation of port.ClaimForwarder.
type MockClaimForwarder struct {
	mock.Mock
}

func (m *MockClaimForwarder) Forward(ctx context.Context, report *domain.ReconciliationReport) string {
	args := m.Called(ctx, report)
	return args.String(0)
}

// MockReconcileService is a mock implementation of service.ReconcileService.
type MockReconcileService struct {
	mock.Mock
}

func (m *MockReconcileService) Reconcile(ctx context.Context, input service.ReconcileInput) (*service.ReconcileOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReconcileOutput), args.Error(1)
}
