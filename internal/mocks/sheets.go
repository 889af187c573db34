package mocks

import (
	"context"

	"github.com/portfolio-site-api/internal/sheets"
)

// MockCredentialStore is a mock implementation of sheets.CredentialStore
type MockCredentialStore struct {
	Rows        []sheets.SheetUser
	ListErr     error
	AppendErr   error
	AppendCalls int
}

func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{}
}

func (m *MockCredentialStore) ListUsers(ctx context.Context) ([]sheets.SheetUser, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Rows, nil
}

func (m *MockCredentialStore) AppendUser(ctx context.Context, user sheets.SheetUser) error {
	m.AppendCalls++
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Rows = append(m.Rows, user)
	return nil
}
