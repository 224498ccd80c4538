package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vbonduro/salesdash/internal/apiclient"
)

// MockDoer is a testify mock of apiclient.Doer. Tests populate the out
// argument from a Run hook.
type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) Do(ctx context.Context, req apiclient.Request, out any) error {
	args := m.Called(ctx, req, out)
	return args.Error(0)
}
