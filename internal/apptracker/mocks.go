package apptracker

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAppTracker struct {
	mock.Mock
}

var _ AppTracker = (*MockAppTracker)(nil)

func (sv *MockAppTracker) CaptureMessage(message string) {
	sv.Called(message)
}

func (sv *MockAppTracker) CaptureException(exception error) {
	sv.Called(exception)
}

func (sv *MockAppTracker) Flush(timeout time.Duration) bool {
	args := sv.Called(timeout)
	return args.Bool(0)
}
