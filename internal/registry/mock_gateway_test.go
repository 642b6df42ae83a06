package registry

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/weeztools/weezimport/internal/weezevent"
)

// MockGateway is a mock implementation of weezevent.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListRates(ctx context.Context, eventID string) ([]weezevent.Rate, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]weezevent.Rate), args.Error(1)
}

func (m *MockGateway) CreateRate(ctx context.Context, eventID string, input weezevent.RateInput) (*weezevent.Rate, error) {
	args := m.Called(ctx, eventID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weezevent.Rate), args.Error(1)
}

func (m *MockGateway) ListForms(ctx context.Context) ([]weezevent.Form, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]weezevent.Form), args.Error(1)
}

func (m *MockGateway) CreateForm(ctx context.Context, input weezevent.FormInput) (*weezevent.Form, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weezevent.Form), args.Error(1)
}

func (m *MockGateway) AddQuestion(ctx context.Context, formID weezevent.ID, input weezevent.QuestionInput) (*weezevent.Question, error) {
	args := m.Called(ctx, formID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weezevent.Question), args.Error(1)
}

func (m *MockGateway) SubmitParticipants(ctx context.Context, participants []weezevent.Participant, unsafeForm bool) (*weezevent.SubmitResult, error) {
	args := m.Called(ctx, participants, unsafeForm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weezevent.SubmitResult), args.Error(1)
}

func (m *MockGateway) DeleteParticipants(ctx context.Context, participantIDs []weezevent.ID) error {
	args := m.Called(ctx, participantIDs)
	return args.Error(0)
}
