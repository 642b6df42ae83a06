package weezevent

import "context"

// Gateway is the typed surface over the Weezevent legacy API that the
// registries and the submitter depend on. *Client implements it; tests swap in
// a mock to audit call counts.
type Gateway interface {
	// ListRates returns every rate of the event.
	ListRates(ctx context.Context, eventID string) ([]Rate, error)
	// CreateRate creates a rate on the event and returns it with its remote id.
	CreateRate(ctx context.Context, eventID string, input RateInput) (*Rate, error)
	// ListForms returns every form visible to the account, across events.
	ListForms(ctx context.Context) ([]Form, error)
	// CreateForm creates a form already bound to the rates in input.Tickets.
	CreateForm(ctx context.Context, input FormInput) (*Form, error)
	// AddQuestion appends a question to the form and returns its descriptor.
	AddQuestion(ctx context.Context, formID ID, input QuestionInput) (*Question, error)
	// SubmitParticipants bulk-adds participants in a single call.
	SubmitParticipants(ctx context.Context, participants []Participant, unsafeForm bool) (*SubmitResult, error)
	// DeleteParticipants bulk-removes participants by id.
	DeleteParticipants(ctx context.Context, participantIDs []ID) error
}
