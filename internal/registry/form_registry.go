package registry

import (
	"context"
	"fmt"

	"github.com/weeztools/weezimport/internal/domain"
	"github.com/weeztools/weezimport/internal/weezevent"
	"github.com/weeztools/weezimport/pkg/logger"
	"go.uber.org/zap"
)

// ErrFormNotFound is returned when a question is resolved against an unknown
// form id.
var ErrFormNotFound = fmt.Errorf("form not found")

// FormRegistry caches the event's registration forms, indexed by the rate ids
// they serve and by form id. Forms and questions created during the run are
// appended to the in-memory cache and never re-synced from the remote.
type FormRegistry struct {
	gw            weezevent.Gateway
	eventID       string
	formsByID     map[weezevent.ID]*weezevent.Form
	formsByRateID map[weezevent.ID]*weezevent.Form
	log           *logger.Logger
}

// NewFormRegistry loads the account's forms and keeps those belonging to the
// event. The API types the form's event id as a string, hence the string
// comparison.
func NewFormRegistry(ctx context.Context, gw weezevent.Gateway, eventID string) (*FormRegistry, error) {
	forms, err := gw.ListForms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load forms for event %s: %w", eventID, err)
	}

	f := &FormRegistry{
		gw:            gw,
		eventID:       eventID,
		formsByID:     make(map[weezevent.ID]*weezevent.Form),
		formsByRateID: make(map[weezevent.ID]*weezevent.Form),
		log:           logger.Get(),
	}
	for i := range forms {
		form := &forms[i]
		if form.EventID.String() != eventID {
			continue
		}
		f.index(form)
	}

	f.log.Info("loaded form cache",
		zap.String("event_id", eventID),
		zap.Int("forms", len(f.formsByID)))
	return f, nil
}

func (f *FormRegistry) index(form *weezevent.Form) {
	f.formsByID[form.ID] = form
	for _, rateID := range form.Tickets {
		f.formsByRateID[rateID] = form
	}
}

// EnsureFormForRate returns the form serving rateID, creating one bound to
// exactly that rate when none exists. Rates are never attached to an existing
// form afterwards; each new rate gets its own form.
func (f *FormRegistry) EnsureFormForRate(ctx context.Context, rateID weezevent.ID) (*weezevent.Form, error) {
	if form, ok := f.formsByRateID[rateID]; ok {
		return form, nil
	}

	form, err := f.gw.CreateForm(ctx, weezevent.FormInput{
		EventID:              f.eventID,
		Title:                "Form for " + rateID.String(),
		QuestionsBuyer:       []weezevent.Question{},
		QuestionsParticipant: []weezevent.Question{},
		Tickets:              []weezevent.ID{rateID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create form for rate %s: %w", rateID, err)
	}

	f.index(form)
	return form, nil
}

// ResolveQuestionID returns the question id for label on the given form,
// creating the question when the label is unknown. Labels match
// case-sensitively; the same label on two different forms yields two distinct
// questions.
func (f *FormRegistry) ResolveQuestionID(ctx context.Context, formID weezevent.ID, label string) (weezevent.ID, error) {
	form, ok := f.formsByID[formID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFormNotFound, formID)
	}

	for _, q := range form.QuestionsParticipant {
		if q.Label == label {
			return q.ID, nil
		}
	}

	question, err := f.gw.AddQuestion(ctx, formID, weezevent.QuestionInput{
		Type:      "custom",
		Label:     label,
		FieldType: "textfield",
		Buyer:     0,
		BOOnly:    1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create question %q on form %s: %w", label, formID, err)
	}

	form.QuestionsParticipant = append(form.QuestionsParticipant, *question)
	return question.ID, nil
}

// MapRowToForm turns a row's values into the submission form mapping: built-in
// field values pass through under their own key, every other key is treated as
// a custom question label and stored under the resolved question id. The form
// for rateID is created lazily on the first custom key.
func (f *FormRegistry) MapRowToForm(ctx context.Context, rateID weezevent.ID, row *domain.Row) (map[string]string, error) {
	out := make(map[string]string, row.Len())
	form := f.formsByRateID[rateID]

	for _, key := range row.Keys() {
		value := row.Get(key)
		if IsDefaultField(key) {
			out[key] = value
			continue
		}

		if form == nil {
			created, err := f.EnsureFormForRate(ctx, rateID)
			if err != nil {
				return nil, err
			}
			form = created
		}

		questionID, err := f.ResolveQuestionID(ctx, form.ID, key)
		if err != nil {
			return nil, err
		}
		out[questionID.String()] = value
	}

	return out, nil
}
