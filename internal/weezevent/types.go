package weezevent

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a remote identifier. The legacy API serializes identifiers
// inconsistently (numbers in rate payloads, strings in form payloads), so both
// shapes unmarshal into the same type.
type ID string

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Rate is a priced ticket tier ("tarif") attached to a distribution channel.
type Rate struct {
	ID            ID      `json:"id_billet"`
	ChannelID     int     `json:"channel_id"`
	DistributorID string  `json:"id_code_distrib"`
	Name          string  `json:"nom"`
	Price         float64 `json:"prix"`
	CategoryID    int     `json:"id_categorie"`
	Description   string  `json:"description"`
}

// RateInput is the creation payload for a rate.
type RateInput struct {
	Name          string  `json:"nom"`
	Description   string  `json:"description"`
	DistributorID string  `json:"id_code_distrib"`
	Price         float64 `json:"prix"`
	ChannelID     int     `json:"channel_id"`
	CategoryID    int     `json:"id_categorie"`
}

// Question is one custom form field, identified by its label.
type Question struct {
	ID    ID     `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// QuestionInput is the creation payload for a form question.
type QuestionInput struct {
	Type      string `json:"type"`
	Label     string `json:"label"`
	FieldType string `json:"field_type"`
	Buyer     int    `json:"buyer"`
	BOOnly    int    `json:"bo_only"`
}

// Form is a registration questionnaire bound to one or more rates.
type Form struct {
	ID                   ID         `json:"id_form"`
	EventID              ID         `json:"id_evenement"`
	Title                string     `json:"title"`
	QuestionsBuyer       []Question `json:"questions_buyer"`
	QuestionsParticipant []Question `json:"questions_participant"`
	Tickets              []ID       `json:"tickets"`
}

// FormInput is the creation payload for a form.
type FormInput struct {
	EventID              string     `json:"id_evenement"`
	Title                string     `json:"title"`
	QuestionsBuyer       []Question `json:"questions_buyer"`
	QuestionsParticipant []Question `json:"questions_participant"`
	Tickets              []ID       `json:"tickets"`
}

// Participant is one attendee record in a bulk submission.
type Participant struct {
	EventID   string            `json:"id_evenement"`
	RateID    ID                `json:"id_billet"`
	LastName  string            `json:"nom"`
	FirstName string            `json:"prenom"`
	Form      map[string]string `json:"form"`
	Delete    bool              `json:"delete"`
	Notify    bool              `json:"notify"`
	BarcodeID string            `json:"barcode_id,omitempty"`
	Email     string            `json:"email,omitempty"`
}

// SubmitResult is the acknowledgement of a bulk participant submission.
type SubmitResult struct {
	TotalAdded int `json:"total_added"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
