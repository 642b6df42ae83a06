package weezevent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	var doc struct {
		Number ID `json:"number"`
		Text   ID `json:"text"`
		Null   ID `json:"null"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"number":7,"text":"7","null":null}`), &doc))

	assert.Equal(t, ID("7"), doc.Number)
	assert.Equal(t, ID("7"), doc.Text)
	assert.Equal(t, ID(""), doc.Null)
}

func TestID_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &id))
}

func TestParticipant_OptionalFieldsOmitted(t *testing.T) {
	b, err := json.Marshal(Participant{
		EventID:  "evt-1",
		RateID:   "12",
		LastName: "Doe",
		Form:     map[string]string{"nom": "Doe"},
	})
	require.NoError(t, err)

	s := string(b)
	assert.NotContains(t, s, "barcode_id")
	assert.NotContains(t, s, "email")
	assert.Contains(t, s, `"delete":false`)
	assert.Contains(t, s, `"notify":false`)
}
