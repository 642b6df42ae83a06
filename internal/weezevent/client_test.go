package weezevent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&ClientConfig{
		BaseURL: srv.URL,
		APIKey:  "key-1",
	})
}

func TestClient_Authenticate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/access_token", r.URL.Path)
		assert.Equal(t, "jane", r.URL.Query().Get("username"))
		assert.Equal(t, "secret", r.URL.Query().Get("password"))
		assert.Equal(t, "key-1", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"accessToken":"tok-1"}`))
	})

	err := c.Authenticate(context.Background(), "jane", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", c.accessToken)
}

func TestClient_ListRates_SendsCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/evenement/evt-1/tarifs", r.URL.Path)
		assert.Equal(t, "tok-1", r.URL.Query().Get("access_token"))
		assert.Equal(t, "key-1", r.URL.Query().Get("api_key"))
		w.Write([]byte(`[{"id_billet":12,"channel_id":2179,"id_code_distrib":"VIP","nom":"VIP"}]`))
	})
	c.accessToken = "tok-1"

	rates, err := c.ListRates(context.Background(), "evt-1")
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, ID("12"), rates[0].ID)
	assert.Equal(t, "VIP", rates[0].DistributorID)
}

func TestClient_SubmitParticipants_FormEncodesPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/participants", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "tok-1", r.PostFormValue("access_token"))
		assert.Equal(t, "key-1", r.PostFormValue("api_key"))

		var payload struct {
			Participants    []Participant `json:"participants"`
			ReturnTicketURL int           `json:"return_ticket_url"`
			UnsafeForm      bool          `json:"unsafe_form"`
		}
		require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &payload))
		assert.Len(t, payload.Participants, 2)
		assert.Equal(t, 0, payload.ReturnTicketURL)
		assert.True(t, payload.UnsafeForm)

		w.Write([]byte(`{"total_added":2}`))
	})
	c.accessToken = "tok-1"

	res, err := c.SubmitParticipants(context.Background(), []Participant{
		{EventID: "evt-1", RateID: "12", LastName: "Doe"},
		{EventID: "evt-1", RateID: "12", LastName: "Poe"},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalAdded)
}

func TestClient_AddQuestion_PutsOnFormPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v3/form/f1/question", r.URL.Path)

		require.NoError(t, r.ParseForm())
		var input QuestionInput
		require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("data")), &input))
		assert.Equal(t, "custom", input.Type)
		assert.Equal(t, "textfield", input.FieldType)
		assert.Equal(t, 1, input.BOOnly)

		w.Write([]byte(`{"id":"q1","label":"Allergies"}`))
	})
	c.accessToken = "tok-1"

	q, err := c.AddQuestion(context.Background(), "f1", QuestionInput{
		Type:      "custom",
		Label:     "Allergies",
		FieldType: "textfield",
		BOOnly:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, ID("q1"), q.ID)
}

func TestClient_AddQuestion_EscapesFormID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/form/f%2F1/question", r.URL.EscapedPath())
		w.Write([]byte(`{"id":"q1","label":"x"}`))
	})
	c.accessToken = "tok-1"

	_, err := c.AddQuestion(context.Background(), "f/1", QuestionInput{Label: "x"})
	require.NoError(t, err)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"message":"bad","code":7}}`))
	})

	_, err := c.ListForms(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad", apiErr.Message)
	assert.Equal(t, 7, apiErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.HTTPStatus)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>Internal Server Error</html>"))
	})

	_, err := c.ListForms(context.Background())
	require.Error(t, err)

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusInternalServerError, srvErr.HTTPStatus)
	assert.Contains(t, string(srvErr.RawBody), "Internal Server Error")
}
