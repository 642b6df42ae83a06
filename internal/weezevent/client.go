package weezevent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weeztools/weezimport/pkg/logger"
	"github.com/weeztools/weezimport/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the fixed base URL of the Weezevent legacy API.
	DefaultBaseURL = "https://api.weezevent.com"

	accessTokenPath  = "/auth/access_token"
	participantsPath = "/v3/participants"
	formPath         = "/v3/form"
)

// ClientConfig holds configuration for the API client.
type ClientConfig struct {
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string
	// APIKey is the legacy API key appended to every call.
	APIKey string
	// Timeout bounds each HTTP call (default: 30s).
	Timeout time.Duration
	Logger  *logger.Logger
}

// Client is the HTTP implementation of Gateway.
type Client struct {
	baseURL     string
	apiKey      string
	accessToken string
	httpClient  *http.Client
	log         *logger.Logger
}

var _ Gateway = (*Client)(nil)

// NewClient creates an unauthenticated client. Call Authenticate before using
// any other operation.
func NewClient(cfg *ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		log: log,
	}
}

// Authenticate exchanges the credentials for an access token and stores it on
// the client. Auth failures surface through the same APIError/ServerError
// taxonomy as every other call.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	ctx, span := telemetry.StartSpan(ctx, "weezevent.authenticate")
	defer span.End()

	params := url.Values{}
	params.Set("username", username)
	params.Set("password", password)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+accessTokenPath+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build auth request: %w", err)
	}

	var res accessTokenResponse
	if err := c.do(req, &res); err != nil {
		telemetry.SetSpanError(ctx, err)
		return err
	}

	c.accessToken = res.AccessToken
	c.log.Debug("authenticated against weezevent api", zap.String("username", username))
	return nil
}

// ListRates returns every rate of the event.
func (c *Client) ListRates(ctx context.Context, eventID string) ([]Rate, error) {
	var rates []Rate
	if err := c.get(ctx, "weezevent.list_rates", ratesPath(eventID), &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// CreateRate creates a rate on the event.
func (c *Client) CreateRate(ctx context.Context, eventID string, input RateInput) (*Rate, error) {
	var rate Rate
	if err := c.send(ctx, "weezevent.create_rate", http.MethodPost, ratesPath(eventID), input, &rate); err != nil {
		return nil, err
	}
	c.log.Info("created rate",
		zap.String("rate_id", rate.ID.String()),
		zap.String("distributor_id", input.DistributorID),
		zap.Int("channel_id", input.ChannelID))
	return &rate, nil
}

// ListForms returns every form visible to the account.
func (c *Client) ListForms(ctx context.Context) ([]Form, error) {
	var forms []Form
	if err := c.get(ctx, "weezevent.list_forms", formPath, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// CreateForm creates a form bound to the rates in input.Tickets.
func (c *Client) CreateForm(ctx context.Context, input FormInput) (*Form, error) {
	var form Form
	if err := c.send(ctx, "weezevent.create_form", http.MethodPost, formPath, input, &form); err != nil {
		return nil, err
	}
	c.log.Info("created form",
		zap.String("form_id", form.ID.String()),
		zap.String("title", input.Title))
	return &form, nil
}

// AddQuestion upserts a question on the form.
func (c *Client) AddQuestion(ctx context.Context, formID ID, input QuestionInput) (*Question, error) {
	path := fmt.Sprintf("%s/%s/question", formPath, url.PathEscape(formID.String()))
	var question Question
	if err := c.send(ctx, "weezevent.add_question", http.MethodPut, path, input, &question); err != nil {
		return nil, err
	}
	c.log.Info("created form question",
		zap.String("form_id", formID.String()),
		zap.String("question_id", question.ID.String()),
		zap.String("label", input.Label))
	return &question, nil
}

type submitPayload struct {
	Participants    []Participant `json:"participants"`
	ReturnTicketURL int           `json:"return_ticket_url"`
	UnsafeForm      bool          `json:"unsafe_form"`
}

// SubmitParticipants bulk-adds participants in a single call.
func (c *Client) SubmitParticipants(ctx context.Context, participants []Participant, unsafeForm bool) (*SubmitResult, error) {
	payload := submitPayload{
		Participants: participants,
		UnsafeForm:   unsafeForm,
	}
	var res SubmitResult
	if err := c.send(ctx, "weezevent.submit_participants", http.MethodPost, participantsPath, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type deletePayload struct {
	Participants []ID `json:"participants"`
}

// DeleteParticipants bulk-removes participants by id.
func (c *Client) DeleteParticipants(ctx context.Context, participantIDs []ID) error {
	payload := deletePayload{Participants: participantIDs}
	return c.send(ctx, "weezevent.delete_participants", http.MethodDelete, participantsPath, payload, nil)
}

func ratesPath(eventID string) string {
	return "/v3/evenement/" + url.PathEscape(eventID) + "/tarifs"
}

// get performs an authenticated GET with credentials as query parameters.
func (c *Client) get(ctx context.Context, spanName, path string, out any) error {
	ctx, span := telemetry.StartSpan(ctx, spanName)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", http.MethodGet),
		attribute.String("http.path", path),
	)

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	if err := c.do(req, out); err != nil {
		telemetry.SetSpanError(ctx, err)
		return err
	}
	return nil
}

// send performs an authenticated write call. The legacy API expects a
// form-encoded body with the JSON payload under the "data" field.
func (c *Client) send(ctx context.Context, spanName, method, path string, payload, out any) error {
	ctx, span := telemetry.StartSpan(ctx, spanName)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload for %s: %w", path, err)
	}

	form := url.Values{}
	form.Set("access_token", c.accessToken)
	form.Set("api_key", c.apiKey)
	form.Set("data", string(data))

	req, err := http.NewRequestWithContext(ctx, method,
		c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if err := c.do(req, out); err != nil {
		telemetry.SetSpanError(ctx, err)
		return err
	}
	return nil
}

// do executes the request and decodes the response. Non-200 responses become
// APIError or ServerError.
func (c *Client) do(req *http.Request, out any) error {
	telemetry.InjectTraceContext(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", req.URL.Path, err)
	}

	c.log.Debug("weezevent api call",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return parseErrorBody(body, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}
