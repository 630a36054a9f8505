package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/oggyb/sms-dispatch/internal/domain/group"
	routes "github.com/oggyb/sms-dispatch/internal/router"
	"github.com/oggyb/sms-dispatch/internal/service"
	"github.com/oggyb/sms-dispatch/internal/sms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService is a configurable service.SMSService.
type fakeService struct {
	lastInput service.SendInput

	sendRes *sms.Result
	sendErr error

	resetCalls int
	resetErr   error

	groups map[string]*group.Group
}

func (f *fakeService) Send(_ context.Context, in service.SendInput) (*sms.Result, error) {
	f.lastInput = in
	return f.sendRes, f.sendErr
}

func (f *fakeService) Stats(context.Context) (map[string]int64, error) {
	return map[string]int64{service.OutcomeTotal: 3, service.Outcome2xx: 2, service.Outcome5xx: 1}, nil
}

func (f *fakeService) ResetStats(context.Context) error {
	f.resetCalls++
	return f.resetErr
}

func (f *fakeService) CreateGroup(_ context.Context, name string, recipients []string) (*group.Group, error) {
	if _, ok := f.groups[name]; ok {
		return nil, group.ErrAlreadyExists
	}
	g, err := group.New(name, recipients)
	if err != nil {
		return nil, err
	}
	f.groups[g.Name] = g
	return g, nil
}

func (f *fakeService) GetGroup(_ context.Context, name string) (*group.Group, error) {
	g, ok := f.groups[name]
	if !ok {
		return nil, group.ErrNotFound
	}
	return g, nil
}

func (f *fakeService) ListGroups(context.Context) ([]*group.Group, error) {
	out := []*group.Group{}
	for _, g := range f.groups {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeService) DeleteGroup(_ context.Context, name string) error {
	if _, ok := f.groups[name]; !ok {
		return group.ErrNotFound
	}
	delete(f.groups, name)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newMux(svc service.SMSService) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, routes.AppDeps{
		Home:  NewHomeHandler(),
		SMS:   NewSMSHandler(svc),
		Group: NewGroupHandler(svc),
	})
	return mux
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestSMSHandler_Send(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		res        *sms.Result
		err        error
		wantStatus int
		wantData   string
		wantErrMsg string
	}{
		{
			name:       "provider accepted",
			body:       `{"to":["+358501234567"],"from":"Alerts","text":"Threshold exceeded"}`,
			res:        &sms.Result{StatusCode: 202, Body: "queued"},
			wantStatus: http.StatusOK,
			wantData:   `{"providerStatus":202,"providerBody":"queued"}`,
		},
		{
			name:       "provider error is data",
			body:       `{"to":["+358501234567"],"from":"A","text":"hi"}`,
			res:        &sms.Result{StatusCode: 500, Body: "boom"},
			wantStatus: http.StatusOK,
			wantData:   `{"providerStatus":500,"providerBody":"boom"}`,
		},
		{
			name:       "invalid json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantErrMsg: "invalid JSON body",
		},
		{
			name:       "validation error",
			body:       `{"to":["12345"],"from":"A","text":"hi"}`,
			err:        &sms.ValidationError{Msg: "invalid phone number format: 12345"},
			wantStatus: http.StatusBadRequest,
			wantErrMsg: "invalid phone number format: 12345",
		},
		{
			name:       "unknown group",
			body:       `{"group":"nope","from":"A","text":"hi"}`,
			err:        group.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantErrMsg: "group not found",
		},
		{
			name:       "transport error",
			body:       `{"to":["+358501234567"],"from":"A","text":"hi"}`,
			err:        &sms.TransportError{Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
			wantErrMsg: "sms request failed: connection refused",
		},
		{
			name:       "unexpected error hidden",
			body:       `{"to":["+358501234567"],"from":"A","text":"hi"}`,
			err:        errors.New("db exploded"),
			wantStatus: http.StatusInternalServerError,
			wantErrMsg: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{sendRes: tt.res, sendErr: tt.err}
			rec, env := do(t, newMux(svc), http.MethodPost, "/sms", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErrMsg != "" {
				require.NotNil(t, env.Error)
				assert.False(t, env.Success)
				assert.Equal(t, tt.wantErrMsg, env.Error.Message)
				return
			}
			assert.True(t, env.Success)
			assert.JSONEq(t, tt.wantData, string(env.Data))
		})
	}
}

func TestSMSHandler_SendPassesInput(t *testing.T) {
	svc := &fakeService{sendRes: &sms.Result{StatusCode: 200}}
	do(t, newMux(svc), http.MethodPost, "/sms", `{"to":["+358501234567"],"group":"ops","from":"A","text":"hi"}`)

	assert.Equal(t, service.SendInput{
		To:    []string{"+358501234567"},
		Group: "ops",
		From:  "A",
		Text:  "hi",
	}, svc.lastInput)
}

func TestSMSHandler_Stats(t *testing.T) {
	rec, env := do(t, newMux(&fakeService{}), http.MethodGet, "/sms/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"counters":{"total":3,"2xx":2,"5xx":1}}`, string(env.Data))
}

func TestSMSHandler_ResetStats(t *testing.T) {
	svc := &fakeService{}
	rec, _ := do(t, newMux(svc), http.MethodDelete, "/sms/stats", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, svc.resetCalls)

	svc = &fakeService{resetErr: errors.New("redis down")}
	rec, env := do(t, newMux(svc), http.MethodDelete, "/sms/stats", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", env.Error.Message)
}

func TestGroupHandler_Lifecycle(t *testing.T) {
	mux := newMux(&fakeService{groups: map[string]*group.Group{}})

	rec, env := do(t, mux, http.MethodPost, "/groups", `{"name":"ops","recipients":["+358501234567"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		Recipients []string `json:"recipients"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "ops", created.Name)
	assert.Equal(t, []string{"+358501234567"}, created.Recipients)
	_, err := uuid.Parse(created.ID)
	assert.NoError(t, err)

	rec, _ = do(t, mux, http.MethodPost, "/groups", `{"name":"ops","recipients":["+358501234567"]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = do(t, mux, http.MethodPost, "/groups", `{"name":"","recipients":["+358501234567"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, mux, http.MethodGet, "/groups/ops", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, mux, http.MethodGet, "/groups", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"ops"`)

	rec, _ = do(t, mux, http.MethodDelete, "/groups/ops", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = do(t, mux, http.MethodGet, "/groups/ops", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "group not found", env.Error.Message)
}

func TestHomeHandler(t *testing.T) {
	mux := newMux(&fakeService{})

	rec, env := do(t, mux, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))

	rec, env = do(t, mux, http.MethodGet, "/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route not found", env.Error.Message)
}
