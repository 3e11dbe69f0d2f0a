package middlewares

import (
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testOrgID = "org_AAAAAAAAAAAAAAAAAAAAAAAAAA"

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Initialize(ctx context.Context, sessionToken string) (session.OrganizationContext, error) {
	args := m.Called(sessionToken)
	return args.Get(0).(session.OrganizationContext), args.Error(1)
}

func decodeKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Kind    string `json:"kind"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Kind
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, nil)
	var seen string
	var fromClient bool
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	}))

	t.Run("client supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.True(t, fromClient)
		assert.Equal(t, "req-42", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.False(t, fromClient)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestOrganizationScope(t *testing.T) {
	org, err := session.NewResolvedOrganizationContext(testOrgID)
	assert.NoError(t, err)

	var gotOrg session.OrganizationContext
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOrg = session.OrganizationFromContext(r.Context())
		gotToken = session.SessionTokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("resolved", func(t *testing.T) {
		resolver := new(mockResolver)
		resolver.On("Initialize", "Bearer abc").Return(org, nil).Once()
		handler := NewMiddlewares(zap.NewNop(), resolver, nil).OrganizationScope(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "  Bearer abc ")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, org, gotOrg)
		assert.Equal(t, "Bearer abc", gotToken)
		resolver.AssertExpectations(t)
	})

	t.Run("missing token", func(t *testing.T) {
		resolver := new(mockResolver)
		handler := NewMiddlewares(zap.NewNop(), resolver, nil).OrganizationScope(next)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, exceptions.StatusCodeForKind(exceptions.KindConfiguration), rec.Code)
		assert.Equal(t, string(exceptions.KindConfiguration), decodeKind(t, rec))
		resolver.AssertNotCalled(t, "Initialize", mock.Anything)
	})

	t.Run("resolver failure", func(t *testing.T) {
		resolver := new(mockResolver)
		resolver.On("Initialize", "abc").
			Return(session.OrganizationContext{}, exceptions.ErrClinicAPIUnavailable(errors.New("503"), constvars.ResourceOrganization))
		handler := NewMiddlewares(zap.NewNop(), resolver, nil).OrganizationScope(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, string(exceptions.KindTransientNetwork), decodeKind(t, rec))
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	handler := NewMiddlewares(zap.NewNop(), nil, nil).ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(exceptions.KindInternal), decodeKind(t, rec))
}

func TestLoggingKeepsStatus(t *testing.T) {
	handler := NewMiddlewares(zap.NewNop(), nil, nil).Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
