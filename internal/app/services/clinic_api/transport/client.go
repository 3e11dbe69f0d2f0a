// Package transport sends requests to the clinic API and classifies its failures.
package transport

import (
	"bytes"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/normalizer"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Options struct {
	BaseUrl                string
	Timeout                time.Duration
	MaxRequestsPerSecond   int
	SessionTokenHeaderName string
}

type Client struct {
	BaseUrl     string
	Log         *zap.Logger
	http        *http.Client
	limiter     *rate.Limiter
	tokenHeader string
}

func NewClient(opts Options, logger *zap.Logger) *Client {
	limit := rate.Inf
	burst := 1
	if opts.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(opts.MaxRequestsPerSecond)
		burst = opts.MaxRequestsPerSecond
	}
	tokenHeader := opts.SessionTokenHeaderName
	if tokenHeader == "" {
		tokenHeader = constvars.HeaderAuthorization
	}
	return &Client{
		BaseUrl:     strings.TrimRight(opts.BaseUrl, "/"),
		Log:         logger,
		http:        &http.Client{Timeout: opts.Timeout},
		limiter:     rate.NewLimiter(limit, burst),
		tokenHeader: tokenHeader,
	}
}

// Request describes one call. Operation names the calling method for logs and
// Resource names the entity for error messages.
type Request struct {
	Operation    string
	Resource     string
	Method       string
	Path         string
	Query        url.Values
	Body         interface{}
	ConflictHint string
}

// Response is a 2xx answer from the clinic API.
type Response struct {
	StatusCode int
	Body       []byte
}

// Do sends req and returns the body of a 2xx response. Any other outcome is a
// *exceptions.CustomError classified by kind.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := c.BaseUrl + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}
	c.Log.Debug(req.Operation+" built URL",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHTTPMethodKey, req.Method),
		zap.String(constvars.LoggingClinicAPIURLKey, endpoint),
	)

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			c.Log.Error(req.Operation+" error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		c.Log.Error(req.Operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if req.Body != nil {
		httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		httpReq.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if token, _ := ctx.Value(constvars.CONTEXT_SESSION_TOKEN_KEY).(string); token != "" {
		httpReq.Header.Set(c.tokenHeader, token)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.Log.Warn(req.Operation+" outbound rate limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.Log.Error(req.Operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(req.Operation+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
	}

	classified := classify(req, resp.StatusCode, respBody)
	c.Log.Error(req.Operation+" clinic API returned an error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(classified))),
		zap.Error(classified),
	)
	return nil, classified
}

func classify(req Request, statusCode int, body []byte) error {
	message := normalizer.ErrorMessage(body)
	cause := errors.New(http.StatusText(statusCode))
	if message != "" {
		cause = fmt.Errorf("%d %s", statusCode, message)
	}

	switch {
	case statusCode == constvars.StatusNotFound:
		return exceptions.ErrClinicAPINotFound(cause, req.Resource)
	case statusCode == constvars.StatusConflict:
		hint := req.ConflictHint
		if hint == "" {
			hint = constvars.ErrClientConflict
		}
		return exceptions.ErrClinicAPIConflict(cause, req.Resource, hint)
	case statusCode == constvars.StatusTooManyRequests || statusCode >= 500:
		return exceptions.ErrClinicAPIUnavailable(cause, req.Resource)
	default:
		return exceptions.ErrClinicAPIRejected(cause, req.Resource, message)
	}
}

// CompositePath renders base/{key} with the key path-escaped.
func CompositePath(base, key string) string {
	return fmt.Sprintf(constvars.RouteCompositeResourceFmt, base, url.PathEscape(key))
}
