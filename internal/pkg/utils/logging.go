package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// ErrorFields describes err for a log line; a CustomError contributes its kind and call site.
func ErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		fields = append(fields,
			zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind)),
			zap.Any(constvars.LoggingLocationKey, map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	}
	return fields
}
