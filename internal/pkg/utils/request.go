package utils

import (
	"clinic-booking-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeAndValidate reads a JSON body into dst and runs its validate tags.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
