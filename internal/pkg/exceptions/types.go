package exceptions

import (
	"clinic-booking-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidIdentifier = func(kind, value string) *CustomError {
		return BuildNewCustomError(fmt.Errorf("%q", value), KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidIdentifier, kind))
	}
	ErrInvalidCompositeKey = func(key string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidCompositeKey, key))
	}
	ErrInvalidTimeRange = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrDevInvalidTimeRange, constvars.ErrDevInvalidTimeRange)
	}
	ErrNegativeFee = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.ErrDevNegativeFee, constvars.ErrDevNegativeFee)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrValidation = func(devMessage string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, devMessage, devMessage)
	}

	// Wizard
	ErrWizardClosed = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.ErrClientBookingSessionNotFound, constvars.ErrDevWizardClosed)
	}
	ErrWizardStage = func(stage string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevWizardStage, stage))
	}
	ErrWizardMissingField = func(field, stage string) *CustomError {
		msg := fmt.Sprintf(constvars.ErrDevWizardMissingField, field, stage)
		return BuildNewCustomError(nil, KindValidation, msg, msg)
	}
	ErrWizardSubmitting = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.ErrDevWizardSubmitting, constvars.ErrDevWizardSubmitting)
	}
	ErrRecordNotInResults = func(resource, id string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRecordNotInResults, resource, id))
	}
	ErrBookingSessionNotFound = func(sessionID string) *CustomError {
		return BuildNewCustomError(nil, KindNotFound, constvars.ErrClientBookingSessionNotFound, fmt.Sprintf(constvars.ErrDevBookingSessionNotFound, sessionID))
	}

	// Configuration
	ErrOrganizationNotResolved = func() *CustomError {
		return BuildNewCustomError(nil, KindConfiguration, constvars.ErrClientOrganizationNotResolved, constvars.ErrDevOrganizationNotResolved)
	}
	ErrOrganizationInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, KindConfiguration, constvars.ErrClientOrganizationNotResolved, constvars.ErrDevOrganizationInvalid)
	}

	// Clinic API
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTransientNetwork, constvars.ErrClientServiceUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadHTTPResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, KindTransientNetwork, constvars.ErrClientServiceUnavailable, constvars.ErrDevReadHTTPResponse)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrClinicAPINotFound = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevClinicAPINotFound, resource))
	}
	ErrClinicAPIConflict = func(err error, resource, hint string) *CustomError {
		return BuildNewCustomError(err, KindConflict, hint, fmt.Sprintf(constvars.ErrDevClinicAPIConflict, resource))
	}
	ErrClinicAPIRejected = func(err error, resource, clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomError(err, KindRejected, clientMessage, fmt.Sprintf(constvars.ErrDevClinicAPIRejected, resource))
	}
	ErrClinicAPIUnavailable = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindTransientNetwork, constvars.ErrClientServiceUnavailable, fmt.Sprintf(constvars.ErrDevClinicAPIUnavailable, resource))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Default Server
	ErrRouteNotFound = func(method, path string) *CustomError {
		return BuildNewCustomError(nil, KindNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevRouteNotFound, method, path))
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
)
