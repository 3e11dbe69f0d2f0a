package utils

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/exceptions"
	"strings"
)

const CompositeKeySeparator = "_"

// BuildScheduleKey renders doctorID_Weekday_orgID. Organization IDs carry the
// separator themselves, so they are always the last part.
func BuildScheduleKey(doctorID string, weekday models.Weekday, organizationID string) (string, error) {
	if err := checkKeyParts(doctorID, organizationID); err != nil {
		return "", err
	}
	day, ok := models.ParseWeekday(string(weekday))
	if !ok {
		return "", exceptions.ErrInvalidCompositeKey(string(weekday))
	}
	return strings.Join([]string{doctorID, string(day), organizationID}, CompositeKeySeparator), nil
}

func ParseScheduleKey(key string) (doctorID string, weekday models.Weekday, organizationID string, err error) {
	parts := strings.SplitN(key, CompositeKeySeparator, 3)
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return "", "", "", exceptions.ErrInvalidCompositeKey(key)
	}
	day, ok := models.ParseWeekday(parts[1])
	if !ok || string(day) != parts[1] {
		return "", "", "", exceptions.ErrInvalidCompositeKey(key)
	}
	return parts[0], day, parts[2], nil
}

func BuildFeeKey(doctorID, organizationID string) (string, error) {
	if err := checkKeyParts(doctorID, organizationID); err != nil {
		return "", err
	}
	return doctorID + CompositeKeySeparator + organizationID, nil
}

func ParseFeeKey(key string) (doctorID, organizationID string, err error) {
	parts := strings.SplitN(key, CompositeKeySeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", exceptions.ErrInvalidCompositeKey(key)
	}
	return parts[0], parts[1], nil
}

func checkKeyParts(doctorID, organizationID string) error {
	if doctorID == "" || strings.Contains(doctorID, CompositeKeySeparator) {
		return exceptions.ErrInvalidCompositeKey(doctorID)
	}
	if organizationID == "" {
		return exceptions.ErrInvalidCompositeKey(organizationID)
	}
	return nil
}
