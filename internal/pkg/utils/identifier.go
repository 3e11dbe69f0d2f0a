package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"regexp"

	"github.com/google/uuid"
)

type IdentifierKind string

const (
	IdentifierPatient      IdentifierKind = "patient_id"
	IdentifierDoctor       IdentifierKind = "doctor_id"
	IdentifierOrganization IdentifierKind = "organization_id"
)

var identifierPatterns = map[IdentifierKind]*regexp.Regexp{
	IdentifierPatient:      regexp.MustCompile(constvars.RegexPatientID),
	IdentifierDoctor:       regexp.MustCompile(constvars.RegexDoctorID),
	IdentifierOrganization: regexp.MustCompile(constvars.RegexOrganizationID),
}

// IsValidIdentifier reports whether value has the shape required for kind.
// An unknown kind is never valid.
func IsValidIdentifier(kind IdentifierKind, value string) bool {
	pattern, ok := identifierPatterns[kind]
	if !ok {
		return false
	}
	return pattern.MatchString(value)
}

func IsValidPatientID(value string) bool {
	return IsValidIdentifier(IdentifierPatient, value)
}

func IsValidDoctorID(value string) bool {
	return IsValidIdentifier(IdentifierDoctor, value)
}

func IsValidOrganizationID(value string) bool {
	return IsValidIdentifier(IdentifierOrganization, value)
}

// CanonicalDoctorID lower-cases a well-formed doctor UUID so IDs that differ
// only in hex casing compare equal. Any other value is returned unchanged.
func CanonicalDoctorID(value string) string {
	if !IsValidDoctorID(value) {
		return value
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return value
	}
	return id.String()
}

// RequireIdentifier returns a validation error when value does not have the shape of kind.
func RequireIdentifier(kind IdentifierKind, value string) error {
	if !IsValidIdentifier(kind, value) {
		return exceptions.ErrInvalidIdentifier(string(kind), value)
	}
	return nil
}
