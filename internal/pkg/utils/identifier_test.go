package utils

import (
	"clinic-booking-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		kind  IdentifierKind
		value string
		want  bool
	}{
		{"patient uppercase alphanumeric", IdentifierPatient, "AB12CD34", true},
		{"patient lowercase rejected", IdentifierPatient, "ab12cd34", false},
		{"patient too short", IdentifierPatient, "AB12CD3", false},
		{"patient too long", IdentifierPatient, "AB12CD345", false},
		{"doctor uuid", IdentifierDoctor, "123e4567-e89b-12d3-a456-426614174000", true},
		{"doctor uuid uppercase hex", IdentifierDoctor, "123E4567-E89B-12D3-A456-426614174000", true},
		{"doctor missing group", IdentifierDoctor, "123e4567-e89b-12d3-426614174000", false},
		{"doctor short id", IdentifierDoctor, "D1", false},
		{"organization", IdentifierOrganization, "org_AAAAAAAAAAAAAAAAAAAAAAAAAA", true},
		{"organization lowercase body", IdentifierOrganization, "org_aaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"organization wrong prefix", IdentifierOrganization, "ORG_AAAAAAAAAAAAAAAAAAAAAAAAAA", false},
		{"organization short body", IdentifierOrganization, "org_AAAA", false},
		{"empty value", IdentifierPatient, "", false},
		{"unknown kind", IdentifierKind("appointment_id"), "AB12CD34", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidIdentifier(tt.kind, tt.value))
		})
	}
}

func TestRequireIdentifier(t *testing.T) {
	assert.NoError(t, RequireIdentifier(IdentifierPatient, "AB12CD34"))

	err := RequireIdentifier(IdentifierDoctor, "not-a-uuid")
	assert.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
}

func TestCanonicalDoctorID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lower case kept", "123e4567-e89b-12d3-a456-426614174000", "123e4567-e89b-12d3-a456-426614174000"},
		{"upper case lowered", "123E4567-E89B-12D3-A456-426614174000", "123e4567-e89b-12d3-a456-426614174000"},
		{"braced form left alone", "{123e4567-e89b-12d3-a456-426614174000}", "{123e4567-e89b-12d3-a456-426614174000}"},
		{"not a uuid", "D1", "D1"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalDoctorID(tt.input))
		})
	}
}

func TestValidateStructCustomTags(t *testing.T) {
	type payload struct {
		PatientID     string `validate:"required,patient_id"`
		DoctorID      string `validate:"required,doctor_id"`
		Time          string `validate:"required,hhmm"`
		Date          string `validate:"required,date_only"`
		Weekday       string `validate:"required,weekday"`
		FeeType       string `validate:"required,fee_type"`
		PaymentMethod string `validate:"required,payment_method"`
	}

	valid := payload{
		PatientID:     "AB12CD34",
		DoctorID:      "123e4567-e89b-12d3-a456-426614174000",
		Time:          "14:00",
		Date:          "2026-10-14",
		Weekday:       "monday",
		FeeType:       "recurring",
		PaymentMethod: "online",
	}
	assert.NoError(t, ValidateStruct(&valid))

	invalid := valid
	invalid.PaymentMethod = "crypto"
	err := ValidateStruct(&invalid)
	assert.Error(t, err)
	assert.Equal(t, "paymentmethod must be one of online, insurance, cash", exceptions.FormatFirstValidationError(err))
}
