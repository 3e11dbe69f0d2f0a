package utils

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testOrganizationID = "org_AAAAAAAAAAAAAAAAAAAAAAAAAA"

func TestBuildScheduleKey(t *testing.T) {
	key, err := BuildScheduleKey("D1", models.WeekdayMonday, testOrganizationID)
	assert.NoError(t, err)
	assert.Equal(t, "D1_Monday_org_AAAAAAAAAAAAAAAAAAAAAAAAAA", key)

	t.Run("weekday token is canonicalized", func(t *testing.T) {
		key, err := BuildScheduleKey("D1", models.Weekday("mon"), testOrganizationID)
		assert.NoError(t, err)
		assert.Equal(t, "D1_Monday_org_AAAAAAAAAAAAAAAAAAAAAAAAAA", key)
	})

	t.Run("invalid parts", func(t *testing.T) {
		_, err := BuildScheduleKey("", models.WeekdayMonday, testOrganizationID)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))

		_, err = BuildScheduleKey("D_1", models.WeekdayMonday, testOrganizationID)
		assert.Error(t, err)

		_, err = BuildScheduleKey("D1", models.Weekday("Someday"), testOrganizationID)
		assert.Error(t, err)

		_, err = BuildScheduleKey("D1", models.WeekdayMonday, "")
		assert.Error(t, err)
	})
}

func TestParseScheduleKey(t *testing.T) {
	doctorID, weekday, orgID, err := ParseScheduleKey("D1_Monday_org_AAAAAAAAAAAAAAAAAAAAAAAAAA")
	assert.NoError(t, err)
	assert.Equal(t, "D1", doctorID)
	assert.Equal(t, models.WeekdayMonday, weekday)
	assert.Equal(t, testOrganizationID, orgID)

	t.Run("round trip", func(t *testing.T) {
		doctor := "123e4567-e89b-12d3-a456-426614174000"
		key, err := BuildScheduleKey(doctor, models.WeekdayFriday, testOrganizationID)
		assert.NoError(t, err)

		gotDoctor, gotWeekday, gotOrg, err := ParseScheduleKey(key)
		assert.NoError(t, err)
		assert.Equal(t, doctor, gotDoctor)
		assert.Equal(t, models.WeekdayFriday, gotWeekday)
		assert.Equal(t, testOrganizationID, gotOrg)
	})

	t.Run("malformed keys", func(t *testing.T) {
		for _, key := range []string{"", "D1", "D1_Monday", "D1_monday_org_X", "D1_Someday_org_X", "_Monday_org_X"} {
			_, _, _, err := ParseScheduleKey(key)
			assert.Error(t, err, key)
		}
	})
}

func TestFeeKey(t *testing.T) {
	key, err := BuildFeeKey("D1", testOrganizationID)
	assert.NoError(t, err)
	assert.Equal(t, "D1_org_AAAAAAAAAAAAAAAAAAAAAAAAAA", key)

	doctorID, orgID, err := ParseFeeKey(key)
	assert.NoError(t, err)
	assert.Equal(t, "D1", doctorID)
	assert.Equal(t, testOrganizationID, orgID)

	_, _, err = ParseFeeKey("D1")
	assert.Error(t, err)

	_, err = BuildFeeKey("D1", "")
	assert.Error(t, err)
}
