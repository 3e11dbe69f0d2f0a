package schedules

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	testDoctorID = "123e4567-e89b-12d3-a456-426614174000"
	testOrgID    = "org_AAAAAAAAAAAAAAAAAAAAAAAAAA"
)

type call struct {
	Op  string
	Key string
}

type fakeScheduleClient struct {
	entries   []models.ScheduleEntry
	listErr   error
	deleteErr error
	calls     []call
	written   []models.ScheduleEntry
}

func (f *fakeScheduleClient) List(ctx context.Context, doctorID, organizationID string) ([]models.ScheduleEntry, error) {
	f.calls = append(f.calls, call{Op: "list", Key: doctorID + "|" + organizationID})
	return f.entries, f.listErr
}

func (f *fakeScheduleClient) Create(ctx context.Context, entry *models.ScheduleEntry) error {
	f.calls = append(f.calls, call{Op: "create"})
	f.written = append(f.written, *entry)
	return nil
}

func (f *fakeScheduleClient) Update(ctx context.Context, compositeKey string, entry *models.ScheduleEntry) error {
	f.calls = append(f.calls, call{Op: "update", Key: compositeKey})
	f.written = append(f.written, *entry)
	return nil
}

func (f *fakeScheduleClient) Delete(ctx context.Context, compositeKey string) error {
	f.calls = append(f.calls, call{Op: "delete", Key: compositeKey})
	return f.deleteErr
}

func testOrg(t *testing.T) session.OrganizationContext {
	t.Helper()
	org, err := session.NewResolvedOrganizationContext(testOrgID)
	assert.NoError(t, err)
	return org
}

func TestManagerListFiltersAndSorts(t *testing.T) {
	client := &fakeScheduleClient{entries: []models.ScheduleEntry{
		{DoctorID: testDoctorID, OrganizationID: testOrgID, Weekday: models.WeekdayFriday, StartTime: "09:00", EndTime: "12:00"},
		{DoctorID: testDoctorID, Weekday: models.WeekdayMonday, StartTime: "09:00", EndTime: "12:00"},
		{DoctorID: testDoctorID, OrganizationID: "org_BBBBBBBBBBBBBBBBBBBBBBBBBB", Weekday: models.WeekdayTuesday},
		{DoctorID: "223e4567-e89b-12d3-a456-426614174000", OrganizationID: testOrgID, Weekday: models.WeekdayWednesday},
	}}
	manager := NewManager(client, zap.NewNop())

	entries, err := manager.List(context.Background(), testOrg(t), testDoctorID)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, models.WeekdayMonday, entries[0].Weekday)
	assert.Equal(t, testOrgID, entries[0].OrganizationID)
	assert.Equal(t, models.WeekdayFriday, entries[1].Weekday)
	assert.Equal(t, []call{{Op: "list", Key: testDoctorID + "|" + testOrgID}}, client.calls)
}

func TestManagerRequiresOrganizationBeforeNetwork(t *testing.T) {
	client := &fakeScheduleClient{}
	manager := NewManager(client, zap.NewNop())
	unresolved := session.OrganizationContext{}

	_, err := manager.List(context.Background(), unresolved, testDoctorID)
	assert.True(t, exceptions.IsKind(err, exceptions.KindConfiguration))

	_, err = manager.Upsert(context.Background(), unresolved, models.ScheduleEntry{
		DoctorID: testDoctorID, Weekday: models.WeekdayMonday, StartTime: "09:00", EndTime: "12:00",
	})
	assert.True(t, exceptions.IsKind(err, exceptions.KindConfiguration))

	err = manager.Delete(context.Background(), unresolved, testDoctorID, models.WeekdayMonday)
	assert.True(t, exceptions.IsKind(err, exceptions.KindConfiguration))

	assert.Empty(t, client.calls)
}

func TestManagerUpsertValidation(t *testing.T) {
	client := &fakeScheduleClient{}
	manager := NewManager(client, zap.NewNop())
	org := testOrg(t)

	tests := map[string]models.ScheduleEntry{
		"invalid doctor":  {DoctorID: "D1", Weekday: models.WeekdayMonday, StartTime: "09:00", EndTime: "12:00"},
		"invalid weekday": {DoctorID: testDoctorID, Weekday: "Someday", StartTime: "09:00", EndTime: "12:00"},
		"reversed range":  {DoctorID: testDoctorID, Weekday: models.WeekdayMonday, StartTime: "12:00", EndTime: "09:00"},
		"malformed time":  {DoctorID: testDoctorID, Weekday: models.WeekdayMonday, StartTime: "9am", EndTime: "12:00"},
	}
	for name, entry := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := manager.Upsert(context.Background(), org, entry)
			assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		})
	}
	assert.Empty(t, client.calls)
}

func TestManagerUpsertCreatesThenUpdates(t *testing.T) {
	client := &fakeScheduleClient{}
	manager := NewManager(client, zap.NewNop())
	org := testOrg(t)
	entry := models.ScheduleEntry{DoctorID: testDoctorID, Weekday: "mon", StartTime: "09:00", EndTime: "12:00", IsActive: true}

	saved, err := manager.Upsert(context.Background(), org, entry)
	assert.NoError(t, err)
	assert.Equal(t, models.WeekdayMonday, saved.Weekday)
	assert.Equal(t, testOrgID, saved.OrganizationID)
	assert.Equal(t, []call{
		{Op: "list", Key: testDoctorID + "|" + testOrgID},
		{Op: "create"},
	}, client.calls)

	client.calls = nil
	entry.EndTime = "13:00"
	_, err = manager.Upsert(context.Background(), org, entry)
	assert.NoError(t, err)
	assert.Equal(t, []call{
		{Op: "update", Key: testDoctorID + "_Monday_" + testOrgID},
	}, client.calls)
	assert.Equal(t, "13:00", client.written[1].EndTime)
}

func TestManagerUpsertUpdatesExistingFromColdCache(t *testing.T) {
	client := &fakeScheduleClient{entries: []models.ScheduleEntry{
		{DoctorID: testDoctorID, OrganizationID: testOrgID, Weekday: models.WeekdayTuesday, StartTime: "09:00", EndTime: "12:00"},
	}}
	manager := NewManager(client, zap.NewNop())

	_, err := manager.Upsert(context.Background(), testOrg(t), models.ScheduleEntry{
		DoctorID: testDoctorID, Weekday: models.WeekdayTuesday, StartTime: "10:00", EndTime: "12:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, "update", client.calls[len(client.calls)-1].Op)
	for _, c := range client.calls {
		assert.NotEqual(t, "create", c.Op)
	}
}

func TestManagerUpsertListFailureWritesNothing(t *testing.T) {
	boom := exceptions.ErrClinicAPIUnavailable(errors.New("503"), constvars.ResourceSchedule)
	client := &fakeScheduleClient{listErr: boom}
	manager := NewManager(client, zap.NewNop())

	_, err := manager.Upsert(context.Background(), testOrg(t), models.ScheduleEntry{
		DoctorID: testDoctorID, Weekday: models.WeekdayMonday, StartTime: "09:00", EndTime: "12:00",
	})
	assert.True(t, exceptions.IsKind(err, exceptions.KindTransientNetwork))
	assert.Equal(t, []call{{Op: "list", Key: testDoctorID + "|" + testOrgID}}, client.calls)
}

func TestManagerDelete(t *testing.T) {
	client := &fakeScheduleClient{}
	manager := NewManager(client, zap.NewNop())
	org := testOrg(t)

	assert.NoError(t, manager.Delete(context.Background(), org, testDoctorID, models.WeekdayWednesday))
	assert.Equal(t, []call{{Op: "delete", Key: testDoctorID + "_Wednesday_" + testOrgID}}, client.calls)

	t.Run("not found is reported", func(t *testing.T) {
		client := &fakeScheduleClient{deleteErr: exceptions.ErrClinicAPINotFound(errors.New("404"), constvars.ResourceSchedule)}
		manager := NewManager(client, zap.NewNop())

		err := manager.Delete(context.Background(), org, testDoctorID, models.WeekdayWednesday)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})
}

func TestManagerActive(t *testing.T) {
	client := &fakeScheduleClient{entries: []models.ScheduleEntry{
		{DoctorID: testDoctorID, OrganizationID: testOrgID, Weekday: models.WeekdayMonday, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		{DoctorID: testDoctorID, OrganizationID: testOrgID, Weekday: models.WeekdayTuesday, StartTime: "09:00", EndTime: "12:00", IsActive: false},
	}}
	manager := NewManager(client, zap.NewNop())

	monday, err := manager.Active(context.Background(), testOrg(t), testDoctorID, models.WeekdayMonday)
	assert.NoError(t, err)
	assert.Len(t, monday, 1)

	tuesday, err := manager.Active(context.Background(), testOrg(t), testDoctorID, models.WeekdayTuesday)
	assert.NoError(t, err)
	assert.Empty(t, tuesday)
}

func TestManagerMatchesDoctorIDsRegardlessOfCase(t *testing.T) {
	upper := strings.ToUpper(testDoctorID)
	client := &fakeScheduleClient{entries: []models.ScheduleEntry{
		{DoctorID: testDoctorID, OrganizationID: testOrgID, Weekday: models.WeekdayMonday, StartTime: "09:00", EndTime: "12:00", IsActive: true},
	}}
	manager := NewManager(client, zap.NewNop())
	org := testOrg(t)

	monday, err := manager.Active(context.Background(), org, upper, models.WeekdayMonday)
	assert.NoError(t, err)
	assert.Len(t, monday, 1)

	client.calls = nil
	saved, err := manager.Upsert(context.Background(), testOrg(t), models.ScheduleEntry{
		DoctorID: upper, Weekday: models.WeekdayMonday, StartTime: "10:00", EndTime: "12:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, testDoctorID, saved.DoctorID)
	assert.Equal(t, []call{{Op: "update", Key: testDoctorID + "_Monday_" + testOrgID}}, client.calls)

	t.Run("upper case listing", func(t *testing.T) {
		client := &fakeScheduleClient{entries: []models.ScheduleEntry{
			{DoctorID: upper, OrganizationID: testOrgID, Weekday: models.WeekdayMonday, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		}}
		manager := NewManager(client, zap.NewNop())

		_, err := manager.Upsert(context.Background(), org, models.ScheduleEntry{
			DoctorID: testDoctorID, Weekday: models.WeekdayMonday, StartTime: "10:00", EndTime: "12:00",
		})
		assert.NoError(t, err)
		assert.Equal(t, "update", client.calls[len(client.calls)-1].Op)
	})
}
