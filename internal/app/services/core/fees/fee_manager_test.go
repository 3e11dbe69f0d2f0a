package fees

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
	testFeeKey   = testDoctorID + "_" + testOrgID
)

type fakeFeeClient struct {
	fees    []models.FeeStructure
	listErr error
	ops     []string
	keys    []string
}

func (f *fakeFeeClient) List(ctx context.Context, doctorID, organizationID string) ([]models.FeeStructure, error) {
	f.ops = append(f.ops, "list")
	return f.fees, f.listErr
}

func (f *fakeFeeClient) Create(ctx context.Context, fee *models.FeeStructure) error {
	f.ops = append(f.ops, "create")
	return nil
}

func (f *fakeFeeClient) Update(ctx context.Context, compositeKey string, fee *models.FeeStructure) error {
	f.ops = append(f.ops, "update")
	f.keys = append(f.keys, compositeKey)
	return nil
}

func (f *fakeFeeClient) Delete(ctx context.Context, compositeKey string) error {
	f.ops = append(f.ops, "delete")
	f.keys = append(f.keys, compositeKey)
	return nil
}

func testOrg(t *testing.T) session.OrganizationContext {
	t.Helper()
	org, err := session.NewResolvedOrganizationContext(testOrgID)
	assert.NoError(t, err)
	return org
}

func TestManagerGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := &fakeFeeClient{fees: []models.FeeStructure{
			{DoctorID: testDoctorID, OrganizationID: testOrgID, RecurringFee: 150000, DefaultFee: 200000},
		}}
		lookup, err := NewManager(client, zap.NewNop()).Get(context.Background(), testOrg(t), testDoctorID)

		assert.NoError(t, err)
		assert.True(t, lookup.Found)
		assert.Equal(t, int64(150000), lookup.Fee.AmountFor(models.FeeTypeRecurring))
	})

	t.Run("none yields zeroed defaults", func(t *testing.T) {
		client := &fakeFeeClient{}
		lookup, err := NewManager(client, zap.NewNop()).Get(context.Background(), testOrg(t), testDoctorID)

		assert.NoError(t, err)
		assert.False(t, lookup.Found)
		assert.Equal(t, models.FeeStructure{DoctorID: testDoctorID, OrganizationID: testOrgID}, lookup.Fee)
	})

	t.Run("not found from the clinic API is not an error", func(t *testing.T) {
		client := &fakeFeeClient{listErr: exceptions.ErrClinicAPINotFound(errors.New("404"), constvars.ResourceFee)}
		lookup, err := NewManager(client, zap.NewNop()).Get(context.Background(), testOrg(t), testDoctorID)

		assert.NoError(t, err)
		assert.False(t, lookup.Found)
	})

	t.Run("fetch failure is distinguished from absence", func(t *testing.T) {
		client := &fakeFeeClient{listErr: exceptions.ErrClinicAPIUnavailable(errors.New("503"), constvars.ResourceFee)}
		_, err := NewManager(client, zap.NewNop()).Get(context.Background(), testOrg(t), testDoctorID)

		assert.True(t, exceptions.IsKind(err, exceptions.KindTransientNetwork))
	})

	t.Run("unresolved organization", func(t *testing.T) {
		client := &fakeFeeClient{}
		_, err := NewManager(client, zap.NewNop()).Get(context.Background(), session.OrganizationContext{}, testDoctorID)

		assert.True(t, exceptions.IsKind(err, exceptions.KindConfiguration))
		assert.Empty(t, client.ops)
	})
}

func TestManagerUpsertPostsOrPutsNeverBoth(t *testing.T) {
	t.Run("absent fee is created", func(t *testing.T) {
		client := &fakeFeeClient{}
		manager := NewManager(client, zap.NewNop())

		saved, err := manager.Upsert(context.Background(), testOrg(t), models.FeeStructure{DoctorID: testDoctorID, DefaultFee: 100})
		assert.NoError(t, err)
		assert.Equal(t, testOrgID, saved.OrganizationID)
		assert.Equal(t, []string{"list", "create"}, client.ops)

		client.ops = nil
		_, err = manager.Upsert(context.Background(), testOrg(t), models.FeeStructure{DoctorID: testDoctorID, DefaultFee: 120})
		assert.NoError(t, err)
		assert.Equal(t, []string{"update"}, client.ops)
		assert.Equal(t, []string{testFeeKey}, client.keys)
	})

	t.Run("existing fee is updated", func(t *testing.T) {
		client := &fakeFeeClient{fees: []models.FeeStructure{{DoctorID: testDoctorID, DefaultFee: 100}}}
		manager := NewManager(client, zap.NewNop())

		_, err := manager.Upsert(context.Background(), testOrg(t), models.FeeStructure{DoctorID: testDoctorID, DefaultFee: 150})
		assert.NoError(t, err)
		assert.Equal(t, []string{"list", "update"}, client.ops)
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		client := &fakeFeeClient{}
		_, err := NewManager(client, zap.NewNop()).Upsert(context.Background(), testOrg(t), models.FeeStructure{DoctorID: testDoctorID, EmergencyFee: -1})

		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.Empty(t, client.ops)
	})

	t.Run("failed load writes nothing", func(t *testing.T) {
		client := &fakeFeeClient{listErr: exceptions.ErrSendHTTPRequest(errors.New("refused"))}
		_, err := NewManager(client, zap.NewNop()).Upsert(context.Background(), testOrg(t), models.FeeStructure{DoctorID: testDoctorID})

		assert.Error(t, err)
		assert.Equal(t, []string{"list"}, client.ops)
	})
}

func TestManagerDeleteResetsToCreate(t *testing.T) {
	client := &fakeFeeClient{fees: []models.FeeStructure{{DoctorID: testDoctorID, DefaultFee: 100}}}
	manager := NewManager(client, zap.NewNop())
	org := testOrg(t)

	_, err := manager.Get(context.Background(), org, testDoctorID)
	assert.NoError(t, err)
	assert.NoError(t, manager.Delete(context.Background(), org, testDoctorID))

	client.ops = nil
	_, err = manager.Upsert(context.Background(), org, models.FeeStructure{DoctorID: testDoctorID, DefaultFee: 90})
	assert.NoError(t, err)
	assert.Equal(t, []string{"create"}, client.ops)
}

func TestManagerMutationsRequireOrganization(t *testing.T) {
	client := &fakeFeeClient{}
	manager := NewManager(client, zap.NewNop())
	unresolved := session.OrganizationContext{}

	_, err := manager.Upsert(context.Background(), unresolved, models.FeeStructure{DoctorID: testDoctorID, DefaultFee: 100})
	assert.True(t, exceptions.IsKind(err, exceptions.KindConfiguration))

	err = manager.Delete(context.Background(), unresolved, testDoctorID)
	assert.True(t, exceptions.IsKind(err, exceptions.KindConfiguration))

	assert.Empty(t, client.ops)
}

func TestManagerMatchesDoctorIDsRegardlessOfCase(t *testing.T) {
	upper := strings.ToUpper(testDoctorID)
	client := &fakeFeeClient{fees: []models.FeeStructure{{DoctorID: testDoctorID, OrganizationID: testOrgID, DefaultFee: 100}}}
	manager := NewManager(client, zap.NewNop())

	lookup, err := manager.Get(context.Background(), testOrg(t), upper)
	assert.NoError(t, err)
	assert.True(t, lookup.Found)

	client.ops = nil
	saved, err := manager.Upsert(context.Background(), testOrg(t), models.FeeStructure{DoctorID: upper, DefaultFee: 150})
	assert.NoError(t, err)
	assert.Equal(t, testDoctorID, saved.DoctorID)
	assert.Equal(t, []string{"update"}, client.ops)
	assert.Equal(t, []string{testFeeKey}, client.keys)
}
