package booking

import (
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRegistry(t *testing.T, size int) *Registry {
	t.Helper()
	registry, err := NewRegistry(size, time.Minute, NewFactory(newFixture().deps), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(registry.CloseAll)
	return registry
}

func TestRegistryOpenRequiresOrganization(t *testing.T) {
	registry := newTestRegistry(t, 4)

	_, err := registry.Open(context.Background(), session.OrganizationContext{})
	assert.True(t, exceptions.IsKind(err, exceptions.KindConfiguration))
	assert.Equal(t, 0, registry.Len())
}

func TestRegistryGetIsScopedToOrganization(t *testing.T) {
	registry := newTestRegistry(t, 4)
	org := testOrg(t, testOrgID)

	wizard, err := registry.Open(context.Background(), org)
	require.NoError(t, err)

	found, err := registry.Get(wizard.ID, org)
	require.NoError(t, err)
	assert.Same(t, wizard, found)

	_, err = registry.Get(wizard.ID, testOrg(t, "org_BBBBBBBBBBBBBBBBBBBBBBBBBB"))
	assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))

	_, err = registry.Get("missing", org)
	assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))

	err = registry.Close(wizard.ID, testOrg(t, "org_BBBBBBBBBBBBBBBBBBBBBBBBBB"))
	assert.Error(t, err)
	assert.False(t, wizard.IsClosed())
}

func TestRegistryClose(t *testing.T) {
	registry := newTestRegistry(t, 4)
	org := testOrg(t, testOrgID)
	wizard, err := registry.Open(context.Background(), org)
	require.NoError(t, err)

	require.NoError(t, registry.Close(wizard.ID, org))
	assert.True(t, wizard.IsClosed())
	assert.Equal(t, 0, registry.Len())

	_, err = registry.Get(wizard.ID, org)
	assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
}

func TestRegistryEvictionClosesOldestWizard(t *testing.T) {
	registry := newTestRegistry(t, 1)
	org := testOrg(t, testOrgID)

	first, err := registry.Open(context.Background(), org)
	require.NoError(t, err)
	second, err := registry.Open(context.Background(), org)
	require.NoError(t, err)

	assert.True(t, first.IsClosed())
	assert.False(t, second.IsClosed())
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryCloseIdle(t *testing.T) {
	registry := newTestRegistry(t, 4)
	org := testOrg(t, testOrgID)
	wizard, err := registry.Open(context.Background(), org)
	require.NoError(t, err)

	registry.now = func() time.Time { return testNow.Add(30 * time.Second) }
	assert.Equal(t, 0, registry.CloseIdle())

	registry.now = func() time.Time { return testNow.Add(2 * time.Minute) }
	assert.Equal(t, 1, registry.CloseIdle())
	assert.True(t, wizard.IsClosed())
	assert.Equal(t, 0, registry.Len())
}

func TestJanitorSweepsIdleSessions(t *testing.T) {
	registry := newTestRegistry(t, 4)
	_, err := registry.Open(context.Background(), testOrg(t, testOrgID))
	require.NoError(t, err)
	registry.now = func() time.Time { return testNow.Add(time.Hour) }

	janitor := NewJanitor(registry, "not a cron spec", zap.NewNop())
	janitor.Start()
	defer janitor.Stop()
	assert.NotNil(t, janitor.cron)

	janitor.runOnce()
	assert.Equal(t, 0, registry.Len())
}
