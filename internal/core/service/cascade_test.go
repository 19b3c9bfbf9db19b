package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
)

type cascadeFixture struct {
	users       *stubUserRepo
	freelancers *stubFreelancerRepo
	lock        *stubLock
	sink        *recordingSink
	svc         *FreelancerService
}

func newCascadeFixture() *cascadeFixture {
	fx := &cascadeFixture{
		users:       newStubUserRepo(),
		freelancers: newStubFreelancerRepo(),
		lock:        newStubLock(),
		sink:        &recordingSink{},
	}
	cascade := NewCascadeDeleter(fx.freelancers, fx.users, fx.lock, fx.sink, time.Second, zerolog.Nop())
	fx.svc = NewFreelancerService(fx.freelancers, fx.users, cascade, zerolog.Nop())

	fx.users.put(&domain.User{ID: "U1", Email: "u1@example.com", Role: domain.RoleFreelancer})
	fx.freelancers.put(&domain.Freelancer{ID: "F1", UserID: "U1", Name: "John Smith", Phone: "01234567890"})
	return fx
}

var admin = domain.Claims{Subject: "A1", Role: domain.RoleCompany, IsAdmin: true}

func TestCascade_BothDeleted(t *testing.T) {
	fx := newCascadeFixture()

	report, err := fx.svc.Delete(context.Background(), admin, "F1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateBothDeleted, report.State())
	assert.False(t, fx.users.has("U1"))
	assert.False(t, fx.freelancers.has("F1"))
	assert.Equal(t, 1, fx.users.deleteCalls())
	assert.Equal(t, 1, fx.freelancers.deleteCalls())
	assert.Equal(t, []string{ports.EventFreelancerDeleted}, fx.sink.types())
	assert.Equal(t, []string{"F1"}, fx.lock.released)
}

func TestCascade_OwnerMayDeleteOwnProfile(t *testing.T) {
	fx := newCascadeFixture()

	_, err := fx.svc.Delete(context.Background(), domain.Claims{Subject: "U1", Role: domain.RoleFreelancer}, "F1")
	require.NoError(t, err)
	assert.False(t, fx.freelancers.has("F1"))
}

func TestCascade_NotFoundHasNoSideEffects(t *testing.T) {
	fx := newCascadeFixture()

	report, err := fx.svc.Delete(context.Background(), admin, "missing")
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrPartialDeletion)
	assert.Zero(t, fx.users.deleteCalls())
	assert.Zero(t, fx.freelancers.deleteCalls())
	assert.Empty(t, fx.sink.types())
}

func TestCascade_StrangerIsForbidden(t *testing.T) {
	fx := newCascadeFixture()

	_, err := fx.svc.Delete(context.Background(), domain.Claims{Subject: "U9", Role: domain.RoleFreelancer}, "F1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, fx.users.deleteCalls())
	assert.Zero(t, fx.freelancers.deleteCalls())
}

func TestCascade_UserLegFails(t *testing.T) {
	fx := newCascadeFixture()
	fx.users.deleteErr = errors.New("store unavailable")

	report, err := fx.svc.Delete(context.Background(), admin, "F1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPartialDeletion)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.StateFreelancerOnlyDeleted, report.State())
	assert.False(t, fx.freelancers.has("F1"))
	assert.True(t, fx.users.has("U1"))
	assert.Equal(t, []string{ports.EventFreelancerDeletePartial}, fx.sink.types())
}

func TestCascade_FreelancerLegFails(t *testing.T) {
	fx := newCascadeFixture()
	fx.freelancers.deleteErr = errors.New("store unavailable")

	report, err := fx.svc.Delete(context.Background(), admin, "F1")
	assert.ErrorIs(t, err, domain.ErrPartialDeletion)
	assert.Equal(t, domain.StateUserOnlyDeleted, report.State())
	assert.True(t, fx.freelancers.has("F1"))
	assert.False(t, fx.users.has("U1"))
}

func TestCascade_BothLegsFail(t *testing.T) {
	fx := newCascadeFixture()
	fx.freelancers.deleteErr = errors.New("store unavailable")
	fx.users.deleteErr = errors.New("store unavailable")

	report, err := fx.svc.Delete(context.Background(), admin, "F1")
	assert.ErrorIs(t, err, domain.ErrPartialDeletion)
	assert.Equal(t, domain.StateNeitherDeleted, report.State())
	assert.Equal(t, 1, fx.users.deleteCalls())
	assert.Equal(t, 1, fx.freelancers.deleteCalls())
}

func TestCascade_DeletionInProgress(t *testing.T) {
	fx := newCascadeFixture()
	fx.lock.held["F1"] = true

	_, err := fx.svc.Delete(context.Background(), admin, "F1")
	assert.ErrorIs(t, err, domain.ErrDeletionInProgress)
	assert.Zero(t, fx.users.deleteCalls())
	assert.Zero(t, fx.freelancers.deleteCalls())
}

func TestCascade_LockFailureProceeds(t *testing.T) {
	fx := newCascadeFixture()
	fx.lock.acquireErr = errors.New("redis down")

	report, err := fx.svc.Delete(context.Background(), admin, "F1")
	require.NoError(t, err)
	assert.True(t, report.Succeeded())
	assert.Empty(t, fx.lock.released)
}

func TestCascade_OwnerlessProfile(t *testing.T) {
	fx := newCascadeFixture()
	fx.freelancers.put(&domain.Freelancer{ID: "F2", Name: "Jane Orphan", Phone: "2"})

	report, err := fx.svc.Delete(context.Background(), admin, "F2")
	require.NoError(t, err)
	assert.True(t, report.Succeeded())
	assert.Zero(t, fx.users.deleteCalls())
}

func TestCascade_OwnerAlreadyGone(t *testing.T) {
	fx := newCascadeFixture()
	fx.freelancers.put(&domain.Freelancer{ID: "F3", UserID: "U404", Name: "Ghost Owner", Phone: "3"})

	report, err := fx.svc.Delete(context.Background(), admin, "F3")
	require.NoError(t, err)
	assert.Equal(t, domain.StateBothDeleted, report.State())
}
