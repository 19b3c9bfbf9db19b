package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
	"github.com/freelance-directory/api/internal/pkg/requestid"
	"github.com/freelance-directory/api/pkg/logger"
)

const lockReleaseTimeout = 2 * time.Second

// CascadeDeleter removes a freelancer and its owning user as one logical
// operation. The two deletes are issued concurrently and are not atomic; a
// failure on either leg is reported as domain.ErrPartialDeletion.
type CascadeDeleter struct {
	freelancers ports.FreelancerRepository
	users       ports.UserRepository
	lock        ports.DeletionLock
	events      ports.EventSink
	timeout     time.Duration
	log         zerolog.Logger
}

// NewCascadeDeleter builds a CascadeDeleter. lock may be nil, in which case
// concurrent deletions of the same freelancer are not detected. A zero
// timeout leaves the caller's context deadline in charge.
func NewCascadeDeleter(
	freelancers ports.FreelancerRepository,
	users ports.UserRepository,
	lock ports.DeletionLock,
	events ports.EventSink,
	timeout time.Duration,
	log zerolog.Logger,
) *CascadeDeleter {
	return &CascadeDeleter{
		freelancers: freelancers,
		users:       users,
		lock:        lock,
		events:      events,
		timeout:     timeout,
		log:         log,
	}
}

// Delete runs the cascade for an already-resolved freelancer. The returned
// report is non-nil whenever any delete was issued.
func (d *CascadeDeleter) Delete(ctx context.Context, f *domain.Freelancer) (*domain.DeletionReport, error) {
	log := logger.WithRequest(ctx, d.log)

	if d.lock != nil {
		token, acquired, err := d.lock.Acquire(ctx, f.ID)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("freelancer_id", f.ID).Msg("deletion lock unavailable, proceeding unguarded")
		case !acquired:
			return nil, domain.ErrDeletionInProgress
		default:
			defer d.release(ctx, f.ID, token)
		}
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	report := &domain.DeletionReport{FreelancerID: f.ID, UserID: f.UserID}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, report.FreelancerErr = d.freelancers.DeleteByID(ctx, f.ID)
	}()
	if f.UserID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, report.UserErr = d.users.DeleteByID(ctx, f.UserID)
		}()
	}
	wg.Wait()

	state := report.State()
	eventType := ports.EventFreelancerDeleted
	if report.Succeeded() {
		log.Info().
			Str("freelancer_id", f.ID).
			Str("user_id", f.UserID).
			Msg("freelancer and owning user deleted")
	} else {
		eventType = ports.EventFreelancerDeletePartial
		log.Error().
			AnErr("freelancer_error", report.FreelancerErr).
			AnErr("user_error", report.UserErr).
			Str("freelancer_id", f.ID).
			Str("user_id", f.UserID).
			Str("state", string(state)).
			Msg("cascade deletion left linked records inconsistent")
	}

	if d.events != nil {
		d.events.Enqueue(ports.DirectoryEvent{
			Type:         eventType,
			SubjectID:    f.ID,
			UserID:       f.UserID,
			FreelancerID: f.ID,
			State:        string(state),
			RequestID:    requestid.From(ctx),
			OccurredAt:   time.Now().UTC(),
		})
	}

	return report, report.Err()
}

func (d *CascadeDeleter) release(ctx context.Context, freelancerID, token string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
	defer cancel()
	if err := d.lock.Release(ctx, freelancerID, token); err != nil {
		d.log.Warn().Err(err).Str("freelancer_id", freelancerID).Msg("failed to release deletion lock")
	}
}
