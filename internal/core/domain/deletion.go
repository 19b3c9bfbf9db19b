package domain

import (
	"errors"
	"fmt"
)

// DeletionState is the terminal state of one cascade deletion.
type DeletionState string

const (
	StateBothDeleted           DeletionState = "both_deleted"
	StateFreelancerOnlyDeleted DeletionState = "freelancer_only_deleted"
	StateUserOnlyDeleted       DeletionState = "user_only_deleted"
	StateNeitherDeleted        DeletionState = "neither_deleted"
)

// DeletionReport records the outcome of each leg of a cascade deletion.
// A leg with a nil error left its record absent, whether it removed it or
// found nothing to remove.
type DeletionReport struct {
	FreelancerID  string
	UserID        string
	FreelancerErr error
	UserErr       error
}

// State resolves the report into one of the four terminal states.
func (r *DeletionReport) State() DeletionState {
	switch {
	case r.FreelancerErr == nil && r.UserErr == nil:
		return StateBothDeleted
	case r.FreelancerErr == nil:
		return StateFreelancerOnlyDeleted
	case r.UserErr == nil:
		return StateUserOnlyDeleted
	default:
		return StateNeitherDeleted
	}
}

// Succeeded is true only for StateBothDeleted.
func (r *DeletionReport) Succeeded() bool {
	return r.State() == StateBothDeleted
}

// Err returns nil on success, otherwise an error wrapping ErrPartialDeletion
// and every leg failure.
func (r *DeletionReport) Err() error {
	if r.Succeeded() {
		return nil
	}
	errs := []error{fmt.Errorf("%w (%s)", ErrPartialDeletion, r.State())}
	if r.FreelancerErr != nil {
		errs = append(errs, fmt.Errorf("delete freelancer %s: %w", r.FreelancerID, r.FreelancerErr))
	}
	if r.UserErr != nil {
		errs = append(errs, fmt.Errorf("delete user %s: %w", r.UserID, r.UserErr))
	}
	return errors.Join(errs...)
}
