package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration is fatal and only ever returned before the server starts.
var ErrConfiguration = errors.New("configuration error")
var ErrMissingSigningSecret = fmt.Errorf("%w: jwtPrivateKey is not defined", ErrConfiguration)

var ErrInvalidToken = errors.New("invalid token")
var ErrMissingToken = fmt.Errorf("%w: no token provided", ErrInvalidToken)
var ErrForbidden = errors.New("access forbidden")

var ErrNotFound = errors.New("not found")
var ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
var ErrFreelancerNotFound = fmt.Errorf("freelancer %w", ErrNotFound)
var ErrSkillNotFound = fmt.Errorf("skill %w", ErrNotFound)

var ErrUserExists = errors.New("user already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrDuplicatePhone = errors.New("phone number already in use")
var ErrOwnerNotFound = errors.New("owning user does not exist")

// ErrPartialDeletion signals that a cascade deletion may have removed one
// record of a linked pair but not the other.
var ErrPartialDeletion = errors.New("cascade deletion incomplete")
var ErrDeletionInProgress = errors.New("deletion already in progress")
var ErrProfileExists = errors.New("user already has a freelancer profile")
