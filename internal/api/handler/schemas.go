package handler

import "github.com/freelance-directory/api/internal/core/domain"

type registerRequest struct {
	Email    string `json:"email"    validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,min=5,max=255"`
	Role     string `json:"role"     validate:"required,oneof=Freelancer Company"`
}

type registerResponse struct {
	ID      string `json:"_id"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// freelancerRequest is shared by create and update. An omitted user links the
// caller, or for an admin leaves the profile without an owner.
type freelancerRequest struct {
	User  string `json:"user"  validate:"omitempty,mongodb"`
	Name  string `json:"name"  validate:"required,min=5,max=50"`
	Phone string `json:"phone" validate:"required,max=20"`
	Skill string `json:"skill" validate:"required,max=50"`
	Hobby string `json:"hobby" validate:"required,max=50"`
}

type skillRequest struct {
	Name string `json:"name" validate:"required,min=3,max=50"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type deletionResponse struct {
	Message string               `json:"message"`
	State   domain.DeletionState `json:"state"`
}
