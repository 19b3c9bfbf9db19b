package domain

const (
	RoleFreelancer = "Freelancer"
	RoleCompany    = "Company"
)

// User models a registered identity. Email is unique across all users.
type User struct {
	ID           string `json:"_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	IsAdmin      bool   `json:"isAdmin"`
}

// Claims returns the claim set a session token for u carries.
func (u *User) Claims() Claims {
	return Claims{Subject: u.ID, Role: u.Role, IsAdmin: u.IsAdmin}
}

// UserSummary is the password-free view of a User embedded in freelancer reads.
type UserSummary struct {
	ID      string `json:"_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}
