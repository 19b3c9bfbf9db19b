package domain

// Freelancer is a profile owned by at most one User. UserID is a weak
// back-reference: it is used for lookups and cascade deletion only.
type Freelancer struct {
	ID     string       `json:"_id"`
	UserID string       `json:"-"`
	Owner  *UserSummary `json:"user,omitempty"`
	Name   string       `json:"name"`
	Phone  string       `json:"phone"`
	Skill  string       `json:"skill"`
	Hobby  string       `json:"hobby"`
}

// OwnedBy reports whether the freelancer's owning-user reference is subject.
func (f *Freelancer) OwnedBy(subject string) bool {
	return f.UserID != "" && f.UserID == subject
}
