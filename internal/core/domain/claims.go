package domain

// Claims is the identity/role/admin tuple embedded in a session token.
type Claims struct {
	Subject string
	Role    string
	IsAdmin bool
}
