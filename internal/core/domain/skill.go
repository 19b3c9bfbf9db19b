package domain

// Skill is a catalog entry with no ownership relation.
type Skill struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
