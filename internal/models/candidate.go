package models

// Episode is the unit of production the assignments are scoped to
type Episode struct {
	ID      int64  `json:"id"`
	Title   string `json:"title,omitempty"`
	Number  int    `json:"episode_number,omitempty"`
	Current bool   `json:"is_current,omitempty"`
}

// Candidate is one choice offered when binding a source
type Candidate struct {
	ID         int64      `json:"id"`
	Kind       EntityKind `json:"kind"`
	PersonType PersonType `json:"person_type,omitempty"`
	Name       string     `json:"name"`
	Group      string     `json:"group,omitempty"`
	IsSystem   bool       `json:"is_system,omitempty"`
	IsCurrent  bool       `json:"is_current"`
	IsAssigned bool       `json:"is_assigned"`
	AssignedTo string     `json:"assigned_to,omitempty"`
}

// Selectable reports whether choosing the candidate can succeed
func (c Candidate) Selectable() bool {
	return !c.IsAssigned || c.IsCurrent
}

// Ref builds the entity reference for this candidate
func (c Candidate) Ref() EntityRef {
	id := c.ID
	return EntityRef{Kind: c.Kind, ID: &id, PersonType: c.PersonType}
}

// AutoAssignResult reports what the backend bound to one source on its own
type AutoAssignResult struct {
	Assigned bool   `json:"assigned"`
	MediaID  *int64 `json:"media_id,omitempty"`
	GroupID  *int64 `json:"group_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Name     string `json:"name,omitempty"`
}
