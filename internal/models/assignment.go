package models

import "fmt"

// EntityKind is the category of thing a source can be bound to
type EntityKind string

const (
	KindNone   EntityKind = ""
	KindMedia  EntityKind = "media"
	KindGroup  EntityKind = "group"
	KindCamera EntityKind = "camera"
	KindPerson EntityKind = "person"
)

// PersonType distinguishes studio staff from invited guests
type PersonType string

const (
	PersonStaff PersonType = "staff"
	PersonGuest PersonType = "guest"
)

// Assignment is the binding of one source to a domain entity for the
// current episode. A zero EntityID on a camera with Disabled set means the
// camera was switched off by an operator.
type Assignment struct {
	Source     string     `json:"source_name"`
	Kind       EntityKind `json:"kind"`
	EntityID   *int64     `json:"entity_id,omitempty"`
	PersonType PersonType `json:"person_type,omitempty"`
	Label      string     `json:"label,omitempty"`
	Disabled   bool       `json:"disabled"`
	AssignedBy string     `json:"assigned_by,omitempty"`
}

// DisplayLabel is the text a control shows for the source
func (a Assignment) DisplayLabel() string {
	if a.Disabled || a.Label == "" {
		return a.Source
	}
	return a.Label
}

// Holds reports whether the assignment binds the exclusive entity ref points at
func (a Assignment) Holds(ref EntityRef) bool {
	if a.Kind != ref.Kind || a.EntityID == nil || ref.ID == nil {
		return false
	}
	if *a.EntityID != *ref.ID {
		return false
	}
	if ref.Kind == KindPerson {
		return a.PersonType == ref.PersonType
	}
	return true
}

// IsEmpty reports whether the source is effectively unassigned
func (a Assignment) IsEmpty() bool {
	return a.Kind == KindNone || (a.EntityID == nil && !a.Disabled && a.Label == "")
}

// EntityRef names the entity an operator wants to bind to a source.
// A nil ID clears the binding (camera disable, microphone unassign).
type EntityRef struct {
	Kind       EntityKind `json:"kind" validate:"required,oneof=media group camera person"`
	ID         *int64     `json:"id,omitempty"`
	PersonType PersonType `json:"person_type,omitempty" validate:"omitempty,oneof=staff guest"`
}

func MediaRef(id int64) EntityRef {
	return EntityRef{Kind: KindMedia, ID: &id}
}

func GroupRef(id int64) EntityRef {
	return EntityRef{Kind: KindGroup, ID: &id}
}

func CameraTypeRef(id int64) EntityRef {
	return EntityRef{Kind: KindCamera, ID: &id}
}

// DisableCamera switches a camera source off
func DisableCamera() EntityRef {
	return EntityRef{Kind: KindCamera}
}

func PersonRef(id int64, personType PersonType) EntityRef {
	return EntityRef{Kind: KindPerson, ID: &id, PersonType: personType}
}

// UnassignPerson clears a microphone
func UnassignPerson() EntityRef {
	return EntityRef{Kind: KindPerson}
}

// Exclusive reports whether at most one source per episode may hold the entity
func (r EntityRef) Exclusive() bool {
	return r.ID != nil && (r.Kind == KindCamera || r.Kind == KindPerson)
}

// IsClear reports whether the ref removes a binding instead of setting one
func (r EntityRef) IsClear() bool {
	return r.ID == nil
}

func (r EntityRef) String() string {
	if r.ID == nil {
		return fmt.Sprintf("%s:none", r.Kind)
	}
	if r.Kind == KindPerson {
		return fmt.Sprintf("%s:%s:%d", r.Kind, r.PersonType, *r.ID)
	}
	return fmt.Sprintf("%s:%d", r.Kind, *r.ID)
}

// AssignmentRecord is one entry of the backend's per-episode assignment snapshot
type AssignmentRecord struct {
	Type           string `json:"type"`
	ButtonText     string `json:"button_text"`
	IsDisabled     bool   `json:"is_disabled"`
	AssignedBy     string `json:"assigned_by,omitempty"`
	MediaID        *int64 `json:"media_id,omitempty"`
	GroupID        *int64 `json:"group_id,omitempty"`
	CameraTypeID   *int64 `json:"camera_type_id,omitempty"`
	CameraTypeName string `json:"camera_type_name,omitempty"`
	StaffID        *int64 `json:"staff_id,omitempty"`
	GuestID        *int64 `json:"guest_id,omitempty"`
}

// ToAssignment converts a snapshot record into the cache representation
func (r AssignmentRecord) ToAssignment(source string) Assignment {
	a := Assignment{
		Source:     source,
		Label:      r.ButtonText,
		Disabled:   r.IsDisabled,
		AssignedBy: r.AssignedBy,
	}

	switch r.Type {
	case "media":
		a.Kind, a.EntityID = KindMedia, r.MediaID
	case "group":
		a.Kind, a.EntityID = KindGroup, r.GroupID
	case "camera":
		a.Kind, a.EntityID = KindCamera, r.CameraTypeID
		if r.IsDisabled {
			a.EntityID = nil
		}
	case "staff":
		a.Kind, a.EntityID, a.PersonType = KindPerson, r.StaffID, PersonStaff
	case "guest":
		// guests are sent under staff_id by older backends
		id := r.GuestID
		if id == nil {
			id = r.StaffID
		}
		a.Kind, a.EntityID, a.PersonType = KindPerson, id, PersonGuest
	}
	return a
}
