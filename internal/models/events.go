package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EventKind names a push message from the realtime channel
type EventKind string

const (
	EventSourceChanged      EventKind = "source_changed"
	EventMediaAssigned      EventKind = "source_media_assigned"
	EventGroupAssigned      EventKind = "source_group_assigned"
	EventCameraAssigned     EventKind = "source_camera_assigned"
	EventMicrophoneAssigned EventKind = "source_microphone_assigned"
	EventVolumeChanged      EventKind = "volume_changed"
)

// ErrUnknownEvent is returned by DecodeEvent for events the console does not consume
var ErrUnknownEvent = errors.New("unknown event")

// Event is a decoded push message
type Event interface {
	EventKind() EventKind
}

// SourceChangedEvent reports a visibility change made by any client
type SourceChangedEvent struct {
	Scene   string `json:"scene_name"`
	Source  string `json:"source_name"`
	Visible bool   `json:"visible"`
}

func (SourceChangedEvent) EventKind() EventKind { return EventSourceChanged }

// AssignmentEvent carries the new binding of one source in one episode.
// EpisodeID is zero when the backend did not scope the event.
type AssignmentEvent struct {
	Kind       EventKind
	EpisodeID  int64
	Assignment Assignment
}

func (e AssignmentEvent) EventKind() EventKind { return e.Kind }

// VolumeChangedEvent reports a level changed outside this console
type VolumeChangedEvent struct {
	Source   string  `json:"source_name"`
	VolumeDB float64 `json:"volume_db"`
}

func (VolumeChangedEvent) EventKind() EventKind { return EventVolumeChanged }

type mediaAssignedPayload struct {
	EpisodeID  int64  `json:"episode_id"`
	SourceName string `json:"source_name"`
	MediaID    *int64 `json:"media_id"`
	Title      string `json:"title"`
}

type groupAssignedPayload struct {
	EpisodeID  int64  `json:"episode_id"`
	SourceName string `json:"source_name"`
	GroupID    *int64 `json:"group_id"`
	Name       string `json:"name"`
}

type cameraAssignedPayload struct {
	EpisodeID      int64   `json:"episode_id"`
	SourceName     string  `json:"source_name"`
	CameraTypeID   *int64  `json:"camera_type_id"`
	CameraTypeName *string `json:"camera_type_name"`
	IsDisabled     bool    `json:"is_disabled"`
}

type microphoneAssignedPayload struct {
	EpisodeID  int64      `json:"episode_id"`
	SourceName string     `json:"source_name"`
	PersonID   *int64     `json:"person_id"`
	PersonType PersonType `json:"person_type"`
	PersonName string     `json:"person_name"`
}

// DecodeEvent turns a named push message into a typed event
func DecodeEvent(name string, payload []byte) (Event, error) {
	switch EventKind(name) {
	case EventSourceChanged:
		var e SourceChangedEvent
		if err := decodePayload(name, payload, &e); err != nil {
			return nil, err
		}
		return e, nil

	case EventVolumeChanged:
		var e VolumeChangedEvent
		if err := decodePayload(name, payload, &e); err != nil {
			return nil, err
		}
		return e, nil

	case EventMediaAssigned:
		var p mediaAssignedPayload
		if err := decodePayload(name, payload, &p); err != nil {
			return nil, err
		}
		return AssignmentEvent{
			Kind:      EventMediaAssigned,
			EpisodeID: p.EpisodeID,
			Assignment: Assignment{
				Source:   p.SourceName,
				Kind:     KindMedia,
				EntityID: p.MediaID,
				Label:    p.Title,
			},
		}, nil

	case EventGroupAssigned:
		var p groupAssignedPayload
		if err := decodePayload(name, payload, &p); err != nil {
			return nil, err
		}
		return AssignmentEvent{
			Kind:      EventGroupAssigned,
			EpisodeID: p.EpisodeID,
			Assignment: Assignment{
				Source:   p.SourceName,
				Kind:     KindGroup,
				EntityID: p.GroupID,
				Label:    p.Name,
			},
		}, nil

	case EventCameraAssigned:
		var p cameraAssignedPayload
		if err := decodePayload(name, payload, &p); err != nil {
			return nil, err
		}
		a := Assignment{
			Source:   p.SourceName,
			Kind:     KindCamera,
			EntityID: p.CameraTypeID,
			Disabled: p.IsDisabled,
		}
		if p.IsDisabled {
			a.EntityID = nil
		} else if p.CameraTypeName != nil {
			a.Label = *p.CameraTypeName
		}
		return AssignmentEvent{Kind: EventCameraAssigned, EpisodeID: p.EpisodeID, Assignment: a}, nil

	case EventMicrophoneAssigned:
		var p microphoneAssignedPayload
		if err := decodePayload(name, payload, &p); err != nil {
			return nil, err
		}
		a := Assignment{Source: p.SourceName, Kind: KindPerson}
		if p.PersonName != "" {
			a.Label = p.PersonName
			a.EntityID = p.PersonID
			a.PersonType = p.PersonType
		}
		return AssignmentEvent{Kind: EventMicrophoneAssigned, EpisodeID: p.EpisodeID, Assignment: a}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, name)
}

func decodePayload(name string, payload []byte, out interface{}) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("malformed %s payload: %w", name, err)
	}
	return nil
}

// ViewUpdate is pushed to operator UIs whenever the console's view of the
// studio changes.
type ViewUpdate struct {
	Type     string       `json:"type"`
	Scene    string       `json:"scene_name,omitempty"`
	Source   string       `json:"source_name,omitempty"`
	Visible  *bool        `json:"visible,omitempty"`
	OnAir    string       `json:"on_air,omitempty"`
	Label    string       `json:"label,omitempty"`
	Disabled bool         `json:"disabled,omitempty"`
	Volume   *VolumeState `json:"volume,omitempty"`
}

const (
	ViewSource     = "source"
	ViewAssignment = "assignment"
	ViewVolume     = "volume"
	ViewOnAir      = "on_air"
	ViewReset      = "reset"
)
