package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	t.Run("media assigned", func(t *testing.T) {
		evt, err := DecodeEvent("source_media_assigned",
			[]byte(`{"episode_id":7,"source_name":"Media1","media_id":12,"title":"Intro"}`))
		require.NoError(t, err)

		ae, ok := evt.(AssignmentEvent)
		require.True(t, ok)
		assert.Equal(t, int64(7), ae.EpisodeID)
		assert.Equal(t, KindMedia, ae.Assignment.Kind)
		assert.Equal(t, int64(12), *ae.Assignment.EntityID)
		assert.Equal(t, "Intro", ae.Assignment.DisplayLabel())
	})

	t.Run("disabled camera shows raw source name", func(t *testing.T) {
		evt, err := DecodeEvent("source_camera_assigned",
			[]byte(`{"episode_id":7,"source_name":"Kamera2","camera_type_id":null,"camera_type_name":null,"is_disabled":true}`))
		require.NoError(t, err)

		ae := evt.(AssignmentEvent)
		assert.True(t, ae.Assignment.Disabled)
		assert.Nil(t, ae.Assignment.EntityID)
		assert.Equal(t, "Kamera2", ae.Assignment.DisplayLabel())
	})

	t.Run("empty person name clears microphone", func(t *testing.T) {
		evt, err := DecodeEvent("source_microphone_assigned",
			[]byte(`{"source_name":"Mic1","person_name":""}`))
		require.NoError(t, err)

		ae := evt.(AssignmentEvent)
		assert.Equal(t, int64(0), ae.EpisodeID)
		assert.True(t, ae.Assignment.IsEmpty())
		assert.Equal(t, "Mic1", ae.Assignment.DisplayLabel())
	})

	t.Run("source changed", func(t *testing.T) {
		evt, err := DecodeEvent("source_changed",
			[]byte(`{"scene_name":"KAMERY","source_name":"Kamera1","visible":true}`))
		require.NoError(t, err)
		assert.Equal(t, SourceChangedEvent{Scene: "KAMERY", Source: "Kamera1", Visible: true}, evt)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := DecodeEvent("volume_changed", []byte(`{"volume_db":"loud"}`))
		assert.Error(t, err)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := DecodeEvent("overlay_message", []byte(`{}`))
		assert.True(t, errors.Is(err, ErrUnknownEvent))
	})
}

func TestAssignmentRecord(t *testing.T) {
	id := int64(3)

	t.Run("guest under staff id", func(t *testing.T) {
		a := AssignmentRecord{Type: "guest", StaffID: &id, ButtonText: "Jan Nowak"}.ToAssignment("Mic2")
		assert.Equal(t, KindPerson, a.Kind)
		assert.Equal(t, PersonGuest, a.PersonType)
		assert.True(t, a.Holds(PersonRef(3, PersonGuest)))
		assert.False(t, a.Holds(PersonRef(3, PersonStaff)))
	})

	t.Run("camera holds its type", func(t *testing.T) {
		a := AssignmentRecord{Type: "camera", CameraTypeID: &id, ButtonText: "Szeroki"}.ToAssignment("Kamera1")
		assert.True(t, a.Holds(CameraTypeRef(3)))
		assert.False(t, a.Holds(CameraTypeRef(4)))
		assert.False(t, a.Holds(DisableCamera()))
	})
}
