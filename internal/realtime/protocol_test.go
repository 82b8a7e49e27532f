package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePacket(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		eio  byte
		sio  byte
		id   int64
		data string
	}{
		{name: "ping", raw: "2", eio: eioPing, id: -1, data: ""},
		{name: "open", raw: `0{"sid":"x"}`, eio: eioOpen, id: -1, data: `{"sid":"x"}`},
		{name: "connect", raw: `40{"sid":"y"}`, eio: eioMessage, sio: sioConnect, id: -1, data: `{"sid":"y"}`},
		{name: "event", raw: `42["source_changed",{}]`, eio: eioMessage, sio: sioEvent, id: -1, data: `["source_changed",{}]`},
		{name: "ack", raw: `4317["{}"]`, eio: eioMessage, sio: sioAck, id: 17, data: `["{}"]`},
		{name: "namespaced ack", raw: `43/studio,5["{}"]`, eio: eioMessage, sio: sioAck, id: 5, data: `["{}"]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := parsePacket([]byte(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.eio, p.EIO)
			assert.Equal(t, tc.sio, p.SIO)
			assert.Equal(t, tc.id, p.ID)
			assert.Equal(t, tc.data, string(p.Data))
		})
	}

	t.Run("empty frame", func(t *testing.T) {
		_, err := parsePacket(nil)
		assert.Error(t, err)
	})
}

func TestEncodeEvent(t *testing.T) {
	arg, err := encodeArg(map[string]bool{"to_top": true})
	require.NoError(t, err)

	frame, err := encodeEvent(3, "set_source_index", arg)
	require.NoError(t, err)
	assert.Equal(t, `423["set_source_index","{\"to_top\":true}"]`, string(frame))

	raw, err := encodeArg("KAMERY")
	require.NoError(t, err)
	frame, err = encodeEvent(4, "get_sources", raw)
	require.NoError(t, err)
	assert.Equal(t, `424["get_sources","KAMERY"]`, string(frame))
}

func TestDecodeAck(t *testing.T) {
	t.Run("string wrapped reply", func(t *testing.T) {
		env, err := decodeAck([]byte(`["{\"success\":true,\"data\":{\"muted\":3}}"]`))
		require.NoError(t, err)
		assert.True(t, env.Success)
		assert.JSONEq(t, `{"muted":3}`, string(env.Data))
	})

	t.Run("object reply", func(t *testing.T) {
		env, err := decodeAck([]byte(`[{"success":false,"error":"OBS not connected"}]`))
		require.NoError(t, err)
		assert.False(t, env.Success)
		assert.Equal(t, "OBS not connected", env.Error)
	})

	t.Run("empty ack", func(t *testing.T) {
		_, err := decodeAck([]byte(`[]`))
		assert.Error(t, err)
	})
}
