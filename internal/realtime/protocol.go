package realtime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Engine.IO packet types
const (
	eioOpen    byte = '0'
	eioClose   byte = '1'
	eioPing    byte = '2'
	eioPong    byte = '3'
	eioMessage byte = '4'
)

// Socket.IO packet types, carried inside an Engine.IO message
const (
	sioConnect      byte = '0'
	sioDisconnect   byte = '1'
	sioEvent        byte = '2'
	sioAck          byte = '3'
	sioConnectError byte = '4'
)

// packet is one decoded frame. ID is -1 when the frame carries no ack id.
type packet struct {
	EIO  byte
	SIO  byte
	ID   int64
	Data json.RawMessage
}

func parsePacket(raw []byte) (packet, error) {
	p := packet{ID: -1}
	if len(raw) == 0 {
		return p, fmt.Errorf("empty frame")
	}

	p.EIO = raw[0]
	rest := raw[1:]
	if p.EIO != eioMessage {
		p.Data = rest
		return p, nil
	}
	if len(rest) == 0 {
		return p, fmt.Errorf("message frame without socket packet")
	}

	p.SIO = rest[0]
	rest = rest[1:]

	// namespace, only present for non-default namespaces
	if len(rest) > 0 && rest[0] == '/' {
		if i := bytes.IndexByte(rest, ','); i >= 0 {
			rest = rest[i+1:]
		} else {
			rest = nil
		}
	}

	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n > 0 {
		id, err := strconv.ParseInt(string(rest[:n]), 10, 64)
		if err != nil {
			return p, fmt.Errorf("bad ack id: %w", err)
		}
		p.ID = id
		rest = rest[n:]
	}

	p.Data = rest
	return p, nil
}

// encodeEvent builds `42<id>["event",args...]`
func encodeEvent(id int64, event string, args ...interface{}) ([]byte, error) {
	payload := make([]interface{}, 0, len(args)+1)
	payload = append(payload, event)
	payload = append(payload, args...)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", event, err)
	}

	var buf bytes.Buffer
	buf.WriteByte(eioMessage)
	buf.WriteByte(sioEvent)
	if id >= 0 {
		buf.WriteString(strconv.FormatInt(id, 10))
	}
	buf.Write(body)
	return buf.Bytes(), nil
}

// encodeArg turns a call argument into the form the backend handlers expect:
// strings go through untouched, everything else as a JSON document string.
func encodeArg(arg interface{}) (interface{}, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	default:
		doc, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(doc), nil
	}
}

// splitEvent extracts the event name and first argument from an event frame
func splitEvent(data json.RawMessage) (string, json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return "", nil, fmt.Errorf("malformed event frame: %w", err)
	}
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("event frame without name")
	}

	var name string
	if err := json.Unmarshal(parts[0], &name); err != nil {
		return "", nil, fmt.Errorf("malformed event name: %w", err)
	}
	if len(parts) < 2 {
		return name, json.RawMessage("{}"), nil
	}
	return name, unwrapString(parts[1]), nil
}

// unwrapString returns the JSON document inside a JSON string, or raw as is
func unwrapString(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return raw
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return raw
	}
	return json.RawMessage(s)
}

// ackEnvelope is the reply every backend command handler returns
type ackEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func decodeAck(data json.RawMessage) (ackEnvelope, error) {
	var env ackEnvelope

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return env, fmt.Errorf("malformed ack frame: %w", err)
	}
	if len(parts) == 0 {
		return env, fmt.Errorf("empty ack")
	}

	if err := json.Unmarshal(unwrapString(parts[0]), &env); err != nil {
		return env, fmt.Errorf("malformed ack payload: %w", err)
	}
	return env, nil
}
