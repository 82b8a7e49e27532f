// Package realtime talks to the production backend's socket channel: it
// issues acknowledged commands and surfaces broadcast pushes as typed events.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"
	"studio-console/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	eventBuffer       = 256
	handshakeTimeout  = 10 * time.Second
	writeTimeout      = 5 * time.Second
	minReconnectDelay = time.Second
	maxReconnectDelay = 30 * time.Second

	defaultPingInterval = 25 * time.Second
	defaultPingTimeout  = 20 * time.Second
)

// Engine.IO protocol revisions. Revision 3 servers expect the client to ping,
// revision 4 servers ping the client.
const (
	EngineIOv3 = 3
	EngineIOv4 = 4
)

// heartbeat is the keepalive timing announced in the open packet, in ms
type heartbeat struct {
	Interval int64 `json:"pingInterval"`
	Timeout  int64 `json:"pingTimeout"`
}

func parseHeartbeat(data []byte) heartbeat {
	var hb heartbeat
	_ = json.Unmarshal(data, &hb)
	return hb
}

func (h heartbeat) interval() time.Duration {
	if h.Interval <= 0 {
		return defaultPingInterval
	}
	return time.Duration(h.Interval) * time.Millisecond
}

func (h heartbeat) timeout() time.Duration {
	if h.Timeout <= 0 {
		return defaultPingTimeout
	}
	return time.Duration(h.Timeout) * time.Millisecond
}

type ackResult struct {
	env ackEnvelope
	err error
}

// Client is a single realtime connection shared by every console component
type Client struct {
	url       string
	timeout   time.Duration
	engineIO  int
	dialer    *websocket.Dialer
	sessionID string

	writeMu sync.Mutex

	hooksMu   sync.Mutex
	onConnect []func(context.Context)

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	nextID    int64
	pending   map[int64]chan ackResult

	events chan models.Event
}

// NewClient creates a client for the socket endpoint at rawURL speaking the
// given Engine.IO revision. Every call is bounded by timeout.
func NewClient(rawURL string, timeout time.Duration, engineIO int) *Client {
	if engineIO != EngineIOv3 {
		engineIO = EngineIOv4
	}
	return &Client{
		url:       rawURL,
		timeout:   timeout,
		engineIO:  engineIO,
		dialer:    &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		sessionID: uuid.NewString(),
		pending:   make(map[int64]chan ackResult),
		events:    make(chan models.Event, eventBuffer),
	}
}

// Events delivers decoded pushes in arrival order
func (c *Client) Events() <-chan models.Event {
	return c.events
}

// Connected reports whether the socket handshake has completed
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// SessionID identifies this console towards the backend
func (c *Client) SessionID() string {
	return c.sessionID
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return "", fmt.Errorf("invalid realtime url: %w", err)
	}
	q := u.Query()
	q.Set("EIO", strconv.Itoa(c.engineIO))
	q.Set("transport", "websocket")
	q.Set("console", c.sessionID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// OnConnect registers fn to run after every completed handshake, the first
// one and each reconnect. Hooks run in order on the connecting goroutine.
func (c *Client) OnConnect(fn func(ctx context.Context)) {
	c.hooksMu.Lock()
	c.onConnect = append(c.onConnect, fn)
	c.hooksMu.Unlock()
}

func (c *Client) runConnectHooks(ctx context.Context) {
	c.hooksMu.Lock()
	hooks := append(([]func(context.Context))(nil), c.onConnect...)
	c.hooksMu.Unlock()

	for _, fn := range hooks {
		fn(ctx)
	}
}

// Connect dials the backend and completes the socket handshake. Incoming
// frames are served by a background reader until the connection drops.
func (c *Client) Connect(ctx context.Context) error {
	log := logger.WithContext(ctx).WithField("url", c.url)

	endpoint, err := c.endpoint()
	if err != nil {
		return err
	}

	conn, _, err := c.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		log.Errorf("Realtime dial failed: %v", err)
		return fmt.Errorf("dial realtime: %w", err)
	}

	hb, err := c.handshake(conn)
	if err != nil {
		conn.Close()
		log.Errorf("Realtime handshake failed: %v", err)
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	log.Infof("Realtime connected (session %s, EIO %d)", c.sessionID, c.engineIO)
	done := make(chan struct{})
	go c.readLoop(conn, hb, done)
	if c.engineIO == EngineIOv3 {
		go c.pingLoop(conn, hb.interval(), done)
	}

	c.runConnectHooks(ctx)
	return nil
}

func (c *Client) handshake(conn *websocket.Conn) (heartbeat, error) {
	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	defer conn.SetReadDeadline(time.Time{})

	_, raw, err := conn.ReadMessage()
	if err != nil {
		return heartbeat{}, fmt.Errorf("read open packet: %w", err)
	}
	open, err := parsePacket(raw)
	if err != nil || open.EIO != eioOpen {
		return heartbeat{}, fmt.Errorf("unexpected open packet %q", raw)
	}
	hb := parseHeartbeat(open.Data)

	// v3 servers join the default namespace without being asked
	if c.engineIO != EngineIOv3 {
		if err := conn.WriteMessage(websocket.TextMessage, []byte{eioMessage, sioConnect}); err != nil {
			return heartbeat{}, fmt.Errorf("send connect: %w", err)
		}
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return heartbeat{}, fmt.Errorf("read connect reply: %w", err)
		}
		p, err := parsePacket(raw)
		if err != nil {
			return heartbeat{}, err
		}
		switch {
		case p.EIO == eioPing:
			if err := conn.WriteMessage(websocket.TextMessage, []byte{eioPong}); err != nil {
				return heartbeat{}, fmt.Errorf("send pong: %w", err)
			}
		case p.EIO == eioMessage && p.SIO == sioConnect:
			return hb, nil
		case p.EIO == eioMessage && p.SIO == sioConnectError:
			return heartbeat{}, fmt.Errorf("connect refused: %s", p.Data)
		}
	}
}

// pingLoop keeps a v3 session alive until done closes
func (c *Client) pingLoop(conn *websocket.Conn, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.write(conn, []byte{eioPing}); err != nil {
				logger.New().Warnf("Realtime ping failed: %v", err)
				conn.Close()
				return
			}
		}
	}
}

// Run keeps the connection up until ctx is done, redialing with backoff
func (c *Client) Run(ctx context.Context) {
	log := logger.WithContext(ctx)
	delay := minReconnectDelay

	for {
		if !c.Connected() {
			if err := c.Connect(ctx); err != nil {
				log.Warnf("Realtime reconnect in %s: %v", delay, err)
				select {
				case <-ctx.Done():
					return
				case <-time.After(delay):
				}
				delay *= 2
				if delay > maxReconnectDelay {
					delay = maxReconnectDelay
				}
				continue
			}
			delay = minReconnectDelay
		}

		select {
		case <-ctx.Done():
			c.Close()
			return
		case <-time.After(minReconnectDelay):
		}
	}
}

// Close drops the connection and fails every pending call
func (c *Client) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return nil
	}

	c.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
	c.writeMu.Unlock()

	err := conn.Close()
	c.dropConnection(conn)
	return err
}

func (c *Client) dropConnection(conn *websocket.Conn) {
	c.mu.Lock()
	if c.conn != conn {
		c.mu.Unlock()
		return
	}
	c.conn = nil
	c.connected = false
	pending := c.pending
	c.pending = make(map[int64]chan ackResult)
	c.mu.Unlock()

	for _, ch := range pending {
		ch <- ackResult{err: apperrors.ErrConnClosed}
	}
}

// readLoop serves conn until it fails. A silent peer is dropped once a full
// ping round trip has passed without a frame.
func (c *Client) readLoop(conn *websocket.Conn, hb heartbeat, done chan<- struct{}) {
	log := logger.New()
	defer close(done)
	defer c.dropConnection(conn)

	idle := hb.interval() + hb.timeout()
	for {
		_ = conn.SetReadDeadline(time.Now().Add(idle))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Warnf("Realtime read failed: %v", err)
			}
			return
		}

		p, err := parsePacket(raw)
		if err != nil {
			log.Warnf("Dropping realtime frame: %v", err)
			continue
		}

		switch p.EIO {
		case eioPing:
			if err := c.write(conn, []byte{eioPong}); err != nil {
				log.Warnf("Realtime pong failed: %v", err)
				return
			}
		case eioClose:
			return
		case eioMessage:
			c.dispatch(p)
		}
	}
}

func (c *Client) dispatch(p packet) {
	log := logger.New()

	switch p.SIO {
	case sioAck:
		c.mu.Lock()
		ch, ok := c.pending[p.ID]
		delete(c.pending, p.ID)
		c.mu.Unlock()
		if !ok {
			log.Debugf("Late or unknown ack %d dropped", p.ID)
			return
		}
		env, err := decodeAck(p.Data)
		ch <- ackResult{env: env, err: err}

	case sioEvent:
		name, payload, err := splitEvent(p.Data)
		if err != nil {
			log.Warnf("Dropping push: %v", err)
			return
		}
		evt, err := models.DecodeEvent(name, payload)
		if err != nil {
			if errors.Is(err, models.ErrUnknownEvent) {
				log.Debugf("Ignoring push %s", name)
			} else {
				log.Warnf("Dropping push %s: %v", name, err)
			}
			return
		}
		select {
		case c.events <- evt:
		default:
			log.Errorf("Event buffer full, dropping %s", name)
		}

	case sioDisconnect:
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn != nil {
			conn.Close()
		}
	}
}

func (c *Client) write(conn *websocket.Conn, frame []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, frame)
}

// Call issues event with arg and waits for exactly one acknowledgement. The
// ack's data document is returned; a rejected ack becomes a BackendError.
func (c *Client) Call(ctx context.Context, event string, arg interface{}) (json.RawMessage, error) {
	encoded, err := encodeArg(arg)
	if err != nil {
		return nil, fmt.Errorf("encode %s argument: %w", event, err)
	}

	c.mu.Lock()
	conn := c.conn
	if conn == nil || !c.connected {
		c.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", event, apperrors.ErrNotConnected)
	}
	id := c.nextID
	c.nextID++
	ch := make(chan ackResult, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	var args []interface{}
	if encoded != nil {
		args = append(args, encoded)
	}
	frame, err := encodeEvent(id, event, args...)
	if err != nil {
		c.forget(id)
		return nil, err
	}

	if err := c.write(conn, frame); err != nil {
		c.forget(id)
		return nil, fmt.Errorf("%s: send: %w", event, err)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("%s: %w", event, res.err)
		}
		if !res.env.Success {
			return nil, apperrors.NewBackendError(event, 0, res.env.Error)
		}
		return res.env.Data, nil
	case <-timer.C:
		c.forget(id)
		return nil, fmt.Errorf("%s: %w", event, apperrors.ErrRequestTimeout)
	case <-ctx.Done():
		c.forget(id)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: %w", event, apperrors.ErrRequestTimeout)
		}
		return nil, fmt.Errorf("%s: %w", event, ctx.Err())
	}
}

func (c *Client) forget(id int64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}
