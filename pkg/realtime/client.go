package realtime

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	json "github.com/json-iterator/go"
	"github.com/lumen-hq/lumen-cli/pkg/config"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// Handler receives the raw payload of a pushed event. Handlers run on the
// read loop, so delivery preserves arrival order; they must be quick and
// idempotent against events arriving before their REST baseline.
type Handler func(payload json.RawMessage)

// Config holds realtime client configuration
type Config struct {
	Host                 string
	Port                 int
	Path                 string
	UseTLS               bool
	ConnectTimeoutMs     int
	HeartbeatIntervalMs  int
	ReconnectDelayMs     int
	MaxReconnectAttempts int
}

// DefaultConfig returns a development configuration. Reconnection is a
// fixed delay with a bounded attempt count; once the budget is spent the
// client stays disconnected until the next explicit Connect.
func DefaultConfig() Config {
	return Config{
		Host:                 "localhost",
		Port:                 8090,
		Path:                 "/api/v1/ws",
		UseTLS:               false,
		ConnectTimeoutMs:     15000,
		HeartbeatIntervalMs:  30000,
		ReconnectDelayMs:     1000,
		MaxReconnectAttempts: 5,
	}
}

// ConfigFromSettings builds a Config from the loaded configuration
func ConfigFromSettings() Config {
	return Config{
		Host:                 config.GetString("socket.host"),
		Port:                 config.GetInt("socket.port"),
		Path:                 config.GetString("socket.path"),
		UseTLS:               config.GetBool("socket.use_tls"),
		ConnectTimeoutMs:     config.GetInt("socket.connect_timeout_ms"),
		HeartbeatIntervalMs:  30000,
		ReconnectDelayMs:     config.GetInt("socket.reconnect_delay_ms"),
		MaxReconnectAttempts: config.GetInt("socket.max_reconnect_attempts"),
	}
}

// ConnectionState represents the state of the realtime connection
type ConnectionState int

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
	StateReconnecting
)

// ConnectionStats holds connection statistics
type ConnectionStats struct {
	MessagesReceived int64
	MessagesSent     int64
	ReconnectCount   int
	LastError        string
	ConnectedAt      time.Time
	DisconnectedAt   time.Time
}

type listenerEntry struct {
	id int
	fn Handler
}

// Client owns the single realtime channel for a session. Only the client
// connects or disconnects; everything else subscribes through On and reads
// the connected flag.
type Client struct {
	config Config

	mu     sync.RWMutex
	conn   *websocket.Conn
	userID string
	token  string
	ctx    context.Context
	cancel context.CancelFunc

	state atomic.Value // ConnectionState

	listenersMu    sync.RWMutex
	listeners      map[EventType][]listenerEntry
	reconnectHooks []listenerEntry
	nextListener   int

	statsMu sync.RWMutex
	stats   ConnectionStats
}

// NewClient creates a new realtime client
func NewClient(cfg Config) *Client {
	c := &Client{
		config:    cfg,
		listeners: make(map[EventType][]listenerEntry),
	}
	c.state.Store(StateDisconnected)
	return c
}

// Connect opens the realtime channel for the given session. A missing user
// id or token makes this a silent no-op: the guard, not an error.
func (c *Client) Connect(userID, token string) error {
	if userID == "" || token == "" {
		return nil
	}

	// A live channel or an in-flight retry loop already owns the
	// connection; overwriting its context here would leave two sockets.
	switch c.getState() {
	case StateConnected, StateConnecting, StateReconnecting:
		return nil
	}

	c.mu.Lock()
	c.userID = userID
	c.token = token
	ctx, cancel := context.WithCancel(context.Background())
	c.ctx = ctx
	c.cancel = cancel
	c.mu.Unlock()

	c.setState(StateConnecting)

	conn, err := c.dial(ctx)
	if err != nil {
		c.setState(StateDisconnected)
		c.recordError(err.Error())
		return err
	}

	c.attach(conn)
	c.announce(conn)

	go c.readLoop(ctx, conn)
	go c.heartbeatLoop(ctx)

	logger.Debug("Realtime channel connected", "host", c.config.Host, "port", c.config.Port)
	return nil
}

// Disconnect closes the channel and releases every registered listener, so
// repeated connect/disconnect cycles never leak subscriptions.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()

	c.listenersMu.Lock()
	c.listeners = make(map[EventType][]listenerEntry)
	c.reconnectHooks = nil
	c.listenersMu.Unlock()

	c.setState(StateDisconnected)
	c.recordDisconnected()

	logger.Debug("Realtime channel disconnected")
	return nil
}

// IsConnected reports whether the channel is live. Transport failures are
// never surfaced beyond this flag.
func (c *Client) IsConnected() bool {
	return c.getState() == StateConnected
}

// State returns the current connection state
func (c *Client) State() ConnectionState {
	return c.getState()
}

// On registers a handler for an event category and returns its unsubscribe
// function. Registration and cleanup must stay symmetric: a consumer that
// remounts without unsubscribing would handle every event twice.
func (c *Client) On(event EventType, fn Handler) func() {
	c.listenersMu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[event] = append(c.listeners[event], listenerEntry{id: id, fn: fn})
	c.listenersMu.Unlock()

	return func() {
		c.listenersMu.Lock()
		defer c.listenersMu.Unlock()
		entries := c.listeners[event]
		for i, e := range entries {
			if e.id == id {
				c.listeners[event] = append(entries[:i], entries[i+1:]...)
				break
			}
		}
	}
}

// OnReconnect registers a hook invoked after the channel is re-established,
// before any fresh roster snapshot arrives. Returns an unsubscribe function.
func (c *Client) OnReconnect(fn func()) func() {
	c.listenersMu.Lock()
	id := c.nextListener
	c.nextListener++
	c.reconnectHooks = append(c.reconnectHooks, listenerEntry{id: id, fn: func(json.RawMessage) { fn() }})
	c.listenersMu.Unlock()

	return func() {
		c.listenersMu.Lock()
		defer c.listenersMu.Unlock()
		for i, e := range c.reconnectHooks {
			if e.id == id {
				c.reconnectHooks = append(c.reconnectHooks[:i], c.reconnectHooks[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of registered handlers across all
// categories
func (c *Client) ListenerCount() int {
	c.listenersMu.RLock()
	defer c.listenersMu.RUnlock()
	n := len(c.reconnectHooks)
	for _, entries := range c.listeners {
		n += len(entries)
	}
	return n
}

// Send sends a client-originated signal to the server
func (c *Client) Send(event EventType, payload interface{}) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		raw = data
	}

	env := Envelope{Type: event, Payload: raw}
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return err
	}

	c.recordMessageSent()
	return nil
}

// Stats returns connection statistics
func (c *Client) Stats() ConnectionStats {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.stats
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	scheme := "ws"
	if c.config.UseTLS {
		scheme = "wss"
	}

	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", c.config.Host, c.config.Port),
		Path:   c.config.Path,
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		q := u.Query()
		q.Set("token", token)
		u.RawQuery = q.Encode()
	}

	timeout := time.Duration(c.config.ConnectTimeoutMs) * time.Millisecond
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, u.String(), nil)
	return conn, err
}

func (c *Client) attach(conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.setState(StateConnected)
	c.recordConnected()
}

// announce emits the join signal so the server routes pushes to this
// client, then requests the initial presence roster snapshot.
func (c *Client) announce(conn *websocket.Conn) {
	c.mu.RLock()
	userID := c.userID
	c.mu.RUnlock()

	if err := c.Send(SignalJoin, JoinPayload{UserID: userID}); err != nil {
		logger.Debug("Failed to send join signal", "error", err)
	}
	if err := c.Send(SignalGetOnlineUsers, nil); err != nil {
		logger.Debug("Failed to request presence snapshot", "error", err)
	}
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			c.recordError(err.Error())
			logger.Debug("Realtime read error", "error", err)
			c.handleDisconnect(ctx)
			return
		}

		// Decode with jsoniter: gorilla's ReadJSON goes through
		// encoding/json, which cannot populate the raw payload field.
		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.recordError(err.Error())
			logger.Debug("Dropped malformed frame", "error", err)
			continue
		}

		c.recordMessageReceived()
		c.dispatch(env)
	}
}

// dispatch delivers synchronously on the read loop: events reach consumers
// in arrival order, with no reordering or buffering.
func (c *Client) dispatch(env Envelope) {
	c.listenersMu.RLock()
	entries := make([]listenerEntry, len(c.listeners[env.Type]))
	copy(entries, c.listeners[env.Type])
	c.listenersMu.RUnlock()

	for _, e := range entries {
		e.fn(env.Payload)
	}
}

func (c *Client) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(c.config.HeartbeatIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.IsConnected() {
				if err := c.Send(SignalHeartbeat, nil); err != nil {
					logger.Debug("Failed to send heartbeat", "error", err)
				}
			}
		}
	}
}

// handleDisconnect retries with a fixed delay up to the attempt budget,
// then settles disconnected. Errors never propagate past the connected
// flag.
func (c *Client) handleDisconnect(ctx context.Context) {
	c.mu.Lock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.mu.Unlock()

	c.setState(StateReconnecting)
	c.recordDisconnected()

	delay := time.Duration(c.config.ReconnectDelayMs) * time.Millisecond

	for attempt := 1; attempt <= c.config.MaxReconnectAttempts; attempt++ {
		logger.Debug("Reconnecting realtime channel", "attempt", attempt)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		conn, err := c.dial(ctx)
		if err != nil {
			c.recordError(err.Error())
			continue
		}

		c.attach(conn)
		c.recordReconnect()

		c.listenersMu.RLock()
		hooks := make([]listenerEntry, len(c.reconnectHooks))
		copy(hooks, c.reconnectHooks)
		c.listenersMu.RUnlock()
		for _, h := range hooks {
			h.fn(nil)
		}

		c.announce(conn)

		go c.readLoop(ctx, conn)

		logger.Debug("Realtime channel reconnected")
		return
	}

	c.setState(StateDisconnected)
	logger.Debug("Reconnect attempts exhausted")
}

func (c *Client) setState(state ConnectionState) {
	c.state.Store(state)
}

func (c *Client) getState() ConnectionState {
	return c.state.Load().(ConnectionState)
}

func (c *Client) recordMessageReceived() {
	c.statsMu.Lock()
	c.stats.MessagesReceived++
	c.statsMu.Unlock()
}

func (c *Client) recordMessageSent() {
	c.statsMu.Lock()
	c.stats.MessagesSent++
	c.statsMu.Unlock()
}

func (c *Client) recordReconnect() {
	c.statsMu.Lock()
	c.stats.ReconnectCount++
	c.statsMu.Unlock()
}

func (c *Client) recordError(errMsg string) {
	c.statsMu.Lock()
	c.stats.LastError = errMsg
	c.statsMu.Unlock()
}

func (c *Client) recordConnected() {
	c.statsMu.Lock()
	c.stats.ConnectedAt = time.Now()
	c.statsMu.Unlock()
}

func (c *Client) recordDisconnected() {
	c.statsMu.Lock()
	c.stats.DisconnectedAt = time.Now()
	c.statsMu.Unlock()
}
