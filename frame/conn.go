package frame

import (
	"io"
	"net"
	"sync"
)

// Event is one (metadata, payload) frame delivered by a Conn's
// receive loop.
type Event struct {
	Metadata []byte
	Payload  []byte
}

// Conn is one full-duplex byte-stream connection carrying the framed
// protocol, after its version handshake has completed. Conn objects
// are single-use: once cancelled, a fresh one must be constructed.
type Conn struct {
	nc net.Conn

	sendMu sync.Mutex // serializes Send against concurrent callers

	stateMu sync.RWMutex
	state   ConnState
}

// State returns the connection's current lifecycle state.
func (c *Conn) State() ConnState {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

// transition moves the connection to a new state, rejecting illegal
// moves rather than silently clobbering the state.
func (c *Conn) transition(to ConnState) error {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	if !CanTransition(c.state, to) {
		return &Error{Kind: ErrUnknown, Msg: "illegal transition " + string(c.state) + " -> " + string(to)}
	}
	c.state = to
	return nil
}

// NewClient dials addr and performs the client side of the version
// handshake, landing in StateEstablished on success.
func NewClient(addr string) (*Conn, error) {
	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, &Error{Kind: ErrUnknown, Msg: err.Error()}
	}
	c := &Conn{nc: nc, state: StateSetup}
	if err := c.establish(DoClientHandshake); err != nil {
		nc.Close()
		return nil, err
	}
	return c, nil
}

// NewService wraps an already-accepted net.Conn and performs the
// service side of the version handshake.
func NewService(nc net.Conn) (*Conn, error) {
	c := &Conn{nc: nc, state: StateSetup}
	if err := c.establish(DoServiceHandshake); err != nil {
		nc.Close()
		return nil, err
	}
	return c, nil
}

func (c *Conn) establish(handshake func(rw io.ReadWriter) error) error {
	if err := c.transition(StatePreparing); err != nil {
		return err
	}
	if err := c.transition(StateReady); err != nil {
		return err
	}
	if err := c.transition(StateHandshaking); err != nil {
		return err
	}
	if err := handshake(c.nc); err != nil {
		c.transition(StateFailed)
		return err
	}
	return c.transition(StateEstablished)
}

// Send writes one frame atomically relative to other sends on this
// connection. A write failure tears the connection down.
func (c *Conn) Send(metadata, payload []byte) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if err := WriteFrame(c.nc, metadata, payload); err != nil {
		c.Cancel()
		return err
	}
	return nil
}

// Run blocks reading frames until a short read or corrupt frame
// occurs, invoking onFrame for each completed frame. The connection
// is torn down (state -> cancelled) when Run returns, whatever the
// cause.
func (c *Conn) Run(onFrame func(Event)) error {
	defer c.Cancel()

	for {
		metadata, payload, err := ReadFrame(c.nc)
		if err != nil {
			if ferr, ok := err.(*Error); ok && ferr.Kind == ErrCorruptMessage {
				c.transition(StateFailed)
			}
			return err
		}
		onFrame(Event{Metadata: metadata, Payload: payload})
	}
}

// ReadOne blocks for exactly one frame. It is the building block for
// sequential handshake-style exchanges (the client's connect
// ordering); callers that want a continuous loop should use Run
// instead.
func (c *Conn) ReadOne() (Event, error) {
	metadata, payload, err := ReadFrame(c.nc)
	if err != nil {
		if ferr, ok := err.(*Error); ok && ferr.Kind == ErrCorruptMessage {
			c.transition(StateFailed)
		}
		c.Cancel()
		return Event{}, err
	}
	return Event{Metadata: metadata, Payload: payload}, nil
}

// Cancel tears the connection down and closes the underlying stream.
// It is idempotent.
func (c *Conn) Cancel() error {
	c.stateMu.Lock()
	if c.state == StateCancelled {
		c.stateMu.Unlock()
		return nil
	}
	if CanTransition(c.state, StateCancelled) {
		c.state = StateCancelled
	} else {
		c.state = StateCancelled // force: teardown always wins
	}
	c.stateMu.Unlock()
	return c.nc.Close()
}
