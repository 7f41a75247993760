package dummy

import (
	"io"
	"net"
	"sync"
	"time"
)

var (
	LocalAddr  = &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
	RemoteAddr = &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 54321}
)

// Conn is a net.Conn fed with predefined pieces of data. Everything written into it,
// the deadlines and the closing are recorded.
type Conn struct {
	mu            sync.Mutex
	data          [][]byte
	written       []byte
	readDeadline  time.Time
	writeDeadline time.Time
	closed        bool
}

func NewConn(data ...[]byte) *Conn {
	return &Conn{data: data}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, net.ErrClosed
	}

	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.data[0])
	if c.data[0] = c.data[0][n:]; len(c.data[0]) == 0 {
		c.data = c.data[1:]
	}

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, net.ErrClosed
	}

	c.written = append(c.written, b...)
	return len(b), nil
}

func (c *Conn) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return LocalAddr
}

func (c *Conn) RemoteAddr() net.Addr {
	return RemoteAddr
}

func (c *Conn) SetDeadline(t time.Time) error {
	c.mu.Lock()
	c.readDeadline, c.writeDeadline = t, t
	c.mu.Unlock()

	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	c.mu.Lock()
	c.readDeadline = t
	c.mu.Unlock()

	return nil
}

func (c *Conn) SetWriteDeadline(t time.Time) error {
	c.mu.Lock()
	c.writeDeadline = t
	c.mu.Unlock()

	return nil
}

func (c *Conn) Written() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return string(c.written)
}

func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

// Deadlines returns the last read and write deadlines set.
func (c *Conn) Deadlines() (read, write time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.readDeadline, c.writeDeadline
}
