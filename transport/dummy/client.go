package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/statik/transport"
)

var _ transport.Client = new(Client)

// Client returns the pieces it was initialised with one by one and io.EOF after them.
// It also tracks all the written data, making it thereby a universal mock suitable for
// most of the tests.
type Client struct {
	closed   bool
	pointer  int
	written  []byte
	data     [][]byte
	readErr  error
	writeErr error
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data: data,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, net.ErrClosed
	}

	if c.pointer >= len(c.data) {
		if c.readErr != nil {
			return nil, c.readErr
		}

		return nil, io.EOF
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}

	c.written = append(c.written, p...)
	return len(p), nil
}

func (c *Client) Conn() net.Conn {
	return NewConn()
}

func (*Client) Remote() net.Addr {
	return RemoteAddr
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// FailReads makes every read after the initialised data is exhausted return the error
// instead of io.EOF.
func (c *Client) FailReads(err error) *Client {
	c.readErr = err
	return c
}

// FailWrites makes every write return the error.
func (c *Client) FailWrites(err error) *Client {
	c.writeErr = err
	return c
}

func (c *Client) Written() string {
	return string(c.written)
}

func (c *Client) Closed() bool {
	return c.closed
}
