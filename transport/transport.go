package transport

import (
	"net"

	"github.com/indigo-web/statik/config"
)

// Transport binds a listening socket and feeds accepted connections into the callback.
// The callback takes ownership of the connection, including closing it.
type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
}
