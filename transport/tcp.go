package transport

import (
	"errors"
	"log"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/indigo-web/statik/config"
	"github.com/indigo-web/statik/internal/timer"
)

const maxAcceptBackoff = time.Second

var _ Transport = new(TCP)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

type TCP struct {
	l    listener
	log  *log.Logger
	stop *atomic.Bool
}

func NewTCP(logger *log.Logger) *TCP {
	if logger == nil {
		logger = log.Default()
	}

	return &TCP{
		log:  logger,
		stop: new(atomic.Bool),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) (err error) {
	l, err := bindTCP(addr)
	if err != nil {
		return err
	}

	t.l = l
	return nil
}

// Addr returns the address the listener is actually bound to. It is useful when binding
// to the port 0.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen accepts connections until Stop is called. A failed accept is logged and
// doesn't break the loop, however repeating failures are slowed down by a growing backoff.
// The only errors returned are failures to arm the accept deadline and a listener closed
// without a prior Stop.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	var backoff time.Duration

	for !t.stop.Load() {
		err := t.l.SetDeadline(timer.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			if t.stop.Load() {
				return nil
			}

			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			switch {
			case errors.Is(err, os.ErrDeadlineExceeded):
				continue
			case errors.Is(err, net.ErrClosed):
				if t.stop.Load() {
					return nil
				}

				return err
			}

			backoff = min(max(2*backoff, 5*time.Millisecond), maxAcceptBackoff)
			t.log.Printf("transport: accept: %s; retrying in %s", err, backoff)
			time.Sleep(backoff)
			continue
		}

		backoff = 0
		cb(conn)
	}

	return nil
}

func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}
