package statik

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"sync"

	"github.com/indigo-web/statik/config"
	"github.com/indigo-web/statik/internal/accesslog"
	"github.com/indigo-web/statik/internal/resolve"
	"github.com/indigo-web/statik/internal/serve"
	"github.com/indigo-web/statik/pool"
	"github.com/indigo-web/statik/transport"
)

// App serves the configured directory on a single address.
type App struct {
	addr      string
	cfg       *config.Config
	hooks     hooks
	log       *log.Logger
	accessLog *log.Logger

	mu        sync.Mutex
	transport transport.Transport
	stopped   bool
}

// New returns a new App instance, which will listen on addr.
func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
		log:  log.Default(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger for lifecycle events and per-connection failures.
func (a *App) Logger(logger *log.Logger) *App {
	a.log = logger
	return a
}

// AccessLog enables access logging into the logger. Disabled by default.
func (a *App) AccessLog(logger *log.Logger) *App {
	a.accessLog = logger
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is bound and the
// workers are started.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's guaranteed,
// that at the moment as the callback is called, the server isn't able to accept any new connections
// and all the clients are already served
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the bound address. Nil is returned if the App isn't listening yet.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.transport == nil {
		return nil
	}

	return a.transport.Addr()
}

// Serve starts the application and blocks until Stop is called. Errors returned are
// startup ones (a missing served directory, invalid pool size, failed bind) or a broken
// listener; failures of single connections never end up here.
func (a *App) Serve() error {
	resolver, err := resolve.New(a.cfg.Static.Root, a.cfg.Static.Index, a.cfg.Static.NotFound)
	if err != nil {
		return err
	}

	defer resolver.Close()

	workers, err := pool.NewBounded(a.cfg.Pool.Workers, a.cfg.Pool.QueueLimit, a.log)
	if err != nil {
		return err
	}

	tcp := transport.NewTCP(a.log)
	if err = tcp.Bind(a.addr); err != nil {
		workers.Close()
		return fmt.Errorf("statik: bind %s: %w", a.addr, err)
	}

	a.mu.Lock()
	a.transport = tcp
	if a.stopped {
		tcp.Stop()
	}
	a.mu.Unlock()

	handler := serve.New(a.cfg, resolver, workers.Size(), a.log, accesslog.New(a.accessLog))

	callIfNotNil(a.hooks.OnStart)

	err = tcp.Listen(a.cfg.NET, func(conn net.Conn) {
		if err := workers.Execute(handler.Job(conn)); err != nil {
			handler.Reject(conn, err)
		}
	})

	tcp.Close()
	// the queue is drained, so every accepted connection is served before OnStop
	workers.Close()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections. Serve returns as soon as all the already
// accepted ones are served.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// will still be working
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true
	if a.transport != nil {
		a.transport.Stop()
		a.transport.Close()
	}
}

// Run serves the default directory on the address and port until the process dies.
func Run(address string, port uint16) error {
	addr := net.JoinHostPort(address, strconv.Itoa(int(port)))

	return New(addr).
		NotifyOnStart(func() {
			log.Printf("Running statik at http://%s/", addr)
		}).
		Serve()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
