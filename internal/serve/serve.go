// Package serve implements the handling of a single connection: read the request line,
// resolve the requested file, write the response, close.
package serve

import (
	"errors"
	"log"
	"net"
	"strings"
	"time"

	"github.com/indigo-web/statik/config"
	"github.com/indigo-web/statik/http/status"
	"github.com/indigo-web/statik/internal/accesslog"
	"github.com/indigo-web/statik/internal/parser"
	"github.com/indigo-web/statik/internal/render"
	"github.com/indigo-web/statik/internal/resolve"
	"github.com/indigo-web/statik/pool"
	"github.com/indigo-web/statik/transport"
)

// workerState holds buffers reused across connections. Every worker has its own,
// so they are never shared.
type workerState struct {
	readBuff []byte
	reader   *parser.LineReader
	renderer *render.Renderer
}

type Handler struct {
	cfg      *config.Config
	resolver *resolve.Resolver
	read     func(resolve.Target) ([]byte, error)
	log      *log.Logger
	access   *accesslog.Logger
	workers  []workerState
}

// New returns a handler able to serve on behalf of the given number of workers. Worker
// identities passed to Serve and Handle must be in range [0, workers).
func New(
	cfg *config.Config, resolver *resolve.Resolver, workers int, logger *log.Logger, access *accesslog.Logger,
) *Handler {
	if logger == nil {
		logger = log.Default()
	}

	states := make([]workerState, workers)
	for i := range states {
		states[i] = workerState{
			readBuff: make([]byte, cfg.NET.ReadBufferSize),
			reader:   parser.NewLineReader(cfg.URI.RequestLineSize.Default, cfg.URI.RequestLineSize.Maximal),
			renderer: render.New(cfg.Server.Name, 256),
		}
	}

	return &Handler{
		cfg:      cfg,
		resolver: resolver,
		read:     resolver.Read,
		log:      logger,
		access:   access,
		workers:  states,
	}
}

// Job wraps the connection into a pool job.
func (h *Handler) Job(conn net.Conn) pool.Job {
	return func(worker int) {
		h.Serve(worker, conn)
	}
}

// Serve handles the connection on behalf of the worker and closes it.
func (h *Handler) Serve(worker int, conn net.Conn) {
	state := &h.workers[worker]
	client := transport.NewClient(conn, h.cfg.NET.ReadTimeout, h.cfg.NET.WriteTimeout, state.readBuff)
	h.Handle(worker, client)
}

// Handle serves a single request from the client and closes it. Every failure is
// contained here: it's either answered with an error response, or logged and the
// connection is dropped.
func (h *Handler) Handle(worker int, client transport.Client) {
	start := time.Now()
	state := &h.workers[worker]
	entry := accesslog.Entry{
		ID:     accesslog.NewID(),
		Remote: addrString(client.Remote()),
		Worker: worker,
	}

	defer func() {
		if err := client.Close(); err != nil {
			h.log.Printf("serve: %s: close: %s", entry.ID, err)
		}

		h.access.Log(entry, time.Since(start))
	}()

	line, err := state.reader.Read(client)
	switch {
	case errors.Is(err, parser.ErrTooLong):
		h.fail(client, state.renderer, &entry, status.ErrURITooLong)
		return
	case err != nil:
		entry.Error = err.Error()
		h.log.Printf("serve: %s: read request line: %s", entry.ID, err)
		return
	}

	if !parser.IsGET(line) {
		entry.Method, _, _ = strings.Cut(string(line), " ")
		h.fail(client, state.renderer, &entry, status.ErrNotImplemented)
		return
	}

	entry.Method = "GET"
	req, ok, err := parser.Parse(line)
	if err != nil {
		entry.Error = err.Error()
		h.log.Printf("serve: %s: %s", entry.ID, err)
		h.notFound(client, state.renderer, &entry)
		return
	}

	if ok {
		entry.Path = "/" + req.Path
	}

	target, err := h.resolver.Resolve(req.Path)
	if err != nil {
		entry.Error = err.Error()
		h.log.Printf("serve: %s: %q: %s", entry.ID, entry.Path, err)
	}

	if !target.Found() {
		h.notFound(client, state.renderer, &entry)
		return
	}

	body, err := h.read(target)
	if err != nil {
		// the file exists, so the best we can do is to send it empty
		entry.Error = err.Error()
		h.log.Printf("serve: %s: read %s: %s", entry.ID, target.Name, err)
		body = nil
	}

	code := status.OK
	if target.Fallback {
		code = status.NotFound
	}

	entry.Status = uint16(code)
	head := state.renderer.File(code, target.Name, target.Info, int64(len(body)))
	if h.write(client, &entry, head) {
		h.write(client, &entry, body)
	}
}

func (h *Handler) notFound(client transport.Client, renderer *render.Renderer, entry *accesslog.Entry) {
	entry.Status = uint16(status.NotFound)
	h.write(client, entry, renderer.NoFile(status.NotFound))
}

func (h *Handler) fail(client transport.Client, renderer *render.Renderer, entry *accesslog.Entry, err error) {
	code := status.CodeOf(err)
	entry.Status = uint16(code)
	entry.Error = err.Error()
	h.write(client, entry, renderer.Error(code))
}

func (h *Handler) write(client transport.Client, entry *accesslog.Entry, data []byte) bool {
	if len(data) == 0 {
		return true
	}

	n, err := client.Write(data)
	entry.Bytes += n
	if err != nil {
		entry.Error = err.Error()
		h.log.Printf("serve: %s: write: %s", entry.ID, err)
		return false
	}

	return true
}

// Reject answers the connection that couldn't be queued and closes it. It's called
// from the accepting goroutine, so it doesn't touch any of the workers' buffers.
func (h *Handler) Reject(conn net.Conn, reason error) {
	client := transport.NewClient(conn, h.cfg.NET.ReadTimeout, h.cfg.NET.WriteTimeout, nil)
	entry := accesslog.Entry{
		ID:     accesslog.NewID(),
		Remote: addrString(client.Remote()),
		Worker: -1,
	}

	rejection := status.ErrInternalServerError
	if errors.Is(reason, pool.ErrOverloaded) {
		rejection = status.ErrServiceUnavailable
	}

	h.log.Printf("serve: %s: rejecting connection: %s", entry.ID, reason)
	h.fail(client, render.New(h.cfg.Server.Name, 0), &entry, rejection)

	if err := client.Close(); err != nil {
		h.log.Printf("serve: %s: close: %s", entry.ID, err)
	}

	h.access.Log(entry, 0)
}

func addrString(addr net.Addr) string {
	if addr == nil {
		return ""
	}

	return addr.String()
}
