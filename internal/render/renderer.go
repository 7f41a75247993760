// Package render builds response heads: the status line followed by the generated
// headers and the empty line separating them from the body.
package render

import (
	"io/fs"
	"strconv"

	"github.com/indigo-web/statik/http/mime"
	"github.com/indigo-web/statik/http/status"
	"github.com/indigo-web/statik/internal/timer"
)

// Renderer owns a single buffer, reused by every rendered response. Returned slices are
// therefore valid only until the next call. Not safe for concurrent use; every worker
// holds its own Renderer.
type Renderer struct {
	buff   []byte
	server string
}

// New returns a renderer, announcing itself in the Server header as server.
func New(server string, prealloc int) *Renderer {
	return &Renderer{
		buff:   make([]byte, 0, prealloc),
		server: server,
	}
}

// File renders the head of a response carrying a file. Last-Modified is taken from the
// file metadata, Content-Type is derived from the name, Content-Length is the length
// of the body that is actually going to be sent.
func (r *Renderer) File(code status.Code, name string, info fs.FileInfo, length int64) []byte {
	r.head(code)
	r.appendKnownHeader("Last-Modified: ", timer.Format(info.ModTime()))
	r.appendContentLength(length)
	r.appendKnownHeader("Content-Type: ", mime.Resolve(name))
	r.tail()

	return r.buff
}

// NoFile renders the reduced head of a body-less response. As there is no file,
// Last-Modified is the current time.
func (r *Renderer) NoFile(code status.Code) []byte {
	r.head(code)
	r.appendKnownHeader("Last-Modified: ", timer.Date())
	r.tail()

	return r.buff
}

// Error renders a complete response with a short plain-text body.
func (r *Renderer) Error(code status.Code) []byte {
	body := status.Text(code)

	r.head(code)
	r.appendKnownHeader("Last-Modified: ", timer.Date())
	r.appendContentLength(int64(len(body)))
	r.appendKnownHeader("Content-Type: ", mime.Plain)
	r.tail()
	r.buff = append(r.buff, body...)

	return r.buff
}

func (r *Renderer) head(code status.Code) {
	r.buff = append(r.buff[:0], status.Line(code)...)
	r.crlf()
	r.appendKnownHeader("Date: ", timer.Date())
	r.appendKnownHeader("Server: ", r.server)
}

func (r *Renderer) tail() {
	r.appendKnownHeader("Connection: ", "Closed")
	r.crlf()
}

func (r *Renderer) appendContentLength(length int64) {
	r.buff = append(r.buff, "Content-Length: "...)
	r.buff = strconv.AppendInt(r.buff, length, 10)
	r.crlf()
}

func (r *Renderer) appendKnownHeader(key, value string) {
	r.buff = append(r.buff, key...)
	r.buff = append(r.buff, value...)
	r.crlf()
}

func (r *Renderer) crlf() {
	r.buff = append(r.buff, '\r', '\n')
}
