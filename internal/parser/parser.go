// Package parser extracts the requested method and path from the request line.
package parser

import (
	"bytes"
	"errors"
	"io"

	"github.com/indigo-web/statik/transport"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

var (
	ErrTooLong    = errors.New("request line is too long")
	ErrIncomplete = errors.New("connection closed before the request line was complete")
	ErrBadEscape  = errors.New("invalid urlencoded sequence")
)

// Request is the part of the request the server cares about. Both strings may point
// into the LineReader's buffer, so they're valid only until the next read.
type Request struct {
	Method string
	// Path is the requested path without the leading slash, query and fragment. Empty
	// path stands for the root.
	Path string
}

// LineReader accumulates the data read from a client until the first LF.
type LineReader struct {
	buff *buffer.Buffer
}

func NewLineReader(prealloc, maxSize int) *LineReader {
	return &LineReader{
		buff: buffer.New(prealloc, maxSize),
	}
}

// Read returns the first line sent by the client, with CRLF (or a bare LF) stripped.
// Anything following the line is discarded, as there's no use for the headers.
func (l *LineReader) Read(client transport.Client) ([]byte, error) {
	l.buff.Clear()

	for {
		data, err := client.Read()

		if lf := bytes.IndexByte(data, '\n'); lf != -1 {
			if !l.buff.Append(data[:lf]) {
				return nil, ErrTooLong
			}

			return bytes.TrimSuffix(l.buff.Finish(), []byte{'\r'}), nil
		}

		if !l.buff.Append(data) {
			return nil, ErrTooLong
		}

		switch {
		case err == io.EOF && l.buff.SegmentLength() > 0:
			return nil, ErrIncomplete
		case err != nil:
			return nil, err
		}
	}
}

// Parse splits the request line by whitespaces and takes the first token as a method,
// the second one as a path. False is returned if there are less than two tokens. The root
// path results in an empty Path.
//
// The path is percent-decoded into the line itself, as decoded data is never longer
// than its encoded form.
func Parse(line []byte) (req Request, ok bool, err error) {
	method, rest := nextToken(line)
	path, _ := nextToken(rest)
	if len(method) == 0 || len(path) == 0 {
		return req, false, nil
	}

	if i := bytes.IndexAny(path, "?#"); i != -1 {
		path = path[:i]
	}

	path, err = decode(path)
	if err != nil {
		return req, false, err
	}

	path = bytes.TrimPrefix(path, []byte{'/'})

	return Request{
		Method: uf.B2S(method),
		Path:   uf.B2S(path),
	}, true, nil
}

// IsGET reports whether the line starts with the GET method followed by a space.
func IsGET(line []byte) bool {
	return bytes.HasPrefix(line, []byte("GET "))
}

func nextToken(data []byte) (token, rest []byte) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}

	end := start
	for end < len(data) && !isSpace(data[end]) {
		end++
	}

	return data[start:end], data[end:]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}

	return false
}
