package render

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/indigo-web/statik/http/status"
	"github.com/indigo-web/statik/internal/timer"
	"github.com/stretchr/testify/require"
)

type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (f fileInfo) Name() string       { return f.name }
func (f fileInfo) Size() int64        { return f.size }
func (f fileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fileInfo) ModTime() time.Time { return f.modTime }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

func parse(t *testing.T, data []byte) *stdhttp.Response {
	resp, err := stdhttp.ReadResponse(bufio.NewReader(bytes.NewReader(data)), nil)
	require.NoError(t, err)

	return resp
}

func TestFile(t *testing.T) {
	r := New("statik-test/1.0", 64)
	modified := time.Date(2009, time.July, 27, 12, 28, 53, 0, time.UTC)
	info := fileInfo{name: "style.CSS", size: 1234, modTime: modified}

	head := r.File(status.OK, "css/style.CSS", info, info.Size())
	require.True(t, bytes.HasPrefix(head, []byte("HTTP/1.1 200 OK\r\nDate: ")))
	require.True(t, bytes.HasSuffix(head, []byte("Connection: Closed\r\n\r\n")))

	resp := parse(t, head)
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, "statik-test/1.0", resp.Header.Get("Server"))
	require.Equal(t, "Mon, 27 Jul 2009 12:28:53 GMT", resp.Header.Get("Last-Modified"))
	require.Equal(t, int64(1234), resp.ContentLength)
	require.Equal(t, "text/css", resp.Header.Get("Content-Type"))
	require.Equal(t, "Closed", resp.Header.Get("Connection"))

	date, err := time.Parse(timer.Layout, resp.Header.Get("Date"))
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), date, 3*time.Second)
}

func TestFileHeaderOrder(t *testing.T) {
	r := New("s", 0)
	info := fileInfo{size: 1, modTime: time.Now()}
	lines := bytes.Split(r.File(status.OK, "a.txt", info, 1), []byte("\r\n"))

	var keys []string
	for _, line := range lines[1:] {
		if key, _, found := bytes.Cut(line, []byte(": ")); found {
			keys = append(keys, string(key))
		}
	}

	require.Equal(t, []string{
		"Date", "Server", "Last-Modified", "Content-Length", "Content-Type", "Connection",
	}, keys)
}

func TestNoFile(t *testing.T) {
	r := New("statik-test/1.0", 0)
	head := r.NoFile(status.NotFound)
	require.True(t, bytes.HasPrefix(head, []byte("HTTP/1.1 404 NOT FOUND\r\n")))

	resp := parse(t, head)
	require.Equal(t, 404, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("Date"))
	require.NotEmpty(t, resp.Header.Get("Last-Modified"))
	require.Equal(t, "statik-test/1.0", resp.Header.Get("Server"))
	require.Equal(t, "Closed", resp.Header.Get("Connection"))
	require.Empty(t, resp.Header.Values("Content-Length"))
	require.Empty(t, resp.Header.Values("Content-Type"))
}

func TestError(t *testing.T) {
	r := New("statik-test/1.0", 0)
	head := r.Error(status.NotImplemented)
	require.True(t, bytes.HasPrefix(head, []byte("HTTP/1.1 501 Not Implemented\r\n")))

	resp := parse(t, head)
	require.Equal(t, 501, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "Not Implemented", string(body))
	require.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
}

func TestReuse(t *testing.T) {
	r := New("s", 0)
	first := string(r.Error(status.ServiceUnavailable))
	second := string(r.NoFile(status.NotFound))
	require.NotContains(t, second, "Service Unavailable")
	require.Contains(t, first, "503 Service Unavailable")
}
