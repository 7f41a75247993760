// Package accesslog writes a JSON line per served connection.
package accesslog

import (
	"log"
	"time"

	"github.com/dchest/uniuri"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IDLength is the length of generated connection IDs.
const IDLength = 12

// Entry describes a single served connection.
type Entry struct {
	ID       string `json:"id"`
	Remote   string `json:"remote"`
	Worker   int    `json:"worker"`
	Method   string `json:"method,omitempty"`
	Path     string `json:"path,omitempty"`
	Status   uint16 `json:"status,omitempty"`
	Bytes    int    `json:"bytes"`
	Duration int64  `json:"duration_us"`
	Error    string `json:"error,omitempty"`
}

// NewID returns a random identifier to tag everything logged about a connection.
func NewID() string {
	return uniuri.NewLen(IDLength)
}

// Logger is safe for concurrent use as long as the underlying log.Logger is.
type Logger struct {
	out *log.Logger
}

// New returns an access logger. Nil disables access logging.
func New(out *log.Logger) *Logger {
	return &Logger{out: out}
}

func (l *Logger) Log(entry Entry, took time.Duration) {
	if l == nil || l.out == nil {
		return
	}

	entry.Duration = took.Microseconds()
	line, err := json.Marshal(entry)
	if err != nil {
		l.out.Printf("accesslog: %s: %s", entry.ID, err)
		return
	}

	l.out.Print(string(line))
}
