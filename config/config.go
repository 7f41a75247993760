package config

import (
	"time"
)

type (
	URIRequestLineSize struct {
		Default, Maximal int
	}
)

type (
	URI struct {
		// RequestLineSize bounds the buffer accumulating the request line. Default is the
		// initial capacity, Maximal is the hard limit after which the request is rejected
		// with 414 URI Too Long.
		RequestLineSize URIRequestLineSize
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket.
		ReadBufferSize int
		// ReadTimeout limits how long a single read from the client may block. Expiring
		// drops the connection silently.
		ReadTimeout time.Duration
		// WriteTimeout limits how long writing the whole response may take.
		WriteTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}

	Pool struct {
		// Workers is the fixed number of goroutines serving connections. Must be at least 1.
		Workers int
		// QueueLimit caps the number of accepted, not yet served connections. Zero disables
		// the limit, so the queue grows as long as clients keep coming.
		QueueLimit int `test:"nullable"`
	}

	Static struct {
		// Root is the served directory. Nothing outside of it is ever opened.
		Root string
		// Index is served when the root path is requested.
		Index string
		// NotFound is served instead of missing HTML documents.
		NotFound string
	}

	Server struct {
		// Name is sent in the Server header of every response.
		Name string
	}
)

// Config holds settings used across statik, mainly limits, timeouts and the served
// directory layout.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	URI    URI
	NET    NET
	Pool   Pool
	Static Static
	Server Server
}

// Default returns default config.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: URIRequestLineSize{
				Default: 256,
				// plenty for a static server. Longer paths don't exist on most filesystems anyway.
				Maximal: 8 * 1024,
			},
		},
		NET: NET{
			ReadBufferSize:            512,
			ReadTimeout:               30 * time.Second,
			WriteTimeout:              30 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		Pool: Pool{
			Workers:    8,
			QueueLimit: 0,
		},
		Static: Static{
			Root:     "www",
			Index:    "index.html",
			NotFound: "404.html",
		},
		Server: Server{
			Name: "statik/0.1",
		},
	}
}
