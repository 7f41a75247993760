package statik

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultAddress        = "127.0.0.1"
	DefaultPort    uint16 = 8080
)

var (
	ErrBadAddress  = errors.New("address must be an IPv4 address")
	ErrBadPort     = errors.New("port must be a number in range 0-65535")
	ErrTooManyArgs = errors.New("too many arguments")
)

// Args are the positional command-line arguments.
type Args struct {
	Address string
	Port    uint16
}

// ParseArgs takes the arguments without the program name: an optional bind address
// followed by an optional port.
func ParseArgs(args []string) (Args, error) {
	parsed := Args{
		Address: DefaultAddress,
		Port:    DefaultPort,
	}

	switch len(args) {
	case 2:
		port, err := strconv.ParseUint(args[1], 10, 16)
		if err != nil {
			return parsed, fmt.Errorf("%w: %q", ErrBadPort, args[1])
		}

		parsed.Port = uint16(port)
		fallthrough
	case 1:
		if ip := net.ParseIP(args[0]); ip == nil || ip.To4() == nil {
			return parsed, fmt.Errorf("%w: %q", ErrBadAddress, args[0])
		}

		parsed.Address = args[0]
	case 0:
	default:
		return parsed, ErrTooManyArgs
	}

	return parsed, nil
}

func (a Args) String() string {
	return net.JoinHostPort(a.Address, strconv.Itoa(int(a.Port)))
}
