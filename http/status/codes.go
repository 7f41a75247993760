package status

type Code uint16

// Codes the server is able to respond with.
const (
	OK                  Code = 200 // RFC 9110, 15.3.1
	NotFound            Code = 404 // RFC 9110, 15.5.5
	RequestURITooLong   Code = 414 // RFC 9110, 15.5.15
	InternalServerError Code = 500 // RFC 9110, 15.6.1
	NotImplemented      Code = 501 // RFC 9110, 15.6.2
	ServiceUnavailable  Code = 503 // RFC 9110, 15.6.4
)

// Text returns the reason phrase as it appears on the wire. Note that 404 is historically
// spelled in capitals.
func Text(code Code) string {
	switch code {
	case OK:
		return "OK"
	case NotFound:
		return "NOT FOUND"
	case RequestURITooLong:
		return "URI Too Long"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return "Unknown Status Code"
	}
}

// Line returns the complete status line without the trailing CRLF,
// e.g. "HTTP/1.1 404 NOT FOUND".
func Line(code Code) string {
	switch code {
	case OK:
		return "HTTP/1.1 200 OK"
	case NotFound:
		return "HTTP/1.1 404 NOT FOUND"
	case RequestURITooLong:
		return "HTTP/1.1 414 URI Too Long"
	case InternalServerError:
		return "HTTP/1.1 500 Internal Server Error"
	case NotImplemented:
		return "HTTP/1.1 501 Not Implemented"
	case ServiceUnavailable:
		return "HTTP/1.1 503 Service Unavailable"
	}

	return "HTTP/1.1 " + itoa(uint16(code)) + " " + Text(code)
}

func itoa(n uint16) string {
	var buff [5]byte
	i := len(buff)

	for {
		i--
		buff[i] = byte('0' + n%10)
		n /= 10

		if n == 0 {
			return string(buff[i:])
		}
	}
}
