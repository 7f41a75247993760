package parser

import (
	"bytes"

	"github.com/indigo-web/statik/internal/hexconv"
)

// decode translates escaped characters into their true form in-place.
func decode(src []byte) ([]byte, error) {
	i := bytes.IndexByte(src, '%')
	if i == -1 {
		return src, nil
	}

	out := src[:i]
	for ; i < len(src); i++ {
		if src[i] != '%' {
			out = append(out, src[i])
			continue
		}

		if i+2 >= len(src) {
			return nil, ErrBadEscape
		}

		char, ok := hexconv.Decode(src[i+1], src[i+2])
		if !ok {
			return nil, ErrBadEscape
		}

		out = append(out, char)
		i += 2
	}

	return out, nil
}
