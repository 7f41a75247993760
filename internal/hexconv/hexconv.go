package hexconv

// Invalid marks non-hex characters in Halfbyte.
const Invalid = 0xff

// Halfbyte maps an ASCII hex digit of any case to its value.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = Invalid
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-'a'+'A'] = c - 'a' + 10
	}

	return table
}()

// Decode returns the byte encoded by the two hex digits. False is returned if any of
// them isn't a valid hex digit.
func Decode(hi, lo byte) (byte, bool) {
	h, l := Halfbyte[hi], Halfbyte[lo]
	if h == Invalid || l == Invalid {
		return 0, false
	}

	return h<<4 | l, true
}
