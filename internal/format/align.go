package format

// Align8 returns n aligned up to the next 8-byte boundary. Extended-field
// payloads are padded with zeroes to this alignment.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + XFieldAlignment - 1) & ^(XFieldAlignment - 1)
}

// Pad8 returns the number of padding bytes that follow a payload of n
// bytes.
func Pad8(n int) int {
	return Align8(n) - n
}
