//go:build !linux && !windows

package uithread

import (
	"bytes"
	"runtime"
	"strconv"
)

// threadID returns the goroutine id. The loop goroutine owns its thread
// exclusively, so comparing goroutine ids answers the same question as
// comparing thread ids.
func threadID() int64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	// "goroutine 123 [running]:..."
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
