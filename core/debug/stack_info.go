package debug

import (
	"runtime"
)

// StackInfo returns the stack of the calling goroutine, growing the buffer
// until the whole trace fits.
func StackInfo() string {
	buf := make([]byte, 4096)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return string(buf[:n])
		}
		buf = make([]byte, 2*len(buf))
	}
}
