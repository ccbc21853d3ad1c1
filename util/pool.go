package util

import "sync"

// DefaultLineCap is the starting capacity of a pooled line buffer.
// Most fake output lines fit; longer ones grow the slice.
const DefaultLineCap = 256

// maxPooledCap keeps one huge line from pinning memory in the pool.
const maxPooledCap = 64 * 1024

// LinePool provides reusable byte buffers for formatting output lines,
// reducing GC pressure in modules that print thousands of lines.
var LinePool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, DefaultLineCap)
		return &buf
	},
}

// GetBuf retrieves an empty buffer from the pool.  Callers must return
// it with [PutBuf] when finished.
func GetBuf() *[]byte {
	buf := LinePool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// PutBuf returns a buffer to the pool for reuse.
func PutBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > maxPooledCap {
		return
	}
	LinePool.Put(buf)
}
