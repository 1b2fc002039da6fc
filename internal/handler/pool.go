package handler

import (
	"bytes"
	"sync"
)

const (
	// A page of reports with combat stats encodes to a few KiB
	responseBufferSize = 4 << 10
	// Buffers grown past this by an admin listing are left to the GC
	maxPooledResponseBuffer = 64 << 10
)

var responseBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew too large to keep around
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledResponseBuffer {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
