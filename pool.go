package variant

import (
	"bytes"
	"sync"
)

const (
	// Buffers that grew past this are dropped instead of pooled
	poolMaxBuf  = 64 << 10
	poolInitBuf = 256
)

var bufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, poolInitBuf))
	},
}

func getBuf() *bytes.Buffer {
	return bufPool.Get().(*bytes.Buffer)
}

func putBuf(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > poolMaxBuf {
		return // reject oversized
	}
	buf.Reset()
	bufPool.Put(buf)
}
