package util

import (
	"bytes"
	"math"
	"sync"
)

var bytesBufPool = &sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 64)) },
}

func GetBytesBuffer() *bytes.Buffer {
	return bytesBufPool.Get().(*bytes.Buffer) //nolint:forcetypeassert
}

func FreeBytesBuffer(b *bytes.Buffer) {
	b.Reset()
	if b.Cap() > math.MaxUint16 {
		return
	}
	bytesBufPool.Put(b)
}
