package stackl

import (
	"bytes"
	"sync"
)

// 编码器的行缓冲在 Close 后归还, 避免每次编译重新分配.
var bufferPool = sync.Pool{New: func() interface{} { return new(bytes.Buffer) }}

func getBuffer() *bytes.Buffer {
	b := bufferPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

func putBuffer(b *bytes.Buffer) {
	// 过大的缓冲不回收
	if b.Cap() > 64<<10 {
		return
	}
	bufferPool.Put(b)
}
