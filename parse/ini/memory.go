package ini

// Allocator provides the byte buffers a Document owns. ctx is the opaque
// value from Memory.Context, passed through unchanged.
type Allocator interface {
	Allocate(ctx any, size int) []byte
	Reallocate(ctx any, buf []byte, size int) []byte
	Release(ctx any, buf []byte)
}

// Memory pairs an Allocator with the context handed to each of its calls.
type Memory struct {
	Allocator Allocator
	Context   any
}

// HeapAllocator allocates from the Go heap; Release is a no-op.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(_ any, size int) []byte { return make([]byte, size) }

func (HeapAllocator) Reallocate(_ any, buf []byte, size int) []byte {
	if size <= cap(buf) {
		return buf[:size]
	}
	out := make([]byte, size)
	copy(out, buf)
	return out
}

func (HeapAllocator) Release(any, []byte) {}

func (m *Memory) allocator() Allocator {
	if m == nil || m.Allocator == nil {
		return HeapAllocator{}
	}
	return m.Allocator
}

func (m *Memory) context() any {
	if m == nil {
		return nil
	}
	return m.Context
}

func (m *Memory) allocate(size int) []byte {
	return m.allocator().Allocate(m.context(), size)
}

func (m *Memory) reallocate(buf []byte, size int) []byte {
	return m.allocator().Reallocate(m.context(), buf, size)
}

func (m *Memory) release(buf []byte) {
	if buf == nil {
		return
	}
	m.allocator().Release(m.context(), buf)
}
