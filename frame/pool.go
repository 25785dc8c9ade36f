package frame

import "sync"

// Pool is a thread-safe pool for reusing scratch Buffers.
//
// Pool groups buffers by their dimensions and format, so operators that need
// a snapshot of the source (mosaic, distortion, convolution) can reuse one
// per camera size instead of allocating every tick.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a pool retaining at most maxPerBucket buffers per shape.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer with the same shape as like. The contents are
// unspecified; callers overwrite or Clear it. Returns nil if like is empty.
func (p *Pool) Get(like *Buffer) *Buffer {
	if like.IsEmpty() {
		return nil
	}
	key := poolKey{width: like.width, height: like.height, format: like.format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return &Buffer{
		data:   make([]byte, len(like.data)),
		width:  like.width,
		height: like.height,
		format: like.format,
	}
}

// Snapshot returns a pooled copy of src.
func (p *Pool) Snapshot(src *Buffer) *Buffer {
	buf := p.Get(src)
	if buf != nil {
		copy(buf.data, src.data)
	}
	return buf
}

// Put returns a buffer to the pool. Nil buffers and buffers beyond the
// bucket capacity are discarded.
func (p *Pool) Put(buf *Buffer) {
	if buf.IsEmpty() {
		return
	}
	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the total number of pooled buffers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}

// Clear drops every pooled buffer.
func (p *Pool) Clear() {
	p.mu.Lock()
	p.buckets = make(map[poolKey][]*Buffer)
	p.mu.Unlock()
}

var defaultPool = NewPool(8)

// Scratch returns a buffer shaped like like from the package-level pool.
func Scratch(like *Buffer) *Buffer {
	return defaultPool.Get(like)
}

// SnapshotOf returns a pooled deep copy of src from the package-level pool.
func SnapshotOf(src *Buffer) *Buffer {
	return defaultPool.Snapshot(src)
}

// Release returns a scratch buffer to the package-level pool.
func Release(buf *Buffer) {
	defaultPool.Put(buf)
}
