// SPDX-License-Identifier: MIT
// Source: github.com/abcouwer-jpl/zsc

package zsc

import "unsafe"

// pool is the L1 bump allocator: it sub-allocates typed spans from a
// single caller-supplied byte buffer and never frees individually (§4.1).
// Mirrors the teacher's acquire/release-from-a-fixed-arena shape
// (sliding_window_pool.go's sync.Pool reuse), but over a single
// caller-owned buffer rather than a package-level sync.Pool, since the
// spec requires the caller, not the runtime, to own the memory.
type pool struct {
	buf  []byte
	next int
}

func newPool(buf []byte) *pool {
	return &pool{buf: buf}
}

// used reports how many bytes have been sub-allocated so far.
func (p *pool) used() int { return p.next }

// remaining reports how many bytes are left in the pool.
func (p *pool) remaining() int { return len(p.buf) - p.next }

// allocBytes sub-allocates n bytes and returns them zeroed. Returns
// ErrMemError if n is negative or the pool does not have n bytes left.
// The items*size overflow guard is in allocItems, which returns
// ErrMemError rather than asserting.
func (p *pool) allocBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, wrapMem("negative allocation size")
	}
	if n == 0 {
		return nil, nil
	}
	if n > p.remaining() {
		return nil, wrapMem("insufficient work buffer")
	}

	span := p.buf[p.next : p.next+n]
	for i := range span {
		span[i] = 0
	}
	p.next += n
	return span, nil
}

// allocItems sub-allocates items*size bytes, guarding the multiplication
// against overflow before it is performed (§4.1, §9 open question 1 —
// "FIXME markers around overflow checks... must be implemented
// defensively").
func (p *pool) allocItems(items, size int) ([]byte, error) {
	if items < 0 || size < 0 {
		return nil, wrapMem("negative item count or size")
	}
	if size != 0 && items > (int(^uint(0)>>1))/size {
		return nil, wrapMem("allocation size overflows")
	}
	return p.allocBytes(items * size)
}

// allocTyped sub-allocates room for n values of T and returns a slice
// backed by that span of the pool's buffer — a reinterpretation, not a
// copy, so the "pool cursor only advances" invariant (§3) holds exactly:
// the returned slice's backing array IS the caller's buffer. This mirrors
// the teacher's own use of unsafe for in-place reinterpretation of a byte
// buffer (compress_1x_999.go's word-at-a-time match compare), generalized
// here from a single word-cast to a whole-slice cast for arena typing —
// the representation §9's "two-level code tables -> flat arena" design
// note calls for.
func allocTyped[T any](p *pool, n int) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	span, err := p.allocItems(n, size)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&span[0])), n), nil
}
