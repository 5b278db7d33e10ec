package byteslice

import (
	"sort"
	"sync"
	"sync/atomic"
)

const (
	MinBitSize = 6  // 64 bytes (CPU cache line)
	Steps      = 20 // 64B to 32MB

	MinSize = 1 << MinBitSize
	MaxSize = 1 << (MinBitSize + Steps - 1)

	CalibrateThreshold = 42000
	Percentile95       = 0.95
)

// Pool is a calibrated byte-slice pool with power-of-two size buckets.
// It tracks which bucket sizes are actually returned and periodically
// recalibrates its default and maximum retained sizes, so that workloads
// with a stable body-size distribution (bulk request assembly, mostly)
// stop paying for outliers.
type Pool struct {
	calls       [Steps]uint64
	calibrating uint64
	defaultSize uint64
	maxSize     uint64
	buckets     [Steps]sync.Pool
}

// New creates a new calibrated pool.
func New() *Pool {
	p := &Pool{}
	for i := range p.buckets {
		size := MinSize << i
		p.buckets[i].New = func() any {
			return make([]byte, size)
		}
	}
	return p
}

var defaultPool = New()

// Get returns a byte slice of at least the given size from the default pool.
func Get(size int) []byte {
	return defaultPool.Get(size)
}

// Put returns a byte slice to the default pool.
func Put(b []byte) {
	defaultPool.Put(b)
}

// DefaultSize returns the calibrated default size of the default pool.
func DefaultSize() uint64 {
	return defaultPool.DefaultSize()
}

// Get returns a byte slice with length size and capacity of at least size.
func (p *Pool) Get(size int) []byte {
	if size <= 0 {
		size = MinSize
	}

	idx := sizeToIndex(size)
	if idx >= Steps {
		return make([]byte, size)
	}

	return p.buckets[idx].Get().([]byte)[:size]
}

// Put returns a byte slice to the pool. The slice must not be used afterwards.
func (p *Pool) Put(b []byte) {
	size := cap(b)
	if size == 0 {
		return
	}

	// Round down so every slice stored in bucket i has capacity >= MinSize<<i.
	idx := sizeToIndex(size)
	if MinSize<<idx > size {
		idx--
	}
	if idx < 0 || idx >= Steps {
		return
	}

	if atomic.AddUint64(&p.calls[idx], 1) > CalibrateThreshold {
		p.calibrate()
	}

	max := int(atomic.LoadUint64(&p.maxSize))
	if max > 0 && size > max {
		return
	}

	p.buckets[idx].Put(b[:cap(b)])
}

// DefaultSize returns the calibrated default size.
func (p *Pool) DefaultSize() uint64 {
	return atomic.LoadUint64(&p.defaultSize)
}

// calibrate analyzes usage patterns and adjusts default/max sizes.
func (p *Pool) calibrate() {
	if !atomic.CompareAndSwapUint64(&p.calibrating, 0, 1) {
		return
	}
	defer atomic.StoreUint64(&p.calibrating, 0)

	stats := make(bucketStats, 0, Steps)
	for i := uint64(0); i < Steps; i++ {
		calls := atomic.SwapUint64(&p.calls[i], 0)
		stats = append(stats, bucket{calls: calls, size: MinSize << i})
	}
	sort.Sort(stats)

	defaultSize := stats[0].size
	maxSize := defaultSize

	var total, sum uint64
	for _, s := range stats {
		total += s.calls
	}
	threshold := uint64(float64(total) * Percentile95)

	for _, s := range stats {
		if sum > threshold {
			break
		}
		sum += s.calls
		if s.size > maxSize {
			maxSize = s.size
		}
	}

	atomic.StoreUint64(&p.defaultSize, defaultSize)
	atomic.StoreUint64(&p.maxSize, maxSize)
}

type bucket struct {
	calls uint64
	size  uint64
}

type bucketStats []bucket

func (b bucketStats) Len() int           { return len(b) }
func (b bucketStats) Less(i, j int) bool { return b[i].calls > b[j].calls }
func (b bucketStats) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

func sizeToIndex(n int) int {
	n--
	n >>= MinBitSize
	idx := 0
	for n > 0 {
		n >>= 1
		idx++
	}
	return idx
}
