package radix

import (
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/edgesort/core"
	"github.com/katalvlaran/edgesort/workerpool"
)

// lineInts is the number of ints per cache line on the build target.
var lineInts = max(int(unsafe.Sizeof(cpu.CacheLinePad{})/unsafe.Sizeof(int(0))), 1)

// digitSorter owns the scratch tables of one Sort call. They are allocated
// once and reused by every digit pass.
type digitSorter struct {
	base int
	pool *workerpool.Pool

	// rows holds one private bucket row per worker. Row w starts at w*stride;
	// stride is the base rounded up to whole cache lines plus one spare line,
	// so no two rows share a line.
	rows   []int
	stride int

	// counts is the merged table: totals, then inclusive prefix sums.
	counts []int

	parallelScatter bool
}

func newDigitSorter(cfg Config, pool *workerpool.Pool) (*digitSorter, error) {
	stride := (cfg.Base+lineInts-1)/lineInts*lineInts + lineInts

	rows, err := core.MakeCounts(pool.NumWorkers() * stride)
	if err != nil {
		return nil, err
	}
	counts, err := core.MakeCounts(cfg.Base)
	if err != nil {
		return nil, err
	}

	return &digitSorter{
		base:            cfg.Base,
		pool:            pool,
		rows:            rows,
		stride:          stride,
		counts:          counts,
		parallelScatter: cfg.ParallelScatter,
	}, nil
}

// row returns worker w's bucket row.
func (s *digitSorter) row(w int) []int {
	off := w * s.stride

	return s.rows[off : off+s.base : off+s.base]
}

// countSortByDigit writes src into dst stably partitioned by digit number
// digit (1 = least significant) of each Source. len(dst) == len(src).
func (s *digitSorter) countSortByDigit(dst, src []core.Edge, digit int) {
	n := len(src)
	base := s.base
	div := placeValue(digit, base)
	chunks := s.pool.Chunks(n)

	// Counting: each worker fills only its own row.
	s.pool.ParallelFor(n, func(w, start, end int) {
		row := s.row(w)
		clear(row)
		for i := start; i < end; i++ {
			row[(src[i].Source/div)%base]++
		}
	})

	if s.parallelScatter {
		s.scatterParallel(dst, src, div, chunks)
		return
	}

	// Reduction: bucket b is summed by exactly one worker.
	s.pool.ParallelForAtomic(base, func(b int) {
		sum := 0
		for w := 0; w < chunks; w++ {
			sum += s.rows[w*s.stride+b]
		}
		s.counts[b] = sum
	})

	for b := 1; b < base; b++ {
		s.counts[b] += s.counts[b-1]
	}

	// Placement runs backward so equal digits keep their input order.
	var key int
	for i := n - 1; i >= 0; i-- {
		key = (src[i].Source / div) % base
		s.counts[key]--
		dst[s.counts[key]] = src[i]
	}
}

// scatterParallel turns the worker rows into exclusive start offsets with a
// bucket-major, worker-minor scan, then lets every worker place its own chunk
// front to back. Chunk w precedes chunk w+1 in the input and receives the
// lower slots of every bucket, so the placement is stable.
func (s *digitSorter) scatterParallel(dst, src []core.Edge, div, chunks int) {
	base := s.base
	running := 0
	for b := 0; b < base; b++ {
		for w := 0; w < chunks; w++ {
			idx := w*s.stride + b
			c := s.rows[idx]
			s.rows[idx] = running
			running += c
		}
	}

	s.pool.ParallelFor(len(src), func(w, start, end int) {
		row := s.row(w)
		var key int
		for i := start; i < end; i++ {
			key = (src[i].Source / div) % base
			dst[row[key]] = src[i]
			row[key]++
		}
	})
}

// transfer copies src into dst chunk by chunk on the pool.
func transfer(dst, src []core.Edge, pool *workerpool.Pool) {
	pool.ParallelFor(len(src), func(_, start, end int) {
		copy(dst[start:end], src[start:end])
	})
}
