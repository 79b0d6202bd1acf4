package tokenizer

import (
	"runtime"
	"sync"
)

// TokenizeDocument tokenizes every line of a document, fanning the work out
// over a pool sized to the available hardware parallelism. Results land in an
// index-addressed slice, so output order always matches input order no
// matter how workers are scheduled. Lines are independent: workers share
// only the immutable profile.
func (t *Tokenizer) TokenizeDocument(lines []string) []string {
	out := make([]string, len(lines))
	parallelFor(len(lines), runtime.GOMAXPROCS(0), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = t.TokenizeLine(lines[i])
		}
	})
	return out
}

// parallelFor splits the range [0, n) into chunks and runs fn(lo, hi)
// concurrently. When workers <= 1 the call is sequential (no goroutines).
func parallelFor(n, workers int, fn func(lo, hi int)) {
	if n == 0 {
		return
	}
	if workers <= 1 || n == 1 {
		fn(0, n)
		return
	}

	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup

	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}

	wg.Wait()
}
