package respec

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func TestConverterPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2, WithStyle(""))
	defer pool.Close()

	if pool.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", pool.Size())
	}

	a, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	b, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two acquires returned the same converter")
	}

	pool.Release(a)
	c, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if c != a {
		t.Error("released converter was not reused")
	}
	pool.Release(b)
	pool.Release(c)
}

func TestConverterPool_MinimumSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -3} {
		pool := NewConverterPool(n)
		if pool.Size() != 1 {
			t.Errorf("NewConverterPool(%d).Size() = %d, want 1", n, pool.Size())
		}
		_ = pool.Close()
	}
}

func TestConverterPool_CreationError(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithFormat("asciidoc"))
	defer pool.Close()

	for range 2 {
		if _, err := pool.Acquire(); !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("Acquire() error = %v, want %v", err, ErrUnknownFormat)
		}
	}
}

func TestConverterPool_Close(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2)
	first, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	conv, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	pool.Release(first)
	pool.Release(conv)

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	// Released converters are still buffered; none may be handed out.
	for i := 0; i < pool.Size()+1; i++ {
		if got, err := pool.Acquire(); !errors.Is(err, ErrPoolClosed) || got != nil {
			t.Errorf("Acquire #%d after Close = (%v, %v), want (nil, %v)", i, got, err, ErrPoolClosed)
		}
	}
	// Release after Close must not panic.
	pool.Release(conv)
}

func TestConverterPool_Concurrent(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(3)
	defer pool.Close()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[*Converter]bool{}
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv, err := pool.Acquire()
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			seen[conv] = true
			mu.Unlock()
			pool.Release(conv)
		}()
	}
	wg.Wait()

	if len(seen) > pool.Size() {
		t.Errorf("pool created %d converters, capacity %d", len(seen), pool.Size())
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(5); got != 5 {
		t.Errorf("ResolvePoolSize(5) = %d, want 5", got)
	}

	want := runtime.GOMAXPROCS(0) / cpuDivisor
	want = max(MinPoolSize, min(MaxPoolSize, want))
	if got := ResolvePoolSize(0); got != want {
		t.Errorf("ResolvePoolSize(0) = %d, want %d", got, want)
	}
}
