package f2

import (
	"fmt"
	"sync"
	"testing"
)

// =============================================================================
// FORMAT BENCHMARKS
// =============================================================================

func BenchmarkFormat_Positional(b *testing.B) {
	engine := MustNew()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Format("%s has %d items", "cart", 3)
	}
}

func BenchmarkFormat_Keyword(b *testing.B) {
	engine := MustNew()
	kwargs := map[string]any{"user": map[string]any{"name": "Alice", "age": 30}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Format("%(user.name)s is %(user.age)d", kwargs)
	}
}

func BenchmarkFormat_Directives(b *testing.B) {
	engine := MustNew()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Format("[%-10s|%0:8.3d|%.5j]", "left", 42, map[string]any{"k": "v"})
	}
}

func BenchmarkFormat_RestArgs(b *testing.B) {
	engine := MustNew()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Format("%s", "a", 1, "b", []any{1, 2}, map[string]any{"x": true})
	}
}

// =============================================================================
// CACHE BENCHMARKS
// =============================================================================

func BenchmarkFormat_CacheMiss(b *testing.B) {
	engine := MustNew(WithCacheSize(1))
	patterns := make([]string, 64)
	for i := range patterns {
		patterns[i] = fmt.Sprintf("%d: %%s", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Format(patterns[i%len(patterns)], "x")
	}
}

func BenchmarkFormat_Concurrent(b *testing.B) {
	engine := MustNew()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = engine.Format("%s-%d-%(k)s", "a", 1, map[string]any{"k": "v"})
		}
	})
}

// =============================================================================
// INSPECT BENCHMARKS
// =============================================================================

func BenchmarkInspect_Nested(b *testing.B) {
	value := map[string]any{
		"users": []any{
			map[string]any{"name": "Alice", "roles": []any{"admin", "dev"}},
			map[string]any{"name": "Bob", "roles": []any{"dev"}},
		},
		"total": 2,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Inspect(value)
	}
}

func BenchmarkRegisterType_UnderLoad(b *testing.B) {
	engine := MustNew()
	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = engine.Format("%s %d", "x", 1)
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.MustRegisterType("z", FormatString)
	}
	b.StopTimer()
	close(stop)
	wg.Wait()
}
