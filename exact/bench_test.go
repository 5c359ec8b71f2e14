package exact_test

import (
	"testing"

	"github.com/katalvlaran/lcskit/exact"
	"github.com/katalvlaran/lcskit/internal/seqgen"
)

func benchmarkNew(b *testing.B, n int, opts ...exact.Option) {
	src, tgt := seqgen.Pair[uint8](seqgen.New(1), n, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := exact.New(src, tgt, opts...)
		if err != nil {
			b.Fatal(err)
		}
		_ = e.Subsequence()
	}
}

func BenchmarkNew_Full500(b *testing.B)    { benchmarkNew(b, 500) }
func BenchmarkNew_Full2000(b *testing.B)   { benchmarkNew(b, 2000) }
func BenchmarkNew_Linear500(b *testing.B)  { benchmarkNew(b, 500, exact.WithLinearMemory()) }
func BenchmarkNew_Linear2000(b *testing.B) { benchmarkNew(b, 2000, exact.WithLinearMemory()) }
