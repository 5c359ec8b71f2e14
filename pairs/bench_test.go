package pairs_test

import (
	"testing"

	"github.com/katalvlaran/lcskit/internal/seqgen"
	"github.com/katalvlaran/lcskit/pairs"
)

func benchmarkNew(b *testing.B, workers int, sel pairs.Selection) {
	src, tgt := seqgen.Pair[uint8](seqgen.New(1), 96, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pairs.New(src, tgt, pairs.WithWorkers(workers), pairs.WithSelection(sel)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNew_LongestPath1(b *testing.B) { benchmarkNew(b, 1, pairs.LongestPath) }
func BenchmarkNew_LongestPath8(b *testing.B) { benchmarkNew(b, 8, pairs.LongestPath) }
func BenchmarkNew_Patience8(b *testing.B)    { benchmarkNew(b, 8, pairs.Patience) }
