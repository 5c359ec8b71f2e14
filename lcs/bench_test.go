package lcs_test

import (
	"testing"

	"github.com/katalvlaran/lcskit/internal/seqgen"
	"github.com/katalvlaran/lcskit/lcs"
)

// BenchmarkNew measures every engine on the same 64-symbol input.
func BenchmarkNew(b *testing.B) {
	src, tgt := seqgen.Pair[uint8](seqgen.New(1), 64, 4)
	for _, algo := range lcs.Algorithms() {
		b.Run(algo.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := lcs.New(algo, src, tgt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
