package rotatedplanar_test

import (
	"fmt"
	"testing"

	"github.com/topoqec/pcmgen/rotatedplanar"
)

// BenchmarkStabilizers measures full PCM derivation across the default
// distance range; d=15 yields a 224×450 dense matrix.
func BenchmarkStabilizers(b *testing.B) {
	for _, d := range []int{3, 7, 15} {
		code, err := rotatedplanar.New(d)
		if err != nil {
			b.Fatalf("New(%d): %v", d, err)
		}
		b.Run(fmt.Sprintf("d=%d", d), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = code.Stabilizers()
			}
		})
	}
}
