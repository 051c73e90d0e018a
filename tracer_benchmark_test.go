package contur

import "testing"

func Benchmark_Vectorize(b *testing.B) {
	g := circleGrid(256, 100)
	proc := &Processor{Simplify: 0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		proc.Vectorize(g)
	}
}

func Benchmark_EncodeDXF(b *testing.B) {
	proc := &Processor{Simplify: 0.5}
	poly := proc.Refine(Trace(circleGrid(256, 100)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeDXF(poly)
	}
}
