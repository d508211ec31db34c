package message

import "testing"

func BenchmarkMarshal(b *testing.B) {
	opts := Options{}
	opts.SetPath("/a/b/c")
	opts.SetContentFormat(AppJSON)
	opts.SetObserve(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := opts.Marshal(); err != nil {
			b.Fatalf("unexpected error %v", err)
		}
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	opts := Options{}
	opts.SetPath("/a/b/c")
	opts.SetContentFormat(AppJSON)
	opts.SetObserve(1)
	data, err := opts.Marshal()
	if err != nil {
		b.Fatalf("unexpected error %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Parse(data); err != nil {
			b.Fatalf("unexpected error %v", err)
		}
	}
}
