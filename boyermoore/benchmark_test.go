package boyermoore

import "testing"

func BenchmarkCompile(b *testing.B) {
	pattern := []byte("base64_decode")

	for b.Loop() {
		Compile(pattern)
	}
}

func BenchmarkFindAll(b *testing.B) {
	m := CompileString("base64_decode")

	// Generate test data - 1MB of sample data with some matches
	data := make([]byte, 1024*1024)
	for i := range data {
		data[i] = byte('a' + i%16)
	}
	copy(data[1000:], []byte("eval(base64_decode($_POST['x']))"))
	copy(data[100000:], []byte("base64_decode"))
	copy(data[1024*1024-32:], []byte("base64_decode"))

	b.SetBytes(int64(len(data)))

	for b.Loop() {
		if got := m.FindAll(data); len(got) != 3 {
			b.Fatalf("FindAll found %d matches, want 3", len(got))
		}
	}
}

func BenchmarkSearchShortPattern(b *testing.B) {
	m := CompileString("ab")

	data := make([]byte, 1024*1024)
	for i := range data {
		data[i] = byte('a' + i%4)
	}

	b.SetBytes(int64(len(data)))

	for b.Loop() {
		if _, err := m.Search(data); err != nil {
			b.Fatalf("Search() error = %v", err)
		}
	}
}
