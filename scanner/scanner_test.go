package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNewEmptyPattern(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty pattern")
	}
	if _, err := NewString(""); err == nil {
		t.Error("expected error for empty string pattern")
	}
}

func TestScanMem(t *testing.T) {
	s, err := NewString("<?php")
	if err != nil {
		t.Fatalf("NewString() error = %v", err)
	}

	data := []byte("hello <?php echo 'world'; ?> and <?php again")

	res := s.ScanMem(data)
	if !slices.Equal(res.Matches, []int{6, 33}) {
		t.Errorf("Matches = %v, want [6 33]", res.Matches)
	}
	if !res.Found {
		t.Error("expected Found")
	}
}

func TestScanMemNoMatch(t *testing.T) {
	s, err := NewString("<?php")
	if err != nil {
		t.Fatalf("NewString() error = %v", err)
	}

	res := s.ScanMem([]byte("hello world, nothing here"))
	if res.Found || len(res.Matches) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestScanMemShortBuffer(t *testing.T) {
	s, err := NewString("longpattern")
	if err != nil {
		t.Fatalf("NewString() error = %v", err)
	}

	res := s.ScanMem([]byte("tiny"))
	if res.Found || res.Matches != nil || res.Skipped != 0 {
		t.Errorf("expected zero result for short buffer, got %+v", res)
	}
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("AAAAAAB"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewString("AB")
	if err != nil {
		t.Fatalf("NewString() error = %v", err)
	}

	fm, err := s.ScanFile(path)
	if err != nil {
		t.Fatalf("ScanFile() error = %v", err)
	}
	if fm.Path != path {
		t.Errorf("Path = %q, want %q", fm.Path, path)
	}
	if !slices.Equal(fm.Offsets, []int{5}) {
		t.Errorf("Offsets = %v, want [5]", fm.Offsets)
	}
}

func TestScanFileNotFound(t *testing.T) {
	s, err := NewString("AB")
	if err != nil {
		t.Fatalf("NewString() error = %v", err)
	}
	if _, err := s.ScanFile("/nonexistent/sample.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
