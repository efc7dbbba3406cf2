package main

import "testing"

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 0.5, 1,,2 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float32{0.5, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if _, err := parseFloats("1,x"); err == nil {
		t.Fatal("expected error for non-numeric entry")
	}
	if _, err := parseFloats(" , "); err == nil {
		t.Fatal("expected error for empty list")
	}
}
