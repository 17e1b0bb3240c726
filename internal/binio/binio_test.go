package binio

import (
	"bytes"
	"math"
	"testing"
)

func TestReadU32(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		swap bool
		want uint32
	}{
		{"native", []byte{0x01, 0x00, 0x00, 0x00}, false, 1},
		{"native large", []byte{0x78, 0x56, 0x34, 0x12}, false, 0x12345678},
		{"swapped", []byte{0x00, 0x00, 0x00, 0x01}, true, 1},
		{"swapped large", []byte{0x12, 0x34, 0x56, 0x78}, true, 0x12345678},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(bytes.NewReader(tt.buf))
			got, err := r.ReadU32(tt.swap)
			if err != nil {
				t.Fatalf("ReadU32: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadU32() = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestReadU32Truncated(t *testing.T) {
	r := New(bytes.NewReader([]byte{0x01, 0x02}))
	if _, err := r.ReadU32(false); err == nil {
		t.Fatal("expected error on truncated stream")
	}
}

func TestReadF64RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, math.Pi, 2451545.0, -2305424.5, 1e300, 1e-300}
	for _, v := range values {
		bits := math.Float64bits(v)
		buf := make([]byte, 8)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		r := New(bytes.NewReader(buf))
		got, err := r.ReadF64(false)
		if err != nil {
			t.Fatalf("ReadF64: %v", err)
		}
		if got != v {
			t.Errorf("ReadF64() = %v, want %v", got, v)
		}

		swapped := make([]byte, 8)
		for i := 0; i < 8; i++ {
			swapped[i] = buf[7-i]
		}
		r2 := New(bytes.NewReader(swapped))
		got2, err := r2.ReadF64(true)
		if err != nil {
			t.Fatalf("ReadF64 swapped: %v", err)
		}
		if got2 != v {
			t.Errorf("ReadF64(swap) = %v, want %v", got2, v)
		}
	}
}

func TestSkipAndReadBytes(t *testing.T) {
	r := New(bytes.NewReader([]byte("abcdefgh")))
	if err := r.Skip(3); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	got, err := r.ReadBytes(5)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if string(got) != "defgh" {
		t.Errorf("ReadBytes() = %q, want %q", got, "defgh")
	}
}

func TestSkipTruncated(t *testing.T) {
	r := New(bytes.NewReader([]byte("ab")))
	if err := r.Skip(10); err == nil {
		t.Fatal("expected error skipping past end of stream")
	}
}
