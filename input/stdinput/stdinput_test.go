package stdinput

import (
	"bytes"
	"context"
	"testing"

	"github.com/noriah/specbar/input"
)

func TestSessionReadsBlocks(t *testing.T) {
	// Two full s16 blocks of two samples, then one trailing sample.
	raw := []byte{
		0x01, 0x00, 0x02, 0x00,
		0xFF, 0x7F, 0x00, 0x80,
		0x05, 0x00,
	}

	s := NewSession(bytes.NewReader(raw), input.SessionConfig{
		SampleSize: 2,
		Format:     input.FormatS16,
	})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if !s.Stopped() {
		t.Fatal("Stopped() = false after EOF")
	}

	got := s.Buffer()
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("Buffer() = %v, want trailing [5]", got)
	}
}

func TestSessionEmptyInput(t *testing.T) {
	s := NewSession(bytes.NewReader(nil), input.SessionConfig{
		SampleSize: 4,
		Format:     input.FormatU8,
	})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if got := s.Buffer(); got != nil {
		t.Fatalf("Buffer() = %v, want nil", got)
	}
}

func TestBackendRejectsUnknownFormat(t *testing.T) {
	_, err := StdinBackend{}.Start(input.SessionConfig{SampleSize: 4})
	if err == nil {
		t.Fatal("Start() error = nil, want error")
	}
}
