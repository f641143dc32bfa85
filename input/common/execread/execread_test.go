package execread

import (
	"context"
	"os/exec"
	"testing"

	"github.com/noriah/specbar/input"
)

func testConfig() input.SessionConfig {
	// One block per second keeps the read deadline far away.
	return input.SessionConfig{
		SampleRate: 4,
		SampleSize: 4,
		Channels:   1,
		Format:     input.FormatS16,
	}
}

func TestSessionReadsCommandOutput(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh in PATH")
	}

	argv := []string{"sh", "-c", `printf '\000\001\000\002\377\377\000\200'`}
	s := NewSession(argv, testConfig())
	s.DisconnectedStderr = true

	var started bool
	s.OnStart = func(ctx context.Context, cmd *exec.Cmd) error {
		started = cmd.Process != nil
		return nil
	}

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if !started {
		t.Fatal("OnStart was not called with a running command")
	}

	if !s.Stopped() {
		t.Fatal("Stopped() = false after the command exited")
	}

	want := []int32{256, 512, -1, -32768}
	got := s.Buffer()
	if len(got) != len(want) {
		t.Fatalf("Buffer() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Buffer()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSessionMissingCommand(t *testing.T) {
	s := NewSession([]string{"specbar-no-such-command"}, testConfig())

	if err := s.Start(context.Background()); err == nil {
		t.Fatal("Start() error = nil, want error")
	}

	if got := s.Argv(); len(got) != 1 || got[0] != "specbar-no-such-command" {
		t.Fatalf("Argv() = %v", got)
	}
}
