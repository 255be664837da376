package profiling

import (
	"strings"
	"testing"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		Track("stage.A")()
	}
	Track("stage.B")()

	snap := Snapshot()
	if got := snap["stage.A"].Calls; got != 3 {
		t.Fatalf("stage.A calls = %d, want 3", got)
	}
	if got := snap["stage.B"].Calls; got != 1 {
		t.Fatalf("stage.B calls = %d, want 1", got)
	}

	out := TopN(5)
	if !strings.Contains(out, "stage.A:") || !strings.Contains(out, "/3") {
		t.Fatalf("TopN = %q, missing stage.A with 3 calls", out)
	}
	if got := TopN(1); strings.Count(got, ",") != 0 {
		t.Fatalf("TopN(1) = %q, want a single entry", got)
	}

	Reset()
	if len(Snapshot()) != 0 {
		t.Fatalf("Reset left entries behind")
	}
}
