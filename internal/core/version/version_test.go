package version

import (
	"runtime"
	"testing"
)

func TestInfo(t *testing.T) {
	b := Info("pnp-migrate")
	if b.Service != "pnp-migrate" || b.Version != "dev" || b.Go != runtime.Version() {
		t.Fatalf("unexpected build info %+v", b)
	}
	if got := Info("").Service; got != "pnp-api" {
		t.Fatalf("default service = %q", got)
	}
	if got, want := b.String(), "pnp-migrate dev (none, unknown)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
