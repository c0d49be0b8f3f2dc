package observability

import (
	"context"
	"testing"
	"time"
)

type recordingTraversalHooks struct {
	stages  []string
	skipped []string
}

func (h *recordingTraversalHooks) OnStageStart(_ context.Context, stage string) {
	h.stages = append(h.stages, stage)
}

func (h *recordingTraversalHooks) OnStageComplete(context.Context, string, time.Duration, error) {}

func (h *recordingTraversalHooks) OnShortCircuit(_ context.Context, stage string) {
	h.skipped = append(h.skipped, stage)
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// None of these should panic with the default no-op hooks.
	ctx := context.Background()
	Resolver().OnLoadStart(ctx, "outputs.json")
	Resolver().OnBuildComplete(ctx, "roc", time.Second, nil)
	Traversal().OnStageStart(ctx, "context")
	Cache().OnCacheHit(ctx, "render")
	HTTP().OnRequest(ctx, "GET", "example.com", "/")
}

func TestSetAndReset(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	rec := &recordingTraversalHooks{}
	SetTraversalHooks(rec)

	Traversal().OnStageStart(context.Background(), "catalog")
	Traversal().OnShortCircuit(context.Background(), "context")

	if len(rec.stages) != 1 || rec.stages[0] != "catalog" {
		t.Errorf("stages = %v, want [catalog]", rec.stages)
	}
	if len(rec.skipped) != 1 || rec.skipped[0] != "context" {
		t.Errorf("skipped = %v, want [context]", rec.skipped)
	}

	Reset()
	if _, ok := Traversal().(NoopTraversalHooks); !ok {
		t.Error("Reset() did not restore no-op traversal hooks")
	}
}

func TestSetNilIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	SetTraversalHooks(nil)
	if Traversal() == nil {
		t.Fatal("Traversal() = nil after SetTraversalHooks(nil)")
	}
}
