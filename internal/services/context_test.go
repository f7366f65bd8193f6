package services_test

import (
	"context"
	"testing"

	"noa/internal/services"
)

func TestContextRoundTrips(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithJobID(ctx, "job-abc")
	ctx = services.WithStage(ctx, "intake")
	ctx = services.WithAgent(ctx, "service-generator")
	ctx = services.WithRunID(ctx, "run-1")

	if id, ok := services.JobIDFromContext(ctx); !ok || id != "job-abc" {
		t.Fatalf("job id round trip failed: %q %v", id, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "intake" {
		t.Fatalf("stage round trip failed: %q %v", stage, ok)
	}
	if agent, ok := services.AgentFromContext(ctx); !ok || agent != "service-generator" {
		t.Fatalf("agent round trip failed: %q %v", agent, ok)
	}
	if run, ok := services.RunIDFromContext(ctx); !ok || run != "run-1" {
		t.Fatalf("run id round trip failed: %q %v", run, ok)
	}
}

func TestContextIgnoresEmptyValues(t *testing.T) {
	ctx := services.WithStage(context.Background(), "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected empty stage to be dropped")
	}
}
