package services_test

import (
	"errors"
	"strings"
	"testing"

	"noa/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("disk full")
	err := services.Wrap(services.ErrWorkspace, "job", "create workspace", "cannot allocate", base)
	if !errors.Is(err, services.ErrWorkspace) {
		t.Fatalf("expected workspace marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected original error preserved, got %v", err)
	}
	for _, fragment := range []string{"job", "create workspace", "cannot allocate", "disk full"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected %q in %q", fragment, err.Error())
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation fallback, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}

func TestMessage(t *testing.T) {
	if got := services.Message(nil); got != "" {
		t.Fatalf("expected empty message for nil error, got %q", got)
	}
	if got := services.Message(errors.New("  boom  ")); got != "boom" {
		t.Fatalf("expected trimmed message, got %q", got)
	}
}
