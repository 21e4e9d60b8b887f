package otel

import (
	"context"
	"testing"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("SWAMPDECK_OTEL_ENDPOINT", "")
	t.Setenv("SWAMPDECK_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("SWAMPDECK_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("SWAMPDECK_OTEL_ENABLED", "FALSE")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Use a non-routable address so no actual export happens.
	t.Setenv("SWAMPDECK_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("SWAMPDECK_OTEL_ENABLED", "")
	t.Setenv("SWAMPDECK_OTEL_SAMPLE_RATIO", "0.5")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Shutdown should flush cleanly even though the endpoint is unreachable.
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsInvalidRatio(t *testing.T) {
	t.Setenv("SWAMPDECK_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("SWAMPDECK_OTEL_SAMPLE_RATIO", "often")

	shutdown, err := Setup(context.Background(), "test-service")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestConfigActive(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{name: "empty", cfg: Config{}, want: false},
		{name: "endpoint", cfg: Config{Endpoint: "http://collector:4318"}, want: true},
		{name: "disabled", cfg: Config{Endpoint: "http://collector:4318", Enabled: "false"}, want: false},
		{name: "enabled true", cfg: Config{Endpoint: "http://collector:4318", Enabled: "true"}, want: true},
	}
	for _, tt := range tests {
		if got := tt.cfg.Active(); got != tt.want {
			t.Errorf("%s: Active() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
