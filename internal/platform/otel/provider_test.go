package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/fizzbee-mbt/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("FIZZBEE_MBT_OTEL_ENDPOINT", "")
	t.Setenv("FIZZBEE_MBT_OTEL_ENABLED", "true")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("FIZZBEE_MBT_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("FIZZBEE_MBT_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	t.Setenv("FIZZBEE_MBT_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("FIZZBEE_MBT_OTEL_ENABLED", "true")
	t.Setenv("FIZZBEE_MBT_OTEL_SAMPLE_RATIO", "0.5")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	tests := map[string]map[string]string{
		"ratio out of range": {"FIZZBEE_MBT_OTEL_ENDPOINT": "http://192.0.2.1:4318", "FIZZBEE_MBT_OTEL_SAMPLE_RATIO": "2"},
		"enabled not bool":   {"FIZZBEE_MBT_OTEL_ENABLED": "maybe"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("FIZZBEE_MBT_OTEL_ENABLED", "true")
			t.Setenv("FIZZBEE_MBT_OTEL_SAMPLE_RATIO", "1")
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := otel.Setup(context.Background(), "test-service"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
