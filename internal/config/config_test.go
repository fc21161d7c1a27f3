package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LISTEN_ADDR", "GIN_MODE", "QUICKBLOG_STORE", "QUICKBLOG_ID_STRATEGY",
		"QUICKBLOG_BACKEND", "BACKEND_BASE_URL", "PROBE_TIMEOUT", "PROBE_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.StoreDriver != "memory" {
		t.Fatalf("expected default store memory, got %q", cfg.StoreDriver)
	}
	if cfg.IDStrategy != "timestamp" {
		t.Fatalf("expected default id strategy timestamp, got %q", cfg.IDStrategy)
	}
	if cfg.ProbeTimeout != 2*time.Second {
		t.Fatalf("expected default probe timeout 2s, got %v", cfg.ProbeTimeout)
	}
	if cfg.ProbeCacheTTL != 30*time.Second {
		t.Fatalf("expected default probe cache ttl 30s, got %v", cfg.ProbeCacheTTL)
	}
	if cfg.ExcerptLength != 150 {
		t.Fatalf("expected default excerpt length 150, got %d", cfg.ExcerptLength)
	}
}

func TestLoad_ListenAddrFollowsPort(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("PORT", "9000")

	cfg := Load()
	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected :9000, got %q", cfg.ListenAddr)
	}
}

func TestIsBackendConfigured(t *testing.T) {
	t.Setenv("QUICKBLOG_BACKEND", "http")

	cases := []struct {
		url  string
		want bool
	}{
		{"", false},
		{"https://your-site.example.com", false},
		{"https://blog.example.org", true},
	}
	for _, tc := range cases {
		t.Setenv("BACKEND_BASE_URL", tc.url)
		cfg := Load()
		if got := cfg.IsBackendConfigured(); got != tc.want {
			t.Fatalf("IsBackendConfigured with %q = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestIsMinioConfigured_RejectsPlaceholders(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "minio.internal:9000")
	t.Setenv("MINIO_ACCESS_KEY", "your-access-key")
	t.Setenv("MINIO_SECRET_KEY", "real-secret")

	if Load().IsMinioConfigured() {
		t.Fatal("placeholder access key must not count as configured")
	}

	t.Setenv("MINIO_ACCESS_KEY", "real-access")
	if !Load().IsMinioConfigured() {
		t.Fatal("expected configured with real credentials")
	}
}

func TestEnvDuration_IgnoresGarbage(t *testing.T) {
	t.Setenv("PROBE_TIMEOUT", "soon")
	if got := Load().ProbeTimeout; got != 2*time.Second {
		t.Fatalf("expected fallback 2s for garbage input, got %v", got)
	}

	t.Setenv("PROBE_TIMEOUT", "500ms")
	if got := Load().ProbeTimeout; got != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %v", got)
	}
}
