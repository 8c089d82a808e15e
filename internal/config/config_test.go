package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MINIO_API_URL", "https://minio.example.com")
	t.Setenv("MINIO_CONSOLE_URL", "https://console.example.com")
	t.Setenv("MINIO_ACCESS_KEY", "access")
	t.Setenv("MINIO_SECRET_KEY", "secret")
	t.Setenv("MINIO_BUCKET", "media")
}

func TestLoad_FromEnv(t *testing.T) {
	setFullEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Endpoint != "minio.example.com" {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, "minio.example.com")
	}
	if !cfg.Secure {
		t.Error("Secure = false, want true for https endpoint")
	}
	if cfg.Bucket != "media" {
		t.Errorf("Bucket = %q, want %q", cfg.Bucket, "media")
	}
	if cfg.ConsoleBaseURL != "https://console.example.com" {
		t.Errorf("ConsoleBaseURL = %q", cfg.ConsoleBaseURL)
	}
}

func TestLoad_MissingVariables(t *testing.T) {
	setFullEnv(t)
	t.Setenv("MINIO_ACCESS_KEY", "")
	t.Setenv("MINIO_BUCKET", "")

	_, err := Load("")
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("Load error = %v, want ErrConfiguration", err)
	}
	for _, name := range []string{"MINIO_ACCESS_KEY", "MINIO_BUCKET"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name missing variable %s", err, name)
		}
	}
	if strings.Contains(err.Error(), "MINIO_API_URL") {
		t.Errorf("error %q names a variable that was set", err)
	}
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	setFullEnv(t)

	path := filepath.Join(t.TempDir(), "minio-share.yaml")
	content := "bucket: overridden\napi_url: http://localhost:9000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Bucket != "overridden" {
		t.Errorf("Bucket = %q, want file value %q", cfg.Bucket, "overridden")
	}
	if cfg.Endpoint != "localhost:9000" {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, "localhost:9000")
	}
	if cfg.Secure {
		t.Error("Secure = true, want false for http endpoint")
	}
	// Fields absent from the file keep their env values.
	if cfg.AccessKey != "access" {
		t.Errorf("AccessKey = %q, want env value", cfg.AccessKey)
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	setFullEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("Load error = %v, want ErrConfiguration", err)
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		apiURL       string
		wantEndpoint string
		wantSecure   bool
	}{
		{"https://minio.example.com", "minio.example.com", true},
		{"https://minio.example.com/", "minio.example.com", true},
		{"http://localhost:9000", "localhost:9000", false},
		{"minio.example.com:9000", "minio.example.com:9000", true},
	}

	for _, tt := range tests {
		t.Run(tt.apiURL, func(t *testing.T) {
			endpoint, secure := ParseEndpoint(tt.apiURL)
			if endpoint != tt.wantEndpoint || secure != tt.wantSecure {
				t.Errorf("ParseEndpoint(%q) = (%q, %v), want (%q, %v)",
					tt.apiURL, endpoint, secure, tt.wantEndpoint, tt.wantSecure)
			}
		})
	}
}
