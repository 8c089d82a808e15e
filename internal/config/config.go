// Package config assembles storage configuration from environment variables
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfiguration indicates missing or unreadable configuration.
var ErrConfiguration = errors.New("configuration error")

// Config holds everything needed to reach the storage backend and build
// console links. All fields are required.
type Config struct {
	// Endpoint is the storage API host:port, no scheme.
	Endpoint string

	// Secure selects HTTPS, derived from the MINIO_API_URL scheme.
	Secure bool

	AccessKey string
	SecretKey string
	Bucket    string

	// ConsoleBaseURL is the MinIO console base, e.g. "https://console.example.com".
	ConsoleBaseURL string
}

// values mirrors the raw settings as they appear in the environment and in
// a YAML config file.
type values struct {
	APIURL     string `yaml:"api_url"`
	ConsoleURL string `yaml:"console_url"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
}

// Load reads configuration from the environment, overlaying values from the
// given YAML file when path is non-empty. File values win over environment
// values. Missing settings are reported together in one error.
func Load(path string) (*Config, error) {
	vals := values{
		APIURL:     os.Getenv("MINIO_API_URL"),
		ConsoleURL: os.Getenv("MINIO_CONSOLE_URL"),
		AccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		Bucket:     os.Getenv("MINIO_BUCKET"),
	}

	if path != "" {
		var fv values
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read config file %q: %v", ErrConfiguration, path, err)
		}
		if err := yaml.Unmarshal(data, &fv); err != nil {
			return nil, fmt.Errorf("%w: parse config file %q: %v", ErrConfiguration, path, err)
		}
		overlay(&vals, fv)
	}

	var missing []string
	for _, f := range []struct{ name, val string }{
		{"MINIO_API_URL", vals.APIURL},
		{"MINIO_CONSOLE_URL", vals.ConsoleURL},
		{"MINIO_ACCESS_KEY", vals.AccessKey},
		{"MINIO_SECRET_KEY", vals.SecretKey},
		{"MINIO_BUCKET", vals.Bucket},
	} {
		if f.val == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing environment variables: %s",
			ErrConfiguration, strings.Join(missing, ", "))
	}

	endpoint, secure := ParseEndpoint(vals.APIURL)

	return &Config{
		Endpoint:       endpoint,
		Secure:         secure,
		AccessKey:      vals.AccessKey,
		SecretKey:      vals.SecretKey,
		Bucket:         vals.Bucket,
		ConsoleBaseURL: vals.ConsoleURL,
	}, nil
}

func overlay(dst *values, src values) {
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	if src.ConsoleURL != "" {
		dst.ConsoleURL = src.ConsoleURL
	}
	if src.AccessKey != "" {
		dst.AccessKey = src.AccessKey
	}
	if src.SecretKey != "" {
		dst.SecretKey = src.SecretKey
	}
	if src.Bucket != "" {
		dst.Bucket = src.Bucket
	}
}

// ParseEndpoint splits an API URL into a schemeless endpoint and a secure
// flag. URLs without a scheme default to HTTPS.
func ParseEndpoint(apiURL string) (endpoint string, secure bool) {
	apiURL = strings.TrimRight(apiURL, "/")
	switch {
	case strings.HasPrefix(apiURL, "https://"):
		return strings.TrimPrefix(apiURL, "https://"), true
	case strings.HasPrefix(apiURL, "http://"):
		return strings.TrimPrefix(apiURL, "http://"), false
	default:
		return apiURL, true
	}
}
