package storage_test

import (
	"testing"

	"github.com/freightdock/drayman/pkg/storage"
)

func TestConfigFinalize(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		cfg := storage.Config{ConnectionString: "UseDevelopmentStorage=true"}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}

		if cfg.ContainerName != "documents" {
			t.Errorf("ContainerName = %q, want documents", cfg.ContainerName)
		}
		if cfg.MaxListSize != 50 {
			t.Errorf("MaxListSize = %d, want 50", cfg.MaxListSize)
		}
	})

	t.Run("list size capped", func(t *testing.T) {
		cfg := storage.Config{
			ConnectionString: "UseDevelopmentStorage=true",
			MaxListSize:      10000,
		}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}

		if cfg.MaxListSize != storage.MaxListCap {
			t.Errorf("MaxListSize = %d, want cap %d", cfg.MaxListSize, storage.MaxListCap)
		}
	})

	t.Run("missing connection string rejected", func(t *testing.T) {
		cfg := storage.Config{}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("Finalize() should reject empty connection string")
		}
	})
}

func TestConfigMerge(t *testing.T) {
	cfg := storage.Config{
		ContainerName:    "documents",
		ConnectionString: "base",
		MaxListSize:      50,
	}

	cfg.Merge(&storage.Config{ContainerName: "archive"})

	if cfg.ContainerName != "archive" {
		t.Errorf("ContainerName = %q, want archive", cfg.ContainerName)
	}
	if cfg.ConnectionString != "base" {
		t.Errorf("ConnectionString = %q, want base untouched", cfg.ConnectionString)
	}
	if cfg.MaxListSize != 50 {
		t.Errorf("MaxListSize = %d, want 50 untouched", cfg.MaxListSize)
	}
}

func TestParseMaxResults(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int32
		want    int32
		wantErr bool
	}{
		{"empty returns limit", "", 50, 50, false},
		{"within limit", "25", 50, 25, false},
		{"clamped to limit", "200", 50, 50, false},
		{"zero rejected", "0", 50, 0, true},
		{"negative rejected", "-1", 50, 0, true},
		{"non-numeric rejected", "lots", 50, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.ParseMaxResults(tt.input, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMaxResults(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
