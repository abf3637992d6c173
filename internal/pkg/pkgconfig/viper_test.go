package pkgconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, "int: 42\nbool: true\nstring: hi\narray: a, b,,c\ntimeout: 15s\n")

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	defer func() {
		if err := cfg.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if got := cfg.GetInt("int"); got != 42 {
		t.Fatalf("GetInt: expected 42, got %d", got)
	}
	if got := cfg.GetBool("bool"); got != true {
		t.Fatalf("GetBool: expected true, got %v", got)
	}
	if got := cfg.GetString("string"); got != "hi" {
		t.Fatalf("GetString: expected hi, got %q", got)
	}
	if got := cfg.GetArray("array"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("GetArray: unexpected value: %#v", got)
	}
	if got := cfg.GetDuration("timeout"); got != 15*time.Second {
		t.Fatalf("GetDuration: expected 15s, got %v", got)
	}
}

func TestViperGetArrayFromListAndEnv(t *testing.T) {
	path := writeConfigFile(t, "cors:\n  allowed_origins:\n    - https://a.example\n    - \" \"\n    - https://b.example\n")

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	if got := cfg.GetArray("cors.allowed_origins"); !reflect.DeepEqual(got, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected list value: %#v", got)
	}

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://c.example, https://d.example")
	if got := cfg.GetArray("cors.allowed_origins"); !reflect.DeepEqual(got, []string{"https://c.example", "https://d.example"}) {
		t.Fatalf("unexpected env value: %#v", got)
	}
}

func TestViperGetArrayEmpty(t *testing.T) {
	path := writeConfigFile(t, "other: x\n")
	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetArray("missing"); got != nil {
		t.Fatalf("expected nil for missing key, got %#v", got)
	}
}

func TestViperEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "upload:\n  max_size: 10\n")
	t.Setenv("UPLOAD_MAX_SIZE", "2048")

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetInt("upload.max_size"); got != 2048 {
		t.Fatalf("expected env override 2048, got %d", got)
	}
}

func TestNewViperMissingFile(t *testing.T) {
	if _, err := NewViper(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
