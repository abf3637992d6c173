package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shandysiswandi/arffview/internal/pkg/pkglog"
)

type seqID struct {
	n int64
}

func (s *seqID) Generate() int64 {
	s.n++
	return s.n
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestTempStoreCreateAndRelease(t *testing.T) {
	dir := t.TempDir()
	store := NewTempStore(dir, &seqID{})

	f, release, err := store.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasSuffix(f.Name(), "arff-1.arff") {
		t.Fatalf("unexpected temp name: %s", f.Name())
	}
	info, err := os.Stat(f.Name())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected mode 0600, got %o", perm)
	}

	release()
	release()

	if names := listDir(t, dir); len(names) != 0 {
		t.Fatalf("expected temp dir to be empty, got %v", names)
	}
}

func TestTempStoreRefusesExistingName(t *testing.T) {
	dir := t.TempDir()
	ids := &seqID{}

	_, release, err := NewTempStore(dir, ids).Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer release()

	ids.n = 0
	if _, _, err := NewTempStore(dir, ids).Create(context.Background()); err == nil {
		t.Fatal("expected exclusive create to fail on a name collision")
	}
}

func TestNewTempStoreDefaultsDir(t *testing.T) {
	if got := NewTempStore("", &seqID{}).dir; got != os.TempDir() {
		t.Fatalf("expected os.TempDir(), got %q", got)
	}
}

func TestTempStoreReleaseWarnsWithCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(pkglog.NewLogger(&buf))
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	ctx := pkglog.SetCorrelationID(context.Background(), "cid-temp")

	f, release, err := NewTempStore(dir, &seqID{}).Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// a non-empty directory under the same name makes the removal fail
	name := f.Name()
	_ = f.Close()
	if err := os.Remove(name); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(name, "child"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	release()

	out := buf.String()
	if !strings.Contains(out, "failed to remove temp file") {
		t.Fatalf("expected removal warning, got %q", out)
	}
	if !strings.Contains(out, `"_cID":"cid-temp"`) {
		t.Fatalf("expected correlation id on warning, got %q", out)
	}
}
