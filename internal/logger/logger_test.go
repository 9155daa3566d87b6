package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNew_WritesDailyJSONFile(t *testing.T) {
	root := t.TempDir()
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	log, err := New(root, "debug", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debugw("canonical redirect", "from", "/names/islamic/Ali")
	_ = log.Sync()

	path := filepath.Join(root, "logs", time.Now().Format("2006-01-02")+".log")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"canonical redirect"`) {
		t.Fatalf("debug line missing from %s:\n%s", path, b)
	}
	if zap.L() == prev {
		t.Fatalf("global logger not replaced")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(t.TempDir(), "chatty", false); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
