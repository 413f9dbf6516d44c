package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesToFile(t *testing.T) {
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
		log.SetFlags(log.LstdFlags)
	})

	path := filepath.Join(t.TempDir(), "nested", "chainview.log")
	closer, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Printf("chain changed: rendering %d blocks", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "chain changed: rendering 3 blocks") {
		t.Fatalf("log file = %q, want the logged line", data)
	}
}

func TestSetup_EmptyPathDiscards(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	closer, err := Setup("  ")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}
