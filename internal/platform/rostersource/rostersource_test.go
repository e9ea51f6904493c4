package rostersource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ogurasousui/codex-grpc-payroll/internal/adapters/roster/file"
	"github.com/ogurasousui/codex-grpc-payroll/internal/platform/config"
)

func TestOpen_FileSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "roster.csv")
	content := "id,name,kind,hire_date,permanent,monthly_salary\nT1,Marta Silva,temporary,2025-03-01,false,1000000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write roster: %v", err)
	}

	cfg := &config.Config{Roster: config.RosterConfig{Source: config.RosterSourceFile, Path: path}}

	src, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer src.Close()

	if _, ok := src.Repository.(*file.Repository); !ok {
		t.Fatalf("expected file repository, got %T", src.Repository)
	}
	if src.TxManager != nil {
		t.Fatalf("expected no transaction manager for file source")
	}

	records, err := src.Repository.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "T1" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestOpen_FileSourceUnsupportedFormat(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Roster: config.RosterConfig{Source: config.RosterSourceFile, Path: "roster.json"}}

	if _, err := Open(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestSource_CloseWithoutPool(t *testing.T) {
	t.Parallel()

	var nilSource *Source
	nilSource.Close()
	(&Source{}).Close()
}
