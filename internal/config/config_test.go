package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("EPICCANVAS_CONFIG_DIR", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CellWidth != 0 || cfg.Growth != "" {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EPICCANVAS_CONFIG_DIR", dir)

	zero := 0
	if err := Save(&Config{CellWidth: 8, Growth: "fixed", ExtendThreshold: &zero}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Fatalf("expected config.json: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := cfg.Resolved()
	if r.CellWidth != 8 || r.Growth != "fixed" || *r.ExtendThreshold != 0 {
		t.Fatalf("unexpected resolved config %+v", r)
	}
	if r.Rows != DefaultRows || r.Days != DefaultDays || len(r.Colors) == 0 {
		t.Fatalf("expected defaults filled in, got %+v", r)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EPICCANVAS_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	bad := Default()
	bad.Growth = "double"
	if err := bad.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for growth, got %v", err)
	}
	for _, w := range []int{2, 4} {
		bad = Default()
		bad.CellWidth = w
		if err := bad.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid for cellWidth %d, got %v", w, err)
		}
	}
	ok := Default()
	ok.CellWidth = MinCellWidth
	if err := ok.Validate(); err != nil {
		t.Fatalf("cellWidth %d should validate: %v", MinCellWidth, err)
	}
	neg := -1
	bad = Default()
	bad.ExtendThreshold = &neg
	if err := bad.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for threshold, got %v", err)
	}
}
