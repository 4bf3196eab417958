package catalogfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeFile(t, dir, "catalog.json", `[
		{"brand": "Nike", "model": "Vaporfly 3", "category": ["race"], "price_usd": 260, "plate": "carbon", "drop_mm": 8, "weight_g": 184},
		{"brand": "Brooks", "model": "Ghost 16", "category": ["daily", "easy"], "price_usd": 140}
	]`)

	repo := NewCatalogFileRepository(catalogPath, filepath.Join(dir, "missing.json"))

	records, err := repo.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Key() != "Nike_Vaporfly 3" {
		t.Errorf("wrong key: %s", records[0].Key())
	}
	if records[0].DropMM == nil || *records[0].DropMM != 8 {
		t.Errorf("drop not parsed: %v", records[0].DropMM)
	}
	if records[1].WeightG != nil {
		t.Errorf("absent weight should stay nil")
	}
	if records[1].PlateName() != "none" {
		t.Errorf("missing plate should default to none, got %s", records[1].PlateName())
	}
}

func TestLoadCatalogMissingFileFails(t *testing.T) {
	repo := NewCatalogFileRepository(filepath.Join(t.TempDir(), "nope.json"), "")
	if _, err := repo.LoadCatalog(context.Background()); err == nil {
		t.Fatal("expected an error for a missing catalog")
	}
}

func TestLoadCatalogMalformedFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"not": "an array"}`)
	repo := NewCatalogFileRepository(path, "")
	if _, err := repo.LoadCatalog(context.Background()); err == nil {
		t.Fatal("expected an error for malformed catalog")
	}
}

func TestLoadMarketContext(t *testing.T) {
	dir := t.TempDir()
	marketPath := writeFile(t, dir, "market.json", `{
		"Nike_Vaporfly 3": {"reviews": {"count": 412, "average_rating": 4.6}, "popularity_score": 0.95}
	}`)

	repo := NewCatalogFileRepository("", marketPath)

	market, err := repo.LoadMarketContext(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, ok := market["Nike_Vaporfly 3"]
	if !ok {
		t.Fatal("expected the vaporfly entry")
	}
	if data.ReviewCount != 412 || data.Rating != 4.6 || data.PopularityScore != 0.95 {
		t.Errorf("wrong market data: %+v", data)
	}
}

func TestLoadMarketContextMissingFileIsEmpty(t *testing.T) {
	repo := NewCatalogFileRepository("", filepath.Join(t.TempDir(), "absent.json"))

	market, err := repo.LoadMarketContext(context.Background())
	if err != nil {
		t.Fatalf("a missing sidecar must not fail: %v", err)
	}
	if len(market) != 0 {
		t.Errorf("expected empty context, got %d entries", len(market))
	}
}
