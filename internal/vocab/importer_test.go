package vocab

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write CSV fixture: %v", err)
	}
	return path
}

func TestImportCSV(t *testing.T) {
	lib := newTestLibrary(t)
	path := writeCSV(t, "saya,I;me\nkucing,cat\n")

	res, err := lib.ImportCSV(path, "id")
	if err != nil {
		t.Fatalf("ImportCSV() returned an unexpected error: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 0 {
		t.Errorf("Expected imported=2 skipped=0, got %+v", res)
	}

	cards, _, err := lib.Load("id")
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}

	saya := cards[0]
	if saya.Word != "saya" {
		t.Fatalf("Expected saya first, got %q", saya.Word)
	}
	if len(saya.Translations) != 2 || saya.Translations[0] != "I" || saya.Translations[1] != "me" {
		t.Errorf("Expected translations [I me], got %v", saya.Translations)
	}
	if saya.Difficulty != 2.5 {
		t.Errorf("Expected the default difficulty 2.5, got %.2f", saya.Difficulty)
	}
}

func TestImportCSVSkipsMalformedRows(t *testing.T) {
	lib := newTestLibrary(t)
	path := writeCSV(t, "kucing,cat\nlonelyword\n,missingword\nanjing,dog\n")

	res, err := lib.ImportCSV(path, "id")
	if err != nil {
		t.Fatalf("ImportCSV() returned an unexpected error: %v", err)
	}
	if res.Imported != 2 {
		t.Errorf("Expected 2 imported rows, got %d", res.Imported)
	}
	if res.Skipped != 2 {
		t.Errorf("Expected 2 skipped rows, got %d", res.Skipped)
	}
}

func TestImportCSVUpdatesDuplicates(t *testing.T) {
	lib := newTestLibrary(t)

	first := writeCSV(t, "kucing,cat\n")
	if _, err := lib.ImportCSV(first, "id"); err != nil {
		t.Fatalf("ImportCSV() returned an unexpected error: %v", err)
	}

	second := writeCSV(t, "kucing,cat;kitty\n")
	res, err := lib.ImportCSV(second, "id")
	if err != nil {
		t.Fatalf("ImportCSV() returned an unexpected error: %v", err)
	}
	if res.Updated != 1 || res.Imported != 0 {
		t.Errorf("Expected updated=1 imported=0, got %+v", res)
	}

	cards, _, err := lib.Load("id")
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("Expected the duplicate to update in place, got %d cards", len(cards))
	}
	if len(cards[0].Translations) != 2 {
		t.Errorf("Expected refreshed translations, got %v", cards[0].Translations)
	}
}

func TestImportCSVMissingFile(t *testing.T) {
	lib := newTestLibrary(t)
	if _, err := lib.ImportCSV(filepath.Join(t.TempDir(), "nope.csv"), "id"); err == nil {
		t.Error("Expected an error for a missing CSV file")
	}
}
