package ollama

import (
	"testing"
)

func TestParseDirectJSONArray(t *testing.T) {
	got, err := parseStringList(`["alpha", "beta", "gamma"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != "alpha" || got[2] != "gamma" {
		t.Errorf("wrong parse: %v", got)
	}
}

func TestParseFencedCodeBlock(t *testing.T) {
	content := "Here are the justifications:\n```json\n[\"one\", \"two\"]\n```\nHope that helps!"
	got, err := parseStringList(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("wrong parse: %v", got)
	}
}

func TestParseBareFence(t *testing.T) {
	content := "```\n[\"x\"]\n```"
	got, err := parseStringList(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("wrong parse: %v", got)
	}
}

func TestParseEmbeddedArray(t *testing.T) {
	content := `Sure! The answer is ["first shoe", "second shoe"] as requested.`
	got, err := parseStringList(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1] != "second shoe" {
		t.Errorf("wrong parse: %v", got)
	}
}

func TestParseProseLines(t *testing.T) {
	content := "1. Great for racing.\n2. Solid tempo option.\n\n3. Cushioned daily trainer."
	got, err := parseStringList(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %v", got)
	}
	if got[0] != "Great for racing." {
		t.Errorf("list markers should be stripped: %q", got[0])
	}
}

func TestParseEmptyContentFails(t *testing.T) {
	if _, err := parseStringList("   \n  "); err == nil {
		t.Fatal("expected an error on empty content")
	}
}

func TestParseSkipsBlankArrayEntries(t *testing.T) {
	got, err := parseStringList(`["keep", "", "  ", "also keep"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "keep" || got[1] != "also keep" {
		t.Errorf("blank entries should be dropped: %v", got)
	}
}
