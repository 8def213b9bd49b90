package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mockinterview/internal/catalog"
)

func writeQuestionFile(t *testing.T, dir, category, file, content string) {
	t.Helper()
	catDir := filepath.Join(dir, category)
	if err := os.MkdirAll(catDir, 0o755); err != nil {
		t.Fatalf("failed to create category dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(catDir, file), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write question file: %v", err)
	}
}

const validFile = `[
  [
    {
      "question": "What is an API?",
      "answers": [
        {"answer_id": 1, "answer_text": "An interface"},
        {"answer_id": 2, "answer_text": "A protocol"}
      ],
      "correct_answer_id": 1,
      "hint": "Three letters.",
      "theme": "fundamentals"
    }
  ]
]`

func TestCatalogLoad(t *testing.T) {
	t.Run("ValidBank", func(t *testing.T) {
		dir := t.TempDir()
		writeQuestionFile(t, dir, "backend", "junior.json", validFile)
		writeQuestionFile(t, dir, "backend", "senior.json", validFile)
		writeQuestionFile(t, dir, "qa", "middle.json", validFile)

		cats, err := catalog.NewCatalog(dir).Categories()
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		if len(cats) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(cats))
		}

		for _, c := range cats {
			if c.Name != "backend" {
				continue
			}
			if len(c.Groupings) != 2 {
				t.Errorf("expected 2 groupings in backend, got %d", len(c.Groupings))
			}
			qs := c.QuestionsIn(catalog.LevelJunior)
			if len(qs) != 1 {
				t.Fatalf("expected 1 junior question, got %d", len(qs))
			}
			if qs[0].Category != "backend" || qs[0].Level != catalog.LevelJunior {
				t.Errorf("question not tagged with category/level: %+v", qs[0])
			}
		}
	})

	t.Run("MalformedEntriesDropped", func(t *testing.T) {
		dir := t.TempDir()
		writeQuestionFile(t, dir, "backend", "junior.json", `[
		  [
		    {"question": "", "answers": [{"answer_id": 1, "answer_text": "x"}]},
		    {"question": "No answers at all"},
		    {
		      "question": "Kept",
		      "answers": [{"answer_id": 1, "answer_text": "yes"}],
		      "correct_answer_id": 1
		    }
		  ]
		]`)

		cats, err := catalog.NewCatalog(dir).Categories()
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		qs := cats[0].QuestionsIn("")
		if len(qs) != 1 || qs[0].Text != "Kept" {
			t.Fatalf("expected only the well-formed question, got %+v", qs)
		}
	})

	t.Run("UnparsableFileContributesNothing", func(t *testing.T) {
		dir := t.TempDir()
		writeQuestionFile(t, dir, "backend", "junior.json", `{not json`)
		writeQuestionFile(t, dir, "backend", "middle.json", validFile)

		cats, err := catalog.NewCatalog(dir).Categories()
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		if len(cats[0].Groupings) != 1 {
			t.Fatalf("expected 1 grouping, got %d", len(cats[0].Groupings))
		}
	})

	t.Run("NonJSONFilesIgnored", func(t *testing.T) {
		dir := t.TempDir()
		writeQuestionFile(t, dir, "backend", "README.md", "notes")
		writeQuestionFile(t, dir, "backend", "junior.json", validFile)

		cats, err := catalog.NewCatalog(dir).Categories()
		if err != nil {
			t.Fatalf("Categories failed: %v", err)
		}
		if len(cats[0].Groupings) != 1 {
			t.Fatalf("expected 1 grouping, got %d", len(cats[0].Groupings))
		}
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		_, err := catalog.NewCatalog(t.TempDir()).Categories()
		if !errors.Is(err, catalog.ErrNoCategories) {
			t.Fatalf("expected ErrNoCategories, got %v", err)
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		_, err := catalog.NewCatalog(filepath.Join(t.TempDir(), "nope")).Categories()
		if !errors.Is(err, catalog.ErrNoCategories) {
			t.Fatalf("expected ErrNoCategories, got %v", err)
		}
	})

	t.Run("ReloadPicksUpNewData", func(t *testing.T) {
		dir := t.TempDir()
		c := catalog.NewCatalog(dir)

		if _, err := c.Categories(); !errors.Is(err, catalog.ErrNoCategories) {
			t.Fatalf("expected ErrNoCategories before data exists, got %v", err)
		}

		writeQuestionFile(t, dir, "backend", "junior.json", validFile)
		cats, err := c.Reload()
		if err != nil {
			t.Fatalf("Reload failed: %v", err)
		}
		if len(cats) != 1 {
			t.Fatalf("expected 1 category after reload, got %d", len(cats))
		}
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]catalog.Level{
		"junior":   catalog.LevelJunior,
		"middle":   catalog.LevelMiddle,
		"senior":   catalog.LevelSenior,
		"whatever": catalog.LevelUnknown,
	}
	for in, want := range cases {
		if got := catalog.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}
