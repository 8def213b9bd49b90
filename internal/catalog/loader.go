package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"mockinterview/internal/config"
)

// ErrNoCategories means the question bank is unreachable or contains no
// usable categories.
var ErrNoCategories = errors.New("no categories available")

// Source is anything the selector can enumerate categories from.
type Source interface {
	Categories() ([]Category, error)
}

// Catalog loads categories from a directory tree of question files:
// <dir>/<category>/<level>.json, each file holding a JSON array of question
// groups. The result is cached after the first successful load.
type Catalog struct {
	dir string

	mu         sync.RWMutex
	categories []Category
	loaded     bool
}

func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Categories returns the cached categories, loading them from disk on the
// first call. It returns ErrNoCategories when nothing usable was found.
func (c *Catalog) Categories() ([]Category, error) {
	c.mu.RLock()
	if c.loaded {
		defer c.mu.RUnlock()
		return c.categories, nil
	}
	c.mu.RUnlock()

	return c.Reload()
}

// Reload scans the question directory again, replacing the cached categories.
func (c *Catalog) Reload() ([]Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	categories, err := loadDir(c.dir)
	if err != nil {
		return nil, err
	}

	c.categories = categories
	c.loaded = true
	return categories, nil
}

func loadDir(dir string) ([]Category, error) {
	log := config.Logger()

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.WithError(err).Warnf("failed to read question bank directory %s", dir)
		return nil, ErrNoCategories
	}

	var categories []Category
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		cat := loadCategory(dir, entry.Name())
		if len(cat.Groupings) == 0 {
			continue
		}
		categories = append(categories, cat)
	}

	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	return categories, nil
}

func loadCategory(dir, name string) Category {
	log := config.Logger()
	cat := Category{Name: name}

	files, err := os.ReadDir(filepath.Join(dir, name))
	if err != nil {
		log.WithError(err).Warnf("failed to read category directory %s", name)
		return cat
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		level := ParseLevel(strings.TrimSuffix(f.Name(), ".json"))
		questions := loadFile(filepath.Join(dir, name, f.Name()), name, level)
		if len(questions) == 0 {
			continue
		}
		cat.Groupings = append(cat.Groupings, Grouping{Level: level, Questions: questions})
	}
	return cat
}

// loadFile parses one question file (an array of question groups) and returns
// its questions flattened, with malformed entries dropped.
func loadFile(path, category string, level Level) []Question {
	log := config.Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Warnf("failed to read question file %s", path)
		return nil
	}

	var groups [][]Question
	if err := json.Unmarshal(data, &groups); err != nil {
		log.WithError(err).Warnf("failed to parse question file %s", path)
		return nil
	}

	var questions []Question
	for _, group := range groups {
		for _, q := range group {
			if strings.TrimSpace(q.Text) == "" || len(q.Answers) == 0 {
				log.Warnf("dropping malformed question in %s", path)
				continue
			}
			q.Category = category
			q.Level = level
			questions = append(questions, q)
		}
	}
	return questions
}
