package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"CryptoPulse/internal/domain/repository"
)

const (
	cachePrefix = "market_data_"
	cacheSuffix = ".json"
)

// FileCache stores one raw market listing per fetch date as
// market_data_YYYY-MM-DD.json. "Latest" is the lexicographically greatest
// filename, which for ISO dates is the calendar-latest saved date.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-backed CacheStore rooted at dir.
func NewFileCache(dir string) repository.CacheStore {
	return &FileCache{dir: dir}
}

// Save writes the payload for a fetch date, overwriting any existing entry.
func (c *FileCache) Save(date string, payload []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	path := filepath.Join(c.dir, cachePrefix+date+cacheSuffix)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write cache %s: %w", path, err)
	}
	return nil
}

// LoadLatest returns the payload saved for the greatest date. A missing cache
// directory or an empty one yields (nil, false, nil).
func (c *FileCache) LoadLatest() ([]byte, bool, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, cachePrefix) || !strings.HasSuffix(name, cacheSuffix) {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, false, nil
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	payload, err := os.ReadFile(filepath.Join(c.dir, names[0]))
	if err != nil {
		return nil, false, fmt.Errorf("read cache %s: %w", names[0], err)
	}
	return payload, true, nil
}
