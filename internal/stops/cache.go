// Package stops caches the CityBus stop directory on disk.
//
// The directory rarely changes and the remote fetch needs a scraped token,
// so the first successful fetch is persisted and trusted until someone
// deletes the cache files. There is no TTL and no revalidation: staleness
// against the remote directory is a known, accepted limitation.
package stops

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mamalakic/patras-citybus-cli/internal/models"
)

const (
	directoryFile = "stops.json"
	// nameFile keeps the code→name projection the original tooling wrote,
	// so existing lightweight lookups keep working.
	nameFile = "stop_name.json"
)

// DirectoryFetcher fetches the full stop directory from the remote API.
type DirectoryFetcher interface {
	FetchDirectory() ([]models.StopRecord, error)
}

// Cache is the on-disk stop directory. The cache directory is injected;
// nothing here reads ambient process-wide paths.
type Cache struct {
	dir     string
	fetcher DirectoryFetcher
}

// New creates a cache rooted at dir, fetching through fetcher on a cold
// cache.
func New(dir string, fetcher DirectoryFetcher) *Cache {
	return &Cache{dir: dir, fetcher: fetcher}
}

// Directory returns the full stop directory. A present cache file is
// returned without any network call; a cold cache triggers exactly one
// fetch, which persists both the directory and the name projection. An
// unreadable or corrupt cache file is reported and re-fetched, never
// trusted.
func (c *Cache) Directory() ([]models.StopRecord, error) {
	path := filepath.Join(c.dir, directoryFile)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var records []models.StopRecord
		jsonErr := json.Unmarshal(data, &records)
		if jsonErr == nil {
			return records, nil
		}
		log.Printf("Warning: ignoring corrupt stop directory cache %s: %v", path, jsonErr)
	case !errors.Is(err, fs.ErrNotExist):
		log.Printf("Warning: could not read stop directory cache %s: %v", path, err)
	}

	return c.refresh()
}

// NameMap returns the code→name projection of the directory, keyed by the
// stop code rendered as a string.
func (c *Cache) NameMap() (map[string]string, error) {
	path := filepath.Join(c.dir, nameFile)

	data, err := os.ReadFile(path)
	if err == nil {
		var names map[string]string
		jsonErr := json.Unmarshal(data, &names)
		if jsonErr == nil {
			return names, nil
		}
		log.Printf("Warning: ignoring corrupt stop name cache %s: %v", path, jsonErr)
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not read stop name cache %s: %v", path, err)
	}

	records, err := c.Directory()
	if err != nil {
		return nil, err
	}
	names := nameProjection(records)
	if err := c.writeJSON(nameFile, names); err != nil {
		return nil, err
	}
	return names, nil
}

// refresh fetches the directory and persists both cache files. A fetch
// failure is fatal to the caller: a partial directory is worse than none,
// since name lookup and proximity search both need the complete set.
func (c *Cache) refresh() ([]models.StopRecord, error) {
	records, err := c.fetcher.FetchDirectory()
	if err != nil {
		return nil, fmt.Errorf("fetching stop directory: %w", err)
	}

	if err := c.writeJSON(directoryFile, records); err != nil {
		return nil, err
	}
	if err := c.writeJSON(nameFile, nameProjection(records)); err != nil {
		return nil, err
	}
	return records, nil
}

func nameProjection(records []models.StopRecord) map[string]string {
	names := make(map[string]string, len(records))
	for _, r := range records {
		names[strconv.Itoa(r.Code)] = r.Name
	}
	return names
}

// writeJSON persists v under name via a temp file and rename, so a crash
// or a racing writer never leaves a half-written cache behind.
func (c *Cache) writeJSON(name string, v any) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating cache temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		return fmt.Errorf("writing cache file %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing cache file %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(c.dir, name)); err != nil {
		return fmt.Errorf("replacing cache file %s: %w", name, err)
	}
	return nil
}
