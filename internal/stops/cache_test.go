package stops

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mamalakic/patras-citybus-cli/internal/models"
)

// fakeFetcher returns a canned directory, counting fetches.
type fakeFetcher struct {
	records []models.StopRecord
	err     error
	calls   int
}

func (f *fakeFetcher) FetchDirectory() ([]models.StopRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func coord(v float64) *models.Coord {
	c := models.Coord(v)
	return &c
}

func sampleDirectory() []models.StopRecord {
	return []models.StopRecord{
		{Code: 214, Name: "Πλατεία Γεωργίου", Latitude: coord(38.2466), Longitude: coord(21.7346)},
		{Code: 215, Name: "Λιμάνι"},
	}
}

func TestColdCacheFetchesOnceAndWritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{records: sampleDirectory()}
	cache := New(dir, fetcher)

	records, err := cache.Directory()
	if err != nil {
		t.Fatalf("Directory() error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch called %d times, want 1", fetcher.calls)
	}
	if !reflect.DeepEqual(records, sampleDirectory()) {
		t.Errorf("directory mismatch: %+v", records)
	}

	for _, name := range []string{directoryFile, nameFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("cache file %s not written: %v", name, err)
		}
	}
}

func TestWarmCacheDoesNotFetch(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{records: sampleDirectory()}
	cache := New(dir, fetcher)

	first, err := cache.Directory()
	if err != nil {
		t.Fatalf("first Directory() error: %v", err)
	}

	second, err := cache.Directory()
	if err != nil {
		t.Fatalf("second Directory() error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch called %d times across two reads, want 1", fetcher.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("warm read differs from cold read: %+v vs %+v", first, second)
	}
}

func TestCachePreservesGreekText(t *testing.T) {
	dir := t.TempDir()
	cache := New(dir, &fakeFetcher{records: sampleDirectory()})

	if _, err := cache.Directory(); err != nil {
		t.Fatalf("Directory() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, directoryFile))
	if err != nil {
		t.Fatalf("reading cache file: %v", err)
	}
	if !strings.Contains(string(data), "Πλατεία Γεωργίου") {
		t.Error("Greek stop name not preserved verbatim in cache file")
	}
}

func TestCorruptCacheRefetches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, directoryFile)
	if err := os.WriteFile(path, []byte("{{{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	fetcher := &fakeFetcher{records: sampleDirectory()}
	cache := New(dir, fetcher)

	records, err := cache.Directory()
	if err != nil {
		t.Fatalf("Directory() error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch called %d times, want 1 after corrupt cache", fetcher.calls)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestColdCacheFetchFailureIsFatal(t *testing.T) {
	fetchErr := errors.New("api unreachable")
	cache := New(t.TempDir(), &fakeFetcher{err: fetchErr})

	if _, err := cache.Directory(); !errors.Is(err, fetchErr) {
		t.Errorf("got %v, want wrapped fetch error", err)
	}
}

func TestNameMapProjection(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{records: sampleDirectory()}
	cache := New(dir, fetcher)

	names, err := cache.NameMap()
	if err != nil {
		t.Fatalf("NameMap() error: %v", err)
	}

	want := map[string]string{"214": "Πλατεία Γεωργίου", "215": "Λιμάνι"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("NameMap() = %v, want %v", names, want)
	}

	// Second call must come from disk.
	if _, err := cache.NameMap(); err != nil {
		t.Fatalf("second NameMap() error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetch called %d times, want 1", fetcher.calls)
	}
}
