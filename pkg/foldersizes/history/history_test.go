package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/history"
	"github.com/dmcp718/fs-folder-sizes/pkg/foldersizes/types"
)

func testRecord(id string, start time.Time) *history.Record {
	return &history.Record{
		ID:   id,
		Root: "/data",
		Stats: types.ScanStats{
			TotalFiles: 10,
			TotalDirs:  3,
			TotalSize:  4096,
			StartTime:  start,
			EndTime:    start.Add(time.Second),
		},
		FolderCount: 4,
		Format:      "csv",
	}
}

func TestStoreOpenClose(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestStoreAppendAndGet(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := testRecord("0b5c3a1e-0000-0000-0000-000000000001", start)
	rec.ReportPath = "/tmp/folder_sizes.csv"
	rec.ErrorCount = 2
	rec.Interrupted = true

	require.NoError(t, s.Append(rec))

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "/data", got.Root)
	assert.Equal(t, int64(10), got.Stats.TotalFiles)
	assert.Equal(t, int64(4096), got.Stats.TotalSize)
	assert.True(t, got.Stats.StartTime.Equal(start))
	assert.Equal(t, 4, got.FolderCount)
	assert.Equal(t, "/tmp/folder_sizes.csv", got.ReportPath)
	assert.Equal(t, 2, got.ErrorCount)
	assert.True(t, got.Interrupted)

	// A unique ID prefix is enough.
	got, err = s.Get("0b5c3a1e")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestStoreAppendAssignsID(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	rec := testRecord("", time.Now())
	require.NoError(t, s.Append(rec))
	assert.NotEmpty(t, rec.ID)
}

func TestStoreAppendRequiresStartTime(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	err = s.Append(&history.Record{ID: "x", Root: "/data"})
	assert.Error(t, err)
}

func TestStoreList_NewestFirst(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Append(testRecord("b", base.Add(time.Hour))))
	require.NoError(t, s.Append(testRecord("a", base)))
	require.NoError(t, s.Append(testRecord("c", base.Add(2*time.Hour))))

	records, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "a", records[2].ID)

	records, err = s.List(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
}

func TestStoreGetNotFound(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, history.ErrNotFound)
}

func TestStoreGetAmbiguousPrefix(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Append(testRecord("aaa1", base)))
	require.NoError(t, s.Append(testRecord("aaa2", base.Add(time.Minute))))

	_, err = s.Get("aaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestStoreLast(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Last()
	assert.ErrorIs(t, err, history.ErrNotFound)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Append(testRecord("old", base)))
	require.NoError(t, s.Append(testRecord("new", base.Add(time.Hour))))

	rec, err := s.Last()
	require.NoError(t, err)
	assert.Equal(t, "new", rec.ID)
}

func TestStorePrune(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Append(testRecord("old", base)))
	require.NoError(t, s.Append(testRecord("mid", base.Add(24*time.Hour))))
	require.NoError(t, s.Append(testRecord("new", base.Add(48*time.Hour))))

	removed, err := s.Prune(base.Add(24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	records, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "new", records[0].ID)
	assert.Equal(t, "mid", records[1].ID)
}

func TestStoreClear(t *testing.T) {
	s, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Append(testRecord("a", base)))
	require.NoError(t, s.Append(testRecord("b", base.Add(time.Hour))))

	removed, err := s.Clear()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	records, err := s.List(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := history.Open(dir)
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Append(testRecord("persisted", start)))
	require.NoError(t, s.Close())

	s, err = history.Open(dir)
	require.NoError(t, err)
	defer s.Close()

	rec, err := s.Get("persisted")
	require.NoError(t, err)
	assert.Equal(t, int64(4096), rec.Stats.TotalSize)
}
