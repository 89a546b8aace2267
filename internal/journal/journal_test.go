package journal

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"fishguide/internal/store"
	"fishguide/internal/store/memory"
)

func TestMain(m *testing.M) {
	zap.ReplaceGlobals(zap.NewNop())
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2024, time.July, 15, 12, 30, 0, 0, time.UTC)

func newService(kv store.KV) *Service {
	return New(kv,
		WithClock(func() time.Time { return fixedNow }),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
}

func sampleEntry(id, title string) Entry {
	return Entry{
		ID:         id,
		Date:       "2024-07-14",
		Location:   "Narragansett Bay",
		Title:      title,
		Content:    "Drifted the west passage on the outgoing tide.",
		FishImages: []string{"data:image/png;base64,AAAA"},
		Weather:    "Partly Cloudy",
		Conditions: "Light SW wind",
		FishCaught: []string{"Striped Bass", "Bluefish"},
		Notes:      "Eels outfished bunker.",
	}
}

func TestEntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	svc := newService(kv)

	saved, err := svc.SaveEntry(ctx, sampleEntry("e1", "Evening stripers"))
	require.NoError(t, err)

	got, err := svc.Entry(ctx, "e1")
	require.NoError(t, err)
	if diff := cmp.Diff(saved, got); diff != "" {
		t.Errorf("entry round trip mismatch (-saved +loaded):\n%s", diff)
	}

	want, err := json.Marshal(saved)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(gotJSON))
}

func TestSaveEntryPrependsAndReplaces(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.New())

	_, err := svc.SaveEntry(ctx, sampleEntry("a", "first"))
	require.NoError(t, err)
	_, err = svc.SaveEntry(ctx, sampleEntry("b", "second"))
	require.NoError(t, err)

	ids := func() []string {
		var out []string
		for _, e := range svc.Entries(ctx) {
			out = append(out, e.ID)
		}
		return out
	}
	assert.Equal(t, []string{"b", "a"}, ids())

	_, err = svc.SaveEntry(ctx, sampleEntry("a", "first, edited"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids())

	a, err := svc.Entry(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "first, edited", a.Title)
}

func TestSaveEntryFillsDefaults(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	svc := newService(kv)

	e, err := svc.SaveEntry(ctx, Entry{Title: "quick trip"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^1721046600000[0-9a-z]{9}$`), e.ID)
	assert.Equal(t, "2024-07-15", e.Date)

	raw, err := kv.Get(ctx, EntriesKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"fishImages":[]`)
	assert.Contains(t, string(raw), `"fishCaught":[]`)
}

func TestDeleteEntryLeavesOthers(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.New())

	for _, id := range []string{"a", "b", "c"} {
		_, err := svc.SaveEntry(ctx, sampleEntry(id, "trip "+id))
		require.NoError(t, err)
	}
	before := svc.Entries(ctx)

	require.NoError(t, svc.DeleteEntry(ctx, "b"))
	after := svc.Entries(ctx)

	want := []Entry{before[0], before[2]}
	if diff := cmp.Diff(want, after); diff != "" {
		t.Errorf("entries after delete (-want +got):\n%s", diff)
	}

	err := svc.DeleteEntry(ctx, "b")
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.Len(t, svc.Entries(ctx), 2)
}

func TestEntryNotFound(t *testing.T) {
	_, err := newService(memory.New()).Entry(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCatches(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.New())

	_, err := svc.AddCatch(ctx, Catch{ID: "c1", Species: "Fluke", Size: "21 in", Location: "Block Island", JournalEntryID: "e1"})
	require.NoError(t, err)
	_, err = svc.AddCatch(ctx, Catch{ID: "c2", Species: "Scup", Location: "Block Island", JournalEntryID: "e2"})
	require.NoError(t, err)
	c3, err := svc.AddCatch(ctx, Catch{Species: "Tautog", JournalEntryID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-07-15", c3.Date)

	all := svc.Catches(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, c3.ID, all[0].ID)
	assert.Equal(t, "c1", all[2].ID)

	forE1 := svc.CatchesForEntry(ctx, "e1")
	require.Len(t, forE1, 2)
	assert.Equal(t, "Tautog", forE1[0].Species)
	assert.Equal(t, "Fluke", forE1[1].Species)
	assert.Empty(t, svc.CatchesForEntry(ctx, "nope"))

	require.NoError(t, svc.DeleteCatch(ctx, "c2"))
	assert.Len(t, svc.Catches(ctx), 2)
	assert.ErrorIs(t, svc.DeleteCatch(ctx, "c2"), ErrCatchNotFound)
}

func TestCatchOmitsEmptyMeasurements(t *testing.T) {
	data, err := json.Marshal(Catch{ID: "x", Species: "Bluefish"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "size")
	assert.NotContains(t, string(data), "weight")
	assert.Contains(t, string(data), `"journalEntryId":""`)
}

type brokenKV struct {
	memory.Store
	getErr error
	putErr error
	data   []byte
}

func (b *brokenKV) Get(ctx context.Context, key string) ([]byte, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}
	if b.data != nil {
		return b.data, nil
	}
	return nil, store.ErrNotFound
}

func (b *brokenKV) Put(ctx context.Context, key string, value []byte) error {
	return b.putErr
}

func TestReadFailuresYieldEmpty(t *testing.T) {
	ctx := context.Background()

	svc := newService(&brokenKV{getErr: errors.New("disk gone")})
	assert.Empty(t, svc.Entries(ctx))
	assert.Empty(t, svc.Catches(ctx))

	svc = newService(&brokenKV{data: []byte("{not json")})
	assert.NotNil(t, svc.Entries(ctx))
	assert.Empty(t, svc.Entries(ctx))
}

func TestWriteFailuresReturned(t *testing.T) {
	ctx := context.Background()
	svc := newService(&brokenKV{putErr: errors.New("read-only")})

	_, err := svc.SaveEntry(ctx, sampleEntry("a", "x"))
	assert.ErrorContains(t, err, "saving journal entry")

	_, err = svc.AddCatch(ctx, Catch{Species: "Fluke"})
	assert.ErrorContains(t, err, "adding fish caught")
}

// flakyKV fails the next Get once, then behaves like the store it wraps.
type flakyKV struct {
	*memory.Store
	failGet bool
}

func (f *flakyKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		f.failGet = false
		return nil, errors.New("connection reset")
	}
	return f.Store.Get(ctx, key)
}

func TestWritesKeepDataAfterReadFailure(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{Store: memory.New()}
	svc := newService(kv)
	for _, id := range []string{"a", "b", "c"} {
		_, err := svc.SaveEntry(ctx, sampleEntry(id, "trip "+id))
		require.NoError(t, err)
	}
	_, err := svc.AddCatch(ctx, Catch{ID: "k1", Species: "Fluke"})
	require.NoError(t, err)

	t.Run("save entry", func(t *testing.T) {
		kv.failGet = true
		_, err := svc.SaveEntry(ctx, sampleEntry("d", "trip d"))
		assert.ErrorContains(t, err, "connection reset")
		assert.Len(t, svc.Entries(ctx), 3)
	})

	t.Run("delete entry", func(t *testing.T) {
		kv.failGet = true
		err := svc.DeleteEntry(ctx, "a")
		assert.ErrorContains(t, err, "deleting journal entry")
		assert.False(t, errors.Is(err, ErrEntryNotFound))
		assert.Len(t, svc.Entries(ctx), 3)
	})

	t.Run("add catch", func(t *testing.T) {
		kv.failGet = true
		_, err := svc.AddCatch(ctx, Catch{Species: "Tautog"})
		assert.ErrorContains(t, err, "adding fish caught")
		assert.Len(t, svc.Catches(ctx), 1)
	})

	t.Run("delete catch", func(t *testing.T) {
		kv.failGet = true
		err := svc.DeleteCatch(ctx, "k1")
		assert.ErrorContains(t, err, "deleting fish caught")
		assert.Len(t, svc.Catches(ctx), 1)
	})
}

func TestWritesReplaceUndecodableValue(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	require.NoError(t, kv.Put(ctx, EntriesKey, []byte("{not json")))
	svc := newService(kv)

	_, err := svc.SaveEntry(ctx, sampleEntry("a", "fresh start"))
	require.NoError(t, err)
	entries := svc.Entries(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ID)
}

func TestNewIDUnique(t *testing.T) {
	svc := newService(memory.New())
	seen := map[string]bool{}
	for range 500 {
		id := svc.NewID()
		require.Len(t, id, 22)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestEncodeImages(t *testing.T) {
	dir := t.TempDir()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpg := []byte("\xff\xd8\xff\xe0\x00\x10JFIF")
	pngPath := filepath.Join(dir, "a.png")
	jpgPath := filepath.Join(dir, "b.jpg")
	require.NoError(t, os.WriteFile(pngPath, png, 0o644))
	require.NoError(t, os.WriteFile(jpgPath, jpg, 0o644))

	urls, err := EncodeImages(context.Background(), []string{jpgPath, pngPath, jpgPath})
	require.NoError(t, err)
	require.Len(t, urls, 3)
	assert.Regexp(t, `^data:image/jpeg;base64,`, urls[0])
	assert.Regexp(t, `^data:image/png;base64,`, urls[1])
	assert.Equal(t, urls[0], urls[2])
	assert.Equal(t, DataURL(png), urls[1])

	_, err = EncodeImages(context.Background(), []string{pngPath, filepath.Join(dir, "missing.png")})
	assert.ErrorContains(t, err, "missing.png")
}
