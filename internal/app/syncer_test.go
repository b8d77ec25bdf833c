package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/composer/internal/config"
	"github.com/five82/composer/internal/persist"
	"github.com/five82/composer/internal/site"
	"github.com/five82/composer/internal/state"
	"github.com/five82/composer/internal/theme"
)

type recordingStore struct {
	mu     sync.Mutex
	docs   map[persist.Key]site.Document
	writes map[persist.Key]int
	fail   error
	wrote  chan persist.Key
}

func newRecordingStore() *recordingStore {
	return &recordingStore{
		docs:   map[persist.Key]site.Document{},
		writes: map[persist.Key]int{},
		wrote:  make(chan persist.Key, 64),
	}
}

func (r *recordingStore) Read(_ context.Context, key persist.Key) (site.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[key]
	if !ok {
		return site.Document{}, persist.ErrNotFound
	}
	return doc, nil
}

func (r *recordingStore) Write(_ context.Context, key persist.Key, doc site.Document) error {
	r.mu.Lock()
	r.writes[key]++
	fail := r.fail
	if fail == nil {
		r.docs[key] = doc
	}
	r.mu.Unlock()
	r.wrote <- key
	return fail
}

func (r *recordingStore) Close() error { return nil }

func (r *recordingStore) doc(key persist.Key) (site.Document, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[key]
	return doc, ok
}

func (r *recordingStore) count(key persist.Key) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes[key]
}

func waitForWrite(t *testing.T, r *recordingStore, want persist.Key) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case key := <-r.wrote:
			if key == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s write", want)
		}
	}
}

func TestSyncer_WritesWorkingCopyOnChange(t *testing.T) {
	store := state.New(state.Options{Presets: theme.Presets{}})
	dest := newRecordingStore()
	syncer := StartSyncer(context.Background(), store, dest)
	defer syncer.Stop()

	store.SetLogo("logo.svg")
	waitForWrite(t, dest, persist.WorkingCopy)

	doc, ok := dest.doc(persist.WorkingCopy)
	if !ok || doc.Logo != "logo.svg" {
		t.Fatalf("working copy = %#v, want logo.svg", doc)
	}
	if _, ok := dest.doc(persist.LiveCopy); ok {
		t.Fatalf("live copy written without publish")
	}
}

func TestSyncer_PublishWritesLiveCopyOnce(t *testing.T) {
	store := state.New(state.Options{Presets: theme.Presets{}})
	dest := newRecordingStore()
	syncer := StartSyncer(context.Background(), store, dest)

	store.ApplyTheme("Ocean")
	store.Publish()
	waitForWrite(t, dest, persist.LiveCopy)

	live, _ := dest.doc(persist.LiveCopy)
	if live.ThemeName != "Ocean" {
		t.Fatalf("live ThemeName = %q, want Ocean", live.ThemeName)
	}

	store.SetLogo("draft.svg")
	waitForWrite(t, dest, persist.WorkingCopy)
	syncer.Stop()

	if got := dest.count(persist.LiveCopy); got != 1 {
		t.Fatalf("live writes = %d, want 1", got)
	}
	if live, _ := dest.doc(persist.LiveCopy); live.Logo == "draft.svg" {
		t.Fatalf("unpublished edit reached the live copy")
	}
	if working, _ := dest.doc(persist.WorkingCopy); working.Logo != "draft.svg" {
		t.Fatalf("working Logo = %q, want draft.svg", working.Logo)
	}
}

// gatedStore holds the first working-copy write open until release is closed.
type gatedStore struct {
	*recordingStore
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedStore) Write(ctx context.Context, key persist.Key, doc site.Document) error {
	if key == persist.WorkingCopy {
		first := false
		g.once.Do(func() { first = true })
		if first {
			close(g.entered)
			<-g.release
		}
	}
	return g.recordingStore.Write(ctx, key, doc)
}

func TestSyncer_PublishDuringWriteReachesLiveCopy(t *testing.T) {
	store := state.New(state.Options{Presets: theme.Presets{}})
	dest := &gatedStore{
		recordingStore: newRecordingStore(),
		entered:        make(chan struct{}),
		release:        make(chan struct{}),
	}
	syncer := StartSyncer(context.Background(), store, dest)

	store.SetLogo("first.svg")
	select {
	case <-dest.entered:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the first working write")
	}

	store.ApplyTheme("Ocean")
	store.Publish()
	close(dest.release)

	waitForWrite(t, dest.recordingStore, persist.LiveCopy)
	if live, _ := dest.doc(persist.LiveCopy); live.ThemeName != "Ocean" {
		t.Fatalf("live ThemeName = %q, want Ocean", live.ThemeName)
	}

	syncer.Stop()
	if live, _ := dest.doc(persist.LiveCopy); live.ThemeName != "Ocean" {
		t.Fatalf("live ThemeName after Stop = %q, want Ocean", live.ThemeName)
	}
	if got := dest.count(persist.LiveCopy); got != 1 {
		t.Fatalf("live writes = %d, want 1", got)
	}
}

func TestSyncer_StopFlushesAndUnsubscribes(t *testing.T) {
	store := state.New(state.Options{Presets: theme.Presets{}})
	dest := newRecordingStore()
	syncer := StartSyncer(context.Background(), store, dest)

	store.SetLogo("last.svg")
	syncer.Stop()
	syncer.Stop()

	if working, _ := dest.doc(persist.WorkingCopy); working.Logo != "last.svg" {
		t.Fatalf("working Logo = %q after Stop, want last.svg", working.Logo)
	}

	before := dest.count(persist.WorkingCopy)
	store.SetLogo("after-stop.svg")
	time.Sleep(20 * time.Millisecond)
	if got := dest.count(persist.WorkingCopy); got != before {
		t.Fatalf("writes after Stop = %d, want %d", got, before)
	}
}

func TestSyncer_WriteErrorsAreRecordedNotRetried(t *testing.T) {
	store := state.New(state.Options{Presets: theme.Presets{}})
	dest := newRecordingStore()
	dest.fail = errors.New("disk full")
	syncer := StartSyncer(context.Background(), store, dest)
	defer syncer.Stop()

	store.SetLogo("x.svg")
	waitForWrite(t, dest, persist.WorkingCopy)

	deadline := time.Now().Add(2 * time.Second)
	for syncer.LastError() == nil && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if err := syncer.LastError(); err == nil || err.Error() != "disk full" {
		t.Fatalf("LastError = %v, want disk full", err)
	}

	time.Sleep(20 * time.Millisecond)
	if got := dest.count(persist.WorkingCopy); got != 1 {
		t.Fatalf("working writes = %d, want 1 (no retry)", got)
	}
	if store.Logo() != "x.svg" {
		t.Fatalf("in-memory document changed by a failed write")
	}
}

func TestLoadInitial(t *testing.T) {
	ctx := context.Background()
	dest := newRecordingStore()
	cfg := configWithResume(true)

	doc, err := loadInitial(ctx, dest, cfg, Options{})
	if err != nil {
		t.Fatalf("loadInitial(empty) error: %v", err)
	}
	if doc.ThemeName != site.DefaultDocument().ThemeName {
		t.Fatalf("empty store should seed the default document")
	}

	if _, err := loadInitial(ctx, dest, cfg, Options{Live: true}); err == nil {
		t.Fatalf("loadInitial(live, nothing published) returned nil error")
	}

	working := site.DefaultDocument()
	working.Logo = "working.svg"
	live := site.DefaultDocument()
	live.Logo = "live.svg"
	dest.docs[persist.WorkingCopy] = working
	dest.docs[persist.LiveCopy] = live

	tests := []struct {
		name string
		cfg  bool
		opts Options
		want string
	}{
		{"resume", true, Options{}, "working.svg"},
		{"fresh flag", true, Options{Fresh: true}, ""},
		{"resume disabled", false, Options{}, ""},
		{"live", false, Options{Live: true}, "live.svg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := loadInitial(ctx, dest, configWithResume(tc.cfg), tc.opts)
			if err != nil {
				t.Fatalf("loadInitial error: %v", err)
			}
			if doc.Logo != tc.want {
				t.Fatalf("Logo = %q, want %q", doc.Logo, tc.want)
			}
		})
	}
}

func configWithResume(resume bool) config.Config {
	cfg := config.Default()
	cfg.Resume = resume
	return cfg
}
