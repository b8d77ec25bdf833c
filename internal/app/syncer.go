package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/five82/composer/internal/persist"
	"github.com/five82/composer/internal/state"
)

const defaultWriteTimeout = 5 * time.Second

// Syncer writes the store's working copy after every change and the live
// copy after every publish. Failed writes are logged and not retried; the
// next change writes the whole document again.
type Syncer struct {
	store   *state.Store
	dest    persist.Store
	timeout time.Duration

	wake        chan struct{}
	done        chan struct{}
	unsubscribe func()
	cancel      context.CancelFunc
	stopOnce    sync.Once

	mu      sync.Mutex
	lastErr error
}

// StartSyncer subscribes to store and launches the background writer. It
// returns immediately.
func StartSyncer(ctx context.Context, store *state.Store, dest persist.Store) *Syncer {
	ctx, cancel := context.WithCancel(ctx)
	s := &Syncer{
		cancel:  cancel,
		store:   store,
		dest:    dest,
		timeout: defaultWriteTimeout,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.unsubscribe = store.Subscribe(func(state.Change) { s.signal() })

	go func() {
		defer close(s.done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.wake:
				s.sync(ctx)
			}
		}
	}()
	return s
}

// signal never blocks: pending wakes collapse into one.
func (s *Syncer) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Stop unsubscribes, waits for the writer to exit and writes the final
// document once more so no change is lost.
func (s *Syncer) Stop() {
	s.stopOnce.Do(func() {
		s.unsubscribe()
		s.cancel()
		<-s.done
		s.sync(context.Background())
	})
}

// LastError returns the most recent write failure, or nil after a
// successful write.
func (s *Syncer) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Syncer) sync(ctx context.Context) {
	snap := s.store.TakeSnapshot()

	err := s.write(ctx, persist.WorkingCopy, snap)
	if snap.PublishPending {
		if liveErr := s.write(ctx, persist.LiveCopy, snap); liveErr != nil {
			err = liveErr
		}
	}

	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

func (s *Syncer) write(ctx context.Context, key persist.Key, snap state.Snapshot) error {
	doc := snap.Document
	if key == persist.LiveCopy && snap.LastSaved != nil {
		doc = *snap.LastSaved
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.dest.Write(ctx, key, doc); err != nil {
		log.Printf("write %s copy failed: %v", key, err)
		return err
	}
	return nil
}
