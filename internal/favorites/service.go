package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abgdnv/storefront/pkg/messaging"
	"github.com/abgdnv/storefront/pkg/messaging/events"
)

// DefaultKey is where anonymous favorites live.
const DefaultKey = "favorites"

// Key returns the storage key of owner's favorites.
func Key(owner string) string {
	if owner == "" {
		return DefaultKey
	}
	return DefaultKey + ":" + owner
}

// Service loads favorites on demand and saves them after every change.
// Toggles of the same key are serialized within the process.
type Service struct {
	store     KVStore
	publisher messaging.Publisher
	logger    *slog.Logger
	now       func() time.Time
	locks     keyLocks
}

// NewService creates a Service. A nil publisher disables event publication.
func NewService(store KVStore, publisher messaging.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "favorites"),
		now:       time.Now,
	}
}

// Get returns owner's favorites, or an empty set when none were saved.
func (s *Service) Get(ctx context.Context, owner string) (Set, error) {
	set, _, err := s.store.Load(ctx, Key(owner))
	if err != nil {
		return Set{}, fmt.Errorf("failed to get favorites: %w", err)
	}
	return set, nil
}

// Toggle flips membership of itemID in owner's favorites, saves the set and
// publishes the change. It returns the saved set and whether itemID is now a favorite.
// A failed publication is logged and does not fail the toggle.
func (s *Service) Toggle(ctx context.Context, owner string, itemID int64) (Set, bool, error) {
	key := Key(owner)
	set, favorite, err := s.toggle(ctx, key, itemID)
	if err != nil {
		return Set{}, false, err
	}

	event := events.FavoriteToggledEvent{Key: key, ItemID: itemID, Favorite: favorite, ToggledAt: s.now().UTC()}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish favorites event", "key", key, "item_id", itemID, "error", err)
	}
	return set, favorite, nil
}

func (s *Service) toggle(ctx context.Context, key string, itemID int64) (Set, bool, error) {
	unlock := s.locks.lock(key)
	defer unlock()

	set, _, err := s.store.Load(ctx, key)
	if err != nil {
		return Set{}, false, fmt.Errorf("failed to load favorites: %w", err)
	}
	set = set.Clone()
	favorite := set.Toggle(itemID)
	if err := s.store.Save(ctx, key, set); err != nil {
		return Set{}, false, fmt.Errorf("failed to save favorites: %w", err)
	}
	return set, favorite, nil
}

// keyLocks hands out one mutex per key and forgets it once no caller holds or waits for it.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func (k *keyLocks) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*keyLock)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
