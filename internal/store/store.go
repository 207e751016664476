package store

import (
	"fmt"
	"sync"
	"time"

	"palaver/internal/models"
	"palaver/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the sole authority over the application state: six entity
// collections plus the current-user slot. All reads and writes go through it.
// Mutations run under a single lock, so cascades are never observable in a
// partially-applied state, and every mutation writes the touched slots back
// to durable storage before returning.
type Store struct {
	mux sync.RWMutex

	kv    storage.KV
	log   *zap.Logger
	now   func() time.Time
	newID func() string

	closed bool

	currentUser   *models.User
	users         []models.User
	servers       []models.Server
	channels      []models.Channel
	categories    []models.ChannelCategory
	messages      []models.Message
	serverMembers []models.ServerMember
}

type Config struct {
	Storage storage.KV

	// Logger defaults to a nop logger.
	Logger *zap.Logger
	// Now defaults to time.Now. Injected so tests control timestamps.
	Now func() time.Time
	// NewID defaults to uuid.NewString. Injected so tests control ids.
	NewID func() string
}

// New loads all collections from storage, falling back to empty defaults for
// absent keys. If the user collection comes up empty, the demo fixture is
// seeded and persisted.
func New(cfg Config) (*Store, error) {
	if cfg.Storage == nil {
		return nil, fmt.Errorf("store: Storage is required")
	}

	s := &Store{
		kv:    cfg.Storage,
		log:   cfg.Logger,
		now:   cfg.Now,
		newID: cfg.NewID,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	if len(s.users) == 0 {
		s.bootstrap()
		if err := s.persistAll(); err != nil {
			return nil, fmt.Errorf("failed to persist bootstrap data: %w", err)
		}
		s.log.Info("seeded demo data",
			zap.Int("users", len(s.users)),
			zap.Int("servers", len(s.servers)))
	}

	return s, nil
}

func (s *Store) load() error {
	if _, err := s.kv.Get(storage.KeyCurrentUser, &s.currentUser); err != nil {
		return err
	}
	if _, err := s.kv.Get(storage.KeyUsers, &s.users); err != nil {
		return err
	}
	if _, err := s.kv.Get(storage.KeyServers, &s.servers); err != nil {
		return err
	}
	if _, err := s.kv.Get(storage.KeyChannels, &s.channels); err != nil {
		return err
	}
	if _, err := s.kv.Get(storage.KeyCategories, &s.categories); err != nil {
		return err
	}
	if _, err := s.kv.Get(storage.KeyMessages, &s.messages); err != nil {
		return err
	}
	if _, err := s.kv.Get(storage.KeyServerMembers, &s.serverMembers); err != nil {
		return err
	}
	return nil
}

func (s *Store) persistAll() error {
	for key, v := range map[string]any{
		storage.KeyCurrentUser:   s.currentUser,
		storage.KeyUsers:         s.users,
		storage.KeyServers:       s.servers,
		storage.KeyChannels:      s.channels,
		storage.KeyCategories:    s.categories,
		storage.KeyMessages:      s.messages,
		storage.KeyServerMembers: s.serverMembers,
	} {
		if err := s.kv.Set(key, v); err != nil {
			return err
		}
	}
	return nil
}

// Close marks the store as out of service. Any use afterwards is a wiring bug
// in the caller and panics. Close does not close the underlying storage; the
// owner of the KV does that.
func (s *Store) Close() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.closed = true
}

func (s *Store) ensureOpen() {
	if s.closed {
		panic("store: used outside of an active store lifetime")
	}
}

// CurrentUser returns the active user, or nil if none is set.
func (s *Store) CurrentUser() *models.User {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()

	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// SetCurrentUser designates the operating user for mutation attribution.
// Passing nil clears it.
func (s *Store) SetCurrentUser(u *models.User) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	if u == nil {
		s.currentUser = nil
	} else {
		cu := *u
		s.currentUser = &cu
	}
	return s.kv.Set(storage.KeyCurrentUser, s.currentUser)
}

// Users returns a copy of the user collection in store order.
func (s *Store) Users() []models.User {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()
	return append([]models.User(nil), s.users...)
}

// Servers returns a copy of the server collection in store order.
func (s *Store) Servers() []models.Server {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()
	return append([]models.Server(nil), s.servers...)
}

// Channels returns a copy of the channel collection in store order.
func (s *Store) Channels() []models.Channel {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()
	return append([]models.Channel(nil), s.channels...)
}

// Categories returns a copy of the category collection in store order.
func (s *Store) Categories() []models.ChannelCategory {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()
	return append([]models.ChannelCategory(nil), s.categories...)
}

// Messages returns a copy of the message collection in store order.
func (s *Store) Messages() []models.Message {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()
	return append([]models.Message(nil), s.messages...)
}

// ServerMembers returns a copy of the membership collection in store order.
func (s *Store) ServerMembers() []models.ServerMember {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()
	return append([]models.ServerMember(nil), s.serverMembers...)
}
