package store

import (
	"palaver/internal/models"
	"palaver/internal/storage"

	"go.uber.org/zap"
)

// AddServer assigns an id and creation timestamp and appends the server. The
// caller supplies the initial MemberIDs; including the owner is a convention,
// not enforced here.
func (s *Store) AddServer(data models.Server) (models.Server, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	data.ID = s.newID()
	data.CreatedAt = s.now().Unix()
	s.servers = append(s.servers, data)

	if err := s.kv.Set(storage.KeyServers, s.servers); err != nil {
		return models.Server{}, err
	}
	return data, nil
}

// UpdateServer shallow-merges the patch into the matching server. A missing
// id is a silent no-op.
func (s *Store) UpdateServer(id string, patch ServerPatch) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	for i := range s.servers {
		if s.servers[i].ID != id {
			continue
		}
		patch.apply(&s.servers[i])
		return s.kv.Set(storage.KeyServers, s.servers)
	}
	return nil
}

// DeleteServer removes the server and cascades: every channel, category,
// message and membership row carrying the server id goes with it. The whole
// cascade happens under one lock, so no reader sees it half-applied.
func (s *Store) DeleteServer(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	servers := s.servers[:0:0]
	for _, srv := range s.servers {
		if srv.ID != id {
			servers = append(servers, srv)
		}
	}
	s.servers = servers

	channels := s.channels[:0:0]
	for _, ch := range s.channels {
		if ch.ServerID != id {
			channels = append(channels, ch)
		}
	}
	s.channels = channels

	categories := s.categories[:0:0]
	for _, cat := range s.categories {
		if cat.ServerID != id {
			categories = append(categories, cat)
		}
	}
	s.categories = categories

	messages := s.messages[:0:0]
	for _, m := range s.messages {
		if m.ServerID != id {
			messages = append(messages, m)
		}
	}
	s.messages = messages

	members := s.serverMembers[:0:0]
	for _, m := range s.serverMembers {
		if m.ServerID != id {
			members = append(members, m)
		}
	}
	s.serverMembers = members

	s.log.Debug("deleted server", zap.String("serverId", id))

	for key, v := range map[string]any{
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

// GetUserServers returns the servers whose member list contains the user, in
// store order. Display sorting is the caller's concern.
func (s *Store) GetUserServers(userID string) []models.Server {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()

	var out []models.Server
	for _, srv := range s.servers {
		for _, memberID := range srv.MemberIDs {
			if memberID == userID {
				out = append(out, srv)
				break
			}
		}
	}
	return out
}
