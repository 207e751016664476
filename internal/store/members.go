package store

import (
	"palaver/internal/models"
	"palaver/internal/storage"
)

// AddServerMember appends the membership row as given (the caller supplies
// every field) and adds the user to the server's member list if not already
// present. Row and list are updated under the same lock and persisted
// together, so they never diverge.
func (s *Store) AddServerMember(member models.ServerMember) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	s.serverMembers = append(s.serverMembers, member)

	for i := range s.servers {
		if s.servers[i].ID != member.ServerID {
			continue
		}
		present := false
		for _, id := range s.servers[i].MemberIDs {
			if id == member.UserID {
				present = true
				break
			}
		}
		if !present {
			s.servers[i].MemberIDs = append(s.servers[i].MemberIDs, member.UserID)
		}
		break
	}

	if err := s.kv.Set(storage.KeyServerMembers, s.serverMembers); err != nil {
		return err
	}
	return s.kv.Set(storage.KeyServers, s.servers)
}

// UpdateServerMember shallow-merges the patch into the row matching the
// (server, user) composite key. A missing key is a silent no-op.
func (s *Store) UpdateServerMember(serverID, userID string, patch MemberPatch) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	for i := range s.serverMembers {
		if s.serverMembers[i].ServerID != serverID || s.serverMembers[i].UserID != userID {
			continue
		}
		patch.apply(&s.serverMembers[i])
		return s.kv.Set(storage.KeyServerMembers, s.serverMembers)
	}
	return nil
}

// RemoveServerMember removes the row matching the (server, user) composite
// key and drops the user from the server's member list, atomically together.
func (s *Store) RemoveServerMember(serverID, userID string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	members := s.serverMembers[:0:0]
	for _, m := range s.serverMembers {
		if m.ServerID == serverID && m.UserID == userID {
			continue
		}
		members = append(members, m)
	}
	s.serverMembers = members

	for i := range s.servers {
		if s.servers[i].ID != serverID {
			continue
		}
		ids := s.servers[i].MemberIDs[:0:0]
		for _, id := range s.servers[i].MemberIDs {
			if id != userID {
				ids = append(ids, id)
			}
		}
		s.servers[i].MemberIDs = ids
		break
	}

	if err := s.kv.Set(storage.KeyServerMembers, s.serverMembers); err != nil {
		return err
	}
	return s.kv.Set(storage.KeyServers, s.servers)
}

// GetServerMembers returns the membership rows for the server in store order.
func (s *Store) GetServerMembers(serverID string) []models.ServerMember {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()

	var out []models.ServerMember
	for _, m := range s.serverMembers {
		if m.ServerID == serverID {
			out = append(out, m)
		}
	}
	return out
}
