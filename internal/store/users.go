package store

import (
	"palaver/internal/models"
	"palaver/internal/storage"
)

// AddUser assigns an id and creation timestamp to the given user data,
// appends it and returns the stored record. Duplicate usernames are allowed.
func (s *Store) AddUser(data models.User) (models.User, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	data.ID = s.newID()
	data.CreatedAt = s.now().Unix()
	s.users = append(s.users, data)

	if err := s.kv.Set(storage.KeyUsers, s.users); err != nil {
		return models.User{}, err
	}
	return data, nil
}

// UpdateUser shallow-merges the patch into the matching user. A missing id is
// a silent no-op. If the updated user is the current user, the current-user
// slot is refreshed to the merged value.
func (s *Store) UpdateUser(id string, patch UserPatch) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		patch.apply(&s.users[i])
		if err := s.kv.Set(storage.KeyUsers, s.users); err != nil {
			return err
		}
		if s.currentUser != nil && s.currentUser.ID == id {
			u := s.users[i]
			s.currentUser = &u
			if err := s.kv.Set(storage.KeyCurrentUser, s.currentUser); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}
