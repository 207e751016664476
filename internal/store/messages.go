package store

import (
	"palaver/internal/models"
	"palaver/internal/storage"
)

// AddMessage assigns an id, creation timestamp and an empty reaction list and
// appends the message. The caller supplies content, author, channel, server
// and the already-extracted mention list (see content.ExtractMentions).
func (s *Store) AddMessage(data models.Message) (models.Message, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	data.ID = s.newID()
	data.CreatedAt = s.now().Unix()
	data.EditedAt = 0
	data.Reactions = []models.MessageReaction{}
	if data.Mentions == nil {
		data.Mentions = []string{}
	}
	s.messages = append(s.messages, data)

	if err := s.kv.Set(storage.KeyMessages, s.messages); err != nil {
		return models.Message{}, err
	}
	return data, nil
}

// UpdateMessage shallow-merges the patch into the matching message and stamps
// EditedAt with the current time. The stamp is unconditional: an update that
// rewrites the same content still marks the message edited. A missing id is a
// silent no-op, with no stamp.
func (s *Store) UpdateMessage(id string, patch MessagePatch) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		patch.apply(&s.messages[i])
		s.messages[i].EditedAt = s.now().Unix()
		return s.kv.Set(storage.KeyMessages, s.messages)
	}
	return nil
}

// DeleteMessage removes the message. Messages have no dependents, so there is
// no cascade.
func (s *Store) DeleteMessage(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	messages := s.messages[:0:0]
	for _, m := range s.messages {
		if m.ID != id {
			messages = append(messages, m)
		}
	}
	s.messages = messages

	return s.kv.Set(storage.KeyMessages, s.messages)
}

// GetChannelMessages returns the channel's messages in store order, unsorted.
// Chronological ordering is applied by the consumer.
func (s *Store) GetChannelMessages(channelID string) []models.Message {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()

	var out []models.Message
	for _, m := range s.messages {
		if m.ChannelID == channelID {
			out = append(out, m)
		}
	}
	return out
}

// AddReaction records one user's reaction with the given emoji. It is
// idempotent per (message, emoji, user): reacting twice changes nothing. The
// entry's count always equals the size of its user set.
func (s *Store) AddReaction(messageID, emoji, userID string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	for i := range s.messages {
		if s.messages[i].ID != messageID {
			continue
		}
		reactions := s.messages[i].Reactions
		for j := range reactions {
			if reactions[j].Emoji != emoji {
				continue
			}
			for _, uid := range reactions[j].UserIDs {
				if uid == userID {
					return nil
				}
			}
			reactions[j].UserIDs = append(reactions[j].UserIDs, userID)
			reactions[j].Count = len(reactions[j].UserIDs)
			return s.kv.Set(storage.KeyMessages, s.messages)
		}
		s.messages[i].Reactions = append(reactions, models.MessageReaction{
			Emoji:   emoji,
			UserIDs: []string{userID},
			Count:   1,
		})
		return s.kv.Set(storage.KeyMessages, s.messages)
	}
	return nil
}

// RemoveReaction drops one user's reaction with the given emoji. An entry
// whose user set becomes empty is removed entirely; no zero-count entries are
// left behind.
func (s *Store) RemoveReaction(messageID, emoji, userID string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	for i := range s.messages {
		if s.messages[i].ID != messageID {
			continue
		}
		reactions := s.messages[i].Reactions
		for j := range reactions {
			if reactions[j].Emoji != emoji {
				continue
			}
			userIDs := reactions[j].UserIDs[:0:0]
			for _, uid := range reactions[j].UserIDs {
				if uid != userID {
					userIDs = append(userIDs, uid)
				}
			}
			if len(userIDs) == 0 {
				s.messages[i].Reactions = append(reactions[:j], reactions[j+1:]...)
			} else {
				reactions[j].UserIDs = userIDs
				reactions[j].Count = len(userIDs)
			}
			return s.kv.Set(storage.KeyMessages, s.messages)
		}
		return nil
	}
	return nil
}
