package store

import (
	"palaver/internal/models"
	"palaver/internal/storage"

	"go.uber.org/zap"
)

// AddChannel assigns an id and creation timestamp and appends the channel.
func (s *Store) AddChannel(data models.Channel) (models.Channel, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	data.ID = s.newID()
	data.CreatedAt = s.now().Unix()
	s.channels = append(s.channels, data)

	if err := s.kv.Set(storage.KeyChannels, s.channels); err != nil {
		return models.Channel{}, err
	}
	return data, nil
}

// UpdateChannel shallow-merges the patch into the matching channel. A missing
// id is a silent no-op.
func (s *Store) UpdateChannel(id string, patch ChannelPatch) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	for i := range s.channels {
		if s.channels[i].ID != id {
			continue
		}
		patch.apply(&s.channels[i])
		return s.kv.Set(storage.KeyChannels, s.channels)
	}
	return nil
}

// DeleteChannel removes the channel and every message posted in it.
func (s *Store) DeleteChannel(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	channels := s.channels[:0:0]
	for _, ch := range s.channels {
		if ch.ID != id {
			channels = append(channels, ch)
		}
	}
	s.channels = channels

	messages := s.messages[:0:0]
	for _, m := range s.messages {
		if m.ChannelID != id {
			messages = append(messages, m)
		}
	}
	s.messages = messages

	s.log.Debug("deleted channel", zap.String("channelId", id))

	if err := s.kv.Set(storage.KeyChannels, s.channels); err != nil {
		return err
	}
	return s.kv.Set(storage.KeyMessages, s.messages)
}

// GetServerChannels returns the server's channels in store order, unsorted.
// Ordering by position is applied by the consumer.
func (s *Store) GetServerChannels(serverID string) []models.Channel {
	s.mux.RLock()
	defer s.mux.RUnlock()
	s.ensureOpen()

	var out []models.Channel
	for _, ch := range s.channels {
		if ch.ServerID == serverID {
			out = append(out, ch)
		}
	}
	return out
}
