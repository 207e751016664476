package store

import (
	"palaver/internal/models"
	"palaver/internal/storage"

	"go.uber.org/zap"
)

// AddCategory assigns an id and appends the category. Categories carry no
// creation timestamp.
func (s *Store) AddCategory(data models.ChannelCategory) (models.ChannelCategory, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	data.ID = s.newID()
	s.categories = append(s.categories, data)

	if err := s.kv.Set(storage.KeyCategories, s.categories); err != nil {
		return models.ChannelCategory{}, err
	}
	return data, nil
}

// UpdateCategory shallow-merges the patch into the matching category. A
// missing id is a silent no-op.
func (s *Store) UpdateCategory(id string, patch CategoryPatch) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		patch.apply(&s.categories[i])
		return s.kv.Set(storage.KeyCategories, s.categories)
	}
	return nil
}

// DeleteCategory removes the category. Channels referencing it are kept and
// become uncategorized; their messages are untouched.
func (s *Store) DeleteCategory(id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ensureOpen()

	categories := s.categories[:0:0]
	for _, cat := range s.categories {
		if cat.ID != id {
			categories = append(categories, cat)
		}
	}
	s.categories = categories

	for i := range s.channels {
		if s.channels[i].CategoryID == id {
			s.channels[i].CategoryID = ""
		}
	}

	s.log.Debug("deleted category", zap.String("categoryId", id))

	if err := s.kv.Set(storage.KeyCategories, s.categories); err != nil {
		return err
	}
	return s.kv.Set(storage.KeyChannels, s.channels)
}
