package storage

import (
	"github.com/vmihailenco/msgpack/v5"
)

// MemoryKV is an in-memory KV used in tests. Values go through msgpack so it
// round-trips data exactly like BboltKV does.
type MemoryKV struct {
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (s *MemoryKV) Get(key string, out any) (bool, error) {
	data, ok := s.data[key]
	if !ok {
		return false, nil
	}
	return true, msgpack.Unmarshal(data, out)
}

func (s *MemoryKV) Set(key string, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	s.data[key] = data
	return nil
}
