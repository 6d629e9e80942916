package kv

// Memory is a map-backed Store. It backs tests and serves as the degraded
// fallback when no durable storage can be opened: entries written to it
// survive the process, nothing more.
type Memory struct {
	slots map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.slots[key] = value
	return nil
}
