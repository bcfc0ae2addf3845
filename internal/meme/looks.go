package meme

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	looksObject   = "meme"
	looksProperty = "looks.yaml"
)

// ErrNoLook is returned when a named look does not exist.
var ErrNoLook = errors.New("meme: no such look")

// LookStore keeps named looks in the user's data directory. A store built
// on a nil manager only keeps looks in memory.
type LookStore struct {
	manager *gdata.Manager

	mu    sync.Mutex
	looks map[string]Saved
}

// OpenLookStore opens the store for app. When the data directory is not
// usable the store falls back to memory and the error is returned along
// with it.
func OpenLookStore(app string) (*LookStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return NewLookStore(nil), fmt.Errorf("meme: open looks: %w", err)
	}
	s := NewLookStore(m)
	if err := s.load(); err != nil {
		return s, err
	}
	return s, nil
}

// NewLookStore wraps an existing manager, which may be nil.
func NewLookStore(m *gdata.Manager) *LookStore {
	return &LookStore{manager: m, looks: make(map[string]Saved)}
}

// Persistent reports whether saved looks survive the process.
func (s *LookStore) Persistent() bool {
	return s.manager != nil
}

func (s *LookStore) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(looksObject, looksProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(looksObject, looksProperty)
	if err != nil {
		return fmt.Errorf("meme: load looks: %w", err)
	}
	looks := make(map[string]Saved)
	if err := yaml.Unmarshal(data, &looks); err != nil {
		return fmt.Errorf("meme: parse looks: %w", err)
	}
	s.looks = looks
	return nil
}

func (s *LookStore) flush() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.looks)
	if err != nil {
		return fmt.Errorf("meme: encode looks: %w", err)
	}
	if err := s.manager.SaveObjectProp(looksObject, looksProperty, data); err != nil {
		return fmt.Errorf("meme: save looks: %w", err)
	}
	return nil
}

// Save stores look under name, replacing any previous look of that name.
func (s *LookStore) Save(name string, look Saved) error {
	if name == "" {
		return errors.New("meme: look name is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.looks[name] = look
	return s.flush()
}

// Load returns the look saved under name.
func (s *LookStore) Load(name string) (Saved, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	look, ok := s.looks[name]
	if !ok {
		return Saved{}, fmt.Errorf("%w: %s", ErrNoLook, name)
	}
	return look, nil
}

// Delete removes a look. Deleting a missing look is not an error.
func (s *LookStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.looks[name]; !ok {
		return nil
	}
	delete(s.looks, name)
	return s.flush()
}

// Names returns the saved look names sorted.
func (s *LookStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.looks))
	for name := range s.looks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
