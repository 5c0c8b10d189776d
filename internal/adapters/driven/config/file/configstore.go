// Package file provides file-based implementations of driven port
// interfaces. These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage with change watching
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driven"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Well-known configuration keys.
const (
	// KeyChunkSize is the maximum fragment size in characters.
	KeyChunkSize = "chunk_size"

	// KeyDebug enables verbose pipeline logging.
	KeyDebug = "debug"

	// KeyRefreshMinutes is the background refresh interval in minutes.
	KeyRefreshMinutes = "refresh_interval_minutes"
)

// ConfigStore is a file-based implementation of driven.ConfigStore using
// TOML. Configuration lives in a TOML file within the permadocs config
// directory, with an optional [sources] table of per-domain URL overrides.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
	sources  map[string]string
	watcher  *fsnotify.Watcher
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.permadocs/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".permadocs")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
		sources:  make(map[string]string),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	str, _ := s.data[key].(string)
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// TOML integers are parsed as int64
	switch v := s.data[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, _ := s.data[key].(bool)
	return b
}

// SourceOverrides returns per-domain URL overrides from the [sources] table.
func (s *ConfigStore) SourceOverrides() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.sources))
	for k, v := range s.sources {
		out[k] = v
	}
	return out
}

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// SetSourceOverride stores a per-domain URL override and persists
// immediately. An empty URL removes the override.
func (s *ConfigStore) SetSourceOverride(dom, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if url == "" {
		delete(s.sources, dom)
	} else {
		s.sources[dom] = url
	}
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	doc := make(map[string]any, len(s.data)+1)
	for k, v := range s.data {
		doc[k] = v
	}
	if len(s.sources) > 0 {
		doc["sources"] = s.sources
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load reads the TOML file (caller must hold lock).
func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start empty
			s.data = make(map[string]any)
			s.sources = make(map[string]string)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	s.data = make(map[string]any)
	s.sources = make(map[string]string)
	for key, value := range loaded {
		if key == "sources" {
			if table, ok := value.(map[string]any); ok {
				for dom, url := range table {
					if str, ok := url.(string); ok {
						s.sources[dom] = str
					}
				}
			}
			continue
		}
		s.data[key] = value
	}
	return nil
}

// Watch reloads the configuration whenever the file changes and invokes
// onChange after each successful reload. It returns immediately; watching
// stops when Close is called.
func (s *ConfigStore) Watch(onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory: editors replace files rather than write in place.
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return err
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.filePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("Config reload failed: %v", err)
					continue
				}
				logger.Info("Config reloaded from %s", s.filePath)
				if onChange != nil {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Config watcher error: %v", err)
			}
		}
	}()

	return nil
}

// Close stops the config watcher, if started.
func (s *ConfigStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		err := s.watcher.Close()
		s.watcher = nil
		return err
	}
	return nil
}

// Path returns the config file location.
func (s *ConfigStore) Path() string {
	return s.filePath
}
