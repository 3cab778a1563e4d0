package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/oasgen/oasgen/loader"
)

// docInput represents the two ways a schema document can be provided to a
// tool. Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a schema document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// docCacheStore is a session-scoped cache of loaded documents. File inputs
// are keyed by (absolutePath, modTime) so an edited file reloads; inline
// content is never cached.
type docCacheStore struct {
	mu      sync.Mutex
	entries map[string]*loader.Result
}

var docCache = &docCacheStore{entries: make(map[string]*loader.Result)}

func (c *docCacheStore) get(key string) *loader.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key]
}

func (c *docCacheStore) put(key string, result *loader.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = result
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*loader.Result)
}

// resolve loads the document this input refers to, consulting the session
// cache for file inputs.
func (in docInput) resolve() (*loader.Result, error) {
	switch {
	case in.File != "" && in.Content != "":
		return nil, fmt.Errorf("provide exactly one of file or content, not both")
	case in.File != "":
		return resolveFile(in.File)
	case in.Content != "":
		return loader.LoadWithOptions(
			loader.WithBytes([]byte(in.Content)),
			loader.WithSourceName("inline"),
		)
	default:
		return nil, fmt.Errorf("provide one of file or content")
	}
}

func resolveFile(path string) (*loader.Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s|%d", abs, info.ModTime().UnixNano())
	if cached := docCache.get(key); cached != nil {
		return cached, nil
	}
	result, err := loader.LoadWithOptions(loader.WithFilePath(abs))
	if err != nil {
		return nil, err
	}
	docCache.put(key, result)
	return result, nil
}
