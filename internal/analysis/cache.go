package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
)

// ResponseCache stores model responses on disk keyed by a digest of model
// name and prompt, so re-running extraction over the same pool does not
// re-bill the same explanations.
type ResponseCache struct {
	Dir string
}

func cacheKey(model, prompt string) string {
	h := sha256.Sum256([]byte(model + "\n\n" + prompt))
	return hex.EncodeToString(h[:])
}

func (c *ResponseCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *ResponseCache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".txt")
}

// Get returns cached bytes if present. A missing entry is not an error.
func (c *ResponseCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := c.ensureDir(); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false, nil
	}
	return b, true, nil
}

// Save writes bytes to the cache.
func (c *ResponseCache) Save(_ context.Context, key string, data []byte) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(key), data, 0o644)
}
