package internal

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Enough for the five visible slots plus a couple of entries that just slid away.
const defaultMaxCacheSize = 8

// TextureCache holds thumbnail textures keyed by file path, evicting the
// least recently used one when full. Failed loads are remembered so a
// missing thumbnail is not retried every frame.
type TextureCache struct {
	textures map[string]*sdl.Texture
	failed   map[string]bool
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		failed:   make(map[string]bool),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	if texture, exists := c.textures[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return texture
	}
	return nil
}

// Load returns the cached texture for path, loading it on a miss.
// It returns nil for an empty path or an image that cannot be loaded.
func (c *TextureCache) Load(renderer *sdl.Renderer, path string) *sdl.Texture {
	if path == "" || c.failed[path] {
		return nil
	}
	if texture := c.Get(path); texture != nil {
		return texture
	}

	texture, err := img.LoadTexture(renderer, path)
	if err != nil {
		GetLogger().Warn("Failed to load thumbnail", "path", path, "error", err)
		c.failed[path] = true
		return nil
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	c.Set(path, texture)
	return texture
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	// If key already exists, just update and move to end
	if old, exists := c.textures[key]; exists {
		if old != nil && old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) Contains(key string) bool {
	_, exists := c.textures[key]
	return exists
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		if texture != nil {
			texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.failed = make(map[string]bool)
	c.order = c.order[:0]
}
