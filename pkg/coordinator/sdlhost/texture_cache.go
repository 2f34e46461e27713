package sdlhost

import (
	"slices"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 32

// textureCache keeps rendered labels so titles are not rasterized every
// frame. The least recently used texture is destroyed when the cache is full.
type textureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func newTextureCache(maxSize int) *textureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache) Get(key string) (*sdl.Texture, bool) {
	texture, exists := c.textures[key]
	if exists {
		c.moveToEnd(key)
	}
	return texture, exists
}

func (c *textureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			destroyTexture(old)
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache) Len() int {
	return len(c.order)
}

func (c *textureCache) moveToEnd(key string) {
	if i := slices.Index(c.order, key); i >= 0 {
		c.order = append(slices.Delete(c.order, i, i+1), key)
	}
}

func (c *textureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	destroyTexture(c.textures[oldest])
	delete(c.textures, oldest)
}

func (c *textureCache) Destroy() {
	for _, texture := range c.textures {
		destroyTexture(texture)
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

func destroyTexture(texture *sdl.Texture) {
	if texture != nil {
		texture.Destroy()
	}
}
