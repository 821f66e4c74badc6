package cache

// RenderKeyOpts are the render settings that change the output bytes.
type RenderKeyOpts struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Plain  bool `json:"plain"`
}

// Keyer derives cache keys.
type Keyer interface {
	RenderKey(sceneHash string, opts RenderKeyOpts) string
}

// DefaultKeyer hashes the scene hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey returns "render:<sha256>".
func (DefaultKeyer) RenderKey(sceneHash string, opts RenderKeyOpts) string {
	return hashKey("render", sceneHash, opts)
}

// ScopedKeyer prefixes every key from an inner Keyer.
//
//	versioned := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RenderKey returns the inner key with the prefix prepended.
func (k *ScopedKeyer) RenderKey(sceneHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(sceneHash, opts)
}
