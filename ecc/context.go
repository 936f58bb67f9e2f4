package ecc

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// blindingSeedLen is the number of random bytes drawn by Randomize.
const blindingSeedLen = 32

// Context owns a Provider and sequences its lifetime. Any number of calls may
// run concurrently; Randomize and Destroy wait for in-flight calls to finish
// and block new ones while they run. Every call made after Destroy panics
// with ErrContextDestroyed.
type Context struct {
	backend Provider
	rand    io.Reader

	mu        sync.RWMutex
	destroyed bool
}

// A compile time check to ensure Context implements the Provider interface.
var _ Provider = (*Context)(nil)

// NewContext wraps backend. rand is the secure random source consulted by
// Randomize; it is never read during ordinary operations.
func NewContext(backend Provider, rand io.Reader) *Context {
	log.Debugf("Creating ecc context with backend %T", backend)

	return &Context{
		backend: backend,
		rand:    rand,
	}
}

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// Default returns the process wide context, creating and randomizing it on
// first use. The package level constructors of the key package run on it.
// Once it has been destroyed every later call through it panics.
func Default() *Context {
	defaultOnce.Do(func() {
		defaultCtx = NewContext(NewSecp256k1(), rand.Reader)
		if err := defaultCtx.Randomize(); err != nil {
			log.Warnf("Unable to randomize default context: %v", err)
		}
	})
	return defaultCtx
}

// Randomize draws fresh randomness from the context's source and hands it to
// the backend if it supports blinding. Backends without blinding support
// still consume the randomness so a broken source is reported.
func (c *Context) Randomize() error {
	seed := make([]byte, blindingSeedLen)
	if _, err := io.ReadFull(c.rand, seed); err != nil {
		return errors.Wrap(err, "unable to read blinding seed")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		panic(ErrContextDestroyed)
	}

	if b, ok := c.backend.(Blinder); ok {
		b.SetBlinding(seed)
		log.Debugf("Installed new blinding value")
	}
	for i := range seed {
		seed[i] = 0
	}
	return nil
}

// Destroy waits for in-flight calls and releases the backend. Destroying an
// already destroyed context is a no-op.
func (c *Context) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}
	if b, ok := c.backend.(Blinder); ok {
		b.SetBlinding(nil)
	}
	c.backend = nil
	c.destroyed = true

	log.Infof("ecc context destroyed")
}

// Destroyed reports whether Destroy has been called.
func (c *Context) Destroyed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.destroyed
}

// enter acquires a read slot and returns the backend. The caller must call
// c.mu.RUnlock when done.
func (c *Context) enter() Provider {
	c.mu.RLock()
	if c.destroyed {
		c.mu.RUnlock()
		panic(ErrContextDestroyed)
	}
	return c.backend
}

// Hash160 implements Provider.
func (c *Context) Hash160(data []byte) []byte {
	p := c.enter()
	defer c.mu.RUnlock()
	return p.Hash160(data)
}

// HmacSha512 implements Provider.
func (c *Context) HmacSha512(key, data []byte) []byte {
	p := c.enter()
	defer c.mu.RUnlock()
	return p.HmacSha512(key, data)
}

// PublicKeyFromSecret implements Provider.
func (c *Context) PublicKeyFromSecret(secret []byte) ([]byte, error) {
	p := c.enter()
	defer c.mu.RUnlock()
	return p.PublicKeyFromSecret(secret)
}

// TweakSecret implements Provider.
func (c *Context) TweakSecret(secret, tweak []byte) ([]byte, error) {
	p := c.enter()
	defer c.mu.RUnlock()
	return p.TweakSecret(secret, tweak)
}

// TweakPublic implements Provider.
func (c *Context) TweakPublic(point, tweak []byte) ([]byte, error) {
	p := c.enter()
	defer c.mu.RUnlock()
	return p.TweakPublic(point, tweak)
}

// IsValidSecret implements Provider.
func (c *Context) IsValidSecret(b []byte) bool {
	p := c.enter()
	defer c.mu.RUnlock()
	return p.IsValidSecret(b)
}

// IsValidPublicEncoding implements Provider.
func (c *Context) IsValidPublicEncoding(b []byte) bool {
	p := c.enter()
	defer c.mu.RUnlock()
	return p.IsValidPublicEncoding(b)
}

// IsValidPublicPoint implements Provider.
func (c *Context) IsValidPublicPoint(b []byte) bool {
	p := c.enter()
	defer c.mu.RUnlock()
	return p.IsValidPublicPoint(b)
}
