package store

import (
	"github.com/peterbourgon/diskv/v3"
)

// Backend is the durable key-value layer beneath the store. The whole
// document lives under one key; a write replaces it atomically.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

type diskvBackend struct {
	d *diskv.Diskv
}

func newDiskvBackend(basePath string) Backend {
	return &diskvBackend{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (b *diskvBackend) Read(key string) ([]byte, error) {
	return b.d.Read(key)
}

func (b *diskvBackend) Write(key string, data []byte) error {
	return b.d.Write(key, data)
}
