package handlers

import (
	"context"
	"sync"
	"time"

	"webeye/internal/services"
)

// StorageHandler interface for file operations
type StorageHandler interface {
	UploadFile(ctx context.Context, data []byte, key, contentType string) (string, error)
	GetSignedURL(ctx context.Context, key string, duration time.Duration) (string, error)
}

var _ StorageHandler = (*services.S3Service)(nil)

var (
	storageHandler StorageHandler
	handlerMu      sync.RWMutex
)

// RegisterStorageHandler sets the storage handler
func RegisterStorageHandler(h StorageHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	storageHandler = h
}

// GetStorageHandler returns the registered storage handler, or nil when
// object storage is not configured.
func GetStorageHandler() StorageHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return storageHandler
}
