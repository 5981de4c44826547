package repository

import (
	"context"
	"io"
)

// ReceiptStore persists uploaded proof-of-payment files. Paths returned
// by Save are opaque keys; only this store interprets them.
type ReceiptStore interface {
	Save(ctx context.Context, gymID, filename string, content io.Reader) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}
