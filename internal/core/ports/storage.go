package ports

import "context"

type StoragePort interface {
	Upload(ctx context.Context, filename string) error
}
