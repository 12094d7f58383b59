package repository

import "context"

// CacheRepository is a string key-value store. A missing key reports
// ok == false with a nil error; err is set only when the store itself failed.
type CacheRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}
