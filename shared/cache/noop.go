package cache

import "context"

type noopCache struct{}

// NewNoop returns a cache that stores nothing. Every Get is a miss.
func NewNoop() RedisCache {
	return noopCache{}
}

func (noopCache) Save(context.Context, string, any, int) error {
	return nil
}

func (noopCache) Get(context.Context, string, any) error {
	return Nil
}

func (noopCache) Delete(context.Context, string) error {
	return nil
}

func (noopCache) Clear(context.Context, string) error {
	return nil
}
