package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/srgjo27/cineticket/internal/core/ports"
)

func getJSON[T any](ctx context.Context, kv ports.KeyValueStore, key string) (*T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return nil, err
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &v, nil
}

func setJSON(ctx context.Context, kv ports.KeyValueStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(b))
}

func deletePrefix(ctx context.Context, kv ports.KeyValueStore, prefix string) error {
	keys, err := kv.Keys(ctx, prefix)
	if err != nil {
		return err
	}
	return kv.Delete(ctx, keys...)
}
