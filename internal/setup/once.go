package setup

import (
	"context"
	"sync"

	"github.com/bornholm/campus/internal/config"
)

// createFromConfigOnce memoizes the result of factory per configuration.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	type result struct {
		value T
		err   error
	}

	var (
		mutex   sync.Mutex
		results = map[*config.Config]*result{}
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if r, exists := results[conf]; exists {
			return r.value, r.err
		}

		value, err := factory(ctx, conf)
		results[conf] = &result{value, err}

		return value, err
	}
}
