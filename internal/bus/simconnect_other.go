//go:build !windows

package bus

import (
	"context"
	"time"
)

// SimConnect доступен только в Windows.
type SimConnect struct {
	*Memory
}

func OpenSimConnect(ctx context.Context, period time.Duration) (*SimConnect, error) {
	return nil, ErrUnsupported
}
