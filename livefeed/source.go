package livefeed

import (
	"auction-lab/contract"
	"context"
)

// SourceFunc adapts a dial function to the contract.FeedSource interface,
// letting the edge wire whichever connector it has without a named type.
type SourceFunc func(ctx context.Context, account string, handler contract.FeedHandler) (contract.FeedConnection, error)

func (f SourceFunc) Connect(ctx context.Context, account string, handler contract.FeedHandler) (contract.FeedConnection, error) {
	return f(ctx, account, handler)
}

// ConnectionFunc adapts a close function to contract.FeedConnection.
type ConnectionFunc func() error

func (f ConnectionFunc) Close() error { return f() }
