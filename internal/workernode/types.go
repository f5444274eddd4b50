// Package workernode reads the worker node pallet and related account storage
// from a substrate node.
package workernode

import (
	"context"

	"github.com/goodnatureofminers/workernode-dashboard/internal/substrate"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPC is the subset of the substrate client the source needs.
	RPC interface {
		SystemChain(ctx context.Context) (string, error)
		SystemName(ctx context.Context) (string, error)
		SystemVersion(ctx context.Context) (string, error)
		ChainHead(ctx context.Context) (uint64, error)
		GetStorage(ctx context.Context, key []byte) ([]byte, error)
		GetKeysPaged(ctx context.Context, prefix []byte, count uint32, startKey []byte) ([][]byte, error)
		QueryStorageAt(ctx context.Context, keys [][]byte) ([]substrate.StorageChange, error)
	}
)
