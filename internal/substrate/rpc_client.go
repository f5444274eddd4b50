package substrate

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Caller is the JSON-RPC transport, satisfied by *rpc.Client.
	Caller interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	}
)

// StorageChange is a key and its value at a block; Value is nil for empty storage.
type StorageChange struct {
	Key   []byte
	Value []byte
}

type header struct {
	Number string `json:"number"`
}

type storageChangeSet struct {
	Block   string              `json:"block"`
	Changes [][2]*hexutil.Bytes `json:"changes"`
}

// RPCClient issues substrate JSON-RPC calls with metrics instrumentation.
type RPCClient struct {
	caller     Caller
	rpcMetrics RPCMetrics
}

// Dial connects to a ws, wss, http or https endpoint.
func Dial(ctx context.Context, endpoint string) (*rpc.Client, error) {
	client, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return client, nil
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(caller Caller, rpcMetrics RPCMetrics) *RPCClient {
	return &RPCClient{
		caller:     caller,
		rpcMetrics: rpcMetrics,
	}
}

func (r *RPCClient) call(ctx context.Context, operation string, result interface{}, method string, args ...interface{}) (err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe(operation, err, started)
	}()
	if err = r.caller.CallContext(ctx, result, method, args...); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// SystemChain returns the chain name.
func (r *RPCClient) SystemChain(ctx context.Context) (string, error) {
	var out string
	err := r.call(ctx, "system_chain", &out, "system_chain")
	return out, err
}

// SystemName returns the node implementation name.
func (r *RPCClient) SystemName(ctx context.Context) (string, error) {
	var out string
	err := r.call(ctx, "system_name", &out, "system_name")
	return out, err
}

// SystemVersion returns the node implementation version.
func (r *RPCClient) SystemVersion(ctx context.Context) (string, error) {
	var out string
	err := r.call(ctx, "system_version", &out, "system_version")
	return out, err
}

// ChainHead returns the block number of the best header.
func (r *RPCClient) ChainHead(ctx context.Context) (uint64, error) {
	var h header
	if err := r.call(ctx, "chain_get_header", &h, "chain_getHeader"); err != nil {
		return 0, err
	}
	number, err := hexutil.DecodeUint64(h.Number)
	if err != nil {
		return 0, fmt.Errorf("decode header number %q: %w", h.Number, err)
	}
	return number, nil
}

// GetStorage returns the raw value at key, or nil when the storage is empty.
func (r *RPCClient) GetStorage(ctx context.Context, key []byte) ([]byte, error) {
	var out *hexutil.Bytes
	if err := r.call(ctx, "state_get_storage", &out, "state_getStorage", hexutil.Encode(key)); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return *out, nil
}

// GetKeysPaged lists up to count storage keys under prefix, starting after startKey.
func (r *RPCClient) GetKeysPaged(ctx context.Context, prefix []byte, count uint32, startKey []byte) ([][]byte, error) {
	args := []interface{}{hexutil.Encode(prefix), count}
	if len(startKey) > 0 {
		args = append(args, hexutil.Encode(startKey))
	}
	var out []hexutil.Bytes
	if err := r.call(ctx, "state_get_keys_paged", &out, "state_getKeysPaged", args...); err != nil {
		return nil, err
	}
	keys := make([][]byte, len(out))
	for i := range out {
		keys[i] = out[i]
	}
	return keys, nil
}

// QueryStorageAt returns the values of keys at the best block.
func (r *RPCClient) QueryStorageAt(ctx context.Context, keys [][]byte) ([]StorageChange, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	encoded := make([]string, len(keys))
	for i, k := range keys {
		encoded[i] = hexutil.Encode(k)
	}
	var sets []storageChangeSet
	if err := r.call(ctx, "state_query_storage_at", &sets, "state_queryStorageAt", encoded); err != nil {
		return nil, err
	}

	changes := make([]StorageChange, 0, len(keys))
	for _, set := range sets {
		for _, c := range set.Changes {
			if c[0] == nil {
				return nil, fmt.Errorf("state_queryStorageAt: change without key in block %s", set.Block)
			}
			change := StorageChange{Key: *c[0]}
			if c[1] != nil {
				change.Value = *c[1]
			}
			changes = append(changes, change)
		}
	}
	return changes, nil
}
