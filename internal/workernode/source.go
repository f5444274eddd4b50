package workernode

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"github.com/goodnatureofminers/workernode-dashboard/internal/substrate"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ErrNoActivePeriod is returned when the chain has no active reward period stored.
var ErrNoActivePeriod = errors.New("no active reward period")

// Source reads typed worker node data from a substrate node.
type Source struct {
	rpc        RPC
	decimals   int32
	pageSize   uint32
	queryChunk int
}

// NewSource creates a Source; decimals scales raw balances into token units.
func NewSource(rpc RPC, decimals int32) (*Source, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	if decimals < 0 {
		return nil, fmt.Errorf("token decimals must not be negative, got %d", decimals)
	}
	return &Source{
		rpc:        rpc,
		decimals:   decimals,
		pageSize:   defaultPageSize,
		queryChunk: defaultQueryChunk,
	}, nil
}

// ChainInfo returns the chain name and node implementation details.
func (s *Source) ChainInfo(ctx context.Context) (model.ChainInfo, error) {
	var info model.ChainInfo
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		info.Chain, err = s.rpc.SystemChain(ctx)
		return err
	})
	g.Go(func() (err error) {
		info.NodeName, err = s.rpc.SystemName(ctx)
		return err
	})
	g.Go(func() (err error) {
		info.NodeVersion, err = s.rpc.SystemVersion(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ChainInfo{}, fmt.Errorf("chain info: %w", err)
	}
	return info, nil
}

// CurrentBlock returns the chain head block number.
func (s *Source) CurrentBlock(ctx context.Context) (uint64, error) {
	head, err := s.rpc.ChainHead(ctx)
	if err != nil {
		return 0, fmt.Errorf("current block: %w", err)
	}
	return head, nil
}

// ActiveRewardPeriod returns the decoded active reward period.
func (s *Source) ActiveRewardPeriod(ctx context.Context) (model.RewardPeriodInfo, error) {
	raw, err := s.rpc.GetStorage(ctx, substrate.StorageKey(palletName, activeRewardPeriodKey))
	if err != nil {
		return model.RewardPeriodInfo{}, fmt.Errorf("active reward period: %w", err)
	}
	if raw == nil {
		return model.RewardPeriodInfo{}, ErrNoActivePeriod
	}
	return decodeRewardPeriod(raw)
}

// Submissions returns the submission count of every account that voted in the period.
func (s *Source) Submissions(ctx context.Context, namespace model.Namespace, periodIndex uint64) ([]model.Submission, error) {
	prefix := substrate.StorageKey(palletName, submissionsKey,
		substrate.Blake2Key(substrate.EncodeBytes([]byte(namespace))),
		substrate.Blake2Key(substrate.EncodeU64(periodIndex)),
	)

	changes, err := s.entries(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("submissions for %s period %d: %w", namespace, periodIndex, err)
	}

	out := make([]model.Submission, 0, len(changes))
	for _, c := range changes {
		if c.Value == nil {
			continue
		}
		account, err := accountFromKey(c.Key, len(prefix))
		if err != nil {
			return nil, err
		}
		votes, err := substrate.NewDecoder(c.Value).U32()
		if err != nil {
			return nil, fmt.Errorf("decode submissions of %s: %w", account.Hex(), err)
		}
		out = append(out, model.Submission{Account: account, Votes: votes})
	}
	return out, nil
}

// Submission returns the submission count of one account, zero when it has not voted.
func (s *Source) Submission(ctx context.Context, namespace model.Namespace, periodIndex uint64, account model.AccountID) (uint32, error) {
	key := substrate.StorageKey(palletName, submissionsKey,
		substrate.Blake2Key(substrate.EncodeBytes([]byte(namespace))),
		substrate.Blake2Key(substrate.EncodeU64(periodIndex)),
		substrate.Blake2Key(account[:]),
	)
	raw, err := s.rpc.GetStorage(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("submissions of %s: %w", account.Hex(), err)
	}
	if raw == nil {
		return 0, nil
	}
	votes, err := substrate.NewDecoder(raw).U32()
	if err != nil {
		return 0, fmt.Errorf("decode submissions of %s: %w", account.Hex(), err)
	}
	return votes, nil
}

// OperatorInventory returns the registered operators keyed by account.
func (s *Source) OperatorInventory(ctx context.Context) (map[model.AccountID]model.Operator, error) {
	prefix := substrate.StoragePrefix(palletName, inventoryKey)
	changes, err := s.entries(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("operator inventory: %w", err)
	}

	out := make(map[model.AccountID]model.Operator, len(changes))
	for _, c := range changes {
		if c.Value == nil {
			continue
		}
		account, err := accountFromKey(c.Key, len(prefix))
		if err != nil {
			return nil, err
		}
		op, err := decodeOperator(account, c.Value)
		if err != nil {
			return nil, err
		}
		out[account] = op
	}
	return out, nil
}

// AccountBalances returns the System.Account balances of accounts in input order.
// Accounts without storage get zero balances.
func (s *Source) AccountBalances(ctx context.Context, accounts []model.AccountID) ([]model.AccountBalance, error) {
	keys := make([][]byte, len(accounts))
	for i := range accounts {
		keys[i] = substrate.StorageKey(systemPallet, systemAccount, substrate.Blake2Key(accounts[i][:]))
	}

	values, err := s.values(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("account balances: %w", err)
	}

	out := make([]model.AccountBalance, len(accounts))
	for i, account := range accounts {
		raw := values[string(keys[i])]
		if raw == nil {
			out[i] = model.AccountBalance{Account: account}
			continue
		}
		balance, err := decodeAccountInfo(account, raw, s.decimals)
		if err != nil {
			return nil, err
		}
		out[i] = balance
	}
	return out, nil
}

func (s *Source) entries(ctx context.Context, prefix []byte) ([]substrate.StorageChange, error) {
	var keys [][]byte
	var start []byte
	for {
		page, err := s.rpc.GetKeysPaged(ctx, prefix, s.pageSize, start)
		if err != nil {
			return nil, err
		}
		keys = append(keys, page...)
		if uint32(len(page)) < s.pageSize {
			break
		}
		start = page[len(page)-1]
	}

	values, err := s.values(ctx, keys)
	if err != nil {
		return nil, err
	}
	out := make([]substrate.StorageChange, 0, len(keys))
	for _, k := range keys {
		out = append(out, substrate.StorageChange{Key: k, Value: values[string(k)]})
	}
	return out, nil
}

func (s *Source) values(ctx context.Context, keys [][]byte) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	for start := 0; start < len(keys); start += s.queryChunk {
		end := start + s.queryChunk
		if end > len(keys) {
			end = len(keys)
		}
		changes, err := s.rpc.QueryStorageAt(ctx, keys[start:end])
		if err != nil {
			return nil, err
		}
		for _, c := range changes {
			out[string(c.Key)] = c.Value
		}
	}
	return out, nil
}

func accountFromKey(key []byte, prefixLen int) (model.AccountID, error) {
	suffix, ok := substrate.KeySuffix(key, prefixLen, substrate.Blake2_128Concat)
	if !ok || len(suffix) != model.AccountIDLength {
		return model.AccountID{}, fmt.Errorf("unexpected storage key length %d", len(key))
	}
	return model.AccountIDFromBytes(suffix)
}

func decodeRewardPeriod(raw []byte) (model.RewardPeriodInfo, error) {
	d := substrate.NewDecoder(raw)
	index, err := d.U64()
	if err != nil {
		return model.RewardPeriodInfo{}, fmt.Errorf("decode reward period index: %w", err)
	}
	first, err := d.U32()
	if err != nil {
		return model.RewardPeriodInfo{}, fmt.Errorf("decode reward period first block: %w", err)
	}
	length, err := d.U32()
	if err != nil {
		return model.RewardPeriodInfo{}, fmt.Errorf("decode reward period length: %w", err)
	}
	return model.RewardPeriodInfo{Index: index, FirstBlock: first, Length: length}, nil
}

// decodeOperator reads the leading friendly name and legal location fields;
// trailing fields of the inventory record are ignored.
func decodeOperator(account model.AccountID, raw []byte) (model.Operator, error) {
	d := substrate.NewDecoder(raw)
	name, err := d.Bytes()
	if err != nil {
		return model.Operator{}, fmt.Errorf("decode friendly name of %s: %w", account.Hex(), err)
	}
	location, err := d.Bytes()
	if err != nil {
		return model.Operator{}, fmt.Errorf("decode legal location of %s: %w", account.Hex(), err)
	}
	return model.Operator{
		Account:       account,
		FriendlyName:  string(name),
		LegalLocation: string(location),
	}, nil
}

func decodeAccountInfo(account model.AccountID, raw []byte, decimals int32) (model.AccountBalance, error) {
	d := substrate.NewDecoder(raw)
	// nonce, consumers, providers, sufficients
	for i := 0; i < 4; i++ {
		if _, err := d.U32(); err != nil {
			return model.AccountBalance{}, fmt.Errorf("decode account info of %s: %w", account.Hex(), err)
		}
	}
	amounts := make([]decimal.Decimal, 3)
	for i := range amounts {
		v, err := d.U128()
		if err != nil {
			return model.AccountBalance{}, fmt.Errorf("decode account data of %s: %w", account.Hex(), err)
		}
		amounts[i] = decimal.NewFromBigInt(v, -decimals)
	}
	return model.AccountBalance{
		Account:  account,
		Free:     amounts[0],
		Reserved: amounts[1],
		Frozen:   amounts[2],
	}, nil
}
