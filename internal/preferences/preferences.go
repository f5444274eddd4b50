package preferences

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
)

const (
	favoritesPrefix = "favorites/"
	columnsPrefix   = "columns/"
)

// Column names of the submissions table.
const (
	ColumnName     = "name"
	ColumnLocation = "location"
	ColumnAccount  = "account"
	ColumnVotes    = "votes"
	ColumnProgress = "progress"
	ColumnBalance  = "balance"
	ColumnStake    = "stake"
)

// ErrUnknownColumn is returned when a column name is not part of the table.
var ErrUnknownColumn = errors.New("unknown column")

// AllColumns lists table columns in display order.
var AllColumns = []string{
	ColumnName,
	ColumnLocation,
	ColumnAccount,
	ColumnVotes,
	ColumnProgress,
	ColumnBalance,
	ColumnStake,
}

// Preferences exposes typed settings on top of a Store.
type Preferences struct {
	store Store
}

// New wraps store.
func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// Favorites returns the favorite accounts.
func (p *Preferences) Favorites(ctx context.Context) (map[model.AccountID]struct{}, error) {
	keys, err := p.store.Keys(ctx, favoritesPrefix)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	favorites := make(map[model.AccountID]struct{}, len(keys))
	for _, key := range keys {
		account, err := model.AccountIDFromHex(strings.TrimPrefix(key, favoritesPrefix))
		if err != nil {
			// stale or hand-edited entry
			continue
		}
		favorites[account] = struct{}{}
	}
	return favorites, nil
}

// IsFavorite reports whether account is marked as favorite.
func (p *Preferences) IsFavorite(ctx context.Context, account model.AccountID) (bool, error) {
	_, ok, err := p.store.Get(ctx, favoriteKey(account))
	if err != nil {
		return false, fmt.Errorf("get favorite: %w", err)
	}
	return ok, nil
}

// SetFavorite marks or unmarks account as favorite.
func (p *Preferences) SetFavorite(ctx context.Context, account model.AccountID, favorite bool) error {
	key := favoriteKey(account)
	if favorite {
		if err := p.store.Set(ctx, key, "true"); err != nil {
			return fmt.Errorf("set favorite: %w", err)
		}
		return nil
	}
	if err := p.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// Columns returns the visibility of every table column. Columns without a
// stored value are visible.
func (p *Preferences) Columns(ctx context.Context) (map[string]bool, error) {
	columns := make(map[string]bool, len(AllColumns))
	for _, column := range AllColumns {
		columns[column] = true
	}

	keys, err := p.store.Keys(ctx, columnsPrefix)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}
	for _, key := range keys {
		column := strings.TrimPrefix(key, columnsPrefix)
		if _, known := columns[column]; !known {
			continue
		}
		raw, ok, err := p.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get column %s: %w", column, err)
		}
		if !ok {
			continue
		}
		visible, err := strconv.ParseBool(raw)
		if err != nil {
			continue
		}
		columns[column] = visible
	}
	return columns, nil
}

// SetColumnVisible stores the visibility of column.
func (p *Preferences) SetColumnVisible(ctx context.Context, column string, visible bool) error {
	if !slices.Contains(AllColumns, column) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	if err := p.store.Set(ctx, columnsPrefix+column, strconv.FormatBool(visible)); err != nil {
		return fmt.Errorf("set column %s: %w", column, err)
	}
	return nil
}

func favoriteKey(account model.AccountID) string {
	return favoritesPrefix + account.Hex()
}
