package dashboard

import (
	"cmp"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/workernode-dashboard/internal/estimator"
)

// SortKey names the column rows are ordered by.
type SortKey string

// Sort keys.
const (
	SortVotes    SortKey = "votes"
	SortName     SortKey = "name"
	SortLocation SortKey = "location"
	SortAccount  SortKey = "account"
	SortBalance  SortKey = "balance"
	SortStake    SortKey = "stake"
)

// SortOrder is the sort direction. The empty order sorts numeric keys
// descending and text keys ascending.
type SortOrder string

// Sort orders.
const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ErrInvalidQuery is returned for unparsable query parameters.
var ErrInvalidQuery = errors.New("invalid query")

// Query filters and orders the rows of a view.
type Query struct {
	Search        string                `json:"search,omitempty"`
	Location      string                `json:"location,omitempty"`
	Status        *estimator.VoteStatus `json:"status,omitempty"`
	FavoritesOnly bool                  `json:"favoritesOnly,omitempty"`
	Sort          SortKey               `json:"sort"`
	Order         SortOrder             `json:"order"`
}

// ParseQuery reads a Query from URL parameters q, location, status,
// favorites, sort and order.
func ParseQuery(values url.Values) (Query, error) {
	q := Query{
		Search:   strings.TrimSpace(values.Get("q")),
		Location: strings.TrimSpace(values.Get("location")),
		Sort:     SortKey(values.Get("sort")),
		Order:    SortOrder(values.Get("order")),
	}

	if raw := values.Get("status"); raw != "" {
		status, err := estimator.ParseVoteStatus(raw)
		if err != nil {
			return Query{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
		q.Status = &status
	}

	if raw := values.Get("favorites"); raw != "" {
		fav, err := strconv.ParseBool(raw)
		if err != nil {
			return Query{}, fmt.Errorf("%w: favorites %q", ErrInvalidQuery, raw)
		}
		q.FavoritesOnly = fav
	}

	return q.normalize()
}

func (q Query) normalize() (Query, error) {
	switch q.Sort {
	case "":
		q.Sort = SortVotes
	case SortVotes, SortName, SortLocation, SortAccount, SortBalance, SortStake:
	default:
		return Query{}, fmt.Errorf("%w: sort %q", ErrInvalidQuery, q.Sort)
	}

	switch q.Order {
	case "":
		q.Order = OrderAsc
		if q.Sort.numeric() {
			q.Order = OrderDesc
		}
	case OrderAsc, OrderDesc:
	default:
		return Query{}, fmt.Errorf("%w: order %q", ErrInvalidQuery, q.Order)
	}
	return q, nil
}

func (k SortKey) numeric() bool {
	return k == SortVotes || k == SortBalance || k == SortStake
}

func (q Query) match(row Row) bool {
	if q.FavoritesOnly && !row.Favorite {
		return false
	}
	if q.Status != nil && row.Status != *q.Status {
		return false
	}
	if q.Location != "" && !strings.EqualFold(row.Location, q.Location) {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(row.Name), needle) &&
			!strings.Contains(strings.ToLower(row.Location), needle) &&
			!strings.Contains(strings.ToLower(row.Address), needle) {
			return false
		}
	}
	return true
}

// apply filters rows in place and sorts the result. Ties are broken by address
// so the order is deterministic.
func (q Query) apply(rows []Row) []Row {
	out := rows[:0]
	for _, row := range rows {
		if q.match(row) {
			out = append(out, row)
		}
	}

	compare := q.compareFunc()
	slices.SortStableFunc(out, func(a, b Row) int {
		c := compare(a, b)
		if q.Order == OrderDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.Address, b.Address)
	})
	return out
}

func (q Query) compareFunc() func(a, b Row) int {
	switch q.Sort {
	case SortName:
		return func(a, b Row) int { return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) }
	case SortLocation:
		return func(a, b Row) int { return cmp.Compare(strings.ToLower(a.Location), strings.ToLower(b.Location)) }
	case SortAccount:
		return func(a, b Row) int { return strings.Compare(a.Address, b.Address) }
	case SortBalance:
		return func(a, b Row) int { return a.Balance.Cmp(b.Balance) }
	case SortStake:
		return func(a, b Row) int { return a.Stake.Cmp(b.Stake) }
	default:
		return func(a, b Row) int { return cmp.Compare(a.Votes, b.Votes) }
	}
}
