package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/lucas-hsi/melitusgym-sub000/models"
)

// ResolverState is the explicit search state machine, decoupled from any UI.
type ResolverState string

const (
	StateIdle            ResolverState = "idle"
	StateSearchingLocal  ResolverState = "searching_local"
	StateSearchingRemote ResolverState = "searching_remote"
	StateFound           ResolverState = "found"
	StateNotFound        ResolverState = "not_found"
	StateError           ResolverState = "error"
)

type ResolutionStatus string

const (
	StatusFound    ResolutionStatus = "found"
	StatusNotFound ResolutionStatus = "not_found"
	StatusError    ResolutionStatus = "error"
)

// Resolution is the terminal outcome of one query. A not_found is a
// first-class result, distinguishable from a transport failure.
type Resolution struct {
	Status ResolutionStatus  `json:"status"`
	Items  []models.FoodItem `json:"items,omitempty"`
	Reason string            `json:"reason,omitempty"`
	Err    error             `json:"-"` // wrapped cause for diagnostics
}

type SourcePreference string

const (
	PreferLocal  SourcePreference = "local"
	PreferRemote SourcePreference = "remote"
	PreferBoth   SourcePreference = "both"
)

// foodSearcher is satisfied by TacoService (local) and TBCAService (remote).
type foodSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]models.FoodItem, error)
}

const minQueryRunes = 2

// FoodResolver orchestrates local-first, remote-fallback search. Local
// results always short-circuit the remote source: curated data wins over a
// best-effort estimate even when the estimate might match more broadly.
type FoodResolver struct {
	local  foodSearcher
	remote foodSearcher
	limit  int

	gen atomic.Uint64 // newest query wins; stale results are discarded

	mu    sync.Mutex
	state ResolverState
}

func NewFoodResolver(local, remote foodSearcher, limit int) *FoodResolver {
	if limit <= 0 {
		limit = 20
	}
	return &FoodResolver{local: local, remote: remote, limit: limit, state: StateIdle}
}

// State reports the machine's current state snapshot.
func (r *FoodResolver) State() ResolverState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *FoodResolver) setState(s ResolverState) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// Resolve runs one full resolution for query under the given source
// preference. Too-short queries are rejected here, before any dispatch.
func (r *FoodResolver) Resolve(ctx context.Context, query string, pref SourcePreference) Resolution {
	res, _ := r.resolve(ctx, query, pref, r.gen.Add(1))
	return res
}

// ResolveLatest behaves like Resolve but only commits its outcome (state
// transition included) when no newer query has started in the meantime. The
// boolean reports whether the result is still current; callers must discard
// superseded results rather than show a stale answer.
func (r *FoodResolver) ResolveLatest(ctx context.Context, query string, pref SourcePreference) (Resolution, bool) {
	return r.resolve(ctx, query, pref, r.gen.Add(1))
}

func (r *FoodResolver) resolve(ctx context.Context, query string, pref SourcePreference, gen uint64) (Resolution, bool) {
	if utf8.RuneCountInString(query) < minQueryRunes {
		return r.commit(gen, Resolution{
			Status: StatusError,
			Reason: fmt.Sprintf("query must have at least %d characters", minQueryRunes),
		})
	}

	var localErr error
	if pref == PreferLocal || pref == PreferBoth {
		r.commitState(gen, StateSearchingLocal)
		items, err := r.local.Search(ctx, query, r.limit)
		switch {
		case err != nil:
			// One source's outage degrades, never blocks: remember the
			// cause and fall through to remote if allowed.
			localErr = err
		case len(items) > 0:
			return r.commit(gen, Resolution{Status: StatusFound, Items: items})
		}
		if pref == PreferLocal {
			if localErr != nil {
				return r.commit(gen, Resolution{
					Status: StatusError,
					Reason: "local food source unavailable",
					Err:    fmt.Errorf("local search: %w", localErr),
				})
			}
			return r.commit(gen, Resolution{Status: StatusNotFound})
		}
	}

	r.commitState(gen, StateSearchingRemote)
	items, err := r.remote.Search(ctx, query, r.limit)
	if err != nil {
		reason := "remote food source unavailable"
		wrapped := fmt.Errorf("remote search: %w", err)
		if localErr != nil {
			reason = "both food sources unavailable"
			wrapped = fmt.Errorf("local search: %v; remote search: %w", localErr, err)
		}
		return r.commit(gen, Resolution{Status: StatusError, Reason: reason, Err: wrapped})
	}
	if len(items) == 0 {
		return r.commit(gen, Resolution{Status: StatusNotFound})
	}
	return r.commit(gen, Resolution{Status: StatusFound, Items: items})
}

// commitState moves the machine forward only while this resolution is still
// the newest one.
func (r *FoodResolver) commitState(gen uint64, s ResolverState) {
	if r.gen.Load() != gen {
		return
	}
	r.setState(s)
}

func (r *FoodResolver) commit(gen uint64, res Resolution) (Resolution, bool) {
	if r.gen.Load() != gen {
		return res, false
	}
	switch res.Status {
	case StatusFound:
		r.setState(StateFound)
	case StatusNotFound:
		r.setState(StateNotFound)
	default:
		r.setState(StateError)
	}
	return res, true
}
