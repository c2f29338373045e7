package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lucas-hsi/melitusgym-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	items  []models.FoodItem
	err    error
	calls  int
	onCall func()
}

func (f *fakeSearcher) Search(_ context.Context, _ string, _ int) ([]models.FoodItem, error) {
	f.calls++
	if f.onCall != nil {
		f.onCall()
	}
	return f.items, f.err
}

func oneItem(id string, src models.FoodSource) []models.FoodItem {
	return []models.FoodItem{{
		ID:               id,
		Source:           src,
		Name:             "Arroz, integral, cozido",
		NutrientsPer100g: models.NutrientProfile{models.NutrientCarbs: 28.1},
	}}
}

func TestResolveRejectsShortQuery(t *testing.T) {
	local := &fakeSearcher{}
	remote := &fakeSearcher{}
	r := NewFoodResolver(local, remote, 20)

	res := r.Resolve(context.Background(), "a", PreferBoth)

	assert.Equal(t, StatusError, res.Status)
	assert.Zero(t, local.calls)
	assert.Zero(t, remote.calls)
	assert.Equal(t, StateError, r.State())
}

func TestResolveLocalHitShortCircuitsRemote(t *testing.T) {
	local := &fakeSearcher{items: oneItem("taco-1", models.SourceLocal)}
	remote := &fakeSearcher{items: oneItem("tbca-x", models.SourceRemote)}
	r := NewFoodResolver(local, remote, 20)

	res := r.Resolve(context.Background(), "arroz", PreferBoth)

	require.Equal(t, StatusFound, res.Status)
	assert.Equal(t, models.SourceLocal, res.Items[0].Source)
	assert.Equal(t, 1, local.calls)
	assert.Zero(t, remote.calls, "local hit must not dispatch the remote source")
	assert.Equal(t, StateFound, r.State())
}

func TestResolveFallsBackToRemoteOnLocalMiss(t *testing.T) {
	local := &fakeSearcher{}
	remote := &fakeSearcher{items: oneItem("tbca-x", models.SourceRemote)}
	r := NewFoodResolver(local, remote, 20)

	res := r.Resolve(context.Background(), "arroz", PreferBoth)

	require.Equal(t, StatusFound, res.Status)
	assert.Equal(t, models.SourceRemote, res.Items[0].Source)
	assert.Equal(t, 1, local.calls)
	assert.Equal(t, 1, remote.calls)
}

func TestResolveLocalFailureStillReachesRemote(t *testing.T) {
	local := &fakeSearcher{err: errors.New("connection refused")}
	remote := &fakeSearcher{items: oneItem("tbca-x", models.SourceRemote)}
	r := NewFoodResolver(local, remote, 20)

	res := r.Resolve(context.Background(), "arroz", PreferBoth)

	assert.Equal(t, StatusFound, res.Status, "local outage must degrade, not block")
	assert.Equal(t, 1, remote.calls)
}

func TestResolveNotFoundIsNotAnError(t *testing.T) {
	local := &fakeSearcher{}
	remote := &fakeSearcher{}
	r := NewFoodResolver(local, remote, 20)

	res := r.Resolve(context.Background(), "quimera assada", PreferBoth)

	assert.Equal(t, StatusNotFound, res.Status)
	assert.Nil(t, res.Err)
	assert.Equal(t, StateNotFound, r.State())
}

func TestResolveBothSourcesDown(t *testing.T) {
	local := &fakeSearcher{err: errors.New("db down")}
	remote := &fakeSearcher{err: errors.New("timeout")}
	r := NewFoodResolver(local, remote, 20)

	res := r.Resolve(context.Background(), "arroz", PreferBoth)

	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, "both food sources unavailable", res.Reason)
	require.Error(t, res.Err)
}

func TestResolvePreferLocalOnly(t *testing.T) {
	remote := &fakeSearcher{items: oneItem("tbca-x", models.SourceRemote)}

	t.Run("miss stays not_found", func(t *testing.T) {
		local := &fakeSearcher{}
		r := NewFoodResolver(local, remote, 20)
		res := r.Resolve(context.Background(), "arroz", PreferLocal)
		assert.Equal(t, StatusNotFound, res.Status)
		assert.Zero(t, remote.calls)
	})

	t.Run("failure surfaces as error", func(t *testing.T) {
		local := &fakeSearcher{err: errors.New("db down")}
		r := NewFoodResolver(local, remote, 20)
		res := r.Resolve(context.Background(), "arroz", PreferLocal)
		assert.Equal(t, StatusError, res.Status)
		assert.Equal(t, "local food source unavailable", res.Reason)
		assert.Zero(t, remote.calls)
	})
}

func TestResolvePreferRemoteSkipsLocal(t *testing.T) {
	local := &fakeSearcher{items: oneItem("taco-1", models.SourceLocal)}
	remote := &fakeSearcher{items: oneItem("tbca-x", models.SourceRemote)}
	r := NewFoodResolver(local, remote, 20)

	res := r.Resolve(context.Background(), "arroz", PreferRemote)

	require.Equal(t, StatusFound, res.Status)
	assert.Equal(t, models.SourceRemote, res.Items[0].Source)
	assert.Zero(t, local.calls)
}

func TestResolveLatestDiscardsSupersededResult(t *testing.T) {
	remote := &fakeSearcher{items: oneItem("tbca-x", models.SourceRemote)}
	local := &fakeSearcher{}
	r := NewFoodResolver(local, remote, 20)

	// while the first query is in flight at the local source, a newer
	// query arrives and completes
	local.onCall = func() {
		if local.calls == 1 {
			r.Resolve(context.Background(), "feijão", PreferRemote)
		}
	}

	res, committed := r.ResolveLatest(context.Background(), "arroz", PreferBoth)

	assert.False(t, committed, "superseded result must not be shown")
	assert.Equal(t, StatusFound, res.Status, "the result itself is still returned for diagnostics")
	assert.Equal(t, StateFound, r.State(), "state belongs to the newest query")
}
