package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"mlb-gamecast/internal/database"
	"mlb-gamecast/internal/domain"
	"mlb-gamecast/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePeople struct {
	mu    sync.Mutex
	names map[int]string
	calls map[int]int
}

func newFakePeople(names map[int]string) *fakePeople {
	return &fakePeople{names: names, calls: map[int]int{}}
}

func (f *fakePeople) Person(_ context.Context, id int) (*domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[id]++
	name, ok := f.names[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &domain.Player{ID: id, FullName: name}, nil
}

func (f *fakePeople) callsFor(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

func newTestRepo(t *testing.T) *repository.PlayerRepository {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open("file:svc_"+name+"?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewPlayerRepository(db, zerolog.Nop())
}

func TestResolveNameCachesLookups(t *testing.T) {
	people := newFakePeople(map[int]string{592450: "Aaron Judge"})
	svc := newPlayerService(people, newTestRepo(t), time.Hour, zerolog.Nop())
	ctx := context.Background()

	assert.Equal(t, "Aaron Judge", svc.ResolveName(ctx, 592450))
	assert.Equal(t, "Aaron Judge", svc.ResolveName(ctx, 592450))
	assert.Equal(t, 1, people.callsFor(592450))
}

func TestResolveNameFallback(t *testing.T) {
	svc := newPlayerService(newFakePeople(nil), newTestRepo(t), time.Hour, zerolog.Nop())

	assert.Equal(t, "Player #42", svc.ResolveName(context.Background(), 42))
	assert.Equal(t, "Player #0", svc.ResolveName(context.Background(), 0))
}

func TestResolveNameRefreshesStaleEntries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, &domain.Player{
		ID: 7, FullName: "Old Name", LastFetchAt: time.Now().UTC().Add(-2 * time.Hour),
	}))

	people := newFakePeople(map[int]string{7: "New Name"})
	svc := newPlayerService(people, repo, time.Hour, zerolog.Nop())
	assert.Equal(t, "New Name", svc.ResolveName(ctx, 7))

	p, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "New Name", p.FullName)
}

func TestResolveNameKeepsStaleNameWhenRefreshFails(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, &domain.Player{
		ID: 7, FullName: "Old Name", LastFetchAt: time.Now().UTC().Add(-2 * time.Hour),
	}))

	svc := newPlayerService(newFakePeople(nil), repo, time.Hour, zerolog.Nop())
	assert.Equal(t, "Old Name", svc.ResolveName(ctx, 7))
}

func TestResolveNames(t *testing.T) {
	people := newFakePeople(map[int]string{1: "One", 2: "Two", 3: "Three"})
	svc := newPlayerService(people, newTestRepo(t), time.Hour, zerolog.Nop())

	names := svc.ResolveNames(context.Background(), []int{1, 2, 2, 3, 4, 0})

	assert.Equal(t, map[int]string{1: "One", 2: "Two", 3: "Three"}, names)
	assert.Equal(t, 1, people.callsFor(2))
	assert.Zero(t, people.callsFor(0))
}

func TestResolveNamesEmpty(t *testing.T) {
	svc := newPlayerService(newFakePeople(nil), newTestRepo(t), time.Hour, zerolog.Nop())
	assert.Empty(t, svc.ResolveNames(context.Background(), nil))
}
