//go:build unit

package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/pkg/errs"
	"wallet-console/internal/session"
	"wallet-console/internal/usecase/queries"
	"wallet-console/tests/common/builder"
)

type stubProvider struct {
	ident      *session.Identity
	signInErr  error
	signOutErr error

	mu          sync.Mutex
	signOutSeen int
}

func (p *stubProvider) SignIn(_ context.Context, _, _ string) (*session.Identity, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return p.ident, nil
}

func (p *stubProvider) SignUp(_ context.Context, _, _, _ string) (*session.Identity, error) {
	return p.SignIn(context.Background(), "", "")
}

func (p *stubProvider) SignOut(_ context.Context) error {
	p.mu.Lock()
	p.signOutSeen++
	p.mu.Unlock()
	return p.signOutErr
}

type stubFetcher struct {
	mu      sync.Mutex
	view    *queries.ProfileView
	err     error
	release chan struct{} // when non-nil, fetches block until closed
}

func (f *stubFetcher) FetchProfile(_ context.Context, _ uuid.UUID) (*queries.ProfileView, error) {
	f.mu.Lock()
	release := f.release
	f.mu.Unlock()
	if release != nil {
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view, f.err
}

func (f *stubFetcher) set(view *queries.ProfileView, err error) {
	f.mu.Lock()
	f.view = view
	f.err = err
	f.mu.Unlock()
}

func waitForSnapshot(t *testing.T, ch <-chan session.Snapshot, pred func(session.Snapshot) bool) session.Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-ch:
			if pred(snap) {
				return snap
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}

func newTestStore(view *queries.ProfileView) (*session.Store, *stubProvider, *stubFetcher) {
	ident := &session.Identity{ID: view.ID, Email: view.Email}
	provider := &stubProvider{ident: ident}
	fetcher := &stubFetcher{view: view}
	return session.NewStore(provider, fetcher), provider, fetcher
}

func TestStoreSignIn(t *testing.T) {
	t.Run("profile resolution is deferred, not inline", func(t *testing.T) {
		view := builder.NewProfileBuilder().BuildView()
		ident := &session.Identity{ID: view.ID, Email: view.Email}
		provider := &stubProvider{ident: ident}
		fetcher := &stubFetcher{view: view, release: make(chan struct{})}
		store := session.NewStore(provider, fetcher)

		snapshots, cancel := store.Observe()
		defer cancel()

		require.NoError(t, store.SignIn(context.Background(), view.Email, "password123"))

		// Identity lands first with the profile still unresolved.
		snap := waitForSnapshot(t, snapshots, func(s session.Snapshot) bool { return s.Identity != nil })
		assert.False(t, snap.ProfileResolved)
		assert.Nil(t, snap.Profile)

		close(fetcher.release)
		snap = waitForSnapshot(t, snapshots, func(s session.Snapshot) bool { return s.ProfileResolved })
		require.NotNil(t, snap.Profile)
		assert.Equal(t, view.ID, snap.Profile.ID)

		role, err := snap.UIRole()
		require.NoError(t, err)
		assert.Equal(t, identity.UIEnterprise, role)
	})

	t.Run("provider failure leaves the store untouched", func(t *testing.T) {
		provider := &stubProvider{signInErr: errs.New("bad credentials")}
		store := session.NewStore(provider, &stubFetcher{})

		err := store.SignIn(context.Background(), "a@example.com", "wrong")
		require.Error(t, err)
		assert.Nil(t, store.Current().Identity)
	})
}

func TestStoreStaleFetchDiscard(t *testing.T) {
	t.Run("sign-out during an in-flight fetch wins", func(t *testing.T) {
		view := builder.NewProfileBuilder().BuildView()
		ident := &session.Identity{ID: view.ID, Email: view.Email}
		provider := &stubProvider{ident: ident}
		fetcher := &stubFetcher{view: view, release: make(chan struct{})}
		store := session.NewStore(provider, fetcher)

		require.NoError(t, store.SignIn(context.Background(), view.Email, "password123"))
		store.SignOut(context.Background())

		// The fetch completes for a generation that no longer exists; its
		// result must not resurrect the session.
		close(fetcher.release)
		assert.Never(t, func() bool {
			return store.Current().Profile != nil || store.Current().Identity != nil
		}, 200*time.Millisecond, 10*time.Millisecond)

		role, err := store.Current().UIRole()
		require.NoError(t, err)
		assert.Equal(t, identity.UIGuest, role)
	})
}

func TestStoreFetchOutcomes(t *testing.T) {
	t.Run("missing profile record degrades to guest", func(t *testing.T) {
		view := builder.NewProfileBuilder().BuildView()
		store, _, fetcher := newTestStore(view)
		fetcher.set(nil, queries.ErrProfileNotFound)

		snapshots, cancel := store.Observe()
		defer cancel()

		require.NoError(t, store.SignIn(context.Background(), view.Email, "password123"))
		snap := waitForSnapshot(t, snapshots, func(s session.Snapshot) bool { return s.ProfileResolved && s.Identity != nil })

		assert.Nil(t, snap.Profile)
		role, err := snap.UIRole()
		require.NoError(t, err)
		assert.Equal(t, identity.UIGuest, role)
	})

	t.Run("transient failure keeps the previous profile", func(t *testing.T) {
		view := builder.NewProfileBuilder().BuildView()
		store, _, fetcher := newTestStore(view)

		snapshots, cancel := store.Observe()
		defer cancel()

		require.NoError(t, store.SignIn(context.Background(), view.Email, "password123"))
		waitForSnapshot(t, snapshots, func(s session.Snapshot) bool { return s.ProfileResolved && s.Profile != nil })

		fetcher.set(nil, errs.New("backend unavailable"))
		store.Refresh(context.Background())

		snap := waitForSnapshot(t, snapshots, func(s session.Snapshot) bool { return s.ProfileResolved })
		require.NotNil(t, snap.Profile, "transient fetch failure must not clear the resolved profile")
		assert.Equal(t, view.ID, snap.Profile.ID)
	})

	t.Run("refresh picks up a role change", func(t *testing.T) {
		view := builder.NewProfileBuilder().BuildView()
		store, _, fetcher := newTestStore(view)

		snapshots, cancel := store.Observe()
		defer cancel()

		require.NoError(t, store.SignIn(context.Background(), view.Email, "password123"))
		waitForSnapshot(t, snapshots, func(s session.Snapshot) bool { return s.ProfileResolved && s.Profile != nil })

		demoted := builder.NewProfileBuilder().WithRole("USER").BuildView()
		demoted.ID = view.ID
		fetcher.set(demoted, nil)
		store.Refresh(context.Background())

		snap := waitForSnapshot(t, snapshots, func(s session.Snapshot) bool {
			return s.ProfileResolved && s.Profile != nil && s.Profile.Role == "USER"
		})
		role, err := snap.UIRole()
		require.NoError(t, err)
		assert.Equal(t, identity.UIUser, role)
	})
}

func TestStoreSignOut(t *testing.T) {
	t.Run("backend failure never blocks local sign-out", func(t *testing.T) {
		view := builder.NewProfileBuilder().BuildView()
		store, provider, _ := newTestStore(view)
		provider.signOutErr = errs.New("revocation endpoint down")

		snapshots, cancel := store.Observe()
		defer cancel()

		require.NoError(t, store.SignIn(context.Background(), view.Email, "password123"))
		waitForSnapshot(t, snapshots, func(s session.Snapshot) bool { return s.ProfileResolved })

		store.SignOut(context.Background())

		snap := store.Current()
		assert.Nil(t, snap.Identity)
		assert.Nil(t, snap.Profile)
		assert.True(t, snap.ProfileResolved)
	})
}

func TestStoreObserve(t *testing.T) {
	t.Run("new observers receive the current snapshot immediately", func(t *testing.T) {
		view := builder.NewProfileBuilder().BuildView()
		store, _, _ := newTestStore(view)

		snapshots, cancel := store.Observe()
		defer cancel()

		select {
		case snap := <-snapshots:
			assert.Nil(t, snap.Identity)
			assert.True(t, snap.ProfileResolved)
		case <-time.After(time.Second):
			t.Fatal("no initial snapshot delivered")
		}
	})

	t.Run("slow observers coalesce to the latest state", func(t *testing.T) {
		view := builder.NewProfileBuilder().BuildView()
		store, _, _ := newTestStore(view)

		snapshots, cancel := store.Observe()
		defer cancel()

		// Never drain while several transitions happen.
		require.NoError(t, store.SignIn(context.Background(), view.Email, "password123"))
		store.SignOut(context.Background())

		snap := waitForSnapshot(t, snapshots, func(s session.Snapshot) bool { return s.Identity == nil })
		assert.Nil(t, snap.Identity)
	})
}
