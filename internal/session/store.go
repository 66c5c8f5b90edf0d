package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/usecase/queries"
)

// Identity is the opaque authenticated-session handle. It exists only
// between sign-in and sign-out and is owned exclusively by the Store.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Snapshot is the observable session state: who is signed in and what
// their profile resolved to. ProfileResolved is false while a fetch for
// the current identity is still in flight.
type Snapshot struct {
	Identity        *Identity
	Profile         *queries.ProfileView
	ProfileResolved bool
}

// UIRole derives the viewer's UI role from the snapshot. Guest when no
// identity or no profile; an unrecognized stored role is an error, never
// a default.
func (s Snapshot) UIRole() (identity.UIRole, error) {
	var role *identity.Role
	if s.Profile != nil {
		r := identity.Role(s.Profile.Role)
		role = &r
	}
	return identity.ResolveUIRole(s.Identity != nil, role)
}

// AuthProvider is the backend authentication surface the store delegates
// to. Implementations must return an error union, never panic.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password, fullName string) (*Identity, error)
	SignOut(ctx context.Context) error
}

// ProfileFetcher resolves an identity to its profile record.
// A missing record is signalled with queries.ErrProfileNotFound;
// anything else is treated as transient.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, profileID uuid.UUID) (*queries.ProfileView, error)
}

// Store is the single source of truth for "is anyone signed in, and
// who". All mutation goes through the Store; observers get read-only
// snapshots.
type Store struct {
	provider AuthProvider
	fetcher  ProfileFetcher

	mu      sync.Mutex
	snap    Snapshot
	gen     uint64 // bumped on every identity transition; guards stale fetches
	subs    map[int]chan Snapshot
	nextSub int
}

func NewStore(provider AuthProvider, fetcher ProfileFetcher) *Store {
	return &Store{
		provider: provider,
		fetcher:  fetcher,
		snap:     Snapshot{ProfileResolved: true},
		subs:     make(map[int]chan Snapshot),
	}
}

// Observe returns a channel that receives the current snapshot
// immediately and then every subsequent state change. Delivery never
// blocks the store: intermediate states are coalesced so the channel
// always carries the latest snapshot. The returned cancel function
// releases the subscription.
func (s *Store) Observe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, 1)
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.snap

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Current returns the latest snapshot.
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *Store) SignIn(ctx context.Context, email, password string) error {
	ident, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	s.beginSession(ident)
	return nil
}

func (s *Store) SignUp(ctx context.Context, email, password, fullName string) error {
	ident, err := s.provider.SignUp(ctx, email, password, fullName)
	if err != nil {
		return err
	}
	s.beginSession(ident)
	return nil
}

// SignOut clears the local session unconditionally. The backend call may
// fail; local state still clears (fail-safe logout).
func (s *Store) SignOut(ctx context.Context) {
	if err := s.provider.SignOut(ctx); err != nil {
		slog.Warn("backend sign-out failed, clearing local session anyway", "error", err.Error())
	}

	s.mu.Lock()
	s.snap = Snapshot{ProfileResolved: true}
	s.gen++
	s.emitLocked()
	s.mu.Unlock()
}

// Refresh re-runs the profile fetch for the current identity. Call it
// after any action that could change role, enterprise association or
// subscription state.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	if s.snap.Identity == nil {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	id := s.snap.Identity.ID
	s.snap.ProfileResolved = false
	s.emitLocked()
	s.mu.Unlock()

	go s.fetchProfile(gen, id)
}

func (s *Store) beginSession(ident *Identity) {
	s.mu.Lock()
	s.snap = Snapshot{Identity: ident}
	s.gen++
	gen := s.gen
	s.emitLocked()
	s.mu.Unlock()

	// The fetch runs as a separate task, never inline in the auth
	// notification path: calling back into the auth subsystem from its
	// own callback deadlocks against its internal locking.
	go s.fetchProfile(gen, ident.ID)
}

func (s *Store) fetchProfile(gen uint64, profileID uuid.UUID) {
	view, err := s.fetcher.FetchProfile(context.Background(), profileID)

	s.mu.Lock()
	defer s.mu.Unlock()

	// A session transition happened while this fetch was in flight; the
	// result belongs to a dead generation and must not overwrite state.
	if gen != s.gen {
		return
	}

	switch {
	case err == nil:
		s.snap.Profile = view
	case errors.Is(err, queries.ErrProfileNotFound):
		// Authenticated but no profile record: the viewer degrades to
		// guest rather than gaining any elevated role.
		s.snap.Profile = nil
	default:
		// Transient failure: keep whatever profile we last resolved.
		slog.Warn("profile fetch failed", "profile_id", profileID, "error", err.Error())
	}

	s.snap.ProfileResolved = true
	s.emitLocked()
}

func (s *Store) emitLocked() {
	for _, ch := range s.subs {
		// Coalesce: drop the undelivered snapshot, keep the newest.
		select {
		case <-ch:
		default:
		}
		ch <- s.snap
	}
}
