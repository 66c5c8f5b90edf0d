//go:build unit

package profile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/domain/profile"
	"wallet-console/tests/common/builder"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(profile.Profile{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.ProfileBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewProfileBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		enterpriseID := uuid.New()
		actual, err := builder.NewProfileBuilder().WithEnterpriseID(&enterpriseID).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := profile.NewEmail("test@example.com")
		fullName, _ := profile.NewFullName("Test Account")
		role, _ := identity.NewRole("ENTERPRISE")
		expected := profile.NewProfile(email, "hashed_password", fullName, role, &enterpriseID)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Profile mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsEmailVerified())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.ProfileBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.ProfileBuilder) { b.WithEmail("") },
				errIs:  profile.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.ProfileBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  profile.ErrInvalidEmail,
			},
		})
	})

	t.Run("full name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "non-empty name",
				mutate: func(b *builder.ProfileBuilder) { b.FullName = "Alex Chen" },
			},
			{
				name:   "empty name",
				mutate: func(b *builder.ProfileBuilder) { b.FullName = "" },
				errIs:  profile.ErrInvalidFullName,
			},
		})
	})
}

func TestCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		creds, err := profile.NewCredentials("a@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", creds.Email().Value())
	})

	t.Run("short password", func(t *testing.T) {
		_, err := profile.NewCredentials("a@example.com", "short")
		assert.ErrorIs(t, err, profile.ErrPasswordTooWeak)
	})
}

func TestPhoneNumber(t *testing.T) {
	t.Run("empty phone is valid", func(t *testing.T) {
		p, err := profile.NewPhoneNumber("")
		require.NoError(t, err)
		assert.Equal(t, "", p.Value())
	})

	t.Run("digits and separators accepted", func(t *testing.T) {
		_, err := profile.NewPhoneNumber("+1-555-000-1234")
		assert.NoError(t, err)
	})

	t.Run("letters rejected", func(t *testing.T) {
		_, err := profile.NewPhoneNumber("not-a-phone!")
		assert.ErrorIs(t, err, profile.ErrInvalidPhone)
	})
}
