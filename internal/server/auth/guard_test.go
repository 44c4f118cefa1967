package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Identify(t *testing.T) {
	codec := NewTokenCodec([]byte("secret"), time.Hour)
	g := NewGuard(codec)

	valid, err := codec.Issue("alice-id", 0)
	require.NoError(t, err)

	expiredCodec := NewTokenCodec([]byte("secret"), time.Minute)
	expiredCodec.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := expiredCodec.Issue("alice-id", 0)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer " + valid, want: "alice-id"},
		{name: "scheme is case insensitive", header: "bearer " + valid, want: "alice-id"},
		{name: "missing", header: "", wantErr: common.ErrUnauthenticated},
		{name: "no token", header: "Bearer ", wantErr: common.ErrUnauthenticated},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: common.ErrUnauthenticated},
		{name: "token only", header: valid, wantErr: common.ErrUnauthenticated},
		{name: "garbage token", header: "Bearer abc", wantErr: common.ErrInvalidToken},
		{name: "expired", header: "Bearer " + expired, wantErr: common.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Identify(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuard_AssertOwner(t *testing.T) {
	g := NewGuard(NewTokenCodec([]byte("k"), 0))

	assert.NoError(t, g.AssertOwner("a", "a"))
	assert.ErrorIs(t, g.AssertOwner("a", "b"), common.ErrForbidden)
	assert.ErrorIs(t, g.AssertOwner("", ""), common.ErrForbidden)
	assert.ErrorIs(t, g.AssertOwner("a", ""), common.ErrForbidden)
}
