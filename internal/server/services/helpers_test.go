package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/memory"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// testDB backs dbx.WithTx / dbx.WithConn; the repositories themselves are
// the in-memory ones and never touch it.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newUserService(t *testing.T, m *memory.Manager) (*UserService, *auth.TokenCodec) {
	t.Helper()
	codec := auth.NewTokenCodec([]byte("test-secret"), time.Minute)
	svc, err := NewUserService(testDB(t), m, codec, &config.Config{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	return svc, codec
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func strp(s string) *string { return &s }

func boolp(b bool) *bool { return &b }
