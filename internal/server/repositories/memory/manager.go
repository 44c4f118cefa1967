package memory

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

// Manager vends in-memory repositories over a single Store. The DBTX handle
// is accepted for interface compatibility and ignored.
type Manager struct {
	Store *Store
}

func NewManager() *Manager {
	return &Manager{Store: NewStore()}
}

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(dbx.DBTX) users.Repository { return m.Store.Users() }

func (m *Manager) Tasks(dbx.DBTX) tasks.Repository { return m.Store.Tasks() }
