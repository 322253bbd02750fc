package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/artifacts"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/cards"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/events"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/moves"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/vaults"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// runs against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Vaults(db dbx.DBTX) vaults.Repository
	Events(db dbx.DBTX) events.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Moves(db dbx.DBTX) moves.Repository
	Cards(db dbx.DBTX) cards.Repository
	Artifacts(db dbx.DBTX) artifacts.Repository
	Challenges(db dbx.DBTX) challenges.Repository
}
