// migrations.go
//
// Relational schema and versioned migration chain for the Backline band management app
// Copyright (c) 2026 Noah Bolger
//
// This file is part of backline.
// backline is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// backline is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with backline.
// If not, see <https://www.gnu.org/licenses/>.

// Package migrations holds the versioned schema revision chain and the runner
// that applies it. Each revision declares its parent revision(s); the runner
// resolves the resulting graph into a sequential application order and
// executes it through gormigrate, which records applied IDs in the
// schema_migrations table.
//
// Revisions are written against frozen snapshots of the schema as it existed
// when the revision was created, never against the live models package, so a
// revision's meaning cannot drift as the models evolve. Every forward
// operation is guarded by a live-schema existence check, which makes re-runs
// and databases with manually pre-created tables safe.
package migrations

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/noahbolger1430/Backline-sub001/internal/types"
)

// TableName is the bookkeeping table that records applied revision IDs.
const TableName = "schema_migrations"

// Revision is one reversible schema change. Parents names the revision(s)
// that must be applied first; the merge revision has two, every other
// revision has at most one.
type Revision struct {
	ID       string
	Parents  []string
	Migrate  func(tx *gorm.DB) error
	Rollback func(tx *gorm.DB) error
}

// all returns every revision in declaration order. Declaration order is the
// tie-break when the graph allows more than one valid sequence.
func all() []*Revision {
	return []*Revision{
		initialSchema(),
		addMemberEquipment(),
		addEquipmentClaims(),
		addBandEvents(),
		addSavedTours(),
		addStagePlots(),
		mergeTourAndPlotBranches(),
		addEngagementLogging(),
		loosenAttachmentColumns(),
		addTicketingColumns(),
	}
}

// Plan resolves the revision graph into application order. It fails on
// duplicate IDs, unknown parents, cycles, and anything other than exactly
// one head revision.
func Plan() ([]*Revision, error) {
	return order(all())
}

func order(revs []*Revision) ([]*Revision, error) {
	byID := make(map[string]*Revision, len(revs))
	for _, r := range revs {
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate revision id %s", r.ID)
		}
		byID[r.ID] = r
	}

	isParent := make(map[string]bool)
	for _, r := range revs {
		for _, p := range r.Parents {
			if _, known := byID[p]; !known {
				return nil, fmt.Errorf("revision %s declares unknown parent %s", r.ID, p)
			}
			isParent[p] = true
		}
	}

	heads := 0
	for _, r := range revs {
		if !isParent[r.ID] {
			heads++
		}
	}
	if heads != 1 {
		return nil, fmt.Errorf("revision graph must have exactly one head, found %d", heads)
	}

	// Kahn's algorithm, stable on declaration order.
	ordered := make([]*Revision, 0, len(revs))
	emitted := make(map[string]bool, len(revs))
	for len(ordered) < len(revs) {
		progressed := false
		for _, r := range revs {
			if emitted[r.ID] {
				continue
			}
			ready := true
			for _, p := range r.Parents {
				if !emitted[p] {
					ready = false
					break
				}
			}
			if ready {
				ordered = append(ordered, r)
				emitted[r.ID] = true
				progressed = true
			}
		}
		if !progressed {
			return nil, fmt.Errorf("revision graph contains a cycle")
		}
	}
	return ordered, nil
}

// Runner applies and rolls back the revision chain against one database
// connection. Schema changes are not commutative, so execution is strictly
// sequential.
type Runner struct {
	db   *gorm.DB
	g    *gormigrate.Gormigrate
	plan []*Revision
}

// NewRunner resolves the chain and prepares a runner for the given connection.
func NewRunner(db *gorm.DB) (*Runner, error) {
	plan, err := Plan()
	if err != nil {
		return nil, err
	}

	ms := make([]*gormigrate.Migration, len(plan))
	for i, rev := range plan {
		ms[i] = &gormigrate.Migration{
			ID:       rev.ID,
			Migrate:  attribute(rev.ID, "upgrade", rev.Migrate),
			Rollback: attribute(rev.ID, "downgrade", rev.Rollback),
		}
	}

	opts := &gormigrate.Options{
		TableName:      TableName,
		IDColumnName:   "id",
		IDColumnSize:   255,
		UseTransaction: true,
	}

	return &Runner{db: db, g: gormigrate.New(db, opts, ms), plan: plan}, nil
}

// attribute wraps a revision function so any failure names the revision and
// operation it occurred in. A partially applied step is not undone here;
// that is deliberate, the operator must see and resolve it.
func attribute(id, op string, fn func(tx *gorm.DB) error) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if err := fn(tx); err != nil {
			return &types.MigrationError{Revision: id, Op: op, Err: err}
		}
		return nil
	}
}

// Upgrade applies every unapplied revision in order.
func (r *Runner) Upgrade() error {
	return r.g.Migrate()
}

// UpgradeTo applies unapplied revisions up to and including the given ID.
func (r *Runner) UpgradeTo(id string) error {
	if err := r.known(id); err != nil {
		return err
	}
	return r.g.MigrateTo(id)
}

// Downgrade rolls back the most recently applied revision.
func (r *Runner) Downgrade() error {
	return r.g.RollbackLast()
}

// DowngradeTo rolls back revisions until the given ID is the newest applied.
func (r *Runner) DowngradeTo(id string) error {
	if err := r.known(id); err != nil {
		return err
	}
	return r.g.RollbackTo(id)
}

// Applied returns the applied revision IDs in application order.
func (r *Runner) Applied() ([]string, error) {
	if !r.db.Migrator().HasTable(TableName) {
		return nil, nil
	}
	var ids []string
	if err := r.db.Table(TableName).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	applied := make([]string, 0, len(ids))
	for _, rev := range r.plan {
		if set[rev.ID] {
			applied = append(applied, rev.ID)
		}
	}
	return applied, nil
}

// Pending returns the unapplied revision IDs in application order.
func (r *Runner) Pending() ([]string, error) {
	applied, err := r.Applied()
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(applied))
	for _, id := range applied {
		set[id] = true
	}
	pending := make([]string, 0, len(r.plan))
	for _, rev := range r.plan {
		if !set[rev.ID] {
			pending = append(pending, rev.ID)
		}
	}
	return pending, nil
}

func (r *Runner) known(id string) error {
	for _, rev := range r.plan {
		if rev.ID == id {
			return nil
		}
	}
	return fmt.Errorf("unknown revision id %s", id)
}
