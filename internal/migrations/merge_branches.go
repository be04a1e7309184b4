package migrations

import "gorm.io/gorm"

// mergeTourAndPlotBranches joins the saved-tours and stage-plots branches.
// It changes nothing; it exists so the chain has a single head again and
// later revisions can depend on both branches being present.
func mergeTourAndPlotBranches() *Revision {
	return &Revision{
		ID:      "f5a6b7c8d9e0",
		Parents: []string{"d1e2f3a4b5c6", "e3f4a5b6c7d8"},
		Migrate: func(tx *gorm.DB) error {
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return nil
		},
	}
}
