package migrations

import "gorm.io/gorm"

// rehearsalAttachmentV2 carries the loosened column definitions. Attachments
// can now be registered before the upload finishes, so the file columns must
// accept NULL.
type rehearsalAttachmentV2 struct {
	FileName *string `gorm:"size:255"`
	FilePath *string `gorm:"size:512"`
}

func (rehearsalAttachmentV2) TableName() string { return "rehearsal_attachments" }

// loosenAttachmentColumns drops NOT NULL from rehearsal_attachments
// file_name/file_path. The rollback backfills NULL values with empty strings
// first; re-tightening would otherwise violate the reinstated constraint.
func loosenAttachmentColumns() *Revision {
	return &Revision{
		ID:      "1b2c3d4e5f6a",
		Parents: []string{"0a1b2c3d4e5f"},
		Migrate: func(tx *gorm.DB) error {
			if err := tx.Migrator().AlterColumn(&rehearsalAttachmentV2{}, "FileName"); err != nil {
				return err
			}
			return tx.Migrator().AlterColumn(&rehearsalAttachmentV2{}, "FilePath")
		},
		Rollback: func(tx *gorm.DB) error {
			if err := tx.Exec("UPDATE rehearsal_attachments SET file_name = '' WHERE file_name IS NULL").Error; err != nil {
				return err
			}
			if err := tx.Exec("UPDATE rehearsal_attachments SET file_path = '' WHERE file_path IS NULL").Error; err != nil {
				return err
			}
			if err := tx.Migrator().AlterColumn(&rehearsalAttachmentV1{}, "FileName"); err != nil {
				return err
			}
			return tx.Migrator().AlterColumn(&rehearsalAttachmentV1{}, "FilePath")
		},
	}
}
