package repo

import "gorm.io/gorm"

// allocatorKey is the single row of the id counter table.
const allocatorKey = "global"

// nextIDNum draws the next numeric id suffix inside tx. The upsert folds the
// read and the increment into one statement executed in the same transaction
// as the insert consuming the number, so two concurrent writers can never be
// handed the same value. The sequence starts at 1 and is shared across all
// entity types.
func nextIDNum(tx *gorm.DB) (int64, error) {
	var num int64
	err := tx.Raw(
		`INSERT INTO "idCounter" ("key", "value") VALUES (?, 1)
		 ON CONFLICT ("key") DO UPDATE SET "value" = "value" + 1
		 RETURNING "value"`,
		allocatorKey,
	).Scan(&num).Error
	return num, err
}
