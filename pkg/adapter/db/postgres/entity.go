// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"errors"
	"fmt"

	"github.com/momeni/pitlane/pkg/core/repo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TakeByID fills the dest row which must have an "id" primary key.
// The gorm.ErrRecordNotFound error is translated to repo.ErrNotFound.
// Passing forUpdate locks the found row until the end of the ongoing
// transaction.
func TakeByID(gdb *gorm.DB, dest any, id int64, forUpdate bool) error {
	if forUpdate {
		gdb = gdb.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := gdb.Where("id = ?", id).Take(dest).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("id %d: %w", id, repo.ErrNotFound)
	case err != nil:
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

// ExistsByID checks if the table of the model row has an id row.
func ExistsByID(gdb *gorm.DB, model any, id int64) (bool, error) {
	var n int64
	err := gdb.Model(model).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("query: %w", err)
	}
	return n > 0, nil
}

// UpdateByID assigns the values columns of the id row of the model
// table. Keys of values are column names. Nil values are kept, so
// columns may be set to NULL. If no row is updated, repo.ErrNotFound
// is returned.
func UpdateByID(
	gdb *gorm.DB, model any, id int64, values map[string]any,
) error {
	res := gdb.Model(model).Where("id = ?", id).Updates(values)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("id %d: %w", id, repo.ErrNotFound)
	}
	return nil
}

// DeleteByID deletes the id row of the model table or returns
// repo.ErrNotFound if no such row exists.
func DeleteByID(gdb *gorm.DB, model any, id int64) error {
	res := gdb.Where("id = ?", id).Delete(model)
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("id %d: %w", id, repo.ErrNotFound)
	}
	return nil
}

// DeleteAll deletes all rows of the model table and returns their
// count.
func DeleteAll(gdb *gorm.DB, model any) (int64, error) {
	res := gdb.Where("true").Delete(model)
	if err := res.Error; err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	return res.RowsAffected, nil
}
