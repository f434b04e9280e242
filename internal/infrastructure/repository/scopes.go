package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy returns a GORM scope that filters rows by the given owner column.
// A nil owner leaves the query unfiltered (super admin).
func OwnedBy(column string, ownerID *uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == nil {
			return db
		}
		return db.Where(column+" = ?", *ownerID)
	}
}

// InProject returns a GORM scope that restricts rows to one project
func InProject(projectID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("project_id = ?", projectID)
	}
}

// Search returns a GORM scope that ILIKE-matches the term against every column
func Search(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		like := "%" + term + "%"
		cond := db.Session(&gorm.Session{NewDB: true}).Where(columns[0]+" ILIKE ?", like)
		for _, col := range columns[1:] {
			cond = cond.Or(col+" ILIKE ?", like)
		}
		return db.Where(cond)
	}
}
