package specification

import "gorm.io/gorm"

// Specification is a composable query fragment. Repositories apply any
// number of them onto a base query before executing it.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
