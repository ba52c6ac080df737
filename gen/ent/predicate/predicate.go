// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PatientDocument is the predicate function for patientdocument builders.
type PatientDocument func(*sql.Selector)

// StagingRecord is the predicate function for stagingrecord builders.
type StagingRecord func(*sql.Selector)
