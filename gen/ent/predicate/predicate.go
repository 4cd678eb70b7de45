// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Metric is the predicate function for metric builders.
type Metric func(*sql.Selector)

// Recommendation is the predicate function for recommendation builders.
type Recommendation func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
