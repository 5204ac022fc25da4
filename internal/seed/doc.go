// Package seed writes course lessons to a relational database.
//
// Seeding is a full replace inside one transaction: existing rows for the
// product are counted and deleted, then every lesson is inserted in day
// order. Any failure rolls the whole transaction back, so the table never
// holds a partial set. Failures are reported as *Error with a Kind naming
// the stage that failed.
//
// The seeder takes an explicit Config; reading DATABASE_URL is left to the
// caller.
package seed
