// Package types defines the record types, the Table and Store interfaces,
// configuration, and the error taxonomy for tradebook.
//
// Every record type is persisted through the same Table contract: Create,
// Delete, Get and GetAll, each issuing one statement against the store.
// Store failures surface as *DatabaseError; validation failures detected
// above the store surface as *ValidationError.
package types
