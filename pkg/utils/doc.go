// Package utils provides small conversion helpers shared across simple-facts.
//
// # SQL Null Type Conversions
//
//	// Convert string to sql.NullString; empty strings become invalid (NULL)
//	nullDesc := utils.ToNullString(role.Description)
//
//	// Extract valid strings from a slice of sql.NullString
//	valid := utils.GetValidStrings(nullStrings)
package utils
