// Package utils provides small helpers shared by the dialect packages.
//
// # Identifier Utilities (identifier.go)
//
// BacktickIdentifier renders schema and table names as engine-safe identifiers.
// Both supported engines quote identifiers with backticks:
//
//	utils.BacktickIdentifier("users")
//	// Result: `users`
//
//	utils.BacktickIdentifier("app", "users")
//	// Result: `app`.`users`
//
//	// An empty schema is dropped rather than rendered as ``
//	utils.BacktickIdentifier("", "users")
//	// Result: `users`
//
// # Pointer Utilities (ptr.go)
//
// Ptr is used to build the optional catalog/schema filters passed to metadata
// lookups, where nil means "no filter" and Ptr("") means "objects without a
// schema":
//
//	rows, err := md.Tables(ctx, utils.Ptr(""), utils.Ptr(""), nil, nil)
package utils
