// Package repo holds the ent-generated database client. Run go generate
// after changing any schema under internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
