package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"profile-manager/internal/database"
)

// ProfileTable is the table backing the profile store.
const ProfileTable = "user_profiles"

// ProfileColumns lists every column the profile repository reads or writes.
var ProfileColumns = []string{
	"user_id",
	"username",
	"bio",
	"avatar_url",
	"date_of_birth",
	"gender",
	"address",
	"city",
	"state",
	"country",
	"website",
	"occupation",
	"interests",
	"friends_count",
	"groups_count",
	"is_active",
	"created_at",
	"updated_at",
}

var ErrSchemaMismatch = errors.New("schema mismatch")

// EnsureTableColumns fails when table is missing from the public schema or
// lacks any of columns. It never modifies the schema.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(existing) == 0 {
		return fmt.Errorf("%w: table %s does not exist", ErrSchemaMismatch, table)
	}

	var missing []string
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing columns %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}

// EnsureProfileTable checks user_profiles against ProfileColumns.
func EnsureProfileTable(ctx context.Context, db database.DB) error {
	return EnsureTableColumns(ctx, db, ProfileTable, ProfileColumns...)
}
