package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// marshalJSON encodes v into a nullable TEXT column value. Nil and empty
// collections become NULL.
func marshalJSON(v any) (sql.NullString, error) {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return sql.NullString{}, nil
		}
	case map[string]string:
		if len(val) == 0 {
			return sql.NullString{}, nil
		}
	case nil:
		return sql.NullString{}, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// unmarshalJSON decodes a nullable TEXT column into out. NULL leaves out
// untouched.
func unmarshalJSON(col sql.NullString, out any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(col.String), out); err != nil {
		return fmt.Errorf("failed to unmarshal JSON column: %w", err)
	}
	return nil
}
