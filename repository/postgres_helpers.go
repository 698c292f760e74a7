package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePgID converts the string ids used across the API into bigserial keys.
func parsePgID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return n, nil
}

func formatPgID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// buildWhere turns generic filters into a WHERE clause with positional args.
// The id filter maps onto the primary key.
func buildWhere(filters map[string]interface{}) (string, []interface{}) {
	if len(filters) == 0 {
		return "", nil
	}

	var clauses []string
	var args []interface{}
	i := 1
	for k, v := range filters {
		if k == "id" {
			if s, ok := v.(string); ok {
				if n, err := parsePgID(s); err == nil {
					v = n
				}
			}
		}
		clauses = append(clauses, fmt.Sprintf("%s = $%d", k, i))
		args = append(args, v)
		i++
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
