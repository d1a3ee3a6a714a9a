package db

import (
	"encoding/json"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// mysqlDupEntry is the server error number for a unique key violation.
const mysqlDupEntry = 1062

// IsDuplicateKey reports whether err is a unique-key violation. Repositories
// translate this into a conflict error instead of pre-checking, so the check
// and the write cannot race.
func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDupEntry
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// EncodeJSON marshals a value for a JSON column.
func EncodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeJSON unmarshals a JSON column into dst; empty input is left as-is.
func DecodeJSON(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}
