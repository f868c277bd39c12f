package entity

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// NormalizePositions canonicalizes the position snapshots supplied with an
// imported game into the JSON stored in the fens column.
//
// The rules, applied in order:
//  1. nil or an all-whitespace string becomes the empty array.
//  2. a string that is itself valid JSON is stored verbatim. This includes
//     JSON scalars such as "42"; they stay unwrapped.
//  3. any other string is wrapped as a single-element array. Legacy clients
//     send a bare FEN here and expect it back as a one-element list.
//  4. any structured value is encoded directly.
func NormalizePositions(raw any) (datatypes.JSON, error) {
	switch v := raw.(type) {
	case nil:
		return datatypes.JSON("[]"), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return datatypes.JSON("[]"), nil
		}
		if json.Valid([]byte(trimmed)) {
			return datatypes.JSON(trimmed), nil
		}
		wrapped, err := json.Marshal([]string{v})
		if err != nil {
			return nil, err
		}
		return datatypes.JSON(wrapped), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return datatypes.JSON(encoded), nil
	}
}
