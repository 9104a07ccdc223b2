// Package models defines the records the panel keeps in the local store and
// the panel's view state.
package models

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/authpanel/internal/common"
)

// UserRecord is what the store holds under an email key. Password is kept
// in plain text.
type UserRecord struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Encode serializes the record to the flat JSON text kept in the store.
func (r UserRecord) Encode() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeUserRecord parses a stored value. Errors wrap common.ErrorCorruptRecord.
func DecodeUserRecord(s string) (UserRecord, error) {
	var r UserRecord
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return UserRecord{}, fmt.Errorf("%w: %v", common.ErrorCorruptRecord, err)
	}
	return r, nil
}
