package model

import (
	"bytes"
	"strconv"
	"time"
)

// NumericID is an integer identifier that tolerates being stored as either
// a JSON number or a JSON string. Older ledger files written by previous
// versions of the backend contain string ids.
type NumericID int64

// UnmarshalJSON accepts both 1757372400000 and "1757372400000".
func (n *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*n = NumericID(v)
	return nil
}

// MarshalJSON always writes the id as a JSON number.
func (n NumericID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(n), 10)), nil
}

// Preorder represents a single preorder submission. The ledger is
// append-only: nothing in the backend ever updates or deletes an entry.
type Preorder struct {
	ID          NumericID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     *string   `json:"message"`
	ProductID   *string   `json:"productId"`
	ProductName *string   `json:"productName"`
	CreatedAt   string    `json:"created_at"`
}

// InitMeta assigns the preorder id and submission timestamp. The id is the
// submission time in milliseconds, so uniqueness is not guaranteed under
// concurrent submissions.
func (p *Preorder) InitMeta() {
	now := time.Now().UTC()
	p.ID = NumericID(now.UnixMilli())
	p.CreatedAt = now.Format(time.RFC3339)
}
