package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StringArray stores an ordered list of strings as a JSON column.
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	jsonData, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringArray: unsupported type %T", value)
	}

	return json.Unmarshal(data, a)
}

// Search is a client's product request. Rows are immutable after creation;
// the only thing that ever changes about a search is the set of responses
// attached to it. The canonical client identifier is the normalized contact
// phone; ClientID is filled only when the caller was signed in.
type Search struct {
	ID                  string      `json:"id" gorm:"primaryKey"`
	ClientID            *uint       `json:"client_id"`
	ClientPhone         string      `json:"client_phone" gorm:"index"`
	OriginalProductName string      `json:"original_product_name"`
	ProductName         string      `json:"product_name"`
	PhotoURLs           StringArray `json:"photo_urls" gorm:"type:text"`
	Responses           []Response  `json:"responses" gorm:"foreignKey:SearchID"`
	CreatedAt           time.Time   `json:"created_at" gorm:"index"`
}

// Response is a pharmacist's reply to a search. One response per pharmacist
// per search; a repeat submission overwrites the previous price.
type Response struct {
	gorm.Model
	SearchID     string   `json:"search_id" gorm:"uniqueIndex:idx_response_search_pharmacist"`
	PharmacistID uint     `json:"pharmacist_id" gorm:"uniqueIndex:idx_response_search_pharmacist"`
	PharmacyName string   `json:"pharmacy_name"`
	Price        *float64 `json:"price"`
}

// HasResponses reports whether at least one pharmacist has replied. The
// state is derived from the response rows, never stored.
func (s *Search) HasResponses() bool {
	return len(s.Responses) > 0
}
