package types

import "time"

// Event is a community event: a ride, a workshop, a meetup.
// Date is YYYY-MM-DD and Time is HH:MM, both in the portal's local time.
type Event struct {
	ID          int64     `json:"id"          yaml:"id,omitempty"`
	Title       string    `json:"title"       yaml:"title"       validate:"required"`
	Description string    `json:"description" yaml:"description"`
	Date        string    `json:"date"        yaml:"date"        validate:"required,datetime=2006-01-02"`
	Time        string    `json:"time"        yaml:"time"        validate:"omitempty,datetime=15:04"`
	Location    string    `json:"location"    yaml:"location"`
	Price       int64     `json:"price"       yaml:"price"       validate:"gte=0"`
	Category    string    `json:"category"    yaml:"category"`
	Organizer   string    `json:"organizer"   yaml:"organizer"`
	Featured    bool      `json:"featured"    yaml:"featured"`
	CreatedAt   time.Time `json:"created_at"  yaml:"created_at,omitempty"`
}

// ClassifiedType is the kind of a classified ad.
type ClassifiedType string

const (
	ClassifiedSale     ClassifiedType = "sale"
	ClassifiedWanted   ClassifiedType = "wanted"
	ClassifiedExchange ClassifiedType = "exchange"
)

// Classified is a user ad on the board. Price 0 means the price is not stated.
type Classified struct {
	ID          int64          `json:"id"          yaml:"id,omitempty"`
	Type        ClassifiedType `json:"type"        yaml:"type"        validate:"required,oneof=sale wanted exchange"`
	Title       string         `json:"title"       yaml:"title"       validate:"required"`
	Description string         `json:"description" yaml:"description"`
	Category    string         `json:"category"    yaml:"category"`
	Condition   string         `json:"condition"   yaml:"condition"`
	PriceType   string         `json:"price_type"  yaml:"price_type"`
	Price       int64          `json:"price"       yaml:"price"       validate:"gte=0"`
	Location    string         `json:"location"    yaml:"location"`
	Tags        []string       `json:"tags"        yaml:"tags"`
	ViewCount   int            `json:"view_count"  yaml:"view_count"  validate:"gte=0"`
	CreatedAt   time.Time      `json:"created_at"  yaml:"created_at,omitempty"`
}
