package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

type ProductList struct {
	Products  []Product `json:"products"`
	Total     int       `json:"total"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Product struct {
	Id          ProductID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       Price     `json:"price,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
}

// ProductRequest carries the create/update form fields. Price stays a string
// all the way to the catalog service, which owns any numeric interpretation.
type ProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// ProductID is assigned by the catalog service and treated as opaque here.
// Catalogs disagree on whether ids are JSON numbers or strings, so both are
// accepted; ids are re-served as strings.
type ProductID string

func (id ProductID) String() string {
	return string(id)
}

func (id ProductID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *ProductID) UnmarshalJSON(data []byte) error {
	s, err := flexString(data)
	if err != nil {
		return err
	}
	*id = ProductID(s)
	return nil
}

// Price holds a product price exactly as the catalog sent it. Seeded catalog
// data carries numbers while objects created through the form echo back the
// submitted text, so no numeric form is assumed.
type Price string

func (p Price) String() string {
	return string(p)
}

func (p Price) Float64() (float64, error) {
	return strconv.ParseFloat(string(p), 64)
}

// MarshalJSON re-emits numeric-looking prices as JSON numbers and quotes
// everything else. Float64 screens out non-numbers and JSON literals like
// true or null, json.Valid screens out number spellings JSON does not
// allow, like NaN or .5.
func (p Price) MarshalJSON() ([]byte, error) {
	if _, err := p.Float64(); err == nil && json.Valid([]byte(p)) {
		return []byte(p), nil
	}
	return json.Marshal(string(p))
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s, err := flexString(data)
	if err != nil {
		return err
	}
	*p = Price(s)
	return nil
}

// flexString reads a JSON scalar as its text content: quoted strings are
// unquoted, anything else is kept verbatim, null becomes empty.
func flexString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		return s, err
	}

	if string(data) == "null" {
		return "", nil
	}

	return string(data), nil
}
