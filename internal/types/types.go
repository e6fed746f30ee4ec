// Package types holds the data structures shared across the application:
// catalog listings with their working hours, events and classified ads.
// Handlers, storage and the catalog filters all import types without
// depending on each other.
//
// Struct tags serve two purposes:
//
//  1. json:"..." and yaml:"..." control the wire and seed-file field names.
//  2. validate:"..." holds the go-playground/validator rules checked on
//     create, update and seed import.
package types
