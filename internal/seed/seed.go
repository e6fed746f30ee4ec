// Package seed loads the portal's starter content from a YAML file and
// imports it through storage.Storage.
//
// File layout:
//
//	listings:
//	  - kind: school
//	    name: Мотошкола Драйв
//	    working_hours: {text: "10:00-19:00"}
//	events:
//	  - title: Открытие сезона
//	    date: "2024-04-20"
//	classifieds:
//	  - type: sale
//	    title: Honda CBR600RR
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aanand-mishra/motoportal-api/internal/storage"
	"github.com/aanand-mishra/motoportal-api/internal/types"
)

// File is the decoded seed document.
type File struct {
	Listings    []types.Listing    `yaml:"listings"`
	Events      []types.Event      `yaml:"events"`
	Classifieds []types.Classified `yaml:"classifieds"`
}

// Result counts the records written by Import.
type Result struct {
	Listings    int
	Events      int
	Classifieds int
}

// Load reads and decodes the seed file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed.Load: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("seed.Load %s: %w", path, err)
	}
	return file, nil
}

// Decode parses a seed document. Unknown keys are an error so a misspelled
// field does not silently drop data.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &file, nil
}

// Validate checks every record and reports all failures at once, each
// prefixed with its section and position.
func (f *File) Validate(validate *validator.Validate) error {
	var errs []error
	for i, l := range f.Listings {
		if err := validate.Struct(l); err != nil {
			errs = append(errs, fmt.Errorf("listings[%d] %q: %w", i, l.Name, err))
		}
	}
	for i, e := range f.Events {
		if err := validate.Struct(e); err != nil {
			errs = append(errs, fmt.Errorf("events[%d] %q: %w", i, e.Title, err))
		}
	}
	for i, c := range f.Classifieds {
		if err := validate.Struct(c); err != nil {
			errs = append(errs, fmt.Errorf("classifieds[%d] %q: %w", i, c.Title, err))
		}
	}
	return errors.Join(errs...)
}

// Import validates the whole file and then writes it to store. Nothing is
// written when validation fails. Ids in the file are ignored; the store
// assigns new ones.
func Import(store storage.Storage, f *File, validate *validator.Validate) (Result, error) {
	var res Result

	if err := f.Validate(validate); err != nil {
		return res, fmt.Errorf("seed.Import: %w", err)
	}

	for _, l := range f.Listings {
		if _, err := store.CreateListing(l); err != nil {
			return res, fmt.Errorf("seed.Import: listing %q: %w", l.Name, err)
		}
		res.Listings++
	}
	for _, e := range f.Events {
		if _, err := store.CreateEvent(e); err != nil {
			return res, fmt.Errorf("seed.Import: event %q: %w", e.Title, err)
		}
		res.Events++
	}
	for _, c := range f.Classifieds {
		if _, err := store.CreateClassified(c); err != nil {
			return res, fmt.Errorf("seed.Import: classified %q: %w", c.Title, err)
		}
		res.Classifieds++
	}

	return res, nil
}

// IfEmpty imports the file at path only when store has no listings yet.
// It reports whether anything was imported.
func IfEmpty(store storage.Storage, path string, validate *validator.Validate) (Result, bool, error) {
	n, err := store.CountListings()
	if err != nil {
		return Result{}, false, fmt.Errorf("seed.IfEmpty: %w", err)
	}
	if n > 0 {
		return Result{}, false, nil
	}

	f, err := Load(path)
	if err != nil {
		return Result{}, false, err
	}
	res, err := Import(store, f, validate)
	if err != nil {
		return res, false, err
	}
	return res, true, nil
}
