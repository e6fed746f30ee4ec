package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/motoportal-api/internal/storage/memory"
	"github.com/aanand-mishra/motoportal-api/internal/types"
	"github.com/aanand-mishra/motoportal-api/internal/validation"
)

const doc = `
listings:
  - kind: shop
    name: МотоЭкип
    rating: 4.5
    working_hours: {open_time: 600, close_time: 1200}
    tags: [шлемы]
  - kind: service
    name: МотоТех
    working_hours:
      schedule:
        - {day: "Пн-Пт", hours: "09:00-18:00"}
events:
  - title: Открытие сезона
    date: "2024-04-20"
    time: "10:00"
classifieds:
  - type: sale
    title: Honda CBR
    price: 650000
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, f.Listings, 2)
	assert.Equal(t, types.KindShop, f.Listings[0].Kind)
	require.NotNil(t, f.Listings[0].Hours.OpenTime)
	assert.Equal(t, 600, *f.Listings[0].Hours.OpenTime)
	assert.Equal(t, types.ShapeWeekly, f.Listings[1].Hours.Shape())
	assert.Equal(t, "2024-04-20", f.Events[0].Date)
	assert.EqualValues(t, 650000, f.Classifieds[0].Price)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("listings:\n  - kind: shop\n    nmae: typo\n"))
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Listings)
}

func TestImport(t *testing.T) {
	f, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	store := memory.New(nil)
	res, err := Import(store, f, validation.New())
	require.NoError(t, err)
	assert.Equal(t, Result{Listings: 2, Events: 1, Classifieds: 1}, res)

	n, _ := store.CountListings()
	assert.EqualValues(t, 2, n)
}

func TestImportValidatesFirst(t *testing.T) {
	f := &File{
		Listings: []types.Listing{
			{Kind: types.KindShop, Name: "ok"},
			{Kind: "garage", Name: "bad kind"},
		},
		Events: []types.Event{{Title: "bad date", Date: "20.04.2024"}},
	}

	store := memory.New(nil)
	_, err := Import(store, f, validation.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `listings[1] "bad kind"`)
	assert.Contains(t, err.Error(), `events[0] "bad date"`)

	n, _ := store.CountListings()
	assert.Zero(t, n, "nothing is written when validation fails")
}

func TestIfEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	store := memory.New(nil)
	v := validation.New()

	res, imported, err := IfEmpty(store, path, v)
	require.NoError(t, err)
	assert.True(t, imported)
	assert.Equal(t, 2, res.Listings)

	_, imported, err = IfEmpty(store, path, v)
	require.NoError(t, err)
	assert.False(t, imported)

	n, _ := store.CountListings()
	assert.EqualValues(t, 2, n)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShippedSeedFileIsValid(t *testing.T) {
	f, err := Load(filepath.Join("..", "..", "config", "seed.yaml"))
	require.NoError(t, err)
	require.NoError(t, f.Validate(validation.New()))

	assert.NotEmpty(t, f.Listings)
	assert.NotEmpty(t, f.Events)
	assert.NotEmpty(t, f.Classifieds)
}
