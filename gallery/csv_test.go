package gallery_test

import (
	"strings"
	"testing"

	"github.com/lorypota/setflow/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalogue = `Scuola,Autore,Soggetto,Data,Sala
Fiorentina,Giotto,Madonna col Bambino,1306,2
Senese,"Martini, Simone",Annunciazione,1333,3
Fiorentina,Botticelli,Primavera,1482,10
Fiorentina,Giotto,Madonna col Bambino,1306,2
`

func TestLoad(t *testing.T) {
	t.Run("rows become unique set elements", func(t *testing.T) {
		s, err := gallery.Load(strings.NewReader(sampleCatalogue))
		require.NoError(t, err)

		// the duplicated Giotto row collapses
		assert.Equal(t, 3, s.Len())

		assert.True(t, s.Contains(gallery.Painting{
			School:  "Fiorentina",
			Author:  "Giotto",
			Subject: "Madonna col Bambino",
			Date:    "1306",
			Room:    "2",
		}))
	})

	t.Run("quoted fields keep their commas", func(t *testing.T) {
		s, err := gallery.Load(strings.NewReader(sampleCatalogue))
		require.NoError(t, err)

		second, err := s.At(1)
		require.NoError(t, err)
		assert.Equal(t, "Martini, Simone", second.Author)
	})

	t.Run("file order is iteration order", func(t *testing.T) {
		s, err := gallery.Load(strings.NewReader(sampleCatalogue))
		require.NoError(t, err)

		first, err := s.At(0)
		require.NoError(t, err)
		assert.Equal(t, "Giotto", first.Author)

		last, err := s.At(2)
		require.NoError(t, err)
		assert.Equal(t, "Botticelli", last.Author)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := gallery.Load(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("short record is rejected", func(t *testing.T) {
		_, err := gallery.Load(strings.NewReader("a,b,c,d,e\nonly,three,fields\n"))
		assert.Error(t, err)
	})
}

func TestKey(t *testing.T) {
	p := gallery.Painting{School: "Senese", Author: "Martini", Subject: "Annunciazione", Date: "1333", Room: "3"}

	for column, want := range map[string]string{
		"school":  "Senese",
		"author":  "Martini",
		"subject": "Annunciazione",
		"date":    "1333",
		"room":    "3",
	} {
		key, err := gallery.Key(column)
		require.NoError(t, err)
		assert.Equal(t, want, key(p))
	}

	_, err := gallery.Key("frame")
	assert.Error(t, err)
}
