package ingest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineup/ingest"
)

const performersCSV = `Name,Experience,Dances,Most,Okay,No
Ava,5 years,1-2,"Tap, Jazz",Hip,nan
Ben,,3,Jazz,,"Tap"
Cleo,beginner,,nan,nan,nan
`

const segmentsCSV = `Dance,NumDancers,Rating_5,Rating_4,Rating_3,Rating_2,Rating_1
Tap,8.0,"Ava, Ben",Cleo,,,
Jazz,2-3,Ben,,Ava,nan,
Hip,,,,,,Cleo
`

func TestReadPerformersCSV(t *testing.T) {
	recs, err := ingest.ReadPerformersCSV(strings.NewReader(performersCSV))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Ava", recs[0].Name)
	assert.Equal(t, "5 years", recs[0].Experience)
	assert.Equal(t, "1-2", recs[0].Capacity)
	assert.Equal(t, []string{"Tap", "Jazz"}, recs[0].Most)
	assert.Equal(t, []string{"Hip"}, recs[0].Okay)
	assert.Empty(t, recs[0].No)

	assert.Equal(t, "3", recs[1].Capacity)
	assert.Equal(t, []string{"Tap"}, recs[1].No)

	assert.Empty(t, recs[2].Capacity)
	assert.Empty(t, recs[2].Most)
}

func TestReadPerformersCSV_MissingName(t *testing.T) {
	_, err := ingest.ReadPerformersCSV(strings.NewReader("Experience,Dances\nx,1\n"))
	assert.ErrorIs(t, err, ingest.ErrMissingColumn)

	_, err = ingest.ReadPerformersCSV(strings.NewReader("Name,Dances\nnan,1\n"))
	assert.ErrorIs(t, err, ingest.ErrInvalidRecord)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadSegmentsCSV(t *testing.T) {
	recs, err := ingest.ReadSegmentsCSV(strings.NewReader(segmentsCSV))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Tap", recs[0].Name)
	assert.Equal(t, "8", recs[0].Capacity, "spreadsheet float is normalized")
	assert.Equal(t, []string{"Ava", "Ben"}, recs[0].Ratings[5])
	assert.Equal(t, []string{"Cleo"}, recs[0].Ratings[4])
	assert.NotContains(t, recs[0].Ratings, 3)

	assert.Equal(t, "2-3", recs[1].Capacity)
	assert.Equal(t, []string{"Ava"}, recs[1].Ratings[3])
	assert.NotContains(t, recs[1].Ratings, 2)

	assert.Empty(t, recs[2].Capacity)
	assert.Equal(t, []string{"Cleo"}, recs[2].Ratings[1])
}

func TestReadSegmentsCSV_HeaderAliases(t *testing.T) {
	recs, err := ingest.ReadSegmentsCSV(strings.NewReader("segment,capacity,rating_5\nWaltz,4,Ava\n"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Waltz", recs[0].Name)
	assert.Equal(t, "4", recs[0].Capacity)
	assert.Equal(t, []string{"Ava"}, recs[0].Ratings[5])
}

func TestReadYAML(t *testing.T) {
	doc, err := ingest.ReadYAML(strings.NewReader(`
performers:
  - name: Ava
    capacity: "1-2"
    most: [Tap]
    no: [Jazz]
segments:
  - name: Tap
    capacity: "4"
    ratings:
      5: [Ava]
  - name: Jazz
exclusion_pairs:
  - [Tap, Jazz]
`))
	require.NoError(t, err)
	require.Len(t, doc.Performers, 1)
	require.Len(t, doc.Segments, 2)
	assert.Equal(t, []string{"Tap"}, doc.Performers[0].Most)
	assert.Equal(t, []string{"Ava"}, doc.Segments[0].Ratings[5])
	assert.Equal(t, [][]string{{"Tap", "Jazz"}}, doc.ExclusionPairs)
}

func TestReadYAML_Invalid(t *testing.T) {
	_, err := ingest.ReadYAML(strings.NewReader("performers:\n  - capacity: \"2\"\n"))
	assert.ErrorIs(t, err, ingest.ErrInvalidRecord)

	_, err = ingest.ReadYAML(strings.NewReader("exclusion_pairs:\n  - [Tap]\n"))
	assert.ErrorIs(t, err, ingest.ErrInvalidRecord)

	_, err = ingest.ReadYAML(strings.NewReader("dancers: []\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestReadYAML_Empty(t *testing.T) {
	doc, err := ingest.ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Performers)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	pPath := filepath.Join(dir, "performers.csv")
	sPath := filepath.Join(dir, "segments.csv")
	require.NoError(t, os.WriteFile(pPath, []byte(performersCSV), 0o644))
	require.NoError(t, os.WriteFile(sPath, []byte(segmentsCSV), 0o644))

	perfs, segs, err := ingest.LoadFiles(pPath, sPath)
	require.NoError(t, err)
	assert.Len(t, perfs, 3)
	assert.Len(t, segs, 3)

	_, _, err = ingest.LoadFiles(filepath.Join(dir, "missing.csv"), sPath)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("segments:\n  - name: Tap\n"), 0o644))

	doc, err := ingest.LoadYAMLFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, "Tap", doc.Segments[0].Name)
}

func TestWriteCSV_ReadsBack(t *testing.T) {
	perfs, err := ingest.ReadPerformersCSV(strings.NewReader(performersCSV))
	require.NoError(t, err)
	segs, err := ingest.ReadSegmentsCSV(strings.NewReader(segmentsCSV))
	require.NoError(t, err)

	var pBuf, sBuf strings.Builder
	require.NoError(t, ingest.WritePerformersCSV(&pBuf, perfs))
	require.NoError(t, ingest.WriteSegmentsCSV(&sBuf, segs))

	perfs2, err := ingest.ReadPerformersCSV(strings.NewReader(pBuf.String()))
	require.NoError(t, err)
	segs2, err := ingest.ReadSegmentsCSV(strings.NewReader(sBuf.String()))
	require.NoError(t, err)

	assert.Equal(t, perfs, perfs2)
	assert.Equal(t, segs, segs2)
}
