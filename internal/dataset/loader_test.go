package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable(t *testing.T) {
	table, err := LoadTable(filepath.Join("testdata", "age.csv"))
	require.NoError(t, err)

	assert.Len(t, table.Header, 7)
	assert.Len(t, table.Rows, 13)
	assert.Equal(t, 0, table.Column("age group desc"))
	assert.Equal(t, -1, table.Column("no such column"))
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join("testdata", "missing.csv"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadTableRaggedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n4,5\n"), 0644))

	_, err := LoadTable(path)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadTableEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := LoadTable(path)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestLoadTableTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padded.csv")
	require.NoError(t, os.WriteFile(path, []byte("county , FIPS \nFranklin , 39049 \n"), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"county", "FIPS"}, table.Header)
	assert.Equal(t, []string{"Franklin", "39049"}, table.Rows[0])
}
