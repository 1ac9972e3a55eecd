package tabular

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID       int     `csv:"id"`
	Name     string  `csv:"name"`
	Score    float64 `csv:"score"`
	Internal string  `csv:"-"`
}

func TestDecodeCSV_Basic(t *testing.T) {
	input := "id,name,score,extra\n1,alpha,2.5,x\n2,beta,0,y\n"
	rows, err := DecodeCSV[testRow](context.Background(), strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, testRow{ID: 1, Name: "alpha", Score: 2.5}, rows[0])
	assert.Equal(t, testRow{ID: 2, Name: "beta"}, rows[1])
}

func TestDecodeCSV_ColumnOrderIndependent(t *testing.T) {
	input := "score,name,id\n9,gamma,3\n"
	rows, err := DecodeCSV[testRow](context.Background(), strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, testRow{ID: 3, Name: "gamma", Score: 9}, rows[0])
}

func TestDecodeCSV_MissingColumn(t *testing.T) {
	input := "id,name\n1,alpha\n"
	_, err := DecodeCSV[testRow](context.Background(), strings.NewReader(input), CSVOptions{})
	require.Error(t, err)

	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"score"}, missing.Columns)
	assert.Contains(t, err.Error(), `"score"`)
}

func TestDecodeCSV_MissingColumnHeaderOnly(t *testing.T) {
	_, err := DecodeCSV[testRow](context.Background(), strings.NewReader("id\n"), CSVOptions{})
	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.ElementsMatch(t, []string{"name", "score"}, missing.Columns)
}

func TestDecodeCSV_Empty(t *testing.T) {
	_, err := DecodeCSV[testRow](context.Background(), strings.NewReader(""), CSVOptions{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDecodeCSV_BadNumber(t *testing.T) {
	input := "id,name,score\n1,alpha,2.5\nx,beta,1\n"
	_, err := DecodeCSV[testRow](context.Background(), strings.NewReader(input), CSVOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode line 3")
}

func TestDecodeRows(t *testing.T) {
	rows, err := DecodeRows[testRow]([][]string{
		{"id", "name", "score"},
		{"7", "delta", "1.5"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].ID)
}
