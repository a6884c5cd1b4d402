package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodesCSV_WithHeader(t *testing.T) {
	in := "scanned_at,Código,station\n" +
		"2024-06-01T10:00:00Z,1052407320112123,L1\n" +
		"2024-06-01T10:00:05Z, 1052-4073-2011-2124 ,L1\n"

	codes, blank, err := ParseCodesCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"1052407320112123", "1052-4073-2011-2124"}, codes)
	assert.Empty(t, blank)
}

func TestParseCodesCSV_BlankRows(t *testing.T) {
	in := "code,note\n1052407320112123,ok\n,missing\n1052407320112124,ok\nshort\n"

	codes, blank, err := ParseCodesCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"1052407320112123", "1052407320112124", "short"}, codes)
	assert.Equal(t, []int{3}, blank)
}

func TestParseCodesCSV_Headerless(t *testing.T) {
	in := "1052407320112123\n\n1052407320112124\n"

	codes, _, err := ParseCodesCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"1052407320112123", "1052407320112124"}, codes)
}

func TestParseCodesCSV_ByteOrderMark(t *testing.T) {
	bom := "\ufeff"

	codes, _, err := ParseCodesCSV(strings.NewReader(bom + "code,note\n1052407320112123,ok\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1052407320112123"}, codes)

	codes, _, err = ParseCodesCSV(strings.NewReader(bom + "\"Código\"\n1052407320112124\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1052407320112124"}, codes)

	// headerless export: the first code must not carry the mark
	codes, _, err = ParseCodesCSV(strings.NewReader(bom + "1052407320112123\n1052407320112124\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1052407320112123", "1052407320112124"}, codes)
}

func TestParseCodesCSV_Errors(t *testing.T) {
	_, _, err := ParseCodesCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, _, err = ParseCodesCSV(strings.NewReader("ticker,weight\nAAPL,1\n"))
	assert.ErrorContains(t, err, "missing required column: code")
}
