package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/settlement"
)

func sampleRows() []*Row {
	records := []ledger.SplitRecord{
		{From: "Alice", To: "Bob", Amount: decimal.RequireFromString("33.333333")},
	}
	transfers := []settlement.Transfer{
		{From: "Bob", To: "Alice", Amount: decimal.RequireFromString("33.333333")},
	}
	return append(RecordRows(records, "EUR"), TransferRows(transfers, "EUR")...)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"csv": FormatCSV, "JSON": FormatJSON, "yaml": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleRows()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "kind,from,to,amount,display", lines[0])
	assert.Equal(t, "expense,Alice,Bob,33.33,Alice pays Bob: EUR 33.33", lines[1])
	assert.Equal(t, "settlement,Bob,Alice,33.33,Bob pays Alice: EUR 33.33", lines[2])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleRows()))

	var rows []Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, KindSettlement, rows[1].Kind)
	assert.Equal(t, "33.33", rows[1].Amount)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleRows()))

	var rows []Row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice pays Bob: EUR 33.33", rows[0].Display)
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Format("xml"), sampleRows()))
}
