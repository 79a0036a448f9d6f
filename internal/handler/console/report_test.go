package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, "youtube_data_20240101_120000.csv")

	assert.Contains(t, buf.String(), "youtube_data_20240101_120000.csv")
}

func TestPrintResultNothingExported(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, "")

	assert.Contains(t, buf.String(), "nothing to export")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("quota exceeded"))

	assert.Contains(t, buf.String(), "quota exceeded")
}
