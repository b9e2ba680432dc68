package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopledger/shop_ledger_app/internal/utils"
)

func TestFormatPence(t *testing.T) {
	assert.Equal(t, "123.45", utils.FormatPence(12345))
	assert.Equal(t, "0.00", utils.FormatPence(0))
	assert.Equal(t, "-0.50", utils.FormatPence(-50))
	assert.Equal(t, "0.05", utils.FormatPence(5))
	assert.Equal(t, "10000.00", utils.FormatPence(1000000))
}

func TestFormatPenceWithSymbol(t *testing.T) {
	assert.Equal(t, "£123.45", utils.FormatPenceWithSymbol(12345, "£"))
	assert.Equal(t, "-£123.45", utils.FormatPenceWithSymbol(-12345, "£"))
	assert.Equal(t, "£0.00", utils.FormatPenceWithSymbol(0, "£"))
}
