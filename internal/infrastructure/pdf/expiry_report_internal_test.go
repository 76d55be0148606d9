package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "25.000", formatThousands(25000))
	assert.Equal(t, "1.000.000", formatThousands(1000000))
	assert.Equal(t, "-1.500", formatThousands(-1500))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/01/2025", formatDate("2025-01-05"))
	assert.Equal(t, "mañana", formatDate("mañana"))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("12345678-aaaa-bbbb"))
}
