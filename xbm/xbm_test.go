package xbm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arrow = `#define arrow_width 10
#define arrow_height 3
#define arrow_x_hot 0
static unsigned char arrow_bits[] = {
   0x01, 0x02, 0xff, 0x03,
   0x00, 0x00 };
`

func TestDecode(t *testing.T) {
	b, err := Decode(strings.NewReader(arrow))
	require.NoError(t, err)

	assert.Equal(t, 10, b.Width)
	assert.Equal(t, 3, b.Height)
	assert.Equal(t, []byte{0x01, 0x02, 0xff, 0x03, 0x00, 0x00}, b.Bits)

	// First row: bit 0 of byte 0 and bit 1 of byte 1
	assert.True(t, b.Bit(0, 0))
	assert.False(t, b.Bit(1, 0))
	assert.True(t, b.Bit(9, 0))
	for x := 0; x < 10; x++ {
		assert.True(t, b.Bit(x, 1))
		assert.False(t, b.Bit(x, 2))
	}

	assert.False(t, b.Bit(-1, 0))
	assert.False(t, b.Bit(10, 1))
	assert.False(t, b.Bit(0, 3))
}

func TestDecodeSingleLine(t *testing.T) {
	b, err := Decode(strings.NewReader("#define x_width 8\n#define x_height 1\nstatic char x_bits[] = {0x81};\n"))
	require.NoError(t, err)
	assert.True(t, b.Bit(0, 0))
	assert.True(t, b.Bit(7, 0))
	assert.False(t, b.Bit(3, 0))
}

func TestDecodeErrors(t *testing.T) {
	tables := map[string]string{
		"dimensions": "static unsigned char x_bits[] = { 0x00 };",
		"bits":       "#define x_width 8\n#define x_height 1\n",
		"byte":       "#define x_width 8\n#define x_height 1\nstatic char x_bits[] = { 0xfff };",
		"short":      "#define x_width 8\n#define x_height 2\nstatic char x_bits[] = { 0x00 };",
		"define":     "#define x_width eight\n",
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(table))
			assert.Error(t, err)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	b := New(13, 4)
	for i := 0; i < 13; i++ {
		b.SetBit(i, i%4, true)
	}
	b.SetBit(12, 0, true)
	b.SetBit(12, 0, false)

	buf := new(bytes.Buffer)
	require.NoError(t, Encode(buf, "test", b))
	assert.True(t, strings.HasPrefix(buf.String(), "#define test_width 13\n#define test_height 4\n"))

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}
