package encoding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errShort = errors.New("short input")

type pair struct{ a, b byte }

func (p *pair) Serialize() ([]byte, error) { return []byte{p.a, p.b}, nil }

func (p *pair) Deserialize(data []byte) error {
	if len(data) != 2 {
		return errShort
	}
	p.a, p.b = data[0], data[1]
	return nil
}

func TestEncodeDecode(t *testing.T) {
	data, err := Encode[pair](&pair{a: 1, b: 2})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, data)

	p, err := Decode[pair](data)
	require.NoError(t, err)
	require.Equal(t, pair{a: 1, b: 2}, p)

	p, err = Decode[pair]([]byte{1})
	require.ErrorIs(t, err, errShort)
	require.Equal(t, pair{}, p)
}
