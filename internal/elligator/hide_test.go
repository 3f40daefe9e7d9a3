package elligator

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

func TestHideReveal(t *testing.T) {
	for i := 0; i < 20; i++ {
		in, err := bigint.Random(rand.Reader, curve.Params().Q)
		require.NoError(t, err)
		pt, err := StringToPoint(curve, in)
		require.NoError(t, err)

		rep, err := Hide(curve, pt, rand.Reader)
		require.NoError(t, err)

		got, err := Reveal(curve, rep)
		require.NoError(t, err)
		assert.True(t, got.Equal(pt))
	}
}

func TestHidePadding(t *testing.T) {
	ones := bytes.NewReader([]byte{0xff})
	rep, err := Hide(curve, pointY2, ones)
	require.NoError(t, err)
	assert.Equal(t, byte(0xfc), rep[0]&0xfc)

	zeros := bytes.NewReader([]byte{0x00})
	plain, err := Hide(curve, pointY2, zeros)
	require.NoError(t, err)
	assert.Equal(t, rep[1:], plain[1:])
	assert.Equal(t, rep[0]&^0xfc, plain[0])

	t1, err := RevealString(curve, rep)
	require.NoError(t, err)
	t2, err := RevealString(curve, plain)
	require.NoError(t, err)
	assert.True(t, t1.Equal(t2))

	pt, err := Reveal(curve, rep)
	require.NoError(t, err)
	assert.True(t, pt.Equal(pointY2))
}

func TestHideErrors(t *testing.T) {
	_, err := Hide(curve, pointY7, rand.Reader)
	assert.ErrorIs(t, err, api.ErrNotRepresentable)

	_, err = Hide(curve, pointY2, bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestRevealRejectsNonCanonical(t *testing.T) {
	var rep [RepresentativeSize]byte
	for i := range rep {
		rep[i] = 0xff
	}
	// 2^250 - 1 > (q-1)/2
	_, err := Reveal(curve, rep)
	assert.ErrorIs(t, err, api.ErrInvalidRepresentative)
}
