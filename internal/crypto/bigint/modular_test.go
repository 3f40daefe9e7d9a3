package bigint

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEgcd(t *testing.T) {
	pairs := [][2]int64{{3, 7}, {240, 46}, {0, 5}, {5, 0}, {17, 17}, {1, 1}}
	for _, p := range pairs {
		a, b := New(p[0]), New(p[1])
		g, x, y := Egcd(a, b)
		// a*x + b*y == g
		assert.True(t, a.Mul(x).Add(b.Mul(y)).Equal(g), "bezout identity for %v", p)
	}

	g, _, _ := Egcd(New(240), New(46))
	assert.Equal(t, "2", g.String())
}

func TestInverse(t *testing.T) {
	t.Run("small modulus", func(t *testing.T) {
		p := New(7)
		for a := int64(1); a < 7; a++ {
			inv, err := Inverse(New(a), p)
			require.NoError(t, err)
			prod, _ := MulMod(New(a), inv, p)
			assert.Equal(t, "1", prod.String(), "a = %d", a)
		}
	})

	t.Run("negative operand", func(t *testing.T) {
		inv, err := Inverse(New(-3), New(7))
		require.NoError(t, err)
		// -3 ≡ 4 and 4*2 = 8 ≡ 1
		assert.Equal(t, "2", inv.String())
	})

	t.Run("curve modulus", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			a, err := Random(rand.Reader, curveQ)
			require.NoError(t, err)
			if a.IsZero() {
				continue
			}
			inv, err := Inverse(a, curveQ)
			require.NoError(t, err)
			assert.True(t, inv.Sign() >= 0 && inv.Cmp(curveQ) < 0)
			prod, _ := MulMod(a, inv, curveQ)
			assert.True(t, prod.Equal(One))
		}
	})

	t.Run("does not exist", func(t *testing.T) {
		_, err := Inverse(Zero, New(7))
		assert.ErrorIs(t, err, ErrModularInverseDoesNotExist)

		_, err = Inverse(New(6), New(9))
		assert.ErrorIs(t, err, ErrModularInverseDoesNotExist)

		_, err = Inverse(curveQ, curveQ)
		assert.ErrorIs(t, err, ErrModularInverseDoesNotExist)

		_, err = Inverse(New(-6), New(9))
		assert.ErrorIs(t, err, ErrModularInverseDoesNotExist)
	})

	t.Run("invalid modulus", func(t *testing.T) {
		_, err := Inverse(New(3), Zero)
		assert.ErrorIs(t, err, ErrInvalidModulus)
		_, err = Inverse(New(3), New(-7))
		assert.ErrorIs(t, err, ErrInvalidModulus)
	})
}

func TestPow(t *testing.T) {
	r, err := Pow(New(2), New(10), New(1000))
	require.NoError(t, err)
	assert.Equal(t, "24", r.String())

	r, err = Pow(New(5), Zero, New(13))
	require.NoError(t, err)
	assert.Equal(t, "1", r.String())

	r, err = Pow(New(5), Zero, One)
	require.NoError(t, err)
	assert.Equal(t, "0", r.String())

	r, err = Pow(New(-2), New(3), New(7))
	require.NoError(t, err)
	// -8 mod 7
	assert.Equal(t, "6", r.String())

	_, err = Pow(New(2), New(-1), New(7))
	assert.ErrorIs(t, err, ErrNegativeExponent)

	// Fermat: a^(q-1) ≡ 1
	r, err = Pow(New(123456789), curveQ.Sub(One), curveQ)
	require.NoError(t, err)
	assert.True(t, r.Equal(One))
}

func TestChi(t *testing.T) {
	t.Run("q = 7", func(t *testing.T) {
		q := New(7)
		cases := map[int64]int64{0: 0, 16: 1, 17: 6, -1: 6}
		for in, want := range cases {
			got, err := Chi(New(in), q)
			require.NoError(t, err)
			assert.Equal(t, want, got.Big().Int64(), "chi(%d)", in)
		}
	})

	t.Run("q = 2^61 - 1", func(t *testing.T) {
		q := MustFromHex("1fffffffffffffff")
		qm1 := q.Sub(One)
		square := MustFromHex("3626229738a3b9") // 0x75bcd15^2

		got, _ := Chi(Zero, q)
		assert.True(t, got.IsZero())

		got, _ = Chi(square, q)
		assert.True(t, got.Equal(One))

		got, _ = Chi(square.Neg(), q)
		assert.True(t, got.Equal(qm1))

		got, _ = Chi(New(-1), q)
		assert.True(t, got.Equal(qm1))

		got, _ = Chi(MustFromHex("3626229738A3B8"), q)
		assert.True(t, got.Equal(qm1))

		// chi(st) = chi(s)chi(t)
		s := square
		u := MustFromHex("734CC30B14564B142BFAFAAF70")
		st, _ := Chi(s.Mul(u), q)
		cs, _ := Chi(s, q)
		cu, _ := Chi(u, q)
		prod, _ := MulMod(cs, cu, q)
		assert.True(t, st.Equal(prod))
	})

	t.Run("curve modulus", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			k, err := Random(rand.Reader, curveQ)
			require.NoError(t, err)
			if k.IsZero() {
				continue
			}
			sq, _ := MulMod(k, k, curveQ)
			got, err := Chi(sq, curveQ)
			require.NoError(t, err)
			assert.True(t, got.Equal(One))

			// q ≡ 3 (mod 4) so -1 is a non-residue and -k^2 is one too.
			got, err = Chi(sq.Neg(), curveQ)
			require.NoError(t, err)
			assert.True(t, got.Equal(curveQ.Sub(One)))
		}
		got, _ := Chi(Zero, curveQ)
		assert.True(t, got.IsZero())
	})
}

func TestModularHelpers(t *testing.T) {
	p := New(11)
	r, _ := AddMod(New(7), New(9), p)
	assert.Equal(t, "5", r.String())
	r, _ = SubMod(New(3), New(9), p)
	assert.Equal(t, "5", r.String())
	r, _ = MulMod(New(7), New(9), p)
	assert.Equal(t, "8", r.String())
	r, err := DivMod(New(8), New(9), p)
	require.NoError(t, err)
	assert.Equal(t, "7", r.String())

	_, err = DivMod(One, New(22), p)
	assert.ErrorIs(t, err, ErrModularInverseDoesNotExist)
}
