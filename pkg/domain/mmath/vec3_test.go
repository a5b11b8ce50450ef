// 指示: miu200521358
package mmath

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-1, 0.5, 2)

	assert.Equal(t, NewVec3(0, 2.5, 5), a.Added(b))
	assert.Equal(t, NewVec3(2, 1.5, 1), a.Subed(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.MuledScalar(2))
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-12)

	// 値型なので元のベクトルは変わらない
	assert.Equal(t, NewVec3(1, 2, 3), a)
}

func TestVec3Normalized(t *testing.T) {
	n, err := NewVec3(0, 3, 4).Normalized()
	require.NoError(t, err)
	assert.True(t, n.NearEquals(NewVec3(0, 0.6, 0.8), 1e-12), "got=%v", n)
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
}

func TestVec3NormalizedFailsForDegenerate(t *testing.T) {
	for _, v := range []Vec3{ZERO_VEC3, NewVec3(1e-9, 0, 0)} {
		_, err := v.Normalized()
		require.Error(t, err)

		var degenerate *merrors.DegenerateVectorError
		assert.True(t, errors.As(err, &degenerate))
		assert.Equal(t, merrors.DegenerateVectorErrorID, merrors.ExtractErrorID(err))
	}
}

func TestNewVec3FromSlice(t *testing.T) {
	v, err := NewVec3FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, NewVec3(1, 2, 3), v)
	assert.Equal(t, []float64{1, 2, 3}, v.Slice())

	_, err = NewVec3FromSlice([]float64{1, 2})
	assert.Error(t, err)
}

func TestQuaternionRotatesAroundX(t *testing.T) {
	q := NewQuaternionFromAxisAngle(UNIT_X_VEC3, -math.Pi/2)

	rotated := q.MulVec3(UNIT_Z_VEC3)
	assert.True(t, rotated.NearEquals(UNIT_Y_VEC3, 1e-12), "got=%v", rotated)

	back := q.Inverted().MulVec3(rotated)
	assert.True(t, back.NearEquals(UNIT_Z_VEC3, 1e-12), "got=%v", back)

	assert.True(t, q.Muled(q.Inverted()).IsIdent(1e-12))
}

func TestQuaternionNearEqualsTreatsNegatedAsSame(t *testing.T) {
	q := NewQuaternionFromAxisAngle(UNIT_X_VEC3, math.Pi/3)
	x, y, z, w := q.Values()
	negated := NewQuaternionByValues(-x, -y, -z, -w)

	assert.True(t, q.NearEquals(negated, 1e-12))
}
