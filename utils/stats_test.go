package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentileNearestRank(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	assert.Equal(t, 20.0, Percentile(values, 0.25))
	assert.Equal(t, 30.0, Percentile(values, 0.50))
	assert.Equal(t, 40.0, Percentile(values, 0.75))
	assert.Equal(t, 10.0, Percentile(values, 0.0))
	assert.Equal(t, 50.0, Percentile(values, 1.0))
}

func TestPercentileEmptyAndSingle(t *testing.T) {
	assert.Equal(t, 0.0, Percentile(nil, 0.5))
	assert.Equal(t, 0.0, Percentile([]float64{}, 0.75))
	assert.Equal(t, 42.0, Percentile([]float64{42}, 0.25))
	assert.Equal(t, 42.0, Percentile([]float64{42}, 0.99))
}

func TestPercentileOrderIndependent(t *testing.T) {
	values := []float64{14.99, 89.0, 23.5, 41.0, 8.75, 55.2, 19.99, 30.0}

	q1 := Percentile(values, 0.25)
	q2 := Percentile(values, 0.50)
	q3 := Percentile(values, 0.75)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]float64, len(values))
		copy(shuffled, values)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, q1, Percentile(shuffled, 0.25))
		assert.Equal(t, q2, Percentile(shuffled, 0.50))
		assert.Equal(t, q3, Percentile(shuffled, 0.75))
	}
}

func TestPercentileDoesNotMutateInput(t *testing.T) {
	values := []float64{5, 1, 3}
	Percentile(values, 0.5)
	assert.Equal(t, []float64{5, 1, 3}, values)
}
