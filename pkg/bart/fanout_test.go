package bart

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOutKeepsOrder(t *testing.T) {
	inputs := []string{"embr", "mont", "powl", "civc", "16th", "24th", "glen", "balb", "daly", "colm"}

	results, err := FanOut(context.Background(), inputs, func(ctx context.Context, abbr string) (string, error) {
		time.Sleep(time.Duration(abbr[0]%5) * time.Millisecond)
		return strings.ToUpper(abbr), nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"EMBR", "MONT", "POWL", "CIVC", "16TH", "24TH", "GLEN", "BALB", "DALY", "COLM"}, results)
}

func TestFanOutError(t *testing.T) {
	failure := errors.New("boom")

	results, err := FanOut(context.Background(), []int{1, 2, 3}, func(ctx context.Context, n int) (int, error) {
		if n == 2 {
			return 0, failure
		}
		return n * 10, nil
	})

	assert.ErrorIs(t, err, failure)
	assert.Nil(t, results)
}

func TestFanOutEmpty(t *testing.T) {
	results, err := FanOut(context.Background(), nil, func(ctx context.Context, n int) (int, error) {
		return n, nil
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}
