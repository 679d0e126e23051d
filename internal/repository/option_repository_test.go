package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOptionRepository_ScanKeys_CapsAtLimit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	stored := []string{
		"option:BTC-30JUN24-40000-C",
		"option:BTC-30JUN24-40000-P",
		"option:BTC-30JUN24-50000-C",
		"option:BTC-30JUN24-50000-P",
		"option:BTC-27SEP24-60000-C",
	}
	mock.ExpectScan(0, "option:BTC-*", 100).SetVal(stored, 0)

	repo := NewOptionRepository(rdb, zap.NewNop())
	keys, err := repo.ScanKeys(context.Background(), "btc", 3)

	require.NoError(t, err)
	assert.Equal(t, stored[:3], keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionRepository_ScanKeys_FollowsCursor(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	mock.ExpectScan(0, "option:ETH-*", 100).SetVal([]string{"option:ETH-30JUN24-2800-C"}, 7)
	mock.ExpectScan(7, "option:ETH-*", 100).SetVal([]string{"option:ETH-30JUN24-2800-P"}, 0)

	repo := NewOptionRepository(rdb, zap.NewNop())
	keys, err := repo.ScanKeys(context.Background(), "ETH", 0)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"option:ETH-30JUN24-2800-C",
		"option:ETH-30JUN24-2800-P",
	}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOptionRepository_ScanKeys_StoreError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	mock.ExpectScan(0, "option:BTC-*", 100).SetErr(errors.New("connection refused"))

	repo := NewOptionRepository(rdb, zap.NewNop())
	_, err := repo.ScanKeys(context.Background(), "BTC", 10)

	assert.Error(t, err)
}

func TestOptionRepository_GetFields(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	stored := map[string]string{
		"last_price": "0.05",
		"volume_24h": "120.5",
	}
	mock.ExpectHGetAll("option:BTC-30JUN24-40000-C").SetVal(stored)

	repo := NewOptionRepository(rdb, zap.NewNop())
	fields, err := repo.GetFields(context.Background(), "option:BTC-30JUN24-40000-C")

	require.NoError(t, err)
	assert.Equal(t, stored, fields)
}

func TestFieldFloat(t *testing.T) {
	t.Parallel()

	fields := map[string]string{
		"last_price": "0.0525",
		"volume_24h": "",
		"delta":      "not-a-number",
		"theta":      "-0.8",
	}

	tests := []struct {
		name     string
		field    string
		expected float64
	}{
		{"valid value", "last_price", 0.0525},
		{"empty value", "volume_24h", 0},
		{"malformed value", "delta", 0},
		{"negative value", "theta", -0.8},
		{"missing field", "gamma", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FieldFloat(fields, tt.field))
		})
	}
}
