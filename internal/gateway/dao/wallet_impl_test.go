package dao

import (
	"context"
	"errors"
	"testing"

	"poolflow-gateway/internal/gateway/config"
)

func TestGetMetricsRejectsInvalidSlug(t *testing.T) {
	d := NewWalletDAO(&config.Config{}, nil)

	for _, slug := range []string{"", "Bad", "a-b", `x";drop table y`} {
		if _, err := d.GetMetrics(context.Background(), slug); !errors.Is(err, ErrInvalidPoolSlug) {
			t.Errorf("GetMetrics(%q) err = %v, want ErrInvalidPoolSlug", slug, err)
		}
	}
}

func TestGetTopWalletsRejectsInvalidSlug(t *testing.T) {
	d := NewWalletDAO(&config.Config{}, nil)

	if _, err := d.GetTopWallets(context.Background(), "sol usdc"); !errors.Is(err, ErrInvalidPoolSlug) {
		t.Errorf("err = %v, want ErrInvalidPoolSlug", err)
	}
}
