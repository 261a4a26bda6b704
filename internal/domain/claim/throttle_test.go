//go:build unit

package claim_test

import (
	"testing"
	"time"

	"bonojuntos/internal/domain/claim"

	"github.com/stretchr/testify/assert"
)

func TestShouldAccept(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	cases := []struct {
		name     string
		lastScan time.Time
		at       time.Time
		want     bool
	}{
		{name: "first scan always accepts", lastScan: time.Time{}, at: now, want: true},
		{name: "inside cooldown rejects", lastScan: now, at: now.Add(time.Second), want: false},
		{name: "exactly at cooldown accepts", lastScan: now, at: now.Add(2 * time.Second), want: true},
		{name: "past cooldown accepts", lastScan: now, at: now.Add(3 * time.Second), want: true},
		{name: "same instant rejects", lastScan: now, at: now, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := claim.ShouldAccept(tc.lastScan, tc.at, claim.DefaultScanCooldown)
			assert.Equal(t, tc.want, got)
		})
	}
}
