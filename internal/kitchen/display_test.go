package kitchen

import (
	"testing"
	"time"

	"table-order/internal/domain"
)

func TestElapsedLabel(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"zero seconds", 0, "Just now"},
		{"under a minute", 59 * time.Second, "Just now"},
		{"exactly one minute", 60 * time.Second, "1 minute ago"},
		{"almost two minutes", 119 * time.Second, "1 minute ago"},
		{"two minutes", 125 * time.Second, "2 minutes ago"},
		{"longer wait", 47 * time.Minute, "47 minutes ago"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ElapsedLabel(now.Add(-tc.elapsed), now)
			if got != tc.want {
				t.Errorf("ElapsedLabel(-%v) = %q, want %q", tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestStatusOptions(t *testing.T) {
	tests := []struct {
		current domain.Status
		want    []domain.Status
	}{
		{domain.StatusPending, []domain.Status{"pending", "preparing", "ready", "served"}},
		{domain.StatusPreparing, []domain.Status{"preparing", "ready", "served"}},
		{domain.StatusReady, []domain.Status{"ready", "served"}},
		{domain.StatusServed, []domain.Status{"served"}},
	}
	for _, tc := range tests {
		got := StatusOptions(tc.current)
		if len(got) != len(tc.want) {
			t.Fatalf("StatusOptions(%s) = %v, want %v", tc.current, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("StatusOptions(%s)[%d] = %s, want %s", tc.current, i, got[i], tc.want[i])
			}
		}
	}
	if got := StatusOptions("unknown"); got != nil {
		t.Errorf("StatusOptions(unknown) = %v, want nil", got)
	}
}
