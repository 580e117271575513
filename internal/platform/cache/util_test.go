package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNextRefresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "mid interval",
			now:  time.Date(2025, 6, 2, 10, 2, 30, 0, time.UTC),
			want: 2*time.Minute + 30*time.Second,
		},
		{
			name: "exactly on a boundary waits a full interval",
			now:  time.Date(2025, 6, 2, 10, 5, 0, 0, time.UTC),
			want: 5 * time.Minute,
		},
		{
			name: "one second before a boundary",
			now:  time.Date(2025, 6, 2, 10, 9, 59, 0, time.UTC),
			want: time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TimeUntilNextRefresh(tt.now); got != tt.want {
				t.Errorf("TimeUntilNextRefresh(%v) = %v, expected %v", tt.now, got, tt.want)
			}
		})
	}
}
