package collector

import "testing"

func TestUsageFromDelta(t *testing.T) {
	tests := []struct {
		name string
		cur  cpuCounters
		want int
	}{
		{
			name: "mixed load",
			cur:  cpuCounters{User: 100, System: 50, Idle: 800, Iowait: 50},
			want: 15,
		},
		{
			name: "fully idle",
			cur:  cpuCounters{Idle: 500, Iowait: 500},
			want: 0,
		},
		{
			name: "fully busy",
			cur:  cpuCounters{User: 600, System: 300, Irq: 50, Softirq: 25, Steal: 25},
			want: 100,
		},
		{
			name: "iowait counts as idle",
			cur:  cpuCounters{User: 250, Iowait: 750},
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usageFromDelta(cpuCounters{}, tt.cur)
			if got != tt.want {
				t.Errorf("usageFromDelta() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUsageFromDeltaZeroTotal(t *testing.T) {
	same := cpuCounters{User: 100, Idle: 900}
	if got := usageFromDelta(same, same); got != 0 {
		t.Errorf("zero total delta should yield 0, got %d", got)
	}
}

func TestUsageFromDeltaBounds(t *testing.T) {
	prev := cpuCounters{User: 10, Idle: 90}
	curs := []cpuCounters{
		{User: 11, Idle: 90},
		{User: 10, Idle: 91},
		{User: 500, Idle: 90},
		{User: 10, Idle: 5000},
	}
	for _, cur := range curs {
		got := usageFromDelta(prev, cur)
		if got < 0 || got > 100 {
			t.Errorf("usageFromDelta(%+v) = %d, out of [0,100]", cur, got)
		}
	}
}
