package kafka

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/kafka-go"
)

func TestReaderConfig_StartOffset(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]int64{
		"first":     kafka.FirstOffset,
		" FiRsT \n": kafka.FirstOffset,
		"\tFIRST\t": kafka.FirstOffset,
		"":          kafka.LastOffset,
		"last":      kafka.LastOffset,
		"earliest":  kafka.LastOffset,
	} {
		cfg := ConsumerConfig{StartOffset: raw}
		if got := cfg.ReaderConfig().StartOffset; got != want {
			t.Errorf("StartOffset(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestReaderConfig_ManualCommit(t *testing.T) {
	cfg := ConsumerConfig{
		Brokers: []string{"k1:9092", "k2:9092"},
		Topic:   "product-compliance",
		GroupID: "carb-catalog",
	}

	rc := cfg.ReaderConfig()
	type view struct {
		Brokers        []string
		Topic, GroupID string
		CommitInterval time.Duration
	}
	got := view{rc.Brokers, rc.Topic, rc.GroupID, rc.CommitInterval}
	want := view{cfg.Brokers, "product-compliance", "carb-catalog", 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reader config mismatch (-want +got):\n%s", diff)
	}
}

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   ConsumerConfig
		want [3]time.Duration // process, retry initial, retry max
	}{
		{
			name: "zero values",
			want: [3]time.Duration{defaultProcessTimeout, defaultRetryInitial, defaultRetryMax},
		},
		{
			name: "explicit values kept",
			in:   ConsumerConfig{ProcessTimeout: time.Second, RetryInitial: 100 * time.Millisecond, RetryMax: 2 * time.Second},
			want: [3]time.Duration{time.Second, 100 * time.Millisecond, 2 * time.Second},
		},
		{
			name: "max below initial is raised",
			in:   ConsumerConfig{RetryInitial: 3 * time.Second, RetryMax: time.Second},
			want: [3]time.Duration{defaultProcessTimeout, 3 * time.Second, 3 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.in.withDefaults()
			got := [3]time.Duration{out.ProcessTimeout, out.RetryInitial, out.RetryMax}
			if got != tt.want {
				t.Fatalf("withDefaults() = %v, want %v", got, tt.want)
			}
		})
	}
}
