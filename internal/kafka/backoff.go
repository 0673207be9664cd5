package kafka

import (
	"context"
	"math/rand"
	"time"
)

// backoff: экспоненциальная задержка (x2 до max) с equal jitter:
// половина интервала фиксирована, вторая половина случайна.
// Не потокобезопасен, принадлежит одному циклу Run.
type backoff struct {
	initial  time.Duration
	maxDelay time.Duration
	current  time.Duration
	rnd      *rand.Rand
}

func newBackoff(initial, maxDelay time.Duration, seed int64) *backoff {
	return &backoff{
		initial:  initial,
		maxDelay: maxDelay,
		current:  initial,
		rnd:      rand.New(rand.NewSource(seed)),
	}
}

// Next: задержка для текущей попытки; следующий интервал удваивается.
func (b *backoff) Next() time.Duration {
	d := b.jitter(b.current)
	b.current = min(b.current*2, b.maxDelay)
	return d
}

// Reset: вернуться к начальному интервалу после успешной операции.
func (b *backoff) Reset() { b.current = b.initial }

func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// sleepCtx: пауза d; false, если контекст отменён раньше.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
