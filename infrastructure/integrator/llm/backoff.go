package llm

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Delay calcula o tempo de espera antes da próxima tentativa: usa a dica
// do servidor quando presente, senão base * 2^attempt + jitter aleatório
func Delay(attempt int, base time.Duration, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}

	exponential := float64(base) * math.Pow(2, float64(attempt))
	jitter := rand.Float64() * float64(base)
	return time.Duration(exponential + jitter)
}

// Sleep aguarda o delay respeitando o cancelamento do contexto
func Sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
