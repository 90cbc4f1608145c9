package command

import (
	"errors"
	"sync"

	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a user issues commands faster than the
// configured limit allows.
var ErrRateLimited = errors.New("slow down, try again in a moment")

type userLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (u *userLimiters) get(userID string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.limiters[userID]
	if !ok {
		l = rate.NewLimiter(u.limit, u.burst)
		u.limiters[userID] = l
	}
	return l
}

// WithRateLimit throttles command invocations per user. Users are
// independent of each other.
func WithRateLimit(limit rate.Limit, burst int) Middleware {
	ul := &userLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
	return func(c Command) Command {
		return &wrappedCommand{Command: c, wrap: func(ctx interface{}) error {
			if id := invokerID(ctx); id != "" && !ul.get(id).Allow() {
				return ErrRateLimited
			}
			return c.Run(ctx)
		}}
	}
}
