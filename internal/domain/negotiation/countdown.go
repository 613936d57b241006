package negotiation

import "time"

const (
	ReservationWindow = 48 * time.Hour
	WarningThreshold  = 24 * time.Hour
)

type Countdown struct {
	StartedAt time.Time
	Deadline  time.Time
}

func CountdownFrom(acceptedAt time.Time) Countdown {
	return Countdown{StartedAt: acceptedAt, Deadline: acceptedAt.Add(ReservationWindow)}
}

// Remaining is deadline - now, floored at zero.
func Remaining(now, deadline time.Time) time.Duration {
	d := deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

func (c Countdown) Remaining(now time.Time) time.Duration {
	return Remaining(now, c.Deadline)
}

func (c Countdown) Expired(now time.Time) bool {
	return !now.Before(c.Deadline)
}

// Warning is true during the last WarningThreshold before the deadline.
func (c Countdown) Warning(now time.Time) bool {
	r := c.Remaining(now)
	return r > 0 && r <= WarningThreshold
}

func (c Countdown) WarningAt() time.Time {
	return c.Deadline.Add(-WarningThreshold)
}
