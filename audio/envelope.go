package audio

import "time"

// ramp is a linear level change from one value to another over dur.
type ramp struct {
	from  float64
	to    float64
	start time.Time
	dur   time.Duration
}

func (r ramp) at(now time.Time) float64 {
	if r.dur <= 0 {
		return r.to
	}
	p := float64(now.Sub(r.start)) / float64(r.dur)
	if p <= 0 {
		return r.from
	}
	if p >= 1 {
		return r.to
	}
	return r.from + (r.to-r.from)*p
}

func (r ramp) end() time.Time {
	return r.start.Add(r.dur)
}

func (r ramp) done(now time.Time) bool {
	return r.dur <= 0 || !now.Before(r.end())
}
