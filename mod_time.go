package tidefall

import (
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration
}

// DtSeconds returns the last frame delta as float seconds, clamped so a
// stall (debugger, window drag) cannot produce a huge simulation jump.
func (t *Time) DtSeconds() float32 {
	const maxStep = 0.1
	dt := float32(t.Dt.Seconds())
	if dt > maxStep {
		return maxStep
	}
	return dt
}

// TimeModule tracks wall-clock frame deltas. A non-zero FixedStep
// replaces measured time with a constant delta, which keeps headless
// runs deterministic.
type TimeModule struct {
	FixedStep time.Duration
}

func (mod TimeModule) Install(app *App) {
	app.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	if mod.FixedStep > 0 {
		step := mod.FixedStep
		app.UseSystem(System(func(timeResource *Time) {
			timeResource.Dt = step
			timeResource.Time = timeResource.Time.Add(step)
		}).InStage(PreUpdate))
		return
	}
	app.UseSystem(System(timeSystem).InStage(PreUpdate))
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
}
