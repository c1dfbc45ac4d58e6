package risk

import "sync"

// Alert is a one-shot notification fired when the running risk percentage
// first crosses a threshold within a trading day.
type Alert struct {
	Threshold int    `json:"threshold"`
	Zone      Zone   `json:"zone"`
	Message   string `json:"message"`
}

// Monitor tracks, per user and trading day, the highest threshold already
// notified. It fires exactly once per threshold per day no matter how the
// percentage fluctuates, and resets itself when the day key changes.
type Monitor struct {
	mu    sync.Mutex
	state map[uint]*dayState
}

type dayState struct {
	day      string
	notified int
}

func NewMonitor() *Monitor {
	return &Monitor{state: make(map[uint]*dayState)}
}

// Observe records the current risk percentage for a user on the given day key
// and returns the alert to fire, if any. When the percentage jumps across
// several thresholds at once only the highest one fires.
func (m *Monitor) Observe(userID uint, day string, percentage float64) (Alert, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.state[userID]
	if !ok || st.day != day {
		st = &dayState{day: day}
		m.state[userID] = st
	}

	crossed := highestThreshold(percentage)
	if crossed == 0 || crossed <= st.notified {
		return Alert{}, false
	}
	st.notified = crossed

	return Alert{
		Threshold: crossed,
		Zone:      zoneForThreshold(crossed),
		Message:   zoneForThreshold(crossed).Message(),
	}, true
}

// Reset drops all per-day state, used by the start-of-day sweep.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = make(map[uint]*dayState)
}

func highestThreshold(percentage float64) int {
	switch {
	case percentage >= ThresholdStop:
		return ThresholdStop
	case percentage >= ThresholdDanger:
		return ThresholdDanger
	case percentage >= ThresholdCaution:
		return ThresholdCaution
	default:
		return 0
	}
}

func zoneForThreshold(threshold int) Zone {
	switch threshold {
	case ThresholdStop:
		return ZoneStop
	case ThresholdDanger:
		return ZoneDanger
	case ThresholdCaution:
		return ZoneCaution
	default:
		return ZoneSafe
	}
}
