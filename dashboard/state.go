package dashboard

import "github.com/yitech/klineterm/model/candle"

// Phase is the controller's position in the refresh cycle.
type Phase int

const (
	Idle Phase = iota
	Fetching
	Rendered
	Quitting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Rendered:
		return "rendered"
	case Quitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// State is the dashboard's control state. It is owned by a single Model and
// never shared.
type State struct {
	Phase            Phase
	QuitRequested    bool
	RefreshRequested bool
	LastResponse     *candle.MarketResponse
	LastErr          error

	Symbol   string
	Interval string
}

// NewState returns an Idle state with a refresh pending, so the first cycle
// always fetches.
func NewState(symbol, interval string) State {
	return State{
		Phase:            Idle,
		RefreshRequested: true,
		Symbol:           symbol,
		Interval:         interval,
	}
}

// RequestRefresh marks a refresh as pending. It is a no-op while a fetch is
// in flight or after quit.
func (s *State) RequestRefresh() {
	if s.Phase == Fetching || s.Phase == Quitting {
		return
	}
	s.RefreshRequested = true
}

// BeginFetch enters Fetching when a refresh is pending and reports whether
// the caller must start a fetch. At most one fetch is ever in flight.
func (s *State) BeginFetch() bool {
	if s.Phase == Fetching || s.Phase == Quitting || !s.RefreshRequested {
		return false
	}
	s.Phase = Fetching
	return true
}

// Complete records the outcome of the in-flight fetch. On failure the
// previous response is kept and the state returns to Idle.
func (s *State) Complete(resp *candle.MarketResponse, err error) {
	if s.Phase != Fetching {
		return
	}
	s.RefreshRequested = false
	if err != nil {
		s.Phase = Idle
		s.LastErr = err
		return
	}
	s.Phase = Rendered
	s.LastResponse = resp
	s.LastErr = nil
}

// Quit moves to Quitting from any phase.
func (s *State) Quit() {
	s.QuitRequested = true
	s.Phase = Quitting
}
