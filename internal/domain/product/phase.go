package product

import "limited-drop-api/internal/pkg/errs"

var (
	ErrInvalidPhase           = errs.New("invalid phase")
	ErrInvalidPhaseTransition = errs.New("invalid phase transition")
)

type Phase string

const (
	PhaseDraft     Phase = "draft"
	PhaseWaitlist  Phase = "waitlist"
	PhaseOriginals Phase = "originals"
	PhaseEcho      Phase = "echo"
	PhasePress     Phase = "press"
	PhaseEnded     Phase = "ended"
)

// Default caps used when a product has no phase config row for the phase.
const (
	DefaultOriginalsCap = 100
	DefaultEchoCap      = 150
	DefaultPressCap     = 10
)

// Allowed forward transitions. Any non-terminal phase may also move to ended.
var transitions = map[Phase][]Phase{
	PhaseDraft:     {PhaseWaitlist},
	PhaseWaitlist:  {PhaseOriginals},
	PhaseOriginals: {PhaseEcho, PhasePress},
	PhaseEcho:      {PhasePress},
	PhasePress:     {PhaseEcho},
}

func (p Phase) String() string {
	return string(p)
}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseDraft, PhaseWaitlist, PhaseOriginals, PhaseEcho, PhasePress, PhaseEnded:
		return true
	default:
		return false
	}
}

func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.IsValid() {
		return "", ErrInvalidPhase
	}
	return p, nil
}

func (p Phase) IsTerminal() bool {
	return p == PhaseEnded
}

// IsCheckoutPhase reports whether regular checkout may allocate stock in p.
func (p Phase) IsCheckoutPhase() bool {
	return p == PhaseOriginals || p == PhaseEcho
}

// CapPhase is the phase whose max quantity governs allocation while in p.
// The waitlist shares the originals allocation.
func (p Phase) CapPhase() Phase {
	if p == PhaseWaitlist {
		return PhaseOriginals
	}
	return p
}

func DefaultCap(p Phase) int {
	switch p.CapPhase() {
	case PhaseEcho:
		return DefaultEchoCap
	case PhasePress:
		return DefaultPressCap
	default:
		return DefaultOriginalsCap
	}
}

func CanTransition(from, to Phase) bool {
	if !from.IsValid() || !to.IsValid() || from == to || from.IsTerminal() {
		return false
	}
	if to == PhaseEnded {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidateTransition(from, to Phase) error {
	if !CanTransition(from, to) {
		return errs.Wrap(ErrInvalidPhaseTransition, string(from)+" -> "+string(to))
	}
	return nil
}
