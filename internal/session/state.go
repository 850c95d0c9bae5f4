package session

import (
	"fmt"
	"time"

	"github.com/MrSnakeDoc/restdemo/internal/domain"
)

// Phase names the active variant of a State.
type Phase int

const (
	Initial Phase = iota
	Loading
	Success
	Error
)

func (p Phase) String() string {
	switch p {
	case Initial:
		return "initial"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is one of Initial, Loading, Success(record) or Error(message). The payload
// accessors only report ok for the variant that carries them.
type State struct {
	phase   Phase
	record  domain.Record
	message string
	at      time.Time
}

func (s State) Phase() Phase { return s.phase }

// Record returns the fetched record when the phase is Success.
func (s State) Record() (domain.Record, bool) {
	if s.phase != Success {
		return domain.Record{}, false
	}
	return s.record, true
}

// Message returns the failure diagnostic when the phase is Error.
func (s State) Message() (string, bool) {
	if s.phase != Error {
		return "", false
	}
	return s.message, true
}

// At is when the state was entered. Zero for Initial.
func (s State) At() time.Time { return s.at }

func (s State) String() string {
	switch s.phase {
	case Initial, Loading:
		return s.phase.String()
	case Success:
		return fmt.Sprintf("success(%s)", s.record.ID)
	case Error:
		return fmt.Sprintf("error(%s)", s.message)
	default:
		panic(fmt.Sprintf("session: unknown phase %d", int(s.phase)))
	}
}
