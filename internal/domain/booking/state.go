package booking

import (
	"errors"
	"strings"
)

var ErrUnknownState = errors.New("unknown state")

// State names a listing bucket.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState accepts bucket names case-insensitively; empty means ALL.
func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	state := State(strings.ToUpper(s))
	if _, ok := criteriaByState[state]; !ok {
		return "", ErrUnknownState
	}
	return state, nil
}

// Role selects whose bookings are listed.
type Role string

const (
	RoleBooker Role = "BOOKER"
	RoleOwner  Role = "OWNER"
)

type Predicate int

const (
	PredicateNone Predicate = iota
	PredicateEndedBefore
	PredicateStartsAfter
	PredicateSpans
	PredicateStatus
)

// Criteria is the filter and createdAt ordering for one bucket.
type Criteria struct {
	Predicate Predicate
	Status    Status
	Ascending bool
}

var criteriaByState = map[State]Criteria{
	StateAll:      {Predicate: PredicateNone},
	StatePast:     {Predicate: PredicateEndedBefore},
	StateFuture:   {Predicate: PredicateStartsAfter},
	StateCurrent:  {Predicate: PredicateSpans, Ascending: true},
	StateWaiting:  {Predicate: PredicateStatus, Status: StatusWaiting},
	StateRejected: {Predicate: PredicateStatus, Status: StatusRejected},
}

func (s State) Criteria() Criteria {
	return criteriaByState[s]
}
