// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-22
// Last Modified: 2026-08-29

package sprint

import (
	"errors"
	"fmt"
)

// ErrNoMilestones indicates the repository has no open milestones to start
// a sprint against. Fatal: there is nothing to select.
var ErrNoMilestones = errors.New("no open milestones available")

// VerificationError indicates a mutating tracker call succeeded but the
// returned state does not reflect the change. Reported to the user and the
// session continues, so the same ticket can be retried.
type VerificationError struct {
	Action string
	Detail string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s verification failed: %s", e.Action, e.Detail)
}
