// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"time"
)

// Op names a session operation in logs, metrics and latency tables
type Op string

const (
	OpRegister      Op = "register"
	OpLogin         Op = "login"
	OpLoginProvider Op = "login_provider"
	OpLogout        Op = "logout"
	OpVerify        Op = "verify_identity"
	OpUpdateProfile Op = "update_profile"
	OpPasswordReset Op = "password_reset"
	OpConfirmVote   Op = "confirm_vote"
)

// Latency is the simulated delay per operation
type Latency map[Op]time.Duration

// DefaultLatency mimics a slow remote backend
var DefaultLatency = Latency{
	OpRegister:      1500 * time.Millisecond,
	OpLogin:         1000 * time.Millisecond,
	OpLoginProvider: 1000 * time.Millisecond,
	OpLogout:        500 * time.Millisecond,
	OpVerify:        2000 * time.Millisecond,
	OpUpdateProfile: 1000 * time.Millisecond,
	OpPasswordReset: 1000 * time.Millisecond,
	OpConfirmVote:   1500 * time.Millisecond,
}

// wait blocks for op's delay. A cancelled ctx ends the wait with its error,
// before the operation has had any effect.
func (l Latency) wait(ctx context.Context, op Op) error {
	d := l[op]
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
