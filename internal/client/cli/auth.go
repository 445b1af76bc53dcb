package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/auth"
	"github.com/dmitrijs2005/driverdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials until the gate accepts them.
//
// Rejected and locked attempts are reported and the prompt repeats; the gate
// keeps the attempt count and the lockout timer. Only an input error, such as
// EOF or the session closing, ends the loop early. The password is wiped
// after every check.
func (a *App) Login(ctx context.Context) error {
	for {
		userName, err := getSimpleText(ctx, a.in, "Enter login", a.out)
		if err != nil {
			return err
		}

		password, err := getPassword(ctx, a.in, a.out)
		if err != nil {
			return err
		}

		outcome := a.gate.Check(ctx, userName, password)
		common.WipeByteArray(password)

		switch outcome {
		case auth.Accepted:
			a.userName = userName
			fmt.Fprintf(a.out, "Welcome, %s!\n", userName)
			return nil
		case auth.Locked:
			left := a.gate.State().LockExpiry.Sub(a.clock.Now()).Round(time.Second)
			if left < time.Second {
				left = time.Second
			}
			fmt.Fprintf(a.out, "Login is blocked. Try again in %s.\n", left)
		default:
			fmt.Fprintln(a.out, "Invalid login or password.")
		}
	}
}
