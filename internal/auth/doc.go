// Package auth implements the login gate in front of the registration desk.
//
// A Gate compares a username (plain text) and a password (in hashed form)
// against a single configured Credential. Consecutive failures are counted;
// reaching the threshold locks the gate for a fixed duration. The lock is
// lifted by a scheduled callback, so the gate unlocks on time even if nobody
// tries to log in again.
//
//	Unlocked --(N-th consecutive failure)--> Locked --(lock duration)--> Unlocked
//
// A successful check resets the counter. Timers come from a clock.Clock so
// tests can drive the lockout with clock.Fake.
package auth
