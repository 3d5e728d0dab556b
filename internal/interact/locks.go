package interact

import "github.com/olivier-w/springcurve/internal/curve"

// session identifies one pointer press; zero means no owner.
type session uint64

// lockTable maps each control point to the pointer session that holds its
// drag lock. A session holds at most one lock and a point has at most one
// owner.
type lockTable struct {
	owner [curve.NumPoints]session
	next  session
}

// begin starts a new pointer session.
func (l *lockTable) begin() session {
	l.next++
	return l.next
}

// acquire gives point i to s unless any lock is already held.
func (l *lockTable) acquire(i int, s session) bool {
	if s == 0 || l.held() {
		return false
	}
	l.owner[i] = s
	return true
}

// release drops every lock owned by s.
func (l *lockTable) release(s session) {
	for i := range l.owner {
		if l.owner[i] == s {
			l.owner[i] = 0
		}
	}
}

// holder returns the point locked, if any.
func (l *lockTable) holder() (int, session, bool) {
	for i, s := range l.owner {
		if s != 0 {
			return i, s, true
		}
	}
	return -1, 0, false
}

func (l *lockTable) held() bool {
	_, _, ok := l.holder()
	return ok
}
