package router

import (
	"context"

	"github.com/JanieKaren/yeschef-cli/internal/logging"
)

// Session is the slice of the session store the guard reads.
type Session interface {
	IsInitialized() bool
	IsAuthenticated() bool
	Initialize(ctx context.Context)
}

// Decision is the guard's verdict on one route transition.
type Decision int

const (
	Proceed Decision = iota
	RedirectLogin
	RedirectHome
	RedirectLanding
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case RedirectLogin:
		return "redirect-to-login"
	case RedirectHome:
		return "redirect-to-home"
	case RedirectLanding:
		return "redirect-to-landing"
	}
	return "unknown"
}

// Guard gates every route transition. It holds no route-to-route memory;
// the decision is a function of the target's classification and the current
// session state.
type Guard struct {
	session Session
	log     logging.Logger

	// redirectAuthenticated bounces authenticated sessions off guest-only
	// routes. Policy, not contract: the original behavior varies.
	redirectAuthenticated bool

	// anonymousRedirect is where anonymous sessions land when a route needs
	// authentication. Login by default; one variant sends them to landing.
	anonymousRedirect Decision
}

type GuardOption func(*Guard)

// WithRedirectAuthenticated controls whether authenticated users are
// redirected home from guest-only routes.
func WithRedirectAuthenticated(v bool) GuardOption {
	return func(g *Guard) { g.redirectAuthenticated = v }
}

// WithAnonymousRedirect overrides where anonymous sessions are sent from
// auth-required routes.
func WithAnonymousRedirect(d Decision) GuardOption {
	return func(g *Guard) { g.anonymousRedirect = d }
}

func NewGuard(session Session, log logging.Logger, opts ...GuardOption) *Guard {
	g := &Guard{
		session:               session,
		log:                   log,
		redirectAuthenticated: true,
		anonymousRedirect:     RedirectLogin,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Decide gates the transition from current to target.
//
// Public and unrestricted targets proceed immediately. Everything else first
// triggers lazy session initialization; navigation is never blocked by an
// initialization failure, since Initialize always resolves to a well-defined
// state. Guest-only targets bounce authenticated sessions home (when the
// policy says so) and auth-required targets bounce anonymous sessions to
// login.
func (g *Guard) Decide(ctx context.Context, target, current Route) Decision {
	if target.Access == AccessPublic || target.Access == AccessUnrestricted {
		return Proceed
	}

	if !g.session.IsInitialized() {
		g.session.Initialize(ctx)
	}

	switch target.Access {
	case AccessGuestOnly:
		if g.redirectAuthenticated && g.session.IsAuthenticated() {
			g.log.Debug(ctx, "guard: authenticated session on guest route",
				"from", current.Name, "to", target.Name)
			return RedirectHome
		}
	case AccessRequiresAuth:
		if !g.session.IsAuthenticated() {
			g.log.Debug(ctx, "guard: anonymous session on protected route",
				"from", current.Name, "to", target.Name)
			return g.anonymousRedirect
		}
	}

	return Proceed
}
