package auth

// Resolver decides which credential applies to the current invocation.
//
// A session value supplied directly (the --session flag or the
// DSC_SESSION environment variable) is used verbatim and the session
// store is never touched; this is the non-interactive bypass for CI
// use. Otherwise the store is consulted for a token bound to the
// server URL.
type Resolver struct {
	// Store is consulted when no direct session override is given.
	Store SessionStore

	// Override is the session token from the --session flag or the
	// DSC_SESSION environment variable, flag winning.
	Override string
}

// Resolve produces the credential for a command that requires a
// session. It returns ErrUnauthenticated when neither an override nor a
// stored session exists.
func (r Resolver) Resolve(serverURL string) (Credential, error) {
	if r.Override != "" {
		return SessionToken(r.Override), nil
	}
	if r.Store != nil {
		if token, ok := r.Store.Load(serverURL); ok {
			return StoredSessionToken(token), nil
		}
	}
	return Credential{}, ErrUnauthenticated
}

// HasSession reports whether Resolve would succeed, without producing
// the credential. The endpoint selector uses this to decide between
// source-based and session-based access.
func (r Resolver) HasSession(serverURL string) bool {
	if r.Override != "" {
		return true
	}
	if r.Store == nil {
		return false
	}
	_, ok := r.Store.Load(serverURL)
	return ok
}
