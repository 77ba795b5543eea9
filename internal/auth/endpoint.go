package auth

import (
	"fmt"
)

// AccessMode classifies which server access path a request takes.
type AccessMode int

const (
	// AccessIntegration targets the integration endpoint, scoped to a
	// collective and optionally guarded by basic or header credentials.
	AccessIntegration AccessMode = iota
	// AccessSource targets the open endpoint of a configured source.
	AccessSource
	// AccessSession targets the secured endpoint using a login session.
	AccessSession
)

func (m AccessMode) String() string {
	switch m {
	case AccessIntegration:
		return "integration"
	case AccessSource:
		return "source"
	default:
		return "session"
	}
}

// EndpointOpts are the raw options of upload-like commands, before
// validation.
type EndpointOpts struct {
	// Basic is the username:password pair for integration basic auth.
	Basic *NameVal

	// Header is the Header:Value pair for integration header auth.
	Header *NameVal

	// Integration selects the integration endpoint.
	Integration bool

	// Collective the integration request is scoped to.
	Collective string

	// Source overrides the configured default source id.
	Source string
}

// EndpointSelection is the validated, classified outcome. Exactly one
// access path applies, with the credential that path uses.
type EndpointSelection struct {
	Mode       AccessMode
	Credential Credential
	Collective string
	SourceID   string
}

// Select validates the option combination and classifies it. The rules
// are checked in order and the first violation wins:
//
//  1. --basic and --header are mutually exclusive.
//  2. The integration endpoint requires --collective and forbids
//     --source.
//  3. --basic/--header apply only to the integration endpoint.
//  4. The effective source id is the --source flag, else the configured
//     default; with neither, a session is required.
//
// No I/O happens here; hasSession is resolved by the caller.
func (o EndpointOpts) Select(defaultSourceID string, hasSession bool) (EndpointSelection, error) {
	if o.Basic != nil && o.Header != nil {
		return EndpointSelection{}, fmt.Errorf("ambiguous credential: --basic and --header are mutually exclusive")
	}

	if o.Integration {
		if o.Collective == "" {
			return EndpointSelection{}, fmt.Errorf("collective required for integration endpoint")
		}
		if o.Source != "" {
			return EndpointSelection{}, fmt.Errorf("--source cannot be used with the integration endpoint")
		}
		cred := Anonymous()
		switch {
		case o.Basic != nil:
			cred = BasicAuth(*o.Basic)
		case o.Header != nil:
			cred = HeaderAuth(*o.Header)
		}
		return EndpointSelection{
			Mode:       AccessIntegration,
			Credential: cred,
			Collective: o.Collective,
		}, nil
	}

	if o.Basic != nil || o.Header != nil {
		return EndpointSelection{}, fmt.Errorf("--basic and --header apply only to the integration endpoint (use --integration)")
	}

	sourceID := o.Source
	if sourceID == "" {
		sourceID = defaultSourceID
	}
	if sourceID != "" {
		return EndpointSelection{Mode: AccessSource, SourceID: sourceID}, nil
	}

	if !hasSession {
		return EndpointSelection{}, fmt.Errorf("no source id given or configured and not logged in")
	}
	return EndpointSelection{Mode: AccessSession}, nil
}
