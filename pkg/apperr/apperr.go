package apperr

import "github.com/m-mizutani/goerr/v2"

// Tags classify gateway failures so the HTTP layer can tell "our data layer"
// from "their service" without parsing error strings.
var (
	// TagUpstream marks failures of the external AI service: unreachable,
	// non-success response, or timed out.
	TagUpstream = goerr.NewTag("upstream")

	// TagStorage marks failures of the gateway's own database.
	TagStorage = goerr.NewTag("storage")
)

func IsUpstream(err error) bool { return goerr.HasTag(err, TagUpstream) }

func IsStorage(err error) bool { return goerr.HasTag(err, TagStorage) }
