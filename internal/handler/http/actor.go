package http

import "net/http"

const defaultActor = "system"

// actorFrom resolves the audit identity for a mutating request. There is no
// authentication layer in front of this API; callers identify themselves via
// the X-Actor header and unattended jobs fall back to "system".
func actorFrom(r *http.Request) string {
	if actor := r.Header.Get("X-Actor"); actor != "" {
		return actor
	}
	return defaultActor
}
