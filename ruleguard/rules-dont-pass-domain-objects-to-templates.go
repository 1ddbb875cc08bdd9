//go:build ruleguard
// +build ruleguard

package ruleguard

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func execContext(m dsl.Matcher) {
	m.Import("github.com/agritalk/cropmd/internal/reviewing")

	// Simplistic: the template data is always a map[string]any, so anything
	// from reviewing put into one is headed for a template. The web package
	// has its own *Basic types for that.
	//
	// To work on this use ruleguard directly: ruleguard -rules ruleguard/rules-dont-pass-domain-objects-to-templates.go internal/app/web/reviews.go
	m.Match(`map[string]any{$*_, $key: $val, $*_}`).
		Where(m["val"].Type.Is(`reviewing.Review`) || m["val"].Type.Is(`[]reviewing.Review`)).
		Report(`passing reviewing.Review into a template's data map. Use: convertToHttpObjects($val)`)

	m.Match(`map[string]any{$*_, $key: $val, $*_}`).
		Where(m["val"].Type.Is(`reviewing.Draft`)).
		Report(`passing reviewing.Draft into a template's data map. Use: convertDraftToHttpObject($val)`)

	m.Match(`$data[$key] = $val`).
		Where(m["data"].Type.Is(`map[string]any`) &&
			(m["val"].Type.Is(`reviewing.Review`) || m["val"].Type.Is(`[]reviewing.Review`) || m["val"].Type.Is(`reviewing.Draft`))).
		Report(`assigning a reviewing type into a template's data map. Convert it to the web package's view type first`)
}
