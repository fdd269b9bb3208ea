package domain

// SourceStrategy identifies which fetch fallback produced the page content.
type SourceStrategy string

const (
	// StrategyDirect is a plain fetch with a browser user agent.
	StrategyDirect SourceStrategy = "direct"

	// StrategyArchiveMirror fetches the newest snapshot from a public
	// web archive.
	StrategyArchiveMirror SourceStrategy = "archiveMirror"

	// StrategyBypassProxy fetches through a paywall-removal relay.
	StrategyBypassProxy SourceStrategy = "bypassProxy"

	// StrategyAlternateAgent retries the direct URL with a search-engine
	// crawler identity.
	StrategyAlternateAgent SourceStrategy = "alternateAgent"

	// StrategyNone means every strategy failed.
	StrategyNone SourceStrategy = "none"
)

// FetchResult is the outcome of the layered source fetch. At most one
// strategy is recorded; strategies run in fixed priority order and the
// first success short-circuits the rest.
type FetchResult struct {
	// RawHTML is the page body from the winning strategy, empty on failure.
	RawHTML string

	// Succeeded reports whether any strategy produced usable content.
	Succeeded bool

	// Strategy is the winning strategy, or StrategyNone.
	Strategy SourceStrategy
}
