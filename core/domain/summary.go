package domain

// SummaryBasis records what a summary was derived from, so the email can
// disclose a degraded result to the reader.
type SummaryBasis string

const (
	// BasisFullText means the bullets were generated from article text.
	BasisFullText SummaryBasis = "fullText"

	// BasisTitleOnly means the bullets were inferred from title and URL
	// because the article body was not usable.
	BasisTitleOnly SummaryBasis = "titleOnly"

	// BasisUnavailable means no summary could be generated. Bullets is
	// empty and the email shows an explicit notice instead.
	BasisUnavailable SummaryBasis = "unavailable"
)

// SummaryResult is the tagged outcome of the summarization step. Callers
// branch on Basis rather than sentinel strings.
type SummaryResult struct {
	// Bullets are the generated summary lines, in order, with bullet
	// glyphs already stripped.
	Bullets []string

	// Basis records how the bullets were derived.
	Basis SummaryBasis

	// Reason carries a diagnostic when Basis is BasisUnavailable.
	Reason string
}

// OutboundEmail is the fully composed message, built once per request and
// sent exactly once.
type OutboundEmail struct {
	Recipient string
	Subject   string
	HTMLBody  string
}
