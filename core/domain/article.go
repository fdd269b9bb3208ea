package domain

// ArticleMetadata holds the byline details extracted from fetched HTML.
// Title always has a value; extraction falls back to the hostname.
// Author and PublishedDate stay empty when no pattern matched and are
// omitted from the email rather than rendered blank.
type ArticleMetadata struct {
	Title         string
	Author        string
	PublishedDate string
}

// SocialPost is the oEmbed representation of a short-form social post.
// For these captures the full post is the content; no AI summarization
// is attempted.
type SocialPost struct {
	// AuthorName is the display name from the oEmbed response.
	AuthorName string

	// AuthorHandle is the platform handle, without the leading "@".
	AuthorHandle string

	// Text is the post body with tags stripped and line breaks preserved.
	Text string
}
