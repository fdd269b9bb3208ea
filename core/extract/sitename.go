package extract

import "strings"

// knownSites maps hostnames to display names for the email subject line.
var knownSites = map[string]string{
	"nytimes.com":            "New York Times",
	"www.nytimes.com":        "New York Times",
	"washingtonpost.com":     "Washington Post",
	"www.washingtonpost.com": "Washington Post",
	"cnn.com":                "CNN",
	"www.cnn.com":            "CNN",
	"bbc.com":                "BBC",
	"www.bbc.com":            "BBC",
	"reuters.com":            "Reuters",
	"www.reuters.com":        "Reuters",
	"techcrunch.com":         "TechCrunch",
	"www.techcrunch.com":     "TechCrunch",
	"arstechnica.com":        "Ars Technica",
	"www.arstechnica.com":    "Ars Technica",
}

// PrettySiteName turns a hostname or client site hint into a display name.
// Unknown hosts get "www."/".com" stripped and words capitalized.
func PrettySiteName(site string) string {
	if site == "" {
		return "Unknown"
	}
	if name, ok := knownSites[strings.ToLower(site)]; ok {
		return name
	}

	cleaned := strings.TrimPrefix(site, "www.")
	cleaned = strings.TrimSuffix(cleaned, ".com")
	return capitalizeWords(cleaned)
}

func capitalizeWords(s string) string {
	runes := []rune(s)
	atWordStart := true
	for i, r := range runes {
		if atWordStart && r >= 'a' && r <= 'z' {
			runes[i] = r - ('a' - 'A')
		}
		atWordStart = r == ' ' || r == '.' || r == '-'
	}
	return string(runes)
}
