package gallery

import "strings"

// SampleQuery is appended to each sample photo to request a square crop.
const SampleQuery = "w=600&h=600&fit=crop&crop=center"

// SampleBaseURLs are the built-in demonstration photos.
var SampleBaseURLs = []string{
	"https://images.unsplash.com/photo-1506744038136-46273834b3fb",
	"https://images.unsplash.com/photo-1519681393784-d120267933ba",
	"https://images.unsplash.com/photo-1501785888041-af3ef285b470",
	"https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05",
	"https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07",
	"https://images.unsplash.com/photo-1501854140801-50d01698950b",
}

// DefaultSamples returns the built-in sample URLs with SampleQuery applied.
func DefaultSamples() []string {
	return WithQuery(SampleBaseURLs, SampleQuery)
}

// WithQuery appends query to every URL, joining with "?" or "&" as needed.
// An empty query returns a copy of urls.
func WithQuery(urls []string, query string) []string {
	query = strings.TrimLeft(strings.TrimSpace(query), "?&")
	out := make([]string, len(urls))
	for i, u := range urls {
		u = strings.TrimSpace(u)
		switch {
		case query == "":
			out[i] = u
		case strings.Contains(u, "?"):
			out[i] = u + "&" + query
		default:
			out[i] = u + "?" + query
		}
	}
	return out
}
