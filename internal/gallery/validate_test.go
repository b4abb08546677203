package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidator_IsImageURL(t *testing.T) {
	v := DefaultValidator()
	tests := []struct {
		url  string
		want bool
	}{
		{"a.jpg", true},
		{"https://example.com/photo.JPEG", true},
		{"https://example.com/x.png?size=large", true},
		{"https://example.com/x.webp", true},
		{"https://example.com/x.svg", true},
		{"https://images.unsplash.com/photo-1506744038136-46273834b3fb", true},
		{"https://example.com/unsplash.com/page", true},
		{"not-a-url", false},
		{"https://example.com/page.html", false},
		{"https://example.com/x.png/", false},
		{"https://example.com/jpg", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			require.Equal(t, tt.want, v.IsImageURL(tt.url))
		})
	}
}

func TestValidator_CustomLists(t *testing.T) {
	v := NewValidator([]string{".TIFF", " avif "}, []string{})
	require.True(t, v.IsImageURL("https://example.com/a.tiff"))
	require.True(t, v.IsImageURL("https://example.com/a.AVIF?x=1"))
	require.False(t, v.IsImageURL("https://example.com/a.jpg"))
	require.False(t, v.IsImageURL("https://images.unsplash.com/photo-1"), "empty domain list trusts nothing")

	v = NewValidator(nil, []string{"cdn.example.org"})
	require.True(t, v.IsImageURL("https://cdn.example.org/asset/123"))
	require.True(t, v.IsImageURL("https://example.com/a.gif"))
}

func TestValidator_Suggestion(t *testing.T) {
	v := DefaultValidator()
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/photo.jgp", ".jpg"},
		{"https://example.com/photo.pnj?x=1", ".png"},
		{"https://example.com/photo.gifff", ".gif"},
		{"https://example.com/page.html", ""},
		{"https://example.com/page", ""},
		{"not-a-url", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			_, err := v.Validate(tt.url)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.want, verr.Suggestion)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Input: "x.jgp", Reason: ReasonNotImage, Suggestion: ".jpg"}
	require.Equal(t, "Please enter a valid image URL (did you mean .jpg?)", err.Error())
	require.Equal(t, err.Error(), UserMessage(err))
}

func TestWithQuery(t *testing.T) {
	got := WithQuery([]string{"https://x/a", "https://x/b?v=1"}, "?w=10")
	require.Equal(t, []string{"https://x/a?w=10", "https://x/b?v=1&w=10"}, got)
	require.Equal(t, []string{"https://x/a"}, WithQuery([]string{"https://x/a"}, ""))
	require.Equal(t, []string{"https://x/a?w=10"}, WithQuery([]string{" https://x/a "}, "w=10"))

	samples := DefaultSamples()
	require.Len(t, samples, 6)
	v := DefaultValidator()
	for _, s := range samples {
		require.True(t, v.IsImageURL(s), s)
	}
}
