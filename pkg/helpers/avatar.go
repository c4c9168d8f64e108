package helpers

import "net/url"

// DefaultAvatarURL builds a generated placeholder avatar for users who did
// not provide one. The name seeds the initials rendered by the service.
func DefaultAvatarURL(name string) string {
	v := url.Values{}
	if name != "" {
		v.Set("name", name)
	}
	v.Set("background", "random")
	return "https://ui-avatars.com/api/?" + v.Encode()
}
