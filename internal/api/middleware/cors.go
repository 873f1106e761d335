package middleware

import "strings"

// AllowOrigin implements the club's cross-origin policy for use with
// echo's CORS middleware. Local development hosts and the deployment
// platform are named explicitly, but the fallback accepts everything:
// the policy is deliberately open and is not a security boundary.
func AllowOrigin(origin string) (bool, error) {
	if origin == "" {
		return true, nil
	}
	if strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1") {
		return true, nil
	}
	if strings.Contains(origin, "vercel.app") || strings.Contains(origin, "vercel.com") {
		return true, nil
	}
	return true, nil
}
