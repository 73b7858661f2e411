package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// DefaultUploadDir is where profile images land unless UPLOAD_DIR is set.
const DefaultUploadDir = "profile_pics"

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:8000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

// UploadDir resolves the profile image upload directory.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return DefaultUploadDir
}
