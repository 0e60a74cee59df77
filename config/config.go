package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis storage keys
const SAVED_PLACES_KEY_V1 = "saved_places_v1"
const DEVICE_ID_KEY_V1 = "caremap_device_user_id"

// Hours resolution
const CLOSING_SOON_THRESHOLD_MINUTES = 30

// Nearby lookup defaults (mirrors the backend's /location/nearby limits)
const NEARBY_DEFAULT_RADIUS_KM = 200.0
const NEARBY_DEFAULT_LIMIT = 200

// Search defaults
const SEARCH_DEFAULT_PAGE = 1
const SEARCH_DEFAULT_LIMIT = 100
const SEARCH_DEBOUNCE_MILLIS = 300

// Places Refresher config
const PLACES_REFRESHER_SCHEDULE_MINUTES = 60

// Device identity request header
const DEVICE_ID_HEADER = "X-Device-Id"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const NEARBY_RESPONSE_RESOURCE = "nearby_response.json"
const SEARCH_RESPONSE_RESOURCE = "search_response.json"
const PLACE_STATIC_RESOURCE = "place_static.json"

const REDIS_DB = 0

// LoadEnv loads a .env file when present. A missing file is fine: every
// setting has a default and production supplies real environment variables.
func LoadEnv() {
	_ = godotenv.Load()
}

// Environment returns the runtime environment name ("prod" by default).
func Environment() string {
	return getenv("CAREMAP_ENV", "prod")
}

// APIBaseURL is the externally supplied base URL of the remote CareMap API.
func APIBaseURL() string {
	return getenv("CAREMAP_API_BASE_URL", "http://localhost:8000")
}

// RedisAddress returns the address of the local Redis store.
func RedisAddress() string {
	return getenv("CAREMAP_REDIS_ADDRESS", "redis:6379")
}

func RedisPassword() string {
	return getenv("CAREMAP_REDIS_PASSWORD", "")
}

// ListenAddress is where the local HTTP surface binds.
func ListenAddress() string {
	return getenv("CAREMAP_LISTEN_ADDRESS", ":8080")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
