package config

import "time"

// API Constants
const (
	// DefaultAPIURL is the articles backend used when API_URL is unset
	DefaultAPIURL = "http://localhost:9000"

	// LoginPath authenticates a user and issues a token
	LoginPath = "/api/login"

	// ArticlesPath lists and creates articles; "/{id}" updates and deletes
	ArticlesPath = "/api/articles"

	// DefaultRequestTimeout bounds every API call
	DefaultRequestTimeout = 10 * time.Second
)

// Token Store Constants
const (
	// TokenKey is the well-known storage key holding the session token
	TokenKey = "token"

	// StoreFile keeps the token in a JSON file under the user config dir
	StoreFile = "file"

	// StoreRedis keeps the token in redis
	StoreRedis = "redis"

	// StoreMemory keeps the token for the lifetime of the process only
	StoreMemory = "memory"

	// DefaultRedisPrefix namespaces keys written to redis
	DefaultRedisPrefix = "articlesdesk:"

	// AppDirName is the directory created under os.UserConfigDir
	AppDirName = "articlesdesk"

	// StorageFileName is the file holding persisted key/value pairs
	StorageFileName = "storage.json"
)

// Form Constants
const (
	// MinUsernameLength is the minimum trimmed username length for login
	MinUsernameLength = 3

	// MinPasswordLength is the minimum trimmed password length for login
	MinPasswordLength = 8
)

// Topics lists the article topics accepted by the backend
var Topics = []string{"JavaScript", "React", "Node"}
