package domain

// APIInfo describes the backend and the data endpoints it exposes.
type APIInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// APIInfoFields are the JSON keys of APIInfo.
var APIInfoFields = []string{"name", "version", "endpoints"}

// ServiceName is reported by the info endpoint.
const ServiceName = "KMP REST Web App Backend"

// API paths, relative to the configured base path.
const (
	HealthPath    = "/health"
	InfoPath      = "/info"
	DummyDataPath = "/dummy-data"
)

// NewAPIInfo builds the info payload for an API mounted under basePath.
// Only the data endpoints are listed, the info endpoint itself is not.
func NewAPIInfo(version, basePath string) APIInfo {
	return APIInfo{
		Name:    ServiceName,
		Version: version,
		Endpoints: []string{
			JoinPath(basePath, DummyDataPath),
			JoinPath(basePath, HealthPath),
		},
	}
}

// JoinPath appends an endpoint path to a base path without doubling slashes.
// An empty or "/" base yields the endpoint unchanged.
func JoinPath(basePath, endpoint string) string {
	for len(basePath) > 0 && basePath[len(basePath)-1] == '/' {
		basePath = basePath[:len(basePath)-1]
	}
	if endpoint == "" {
		return basePath
	}
	if endpoint[0] != '/' {
		endpoint = "/" + endpoint
	}
	return basePath + endpoint
}
