package ratelimit

import "strings"

// MatchEndpoint finds the endpoint config that applies to the given path and
// method. Exact path matches win over prefix matches. The health endpoint is
// never limited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" {
		return &EndpointConfig{Path: "/health", Limit: 0}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Path == path && methodMatches(cfg.Method, method) {
			return cfg
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) && methodMatches(cfg.Method, method) {
			return cfg
		}
	}

	return nil
}

func methodMatches(configMethod, requestMethod string) bool {
	return configMethod == "" || strings.EqualFold(configMethod, requestMethod)
}
