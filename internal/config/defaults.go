package config

// DefaultComposeFile is the compose manifest path of the reference deployment.
const DefaultComposeFile = "servers/docker-compose.dev.yml"

// DefaultLogTailLines is how many trailing log lines are shown by default.
const DefaultLogTailLines = 20

// DefaultServices returns the five services of the reference deployment, in
// display order.
func DefaultServices() []ServiceDefinition {
	return []ServiceDefinition{
		{
			Key:         "page-server",
			DisplayName: "Page Server (Next.js)",
			Container:   "servers-page-server-1",
			HostPort:    5173,
		},
		{
			Key:         "api-server",
			DisplayName: "API Server (FastAPI)",
			Container:   "servers-api-server-1",
			HostPort:    8002,
		},
		{
			Key:         "db-server",
			DisplayName: "Database Server (PostgreSQL)",
			Container:   "servers-db-server-1",
			HostPort:    15432,
		},
		{
			Key:         "nginx",
			DisplayName: "Nginx (Reverse Proxy)",
			Container:   "servers-nginx-1",
			HostPort:    80,
		},
		{
			Key:         "redis",
			DisplayName: "Redis (Cache)",
			Container:   "servers-redis-1",
			HostPort:    16379,
		},
	}
}

// GetDefaultConfig returns the built-in configuration. ProjectRoot is left
// empty here and resolved to the working directory by LoadConfig.
func GetDefaultConfig() StackConfig {
	return StackConfig{
		ComposeFile: DefaultComposeFile,
		Services:    DefaultServices(),
		RequiredFiles: []string{
			"servers/docker-compose.dev.yml",
			"servers/page_server/Dockerfile.dev",
			"servers/api_server/pyproject.toml",
			"servers/page_server/nginx/nginx.conf",
		},
		LogTailLines: DefaultLogTailLines,
	}
}
