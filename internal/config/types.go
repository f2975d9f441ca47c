package config

// StackConfig is the top-level configuration structure for stackctl.
type StackConfig struct {
	// ProjectRoot is the directory all relative paths are resolved against.
	// Defaults to the current working directory at load time.
	ProjectRoot string `yaml:"projectRoot,omitempty"`

	// ComposeFile is the Docker Compose manifest for the stack, relative to
	// ProjectRoot unless absolute.
	ComposeFile string `yaml:"composeFile,omitempty"`

	// Services is the ordered registry of managed services. The order here is
	// the display order everywhere in the tool.
	Services []ServiceDefinition `yaml:"services,omitempty"`

	// RequiredFiles are checked for existence before any build/up workflow,
	// relative to ProjectRoot unless absolute.
	RequiredFiles []string `yaml:"requiredFiles,omitempty"`

	// LogTailLines is how many trailing log lines `stackctl logs` requests.
	LogTailLines int `yaml:"logTailLines,omitempty"`
}

// ServiceDefinition describes one managed compose service.
type ServiceDefinition struct {
	// Key is the stable service identifier, matching the compose service name,
	// e.g. "page-server".
	Key string `yaml:"key"`

	// DisplayName is the human-readable name shown in status output,
	// e.g. "Page Server (Next.js)".
	DisplayName string `yaml:"displayName"`

	// Container is the compose-generated container name, e.g.
	// "servers-page-server-1". Only used to translate plain-text `ps` output
	// back to the service key.
	Container string `yaml:"container,omitempty"`

	// HostPort is the localhost TCP port probed by the health check.
	// Zero means no port probe for this service.
	HostPort int `yaml:"hostPort,omitempty"`
}
