package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/stackctl"
	projectConfigDir = ".stackctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the stackctl configuration by layering default, user, and
// project settings. Missing files are skipped; unreadable or malformed files
// are errors.
func LoadConfig() (StackConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return StackConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return StackConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	// 4. Resolve the project root last so overlays can still override it.
	if config.ProjectRoot == "" {
		wd, err := osGetwd()
		if err != nil {
			return StackConfig{}, fmt.Errorf("could not determine working directory for project root: %w", err)
		}
		config.ProjectRoot = wd
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a StackConfig from a YAML file.
func loadConfigFromFile(filePath string) (StackConfig, error) {
	var config StackConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return StackConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return StackConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Scalars override
// when non-zero; the services and requiredFiles lists are replaced wholesale
// because their order is significant.
func mergeConfigs(base, overlay StackConfig) StackConfig {
	mergedConfig := base

	if overlay.ProjectRoot != "" {
		mergedConfig.ProjectRoot = overlay.ProjectRoot
	}
	if overlay.ComposeFile != "" {
		mergedConfig.ComposeFile = overlay.ComposeFile
	}
	if overlay.LogTailLines != 0 {
		mergedConfig.LogTailLines = overlay.LogTailLines
	}
	if len(overlay.Services) > 0 {
		mergedConfig.Services = overlay.Services
	}
	if len(overlay.RequiredFiles) > 0 {
		mergedConfig.RequiredFiles = overlay.RequiredFiles
	}

	return mergedConfig
}

// ComposeFilePath returns the compose manifest path resolved against
// ProjectRoot when relative.
func (c StackConfig) ComposeFilePath() string {
	return c.resolve(c.ComposeFile)
}

// RequiredFilePaths returns the pre-flight file list resolved against
// ProjectRoot when relative.
func (c StackConfig) RequiredFilePaths() []string {
	paths := make([]string, 0, len(c.RequiredFiles))
	for _, f := range c.RequiredFiles {
		paths = append(paths, c.resolve(f))
	}
	return paths
}

func (c StackConfig) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectRoot, path)
}
