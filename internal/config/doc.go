// Package config provides configuration management for stackctl.
//
// This package implements a layered configuration system that allows users to
// customize stackctl's behavior through YAML files. Configuration is loaded
// from multiple sources and merged in a specific order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - The reference deployment: five services, their container names,
//       host ports, and pre-flight file list
//     - Ensures stackctl works out-of-the-box in the project tree
//
//  2. User Configuration (~/.config/stackctl/config.yaml)
//     - User-specific settings that apply to all projects
//
//  3. Project Configuration (./.stackctl/config.yaml)
//     - Project-specific settings in the current directory
//     - Allows teams to share configuration via version control
//
// # Configuration Structure
//
// The configuration file uses YAML format:
//
//	projectRoot: /home/dev/hospital-app
//	composeFile: servers/docker-compose.dev.yml
//	logTailLines: 20
//	services:
//	  - key: "page-server"
//	    displayName: "Page Server (Next.js)"
//	    container: "servers-page-server-1"
//	    hostPort: 5173
//	requiredFiles:
//	  - servers/docker-compose.dev.yml
//	  - servers/page_server/Dockerfile.dev
//
// # Merge Semantics
//
// Scalar fields override when non-zero in an overlay. A non-empty services
// list replaces the whole registry rather than merging per key, because the
// list order is the registry order and per-key merging would scramble it.
// The same replace-whole-list rule applies to requiredFiles.
//
// Missing configuration files are not an error; malformed ones are.
package config
