//go:build dev

package config

// debugBuild is true when built with -tags dev
const debugBuild = true
