//go:build !dev

package config

const debugBuild = false
