// Package testsupport holds fixtures shared by package tests: file trees,
// compressed sources, and an isolated home directory for configuration
// discovery.
package testsupport
