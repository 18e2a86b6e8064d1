// Package utils provides common utility functions for wallpick.
// It includes helpers for path expansion, command execution,
// notifications, logging, and terminal detection.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// ============================================================================
// Command Utilities
// ============================================================================

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// StartDetachedProcess starts a process completely detached and does not wait for it.
// The child gets its own process group so it survives wallpick exiting.
func StartDetachedProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Env = os.Environ()
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// ============================================================================
// File System Utilities
// ============================================================================

// ExpandHomeDir expands ~ in paths
func ExpandHomeDir(path string) string {
	if path == "~" {
		return GetHomeDir()
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(GetHomeDir(), path[2:])
	}
	return path
}

// ExpandPath expands ~ and environment variables in path
func ExpandPath(path string) string {
	return os.ExpandEnv(ExpandHomeDir(path))
}

// GetHomeDir returns home directory
func GetHomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal checks if program is running in a terminal
func IsTerminal() bool {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	stdinIsTTY := (stdinInfo.Mode() & os.ModeCharDevice) != 0

	if !stdinIsTTY {
		return false
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	tty.Close()

	return true
}
