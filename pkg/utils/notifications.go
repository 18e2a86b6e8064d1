// Package utils provides notification utilities for wallpick.
// Supports configurable notification behavior via NotificationConfig.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/wallpick/pkg/config"
)

// NotifyWithConfig sends a notification using the provided config
func NotifyWithConfig(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	// If in terminal and ShowInTerminal is enabled, print to stdout
	if cfg.ShowInTerminal && IsTerminal() {
		fmt.Printf("[%s] %s\n", title, message)
		return
	}

	tool := cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}

	cmd := notificationCommand(tool, title, message, cfg.Timeout, cfg.Urgency)
	if cmd == nil {
		return
	}
	cmd.Env = os.Environ()
	cmd.Start()
}

// ============================================================================
// Internal Helper Functions
// ============================================================================

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// notificationCommand builds the notification command for tool, or nil when tool is unknown
func notificationCommand(tool, title, message string, timeout int, urgency string) *exec.Cmd {
	if urgency == "" {
		urgency = "normal"
	}

	// Default timeout
	if timeout <= 0 {
		timeout = 5000
	}

	switch tool {
	case "dunstify", "notify-send":
		return exec.Command(tool,
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			title,
			message)
	default:
		return nil
	}
}
