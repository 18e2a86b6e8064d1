package config

// CommandsConfig maps a command name to its raw TOML table.
// The tables are decoded by the launcher package.
type CommandsConfig map[string]map[string]any

// IsCommandEnabled проверява "enabled" ключа на команда
func (c *Config) IsCommandEnabled(name string) bool {
	commandCfg, exists := c.Commands[name]
	if !exists {
		return false
	}

	if enabledVal, ok := commandCfg["enabled"]; ok {
		if enabled, ok := enabledVal.(bool); ok {
			return enabled
		}
	}

	return true
}

// mergeCommands merge-ва командите ключ по ключ; user стойностите печелят
func mergeCommands(defaults, user CommandsConfig) CommandsConfig {
	merged := make(CommandsConfig, len(defaults)+len(user))

	for name, table := range defaults {
		merged[name] = copyTable(table)
	}

	for name, table := range user {
		target, ok := merged[name]
		if !ok {
			target = make(map[string]any, len(table))
			merged[name] = target
		}
		for key, value := range table {
			target[key] = value
		}
	}

	return merged
}

func copyTable(table map[string]any) map[string]any {
	out := make(map[string]any, len(table))
	for key, value := range table {
		out[key] = value
	}
	return out
}
