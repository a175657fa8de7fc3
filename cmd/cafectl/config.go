package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// saveToken persists the session token next to the server it belongs to.
func saveToken(v *viper.Viper, token string) (string, error) {
	v.Set("token", token)

	path := v.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, configName+".yaml")
	}

	out := viper.New()
	out.SetConfigFile(path)
	out.Set("server", v.GetString("server"))
	out.Set("token", token)
	if err := out.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
