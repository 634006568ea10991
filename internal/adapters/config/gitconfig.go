package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GitProxy returns the proxy configured in the user's global git
// configuration (the http.proxy key of ~/.gitconfig), if any. An
// unreadable gitconfig means no proxy.
func GitProxy() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return gitProxyFrom(filepath.Join(home, ".gitconfig"))
}

func gitProxyFrom(path string) (string, bool) {
	if _, err := os.Stat(path); err != nil {
		return "", false
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return "", false
	}

	proxy := v.GetString("http.proxy")
	return proxy, proxy != ""
}
