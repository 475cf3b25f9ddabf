package main

import (
	"embed"
	"io/fs"
)

//go:embed configs
var configFS embed.FS

// defaultConfigs returns the embedded configs directory as the loader's last layer.
func defaultConfigs() fs.FS {
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		panic(err)
	}
	return sub
}
