// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

func DirectoryExists(fs afero.Fs, dirName string) bool {
	ok, err := afero.DirExists(fs, dirName)
	return err == nil && ok
}

// FileExists checks if a file exists.
func FileExists(fs afero.Fs, filename string) bool {
	info, err := fs.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// UserHomePath returns the absolute path of a file located in the user's home directory.
func UserHomePath(filePath ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(filePath...)
	}
	fullPath := append([]string{home}, filePath...)
	return filepath.Join(fullPath...)
}

// ExpandHome expands ~ symbol to home directory
func ExpandHome(path string) string {
	if path == "" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// ReadFile reads filePath after expanding a leading ~.
func ReadFile(fs afero.Fs, filePath string) ([]byte, error) {
	return afero.ReadFile(fs, ExpandHome(filePath))
}
