// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library to allow seamless switching between OS-level and in-memory filesystem backends.
// Vault documents and sink files are always reached through a rooted view returned by Rooted.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// Rooted returns a view of the active backend confined to root.
// Paths handed to the view are interpreted relative to root.
func Rooted(root string) afero.Afero {
	if root == "" || root == "." {
		return backend
	}
	return afero.Afero{Fs: afero.NewBasePathFs(backend.Fs, root)}
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
