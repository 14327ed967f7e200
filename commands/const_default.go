//go:build !darwin && !windows

package commands

const (
	_etc = "/usr/local/etc/printlog"

	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
)
