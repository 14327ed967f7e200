package commands

const (
	_etc = "/usr/local/etc/com.github.printlog"

	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
)
