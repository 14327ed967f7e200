package commands

const (
	_etc = `C:\ProgramData\printlog`

	DEFAULT_CREDENTIALS = _etc + `\sheets\.google\credentials.json`
)
