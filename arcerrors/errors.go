package arcerrors

import (
	"errors"
	"strings"
)

// File log (L) Errors
var (
	ErrLogOpen   = errors.New("L1|LogOpen: Log file could not be opened for writing.")
	ErrLogClosed = errors.New("L2|LogClosed: Write to a log whose handle was closed or moved.")
	ErrLogWrite  = errors.New("L3|LogWrite: Log line could not be written.")
)

// Configuration (C) Errors
var (
	ErrConfigRead    = errors.New("C1|ConfigRead: Suite file could not be read.")
	ErrConfigParse   = errors.New("C2|ConfigParse: Suite file is not valid YAML.")
	ErrConfigInvalid = errors.New("C3|ConfigInvalid: Suite failed validation.")
)

// Run (R) Errors
var (
	ErrCommandFailed = errors.New("R1|CommandFailed: Timed command exited with an error.")
	ErrNoCommand     = errors.New("R2|NoCommand: No command given to time.")
)

var known = []error{
	ErrLogOpen, ErrLogClosed, ErrLogWrite,
	ErrConfigRead, ErrConfigParse, ErrConfigInvalid,
	ErrCommandFailed, ErrNoCommand,
}

// Find returns the first sentinel in err's chain, or nil.
func Find(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// GetErrorName extracts the error name from the error message.
func GetErrorName(err error) string {
	if err == nil {
		return "No Error"
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "|") || !strings.Contains(errStr, ":") {
		return errStr
	}
	parts := strings.SplitN(errStr, "|", 2)
	nameDesc := parts[1]
	// Split on ':' to separate the error name from its description.
	nameParts := strings.SplitN(nameDesc, ":", 2)
	return strings.TrimSpace(nameParts[0])
}

func GetErrorNames(errs []error) []string {
	errStrs := make([]string, len(errs))
	for i, err := range errs {
		errStrs[i] = GetErrorName(err)
	}
	return errStrs
}

// GetErrorCode extracts the error code from the error message.
func GetErrorCode(err error) string {
	if err == nil {
		return ""
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "|") {
		return ""
	}
	parts := strings.SplitN(errStr, "|", 2)
	return strings.TrimSpace(parts[0])
}

// GetErrorCodeWithName returns the error code and name in the format "Code_ErrorName".
func GetErrorCodeWithName(err error) string {
	code := GetErrorCode(err)
	name := GetErrorName(err)
	if code == "" || name == "" {
		return ""
	}
	return code + "_" + name
}

// GetErrorDesc extracts the error description from the error message.
func GetErrorDesc(err error) string {
	if err == nil {
		return ""
	}
	parts := strings.SplitN(err.Error(), ":", 2)
	if len(parts) < 2 {
		return "DESC NOT SET"
	}
	return strings.TrimSpace(parts[1])
}
