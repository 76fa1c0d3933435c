// Package cli implements the cbook command-line interface.
package cli

import (
	"encoding/json"
	"os"
)

// jsonOutput is set by the --json flag.
var jsonOutput bool

// Response is the envelope every --json invocation prints.
type Response struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

// ErrorInfo describes a failed invocation.
type ErrorInfo struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Warning is a problem that did not stop the command.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
}

// Meta carries the number of clients a command returned.
type Meta struct {
	Count int `json:"count,omitempty"`
}

func writeResponse(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func outputSuccess(data interface{}, meta *Meta, warnings ...Warning) {
	writeResponse(Response{OK: true, Data: data, Warnings: warnings, Meta: meta})
}

func outputError(info ErrorInfo) {
	writeResponse(Response{Error: &info})
}

// handleError prints err as an envelope in JSON mode and returns nil so
// cobra stays quiet. In text mode err is returned unchanged.
func handleError(code string, err error, suggestion string) error {
	if !jsonOutput {
		return err
	}
	outputError(ErrorInfo{Code: code, Message: err.Error(), Suggestion: suggestion})
	return nil
}

// handleClassifiedError is handleError with the code, details and
// suggestion taken from classifyError. Unrecognised errors get fallback.
func handleClassifiedError(err error, fallback string) error {
	if !jsonOutput {
		return err
	}
	c := classifyError(err, fallback)
	info := ErrorInfo{Code: c.Code, Message: err.Error(), Suggestion: c.Suggestion}
	if len(c.Details) > 0 {
		info.Details = c.Details
	}
	outputError(info)
	return nil
}
