package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BusinessErr is raised when console rule is violated before anything is sent to CRM API
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

// Target returns name of the field or form which violated the rule
func (e *BusinessErr) Target() string {
	return e.target
}

func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// RemoteErr is raised when call to CRM API failed on network level or returned unexpected status
type RemoteErr struct {
	op      string
	status  int
	message string
	cause   error
}

func (e *RemoteErr) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s failed - %v", e.op, e.cause)
	}

	if e.message != "" {
		return fmt.Sprintf("%s failed with status %d - %s", e.op, e.status, e.message)
	}
	return fmt.Sprintf("%s failed with status %d", e.op, e.status)
}

func (e *RemoteErr) Unwrap() error {
	return e.cause
}

// Op returns name of the remote operation
func (e *RemoteErr) Op() string {
	return e.op
}

// Status returns HTTP status code, 0 means that no response was received
func (e *RemoteErr) Status() int {
	return e.status
}

// ServerMessage returns message supplied by CRM API in response body
func (e *RemoteErr) ServerMessage() string {
	return e.message
}

func NewRemoteErr(op string, status int, msg string) *RemoteErr {
	return &RemoteErr{op: op, status: status, message: msg}
}

func WrapRemoteErr(op string, err error) *RemoteErr {
	return &RemoteErr{op: op, cause: err}
}

// ServerMessage extracts server-supplied message from remote error or returns fallback
func ServerMessage(err error, fallback string) string {
	var remoteErr *RemoteErr
	if errors.As(err, &remoteErr) && remoteErr.message != "" {
		return remoteErr.message
	}
	return fallback
}
