package rcl

import (
	"fmt"
	"strings"
)

// ReturnCode categorizes lifecycle failures, numbered like the foreign
// middleware's return codes.
type ReturnCode int

const (
	RetOK                   ReturnCode = 0
	RetError                ReturnCode = 1
	RetTimeout              ReturnCode = 2
	RetBadAlloc             ReturnCode = 10
	RetInvalidArgument      ReturnCode = 11
	RetAlreadyInit          ReturnCode = 100
	RetNotInit              ReturnCode = 101
	RetAlreadyShutdown      ReturnCode = 102
	RetNodeInvalidName      ReturnCode = 201
	RetNodeInvalidNamespace ReturnCode = 202
	RetPublisherInvalid     ReturnCode = 300
	RetSubscriptionInvalid  ReturnCode = 400
	RetTopicNameInvalid     ReturnCode = 500
	RetInvalidRemapRule     ReturnCode = 1001
	RetInvalidRosArgs       ReturnCode = 1003
	RetInvalidParamRule     ReturnCode = 1010
)

var returnCodeNames = map[ReturnCode]string{
	RetOK:                   "ok",
	RetError:                "error",
	RetTimeout:              "timeout",
	RetBadAlloc:             "bad_alloc",
	RetInvalidArgument:      "invalid_argument",
	RetAlreadyInit:          "already_init",
	RetNotInit:              "not_init",
	RetAlreadyShutdown:      "already_shutdown",
	RetNodeInvalidName:      "node_invalid_name",
	RetNodeInvalidNamespace: "node_invalid_namespace",
	RetPublisherInvalid:     "publisher_invalid",
	RetSubscriptionInvalid:  "subscription_invalid",
	RetTopicNameInvalid:     "topic_name_invalid",
	RetInvalidRemapRule:     "invalid_remap_rule",
	RetInvalidRosArgs:       "invalid_ros_args",
	RetInvalidParamRule:     "invalid_param_rule",
}

func (c ReturnCode) String() string {
	if name, ok := returnCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("return_code(%d)", int(c))
}

// Error is the structured error type used throughout the package.
type Error struct {
	Code   ReturnCode
	Op     string
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(e.Op)
	b.WriteString("] ")
	b.WriteString(e.Code.String())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target matches this error's return code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func newError(code ReturnCode, op, format string, args ...any) *Error {
	return &Error{
		Code:   code,
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
	}
}
