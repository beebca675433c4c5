/*
 Explorer Platform, a platform for hosting and discovering Minecraft servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package errors

import (
	stderrors "errors"
	"net/http"
)

type Kind int

const (
	KindRuntime Kind = iota
	KindValidation
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "runtime"
	}
}

/*
 * server related errors
 */

var (
	ErrInvalidServerID     = New(KindValidation, "server id is invalid")
	ErrServerConfigMissing = New(KindNotFound, "server config does not exist")
	ErrContainerNotFound   = New(KindNotFound, "server container not found")
	ErrAlreadyRunning      = New(KindConflict, "server is already running")
	ErrNotRunning          = New(KindConflict, "server is not running")
	ErrCommandMissing      = New(KindValidation, "command is required")
)

/*
 * egg related errors
 */

var (
	ErrInvalidEggID = New(KindValidation, "egg id is invalid")
	ErrEggNotFound  = New(KindNotFound, "egg does not exist")
)

// Error carries a Kind next to a message that is safe to hand to
// clients. the wrapped cause is kept for errors.Is/As.
type Error struct {
	Message string
	Kind    Kind
	cause   error
}

func (e Error) Error() string {
	if e.cause != nil && e.Message == "" {
		return e.cause.Error()
	}
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e Error) Unwrap() error {
	return e.cause
}

// Is matches on kind and message, so sentinels survive being
// re-created with a cause attached.
func (e Error) Is(target error) bool {
	var t Error
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

func New(args ...any) Error {
	e := Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case string:
			e.Message = arg
		case Kind:
			e.Kind = arg
		case error:
			e.cause = arg
		default:
			continue
		}
	}
	return e
}

// WithCause returns a copy of e wrapping err.
func (e Error) WithCause(err error) Error {
	e.cause = err
	return e
}

// Validation is a shorthand used by request decoding.
func Validation(msg string) Error {
	return New(KindValidation, msg)
}

// KindOf returns the kind of the first Error in err's chain.
// anything else is considered a runtime failure.
func KindOf(err error) Kind {
	var e Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindRuntime
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
