// Copyright 2026 PINS Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package status defines the error kinds shared by the PDPI libraries.
//
// Every failure returned by this repository is attributed to one of three
// kinds: ErrInvalidArgument for inputs that violate a grammar or a declared
// precondition, ErrNotFound for lookups with zero matches, and ErrInternal
// for unreachable code paths. Callers discriminate with errors.Is.
package status

import (
	"errors"

	"github.com/pinsproto/pins/pkg/private/serrors"
)

var (
	// ErrInvalidArgument indicates a syntactic or semantic violation of an
	// input grammar or of a declared bitwidth/format precondition.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound indicates that an annotation lookup had zero matches.
	ErrNotFound = errors.New("not found")
	// ErrInternal indicates a program bug, e.g. an unknown enum variant.
	ErrInternal = errors.New("internal")
)

// InvalidArgument returns an ErrInvalidArgument error with the given message
// and context.
func InvalidArgument(msg string, errCtx ...interface{}) error {
	return serrors.WrapNoStack(msg, ErrInvalidArgument, errCtx...)
}

// NotFound returns an ErrNotFound error with the given message and context.
func NotFound(msg string, errCtx ...interface{}) error {
	return serrors.WrapNoStack(msg, ErrNotFound, errCtx...)
}

// Internal returns an ErrInternal error with the given message and context.
func Internal(msg string, errCtx ...interface{}) error {
	return serrors.WrapNoStack(msg, ErrInternal, errCtx...)
}
