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

package annotation

import (
	"github.com/pinsproto/pins/pkg/private/serrors"
	"github.com/pinsproto/pins/pkg/status"
)

// BodyParser parses the body of a matching annotation into a T. It is
// invoked by GetParsed and GetAllParsed with the trimmed annotation body.
type BodyParser[T any] func(body string) (T, error)

// GetAllParsed returns the parsed body of all annotations with the given
// label, in input order. Inputs that do not split as annotations are skipped,
// they are treated as unknown labels rather than errors. A failure of the
// body parser is surfaced, quoting the annotation that failed.
//
// Returns an ErrNotFound error if no annotation matches the label.
func GetAllParsed[T any](label string, annotations []string, parser BodyParser[T]) ([]T, error) {
	var values []T
	for _, a := range annotations {
		parsed, err := Parse(a)
		if err != nil {
			continue // Skip unknown labels.
		}
		if parsed.Label != label {
			continue
		}
		value, err := parser(parsed.Body)
		if err != nil {
			return nil, serrors.Wrap("failed to parse annotation", err,
				"annotation", a)
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, status.NotFound("no annotation contained label", "label", label)
	}
	return values, nil
}

// GetParsed returns the parsed body of the unique annotation with the given
// label.
//
// Returns an ErrNotFound error if no annotation matches the label, and an
// ErrInvalidArgument error if several do.
func GetParsed[T any](label string, annotations []string, parser BodyParser[T]) (T, error) {
	values, err := GetAllParsed(label, annotations, parser)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(values) > 1 {
		var zero T
		return zero, status.InvalidArgument("multiple annotations contained label",
			"label", label)
	}
	return values[0], nil
}

// GetBody returns the body of the unique annotation with the given label.
func GetBody(label string, annotations []string) (string, error) {
	return GetParsed(label, annotations, Raw)
}

// GetAllBodies returns the bodies of all annotations with the given label.
func GetAllBodies(label string, annotations []string) ([]string, error) {
	return GetAllParsed(label, annotations, Raw)
}

// GetAsArgList returns the body of the unique annotation with the given label
// as a list of arguments. The list is empty if the annotation has no
// arguments.
func GetAsArgList(label string, annotations []string) ([]string, error) {
	return GetParsed(label, annotations, ParseAsArgList)
}

// GetAllAsArgLists returns the argument list form of the bodies of all
// annotations with the given label.
func GetAllAsArgLists(label string, annotations []string) ([][]string, error) {
	return GetAllParsed(label, annotations, ParseAsArgList)
}
