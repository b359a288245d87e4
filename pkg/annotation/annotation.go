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

// Package annotation parses P4 annotations.
//
// Valid P4 annotations have the format
//
//	@<label>(<body>)
//
// for example
//
//	@sai_acl(INGRESS)
//	@sai_action(SAI_PACKET_ACTION_DROP, RED)
//
// Spaces and tabs between the label and the opening parenthesis, and
// immediately inside the parentheses, are not significant: @sai_acl(INGRESS)
// is treated the same as @sai_acl ( INGRESS ). An annotation without
// parentheses carries an empty body.
package annotation

import (
	"regexp"
	"strings"

	"github.com/pinsproto/pins/pkg/status"
)

// Annotation holds the components of a parsed annotation.
type Annotation struct {
	Label string
	Body  string
}

// The body is the substring between the first opening parenthesis and the
// final closing one; there is no nesting and no escape mechanism.
var annotationRegexp = regexp.MustCompile(`^@(\w+)(?:[ \t]*\([ \t]*(.*?)[ \t]*\))?$`)

// Parse splits an annotation into its label and body. The body is trimmed of
// surrounding spaces and tabs. Returns an ErrInvalidArgument error if the
// input is not a valid annotation.
func Parse(s string) (Annotation, error) {
	match := annotationRegexp.FindStringSubmatch(s)
	if match == nil {
		return Annotation{}, status.InvalidArgument("not a valid annotation",
			"annotation", s)
	}
	return Annotation{Label: match[1], Body: match[2]}, nil
}

// Raw returns the raw body unchanged. It is the identity BodyParser.
func Raw(body string) (string, error) {
	return body, nil
}

// ParseAsArgList parses a body of the format "arg [, arg2] [, arg3] [, ...]"
// into separate, ordered arguments. Returned arguments are stripped of
// surrounding whitespace. An empty or whitespace-only body yields no
// arguments.
//
// Returns an ErrInvalidArgument error if the body contains any character that
// is neither alphanumeric, comma, space, tab, nor underscore.
func ParseAsArgList(body string) ([]string, error) {
	for _, r := range body {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == ',', r == ' ', r == '\t':
		default:
			return nil, status.InvalidArgument("illegal character in argument list",
				"character", string(r), "body", body)
		}
	}
	if strings.Trim(body, " \t") == "" {
		return nil, nil
	}
	args := strings.Split(body, ",")
	for i, arg := range args {
		args[i] = strings.Trim(arg, " \t")
	}
	return args, nil
}
