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

package annotation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinsproto/pins/pkg/annotation"
	"github.com/pinsproto/pins/pkg/status"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input     string
		parsed    annotation.Annotation
		assertErr assert.ErrorAssertionFunc
	}{
		{"@sai_acl(INGRESS)", annotation.Annotation{"sai_acl", "INGRESS"}, assert.NoError},
		{"@sai_acl ( INGRESS )", annotation.Annotation{"sai_acl", "INGRESS"}, assert.NoError},
		{"@sai_acl\t(\tINGRESS\t)", annotation.Annotation{"sai_acl", "INGRESS"}, assert.NoError},
		{"@sai_action(SAI_PACKET_ACTION_DROP, RED)",
			annotation.Annotation{"sai_action", "SAI_PACKET_ACTION_DROP, RED"}, assert.NoError},
		{"@nested(a(b))", annotation.Annotation{"nested", "a(b)"}, assert.NoError},
		{"@empty()", annotation.Annotation{"empty", ""}, assert.NoError},
		{"@no_body", annotation.Annotation{"no_body", ""}, assert.NoError},
		{"@label(body with spaces)", annotation.Annotation{"label", "body with spaces"}, assert.NoError},
		{"", annotation.Annotation{}, assert.Error},
		{"@", annotation.Annotation{}, assert.Error},
		{"sai_acl(INGRESS)", annotation.Annotation{}, assert.Error},
		{"@sai_acl(INGRESS) ", annotation.Annotation{}, assert.Error},
		{"@sai_acl(INGRESS)x", annotation.Annotation{}, assert.Error},
		{"@sai_acl(", annotation.Annotation{}, assert.Error},
		{"@sai_acl)", annotation.Annotation{}, assert.Error},
		{"@multiline(a\nb)", annotation.Annotation{}, assert.Error},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			parsed, err := annotation.Parse(tc.input)
			tc.assertErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, status.ErrInvalidArgument)
				return
			}
			assert.Equal(t, tc.parsed, parsed)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// For any label over the label alphabet and body without ')', parsing
	// "@" + label + "(" + body + ")" yields the label and the trimmed body.
	labels := []string{"a", "A9", "_x", "sai_acl", "l0ng_1abel_42"}
	bodies := []string{"", "x", " padded ", "a, b", "\ttabbed\t", "UPPER lower 0123"}
	for _, label := range labels {
		for _, body := range bodies {
			input := "@" + label + "(" + body + ")"
			parsed, err := annotation.Parse(input)
			require.NoError(t, err, "input: %q", input)
			assert.Equal(t, label, parsed.Label)
			assert.Equal(t, trimSpaceTab(body), parsed.Body)
		}
	}
}

func trimSpaceTab(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}

func TestParseAsArgList(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		args      []string
		assertErr assert.ErrorAssertionFunc
	}{
		{"single", "INGRESS", []string{"INGRESS"}, assert.NoError},
		{"multiple", "SAI_PACKET_ACTION_DROP, RED", []string{"SAI_PACKET_ACTION_DROP", "RED"}, assert.NoError},
		{"tabs", "a\t,\tb", []string{"a", "b"}, assert.NoError},
		{"empty", "", nil, assert.NoError},
		{"whitespace only", " \t ", nil, assert.NoError},
		{"empty token preserved", "a,,b", []string{"a", "", "b"}, assert.NoError},
		{"trailing comma", "a,", []string{"a", ""}, assert.NoError},
		{"period", "10.0.0.1", nil, assert.Error},
		{"parenthesis", "f(x)", nil, assert.Error},
		{"newline", "a,\nb", nil, assert.Error},
		{"dollar", "a$b", nil, assert.Error},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args, err := annotation.ParseAsArgList(tc.body)
			tc.assertErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, status.ErrInvalidArgument)
				return
			}
			assert.Empty(t, cmp.Diff(tc.args, args))
		})
	}
}

func TestGetBody(t *testing.T) {
	testCases := []struct {
		name        string
		label       string
		annotations []string
		body        string
		wantErr     error
	}{
		{
			name:        "unique match",
			label:       "sai_acl",
			annotations: []string{"@sai_acl(INGRESS)", "@sai_action(SAI_PACKET_ACTION_DROP, RED)"},
			body:        "INGRESS",
		},
		{
			name:        "whitespace insensitive",
			label:       "sai_acl",
			annotations: []string{"@sai_acl ( INGRESS )"},
			body:        "INGRESS",
		},
		{
			name:        "multiple matches",
			label:       "sai_acl",
			annotations: []string{"@sai_acl(A)", "@sai_acl(B)"},
			wantErr:     status.ErrInvalidArgument,
		},
		{
			name:        "no annotations",
			label:       "sai_acl",
			annotations: []string{},
			wantErr:     status.ErrNotFound,
		},
		{
			name:        "no matching label",
			label:       "sai_acl",
			annotations: []string{"@other(x)"},
			wantErr:     status.ErrNotFound,
		},
		{
			name:        "malformed annotations are skipped",
			label:       "sai_acl",
			annotations: []string{"not an annotation", "@@", "@sai_acl(INGRESS)"},
			body:        "INGRESS",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, err := annotation.GetBody(tc.label, tc.annotations)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.body, body)
		})
	}
}

func TestGetAllBodies(t *testing.T) {
	bodies, err := annotation.GetAllBodies("sai_acl",
		[]string{"@sai_acl(A)", "@other(x)", "@sai_acl(B)"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, bodies, "input order must be preserved")
}

func TestGetAsArgList(t *testing.T) {
	args, err := annotation.GetAsArgList("sai_action",
		[]string{"@sai_acl(INGRESS)", "@sai_action(SAI_PACKET_ACTION_DROP, RED)"})
	require.NoError(t, err)
	assert.Equal(t, []string{"SAI_PACKET_ACTION_DROP", "RED"}, args)
}

func TestGetAsArgListEmptyBody(t *testing.T) {
	args, err := annotation.GetAsArgList("sai_acl", []string{"@sai_acl()"})
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestGetAllAsArgLists(t *testing.T) {
	lists, err := annotation.GetAllAsArgLists("sai_action",
		[]string{"@sai_action(DROP, RED)", "@sai_action(FORWARD)"})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([][]string{{"DROP", "RED"}, {"FORWARD"}}, lists))
}

func TestGetParsedSurfacesParserError(t *testing.T) {
	_, err := annotation.GetAsArgList("sai_acl", []string{"@sai_acl(10.0.0.1)"})
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "@sai_acl(10.0.0.1)",
		"the diagnostic must quote the offending annotation")
}

func TestGetParsedCustomParser(t *testing.T) {
	atoi := func(body string) (int, error) {
		n := 0
		for _, r := range body {
			if r < '0' || r > '9' {
				return 0, status.InvalidArgument("not a number", "body", body)
			}
			n = n*10 + int(r-'0')
		}
		return n, nil
	}
	value, err := annotation.GetParsed("priority", []string{"@priority(42)"}, atoi)
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	_, err = annotation.GetParsed("priority", []string{"@priority(abc)"}, atoi)
	assert.ErrorIs(t, err, status.ErrInvalidArgument)
}
