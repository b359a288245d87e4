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

// Package protoname maps P4 object names to the names of the protobuf
// messages and fields representing them.
package protoname

import (
	"github.com/iancoleman/strcase"
)

// MessageName returns the protobuf message name for a P4 object name:
// lower_snake_case becomes UpperCamelCase.
func MessageName(p4Name string) string {
	return strcase.ToCamel(p4Name)
}

// FieldName returns the protobuf field name for a P4 object name. Protobuf
// field names use lower_snake_case as well, so the name is unchanged.
func FieldName(p4Name string) string {
	return p4Name
}
