/*
   Copyright 2026 The Seglint Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"seglint.dev/seglint"
	"seglint.dev/seglint/apis"
	"seglint.dev/seglint/field"
)

// errorDomain identifies this library in ErrorInfo payloads.
const errorDomain = "seglint.dev"

// ToView converts a violation into a public ViolationView bound to the given
// field path. This function performs no redaction or filtering; it exposes
// exactly what the violation contains.
func ToView(v *seglint.Violation, path field.Path) apis.ViolationView {
	if v == nil {
		return apis.ViolationView{}
	}
	return apis.ViolationView{
		Code:    string(v.Code),
		Field:   string(path),
		Span:    v.Span,
		Message: v.Message,
	}
}

// ToFieldViolation converts a violation into a google.rpc.BadRequest field
// violation. The span is appended to the description so clients without
// structured-detail support still learn which bytes failed.
func ToFieldViolation(v *seglint.Violation, path field.Path) *errdetails.BadRequest_FieldViolation {
	if v == nil {
		return nil
	}
	return &errdetails.BadRequest_FieldViolation{
		Field:       string(path),
		Description: fmt.Sprintf("%s (offset %d, length %d)", v.Message, v.Span.Offset, v.Span.Length),
	}
}

// ToErrorInfo converts a violation into a google.rpc.ErrorInfo. The reason
// is the violation code uppercased to satisfy the ErrorInfo reason format;
// the span lands in metadata under "offset" and "length".
func ToErrorInfo(v *seglint.Violation) *errdetails.ErrorInfo {
	if v == nil {
		return nil
	}
	return &errdetails.ErrorInfo{
		Reason: strings.ToUpper(string(v.Code)),
		Domain: errorDomain,
		Metadata: map[string]string{
			"offset": strconv.Itoa(v.Span.Offset),
			"length": strconv.Itoa(v.Span.Length),
		},
	}
}
