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

package httpx

import (
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"seglint.dev/seglint"
	"seglint.dev/seglint/adapter"
	"seglint.dev/seglint/field"
)

// Meta carries extra context the HTTP layer can add on top of a violation.
// All fields are optional and typically come from the request handler that
// knows which input field was being validated.
type Meta struct {
	// Field is the path of the input field the validated value came from.
	Field field.Path

	// Correlation is a client/server correlation token (request ID,
	// idempotency key). When set it is echoed in an X-Correlation-Id header.
	Correlation string
}

// Writer turns a linter violation into an HTTP error response carrying a
// google.rpc.Status body with BadRequest and ErrorInfo details.
type Writer struct {
	// Status is the HTTP status code to write. Zero means 400 Bad Request.
	Status int
}

// Write serializes the violation as a google.rpc.Status JSON body and writes
// it to the response writer. A nil violation writes nothing.
//
// No redaction or filtering is performed here: whatever is present in the
// violation and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, v *seglint.Violation, meta Meta) {
	if v == nil {
		return
	}

	status := w.Status
	if status == 0 {
		status = http.StatusBadRequest
	}

	st := &spb.Status{
		Code:    int32(codes.InvalidArgument),
		Message: v.Error(),
	}
	if br := badRequestDetail(v, meta.Field); br != nil {
		st.Details = append(st.Details, br)
	}
	if ei, err := anypb.New(adapter.ToErrorInfo(v)); err == nil {
		st.Details = append(st.Details, ei)
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.Correlation != "" {
		rw.Header().Set("X-Correlation-Id", meta.Correlation)
	}
	rw.WriteHeader(status)

	// protojson keeps json_name field casing and encodes the Any details
	// with their @type discriminators; encoding/json would mangle both.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}).Marshal(st)
	_, _ = rw.Write(b)
}

func badRequestDetail(v *seglint.Violation, path field.Path) *anypb.Any {
	fv := adapter.ToFieldViolation(v, path)
	if fv == nil {
		return nil
	}
	br, err := anypb.New(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{fv},
	})
	if err != nil {
		return nil
	}
	return br
}
