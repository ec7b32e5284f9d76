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

package grpcx

import (
	"context"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"seglint.dev/seglint"
	"seglint.dev/seglint/adapter"
	"seglint.dev/seglint/field"
)

// Meta holds optional metadata attached to the gRPC error details.
// All fields are optional.
type Meta struct {
	// Field is the path of the input field the validated value came from.
	Field field.Path
}

// MetaFn extracts Meta from context and the violation.
// It can return an empty Meta if nothing is available.
type MetaFn func(ctx context.Context, v *seglint.Violation) Meta

// UnaryServerInterceptor returns a gRPC interceptor that maps linter
// violations into InvalidArgument statuses with google.rpc.BadRequest and
// google.rpc.ErrorInfo details.
//
// The optional MetaFn supplies the field path for the BadRequest detail.
// Errors that are not violations pass through unchanged.
func UnaryServerInterceptor(metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *seglint.Violation) Meta { return Meta{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		v, ok := seglint.AsViolation(err)
		if !ok {
			// Not ours, return as-is.
			return nil, err
		}

		meta := metaFn(ctx, v)

		base := gstatus.New(gcodes.InvalidArgument, v.Error())

		br := &errdetails.BadRequest{}
		if fv := adapter.ToFieldViolation(v, meta.Field); fv != nil {
			br.FieldViolations = append(br.FieldViolations, fv)
		}

		// Attach details when possible; fall back to the bare status.
		if with, derr := base.WithDetails(br, adapter.ToErrorInfo(v)); derr == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

// ExtractBadRequest pulls a google.rpc.BadRequest detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}

// ExtractErrorInfo pulls a google.rpc.ErrorInfo detail out of a gRPC error,
// if present.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}
