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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"seglint.dev/seglint"
	"seglint.dev/seglint/errcode"
	"seglint.dev/seglint/field"
)

func TestWriter_Write(t *testing.T) {
	v := seglint.New(errcode.NotISO3166,
		"value is not an ISO 3166 num-3 country code",
		seglint.WithWholeSpanOption("999"),
	)

	rec := httptest.NewRecorder()
	Writer{}.Write(rec, v, Meta{
		Field:       field.Path("shipment.origin.country"),
		Correlation: "req-123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req-123", rec.Header().Get("X-Correlation-Id"))

	var st spb.Status
	require.NoError(t, protojson.Unmarshal(rec.Body.Bytes(), &st))
	assert.Contains(t, st.GetMessage(), "not_iso3166")
	require.Len(t, st.GetDetails(), 2)

	body := rec.Body.String()
	assert.Contains(t, body, "google.rpc.BadRequest")
	assert.Contains(t, body, "google.rpc.ErrorInfo")
	assert.Contains(t, body, "shipment.origin.country")
	assert.Contains(t, body, "NOT_ISO3166")
}

func TestWriter_CustomStatus(t *testing.T) {
	v := seglint.New(errcode.IllegalHour, "hour must be 00-23",
		seglint.WithSpanOption(0, 2),
	)

	rec := httptest.NewRecorder()
	Writer{Status: http.StatusUnprocessableEntity}.Write(rec, v, Meta{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Correlation-Id"))
}

func TestWriter_NilViolationWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, nil, Meta{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
