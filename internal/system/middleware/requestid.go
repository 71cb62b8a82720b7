/*
 * Copyright (c) 2025, the KeyRelay project.
 *
 * The KeyRelay project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	serverconst "github.com/keyrelay/keyrelay/internal/system/constants"
)

type requestIDContextKey struct{}

// WithRequestID ensures every request carries a correlation identifier. An
// inbound X-Request-Id is propagated; otherwise a new one is generated. The
// identifier is echoed in the response and stored in the request context.
func WithRequestID(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(serverconst.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(serverconst.RequestIDHeaderName, requestID)
		ctx := context.WithValue(r.Context(), requestIDContextKey{}, requestID)
		handler(w, r.WithContext(ctx))
	}
}

// RequestIDFromContext returns the request identifier stored in the context,
// or an empty string when none is present.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDContextKey{}).(string); ok {
		return requestID
	}
	return ""
}
