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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"net"
	"net/http"

	serverconst "github.com/keyrelay/keyrelay/internal/system/constants"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
	"github.com/keyrelay/keyrelay/internal/system/log"
)

// WriteJSONResponse writes the given value as a JSON response with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, value interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.GetLogger().Error("Failed to write JSON response", log.Error(err))
	}
}

// WriteJSONError writes a JSON error envelope with the given machine code and message.
func WriteJSONError(w http.ResponseWriter, code, message string, statusCode int) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	err := json.NewEncoder(w).Encode(map[string]string{
		"code":    code,
		"message": message,
	})
	if err != nil {
		log.GetLogger().Error("Failed to write JSON error response", log.Error(err))
	}
}

// WriteServiceError writes the given service error as a JSON error envelope at the
// status its kind maps to.
func WriteServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	WriteJSONError(w, svcErr.Code, svcErr.ErrorDescription, serviceerror.StatusForKind(svcErr.Kind))
}

// RemoteIP extracts the client IP address from the request's remote address.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
