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

// Package serviceerror defines the error structures for the service layer.
package serviceerror

import "net/http"

// ServiceErrorType defines the type of service error.
type ServiceErrorType string

const (
	// ClientErrorType denotes the client error type.
	ClientErrorType ServiceErrorType = "client_error"
	// ServerErrorType denotes the server error type.
	ServerErrorType ServiceErrorType = "server_error"
)

// ServiceErrorKind classifies a service error into the gateway's stable error surface.
type ServiceErrorKind string

const (
	// KindValidation denotes a request the upstream provider rejected as invalid.
	KindValidation ServiceErrorKind = "validation"
	// KindUnauthorized denotes a failed authentication.
	KindUnauthorized ServiceErrorKind = "unauthorized"
	// KindForbidden denotes a denied authorization.
	KindForbidden ServiceErrorKind = "forbidden"
	// KindConflict denotes a conflicting resource state.
	KindConflict ServiceErrorKind = "conflict"
	// KindNetwork denotes a connection or timeout failure reaching the upstream provider.
	KindNetwork ServiceErrorKind = "network"
	// KindInternal denotes an unexpected server failure.
	KindInternal ServiceErrorKind = "internal"
)

// ServiceError defines a generic error structure that can be used across the service layer.
type ServiceError struct {
	Kind             ServiceErrorKind `json:"-"`
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

// StatusForKind returns the HTTP status code the given error kind maps to.
// The network kind is surfaced as an internal error at the boundary.
func StatusForKind(kind ServiceErrorKind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CustomServiceError returns a copy of the given error with a custom description.
func CustomServiceError(err ServiceError, description string) *ServiceError {
	custom := err
	custom.ErrorDescription = description
	return &custom
}
