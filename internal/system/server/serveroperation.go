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

// Package server provides server wide operations and utilities.
package server

import (
	"net/http"

	"github.com/keyrelay/keyrelay/internal/system/middleware"
	"github.com/keyrelay/keyrelay/internal/system/security"
	"github.com/keyrelay/keyrelay/internal/system/utils"
)

// Cors holds the CORS options applied to a wrapped route.
type Cors struct {
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials bool
}

// RequestWrapOptions holds the options applied when wrapping a route.
type RequestWrapOptions struct {
	Cors *Cors
	// Secured routes run the access gate before the handler.
	Secured bool
}

// ServerOperationServiceInterface defines the contract for route wrapping operations.
type ServerOperationServiceInterface interface {
	WrapHandleFunction(mux *http.ServeMux, pattern string, opts *RequestWrapOptions,
		handler func(http.ResponseWriter, *http.Request))
}

// serverOperationService is the default implementation of ServerOperationServiceInterface.
type serverOperationService struct {
	gate security.AccessGateInterface
}

// NewServerOperationService creates a new server operation service with the given access gate.
func NewServerOperationService(gate security.AccessGateInterface) ServerOperationServiceInterface {
	return &serverOperationService{
		gate: gate,
	}
}

// WrapHandleFunction registers the handler on the mux with request correlation,
// CORS headers and, for secured routes, the access gate applied in order.
func (s *serverOperationService) WrapHandleFunction(mux *http.ServeMux, pattern string,
	opts *RequestWrapOptions, handler func(http.ResponseWriter, *http.Request)) {
	wrapped := handler

	if opts != nil && opts.Secured {
		wrapped = s.withAccessGate(wrapped)
	}
	if opts != nil && opts.Cors != nil {
		wrapped = middleware.WithCORS(wrapped, middleware.CORSOptions{
			AllowedMethods:   opts.Cors.AllowedMethods,
			AllowedHeaders:   opts.Cors.AllowedHeaders,
			AllowCredentials: opts.Cors.AllowCredentials,
		})
	}
	wrapped = middleware.WithRequestID(wrapped)

	mux.HandleFunc(pattern, wrapped)
}

// withAccessGate short-circuits the request when the access gate rejects it.
func (s *serverOperationService) withAccessGate(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svcErr := s.gate.Check(r); svcErr != nil {
			utils.WriteServiceError(w, svcErr)
			return
		}
		handler(w, r)
	}
}
