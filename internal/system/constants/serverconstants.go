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

// Package constants defines server wide constant values.
package constants

const (
	// ContentTypeHeaderName is the name of the Content-Type header.
	ContentTypeHeaderName = "Content-Type"
	// AcceptHeaderName is the name of the Accept header.
	AcceptHeaderName = "Accept"
	// AuthorizationHeaderName is the name of the Authorization header.
	AuthorizationHeaderName = "Authorization"
	// APIKeyHeaderName is the name of the header carrying the gateway API key.
	APIKeyHeaderName = "api_key"
	// ApplicationHeaderName is the name of the header carrying the realm in context.
	ApplicationHeaderName = "application"
	// RequestIDHeaderName is the name of the request correlation header.
	RequestIDHeaderName = "X-Request-Id"

	// ContentTypeJSON is the JSON content type value.
	ContentTypeJSON = "application/json"
	// ContentTypeFormURLEncoded is the form url encoded content type value.
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"

	// TokenTypeBearer is the bearer token type prefix.
	TokenTypeBearer = "Bearer"
)
