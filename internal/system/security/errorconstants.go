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

package security

import "github.com/keyrelay/keyrelay/internal/system/error/serviceerror"

// Client errors for the access gate.
var (
	// ErrorInvalidAPIKey is the error when the API key is missing or not allow-listed.
	ErrorInvalidAPIKey = serviceerror.ServiceError{
		Kind:             serviceerror.KindUnauthorized,
		Type:             serviceerror.ClientErrorType,
		Code:             "SEC-1001",
		Error:            "Unauthorized",
		ErrorDescription: "The provided API key is not authorized to access this API",
	}
	// ErrorDisallowedIPAddress is the error when the source IP is not allow-listed.
	ErrorDisallowedIPAddress = serviceerror.ServiceError{
		Kind:             serviceerror.KindForbidden,
		Type:             serviceerror.ClientErrorType,
		Code:             "SEC-1002",
		Error:            "Forbidden",
		ErrorDescription: "Requests from this address are not allowed",
	}
)
