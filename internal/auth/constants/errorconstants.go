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

package constants

import "github.com/keyrelay/keyrelay/internal/system/error/serviceerror"

// Client errors for the auth gateway operations.
var (
	// ErrorMissingRealm is the error when the application header is absent.
	ErrorMissingRealm = serviceerror.ServiceError{
		Kind:             serviceerror.KindValidation,
		Type:             serviceerror.ClientErrorType,
		Code:             ErrorCodeInvalidRequest,
		Error:            "Invalid request",
		ErrorDescription: "header.application: field is required",
	}
	// ErrorInvalidRequest is the base error for request validation failures.
	// The field details are attached per request via serviceerror.CustomServiceError.
	ErrorInvalidRequest = serviceerror.ServiceError{
		Kind:  serviceerror.KindValidation,
		Type:  serviceerror.ClientErrorType,
		Code:  ErrorCodeInvalidRequest,
		Error: "Invalid request",
	}
	// ErrorMissingAuthorization is the error when the authorization header is absent.
	ErrorMissingAuthorization = serviceerror.ServiceError{
		Kind:             serviceerror.KindValidation,
		Type:             serviceerror.ClientErrorType,
		Code:             ErrorCodeInvalidRequest,
		Error:            "Invalid request",
		ErrorDescription: "header.authorization: field is required",
	}
	// ErrorMalformedRequestBody is the error when the request body cannot be decoded.
	ErrorMalformedRequestBody = serviceerror.ServiceError{
		Kind:             serviceerror.KindValidation,
		Type:             serviceerror.ClientErrorType,
		Code:             ErrorCodeInvalidRequest,
		Error:            "Invalid request",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorUpstreamUnauthorized is the error when the upstream provider rejects the credentials.
	ErrorUpstreamUnauthorized = serviceerror.ServiceError{
		Kind:             serviceerror.KindUnauthorized,
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTH-1401",
		Error:            "Unauthorized",
		ErrorDescription: "The request is not authorized",
	}
	// ErrorUpstreamForbidden is the error when the upstream provider denies the operation.
	ErrorUpstreamForbidden = serviceerror.ServiceError{
		Kind:             serviceerror.KindForbidden,
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTH-1403",
		Error:            "Forbidden",
		ErrorDescription: "The operation is not allowed",
	}
	// ErrorUpstreamConflict is the error when the upstream provider reports a conflicting state.
	ErrorUpstreamConflict = serviceerror.ServiceError{
		Kind:             serviceerror.KindConflict,
		Type:             serviceerror.ClientErrorType,
		Code:             "AUTH-1409",
		Error:            "Conflict",
		ErrorDescription: "The resource already exists",
	}
	// ErrorUserNotFound is the error when no upstream user matches the lookup.
	ErrorUserNotFound = serviceerror.ServiceError{
		Kind:             serviceerror.KindValidation,
		Type:             serviceerror.ClientErrorType,
		Code:             "user_not_found",
		Error:            "User not found",
		ErrorDescription: "No user matches the provided email",
	}
)

// Server errors for the auth gateway operations.
var (
	// ErrorUnexpectedServerError is the generic error returned for unexpected failures.
	// Upstream detail is deliberately not leaked through it.
	ErrorUnexpectedServerError = serviceerror.ServiceError{
		Kind:             serviceerror.KindInternal,
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTH-1500",
		Error:            "Internal server error",
		ErrorDescription: "Something went wrong",
	}
	// ErrorUpstreamUnreachable is the error when the upstream provider cannot be reached.
	ErrorUpstreamUnreachable = serviceerror.ServiceError{
		Kind:             serviceerror.KindNetwork,
		Type:             serviceerror.ServerErrorType,
		Code:             "AUTH-1502",
		Error:            "Upstream unreachable",
		ErrorDescription: "Something went wrong",
	}
)
