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

package auth

import (
	"encoding/json"
	"net/http"

	"github.com/keyrelay/keyrelay/internal/auth/constants"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
	"github.com/keyrelay/keyrelay/internal/system/log"
)

// upstreamErrorResponse is the error body of the upstream provider.
type upstreamErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// translateErrorResponse classifies an upstream response into the gateway's
// stable error surface. A nil result means the calling handler may consume
// the body as a success. The upstream error vocabulary is only trusted for
// bad request responses; every other failing status collapses to a fixed
// error so gateway clients never couple to provider specific codes.
func translateErrorResponse(resp *UpstreamResponse) *serviceerror.ServiceError {
	switch {
	case resp.StatusCode == http.StatusBadRequest:
		var upstreamErr upstreamErrorResponse
		if err := json.Unmarshal(resp.Body, &upstreamErr); err != nil {
			log.GetLogger().Error("Failed to parse upstream error response", log.Error(err))
			return &constants.ErrorUnexpectedServerError
		}
		return &serviceerror.ServiceError{
			Kind:             serviceerror.KindValidation,
			Type:             serviceerror.ClientErrorType,
			Code:             upstreamErr.Error,
			Error:            "Validation error",
			ErrorDescription: upstreamErr.ErrorDescription,
		}
	case resp.StatusCode == http.StatusUnauthorized:
		return &constants.ErrorUpstreamUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return &constants.ErrorUpstreamForbidden
	case resp.StatusCode == http.StatusConflict:
		return &constants.ErrorUpstreamConflict
	case resp.StatusCode > http.StatusForbidden:
		return &constants.ErrorUnexpectedServerError
	default:
		return nil
	}
}

// decodeSuccessBody parses the body of a success-eligible upstream response.
// A parsing failure is itself an internal error.
func decodeSuccessBody(resp *UpstreamResponse, value interface{}) *serviceerror.ServiceError {
	if err := json.Unmarshal(resp.Body, value); err != nil {
		log.GetLogger().Error("Failed to parse upstream response body", log.Error(err))
		return &constants.ErrorUnexpectedServerError
	}
	return nil
}
