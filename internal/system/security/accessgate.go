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

// Package security implements the access gate that guards every gateway route.
package security

import (
	"net/http"

	serverconst "github.com/keyrelay/keyrelay/internal/system/constants"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
	"github.com/keyrelay/keyrelay/internal/system/log"
	"github.com/keyrelay/keyrelay/internal/system/utils"
)

const loggerComponentName = "AccessGate"

// AccessGateInterface verifies API key membership and the source IP allow-list
// before any operation handler runs.
type AccessGateInterface interface {
	Check(r *http.Request) *serviceerror.ServiceError
}

// accessGate is the default implementation of AccessGateInterface.
type accessGate struct {
	allowedAPIKeys     []string
	allowedIPAddresses []string
}

// NewAccessGate creates a new access gate with the given allow-lists.
func NewAccessGate(allowedAPIKeys, allowedIPAddresses []string) AccessGateInterface {
	return &accessGate{
		allowedAPIKeys:     allowedAPIKeys,
		allowedIPAddresses: allowedIPAddresses,
	}
}

// Check validates the API key and source IP of the request. A missing or
// unknown API key is an authentication failure; a known key from a disallowed
// address is an authorization failure.
func (g *accessGate) Check(r *http.Request) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	apiKey := r.Header.Get(serverconst.APIKeyHeaderName)
	if apiKey == "" || !utils.StringInSlice(apiKey, g.allowedAPIKeys) {
		logger.Debug("Rejected request with unknown API key", log.String("apiKey", log.MaskString(apiKey)))
		return &ErrorInvalidAPIKey
	}

	remoteIP := utils.RemoteIP(r)
	if !utils.StringInSlice(remoteIP, g.allowedIPAddresses) {
		logger.Debug("Rejected request from disallowed address", log.String("remoteIp", remoteIP))
		return &ErrorDisallowedIPAddress
	}

	return nil
}
