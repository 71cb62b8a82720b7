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

// Package handler provides the HTTP handlers for the auth gateway API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/keyrelay/keyrelay/internal/auth"
	"github.com/keyrelay/keyrelay/internal/auth/constants"
	"github.com/keyrelay/keyrelay/internal/auth/model"
	serverconst "github.com/keyrelay/keyrelay/internal/system/constants"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
	"github.com/keyrelay/keyrelay/internal/system/log"
	"github.com/keyrelay/keyrelay/internal/system/utils"
)

const loggerComponentName = "AuthHandler"

// AuthHandler handles the HTTP requests of the auth gateway API.
type AuthHandler struct {
	service auth.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler with the given service.
func NewAuthHandler(service auth.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// HandleDeviceAuthorizationRequest handles the device authorization request.
func (h *AuthHandler) HandleDeviceAuthorizationRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.AuthorizeDevicePayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "clientId", payload.ClientID)
	fieldErrs = requiredString(fieldErrs, "clientSecret", payload.ClientSecret)
	fieldErrs = requiredString(fieldErrs, "scope", payload.Scope)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	data, svcErr := h.service.AuthorizeDevice(r.Context(), realm, payload)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.AuthorizeDeviceResponse{Data: *data})
}

// HandleGetTokensRequest handles the token retrieval request for a device code.
func (h *AuthHandler) HandleGetTokensRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.GetTokensPayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "deviceCode", payload.DeviceCode)
	fieldErrs = requiredString(fieldErrs, "clientId", payload.ClientID)
	fieldErrs = requiredString(fieldErrs, "clientSecret", payload.ClientSecret)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	data, svcErr := h.service.GetAuthTokens(r.Context(), realm, payload)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.GetTokensResponse{Data: *data})
}

// HandleTokenRefreshRequest handles the access token refresh request.
func (h *AuthHandler) HandleTokenRefreshRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.GetNewAccessTokenPayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "refreshToken", payload.RefreshToken)
	fieldErrs = requiredString(fieldErrs, "clientId", payload.ClientID)
	fieldErrs = requiredString(fieldErrs, "clientSecret", payload.ClientSecret)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	data, svcErr := h.service.GetNewAccessToken(r.Context(), realm, payload)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.GetNewAccessTokenResponse{Data: *data})
}

// HandleTokenValidationRequest handles the access token validation request.
func (h *AuthHandler) HandleTokenValidationRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}
	authorization, svcErr := authorizationFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.ValidateAccessTokenPayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	// expectedScope is allowed to be blank so callers can probe token
	// activity without binding to a scope.
	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "clientId", payload.ClientID)
	fieldErrs = requiredString(fieldErrs, "clientSecret", payload.ClientSecret)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	data, svcErr := h.service.ValidateAccessToken(r.Context(), realm, authorization, payload)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.ValidateAccessTokenResponse{Data: *data})
}

// HandleTokensForCredentialsRequest handles the client credentials token request.
func (h *AuthHandler) HandleTokensForCredentialsRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.GetTokensForCredentialsPayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "clientId", payload.ClientID)
	fieldErrs = requiredString(fieldErrs, "clientSecret", payload.ClientSecret)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	data, svcErr := h.service.GetAuthTokensForCredentials(r.Context(), realm, payload)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.GetTokensForCredentialsResponse{Data: *data})
}

// HandleUserBasicDataRequest handles the user basic data retrieval request.
func (h *AuthHandler) HandleUserBasicDataRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}
	authorization, svcErr := authorizationFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.UserBasicDataPayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "clientId", payload.ClientID)
	fieldErrs = requiredString(fieldErrs, "clientSecret", payload.ClientSecret)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	data, svcErr := h.service.GetUserBasicData(r.Context(), realm, authorization, payload)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.UserBasicDataResponse{Data: *data})
}

// HandleUserRegistrationRequest handles the user registration request.
func (h *AuthHandler) HandleUserRegistrationRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}
	authorization, svcErr := authorizationFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.RegisterUserPayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "username", payload.Username)
	fieldErrs = requiredString(fieldErrs, "firstName", payload.FirstName)
	fieldErrs = requiredString(fieldErrs, "lastName", payload.LastName)
	fieldErrs = requiredString(fieldErrs, "email", payload.Email)
	fieldErrs = requiredString(fieldErrs, "password", payload.Password)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	if svcErr := h.service.RegisterNewUser(r.Context(), realm, authorization, payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.RegisterUserResponse{Registered: true})
}

// HandleLoginRequest handles the password grant login request.
func (h *AuthHandler) HandleLoginRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.LoginUserPayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "clientId", payload.ClientID)
	fieldErrs = requiredString(fieldErrs, "clientSecret", payload.ClientSecret)
	fieldErrs = requiredString(fieldErrs, "username", payload.Username)
	fieldErrs = requiredString(fieldErrs, "password", payload.Password)
	fieldErrs = requiredString(fieldErrs, "scope", payload.Scope)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	data, svcErr := h.service.LoginUser(r.Context(), realm, payload)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.LoginUserResponse{Data: *data})
}

// HandleLogoutRequest handles the session logout request for a user.
func (h *AuthHandler) HandleLogoutRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}
	authorization, svcErr := authorizationFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	userID := r.PathValue("user_id")
	if svcErr := h.service.LogoutUser(r.Context(), realm, authorization, userID); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.LogoutResponse{LoggedOut: true})
}

// HandleResetPasswordEmailRequest handles the reset password email trigger request.
func (h *AuthHandler) HandleResetPasswordEmailRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}
	authorization, svcErr := authorizationFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	userID := r.PathValue("user_id")
	if svcErr := h.service.SendResetPasswordEmail(r.Context(), realm, authorization, userID); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.SendResetPasswordEmailResponse{EmailSent: true})
}

// HandleUserLookupRequest handles the user lookup by email request.
func (h *AuthHandler) HandleUserLookupRequest(w http.ResponseWriter, r *http.Request) {
	realm, svcErr := realmFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}
	authorization, svcErr := authorizationFromRequest(r)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var payload model.UserLookupPayload
	if svcErr := decodeRequestBody(r, &payload); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	var fieldErrs []fieldError
	fieldErrs = requiredString(fieldErrs, "email", payload.Email)
	if svcErr := validationError(fieldErrs); svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	data, svcErr := h.service.FindUserByEmail(r.Context(), realm, authorization, payload.Email)
	if svcErr != nil {
		utils.WriteServiceError(w, svcErr)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, model.UserLookupResponse{Data: *data})
}

// realmFromRequest extracts the upstream realm from the application header.
func realmFromRequest(r *http.Request) (string, *serviceerror.ServiceError) {
	realm := r.Header.Get(serverconst.ApplicationHeaderName)
	if realm == "" {
		return "", &constants.ErrorMissingRealm
	}
	return realm, nil
}

// authorizationFromRequest extracts the authorization header value.
func authorizationFromRequest(r *http.Request) (string, *serviceerror.ServiceError) {
	authorization := r.Header.Get(serverconst.AuthorizationHeaderName)
	if authorization == "" {
		return "", &constants.ErrorMissingAuthorization
	}
	return authorization, nil
}

// decodeRequestBody decodes the JSON request body into the given value.
func decodeRequestBody(r *http.Request, value interface{}) *serviceerror.ServiceError {
	if err := json.NewDecoder(r.Body).Decode(value); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Debug("Failed to decode request body", log.Error(err))
		return &constants.ErrorMalformedRequestBody
	}
	return nil
}
