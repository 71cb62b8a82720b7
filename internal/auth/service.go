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

// Package auth implements the gateway operations against the upstream
// OpenID Connect compatible identity provider.
package auth

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/keyrelay/keyrelay/internal/auth/constants"
	"github.com/keyrelay/keyrelay/internal/auth/model"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
	"github.com/keyrelay/keyrelay/internal/system/log"
	"github.com/keyrelay/keyrelay/internal/system/utils"
)

const loggerComponentName = "AuthService"

// AuthServiceInterface defines the contract for the gateway operations.
type AuthServiceInterface interface {
	AuthorizeDevice(ctx context.Context, realm string, payload model.AuthorizeDevicePayload) (
		*model.AuthorizeDeviceResponseData, *serviceerror.ServiceError)
	GetAuthTokens(ctx context.Context, realm string, payload model.GetTokensPayload) (
		*model.GetTokensResponseData, *serviceerror.ServiceError)
	GetNewAccessToken(ctx context.Context, realm string, payload model.GetNewAccessTokenPayload) (
		*model.GetNewAccessTokenResponseData, *serviceerror.ServiceError)
	GetAuthTokensForCredentials(ctx context.Context, realm string, payload model.GetTokensForCredentialsPayload) (
		*model.GetTokensForCredentialsResponseData, *serviceerror.ServiceError)
	ValidateAccessToken(ctx context.Context, realm, authorization string, payload model.ValidateAccessTokenPayload) (
		*model.ValidateAccessTokenResponseData, *serviceerror.ServiceError)
	GetUserBasicData(ctx context.Context, realm, authorization string, payload model.UserBasicDataPayload) (
		*model.UserBasicData, *serviceerror.ServiceError)
	RegisterNewUser(ctx context.Context, realm, authorization string,
		payload model.RegisterUserPayload) *serviceerror.ServiceError
	LoginUser(ctx context.Context, realm string, payload model.LoginUserPayload) (
		*model.GetTokensResponseData, *serviceerror.ServiceError)
	LogoutUser(ctx context.Context, realm, authorization, userID string) *serviceerror.ServiceError
	SendResetPasswordEmail(ctx context.Context, realm, authorization, userID string) *serviceerror.ServiceError
	FindUserByEmail(ctx context.Context, realm, authorization, email string) (
		*model.UserLookupData, *serviceerror.ServiceError)
}

// authService is the default implementation of AuthServiceInterface.
type authService struct {
	client UpstreamClientInterface
}

// NewAuthService creates a new auth service backed by the given upstream client.
func NewAuthService(client UpstreamClientInterface) AuthServiceInterface {
	return &authService{
		client: client,
	}
}

// deviceAuthorizationResponse is the upstream device authorization body.
type deviceAuthorizationResponse struct {
	DeviceCode              string `json:"device_code"`
	UserCode                string `json:"user_code"`
	ExpiresIn               int    `json:"expires_in"`
	Interval                int    `json:"interval"`
	VerificationURIComplete string `json:"verification_uri_complete"`
}

// tokenResponse is the upstream token endpoint body.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int    `json:"expires_in"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
}

// upstreamUserRecord is a user entry returned by the upstream admin API.
type upstreamUserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthorizeDevice starts the device authorization flow for the realm in context.
// The returned verification URI is the upstream's complete variant which
// already includes the user code.
func (s *authService) AuthorizeDevice(ctx context.Context, realm string,
	payload model.AuthorizeDevicePayload) (*model.AuthorizeDeviceResponseData, *serviceerror.ServiceError) {
	resp, svcErr := s.client.AuthorizeDevice(ctx, realm, payload)
	if svcErr != nil {
		return nil, svcErr
	}
	if svcErr := translateErrorResponse(resp); svcErr != nil {
		return nil, svcErr
	}

	var body deviceAuthorizationResponse
	if svcErr := decodeSuccessBody(resp, &body); svcErr != nil {
		return nil, svcErr
	}

	return &model.AuthorizeDeviceResponseData{
		DeviceCode:      body.DeviceCode,
		UserCode:        body.UserCode,
		ExpiresIn:       body.ExpiresIn,
		Interval:        body.Interval,
		VerificationURI: body.VerificationURIComplete,
	}, nil
}

// GetAuthTokens redeems a device code for the full token set.
func (s *authService) GetAuthTokens(ctx context.Context, realm string,
	payload model.GetTokensPayload) (*model.GetTokensResponseData, *serviceerror.ServiceError) {
	resp, svcErr := s.client.GetTokens(ctx, realm, payload)
	if svcErr != nil {
		return nil, svcErr
	}
	if svcErr := translateErrorResponse(resp); svcErr != nil {
		return nil, svcErr
	}

	var body tokenResponse
	if svcErr := decodeSuccessBody(resp, &body); svcErr != nil {
		return nil, svcErr
	}

	return &model.GetTokensResponseData{
		AccessToken:      body.AccessToken,
		RefreshToken:     body.RefreshToken,
		ExpiresIn:        body.ExpiresIn,
		RefreshExpiresIn: body.RefreshExpiresIn,
	}, nil
}

// GetNewAccessToken refreshes an access token. The refresh token grant does
// not return a new refresh token, so only the access token is reshaped.
func (s *authService) GetNewAccessToken(ctx context.Context, realm string,
	payload model.GetNewAccessTokenPayload) (*model.GetNewAccessTokenResponseData, *serviceerror.ServiceError) {
	resp, svcErr := s.client.RefreshToken(ctx, realm, payload)
	if svcErr != nil {
		return nil, svcErr
	}
	if svcErr := translateErrorResponse(resp); svcErr != nil {
		return nil, svcErr
	}

	var body tokenResponse
	if svcErr := decodeSuccessBody(resp, &body); svcErr != nil {
		return nil, svcErr
	}

	return &model.GetNewAccessTokenResponseData{
		AccessToken: body.AccessToken,
		ExpiresIn:   body.ExpiresIn,
	}, nil
}

// GetAuthTokensForCredentials obtains tokens via the client credentials grant.
func (s *authService) GetAuthTokensForCredentials(ctx context.Context, realm string,
	payload model.GetTokensForCredentialsPayload) (
	*model.GetTokensForCredentialsResponseData, *serviceerror.ServiceError) {
	resp, svcErr := s.client.GetTokensForCredentials(ctx, realm, payload)
	if svcErr != nil {
		return nil, svcErr
	}
	if svcErr := translateErrorResponse(resp); svcErr != nil {
		return nil, svcErr
	}

	var body tokenResponse
	if svcErr := decodeSuccessBody(resp, &body); svcErr != nil {
		return nil, svcErr
	}

	return &model.GetTokensForCredentialsResponseData{
		AccessToken: body.AccessToken,
		ExpiresIn:   body.ExpiresIn,
	}, nil
}

// ValidateAccessToken introspects the bearer token and derives whether it is
// active and whether the expected scope is granted. Both outcomes are computed
// independently: an inactive token still has its scopes evaluated. Unlike the
// other operations this one never consults the upstream HTTP status; any
// failure while calling or parsing introspection collapses to the generic
// internal error so introspection specific failures are never leaked.
func (s *authService) ValidateAccessToken(ctx context.Context, realm, authorization string,
	payload model.ValidateAccessTokenPayload) (
	*model.ValidateAccessTokenResponseData, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyRealm, realm))

	accessToken := strings.ReplaceAll(authorization, constants.BearerPortion, "")

	resp, svcErr := s.client.IntrospectToken(ctx, realm, accessToken, payload)
	if svcErr != nil {
		logger.Debug("Introspection call failed", log.String("code", svcErr.Code))
		return nil, &constants.ErrorUnexpectedServerError
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(resp.Body, &claims); err != nil {
		logger.Debug("Failed to parse introspection response", log.Error(err))
		return nil, &constants.ErrorUnexpectedServerError
	}

	isValid := claims[constants.ActiveProperty] == true

	scopeValue, _ := claims[constants.ScopeProperty].(string)
	scopes := strings.Split(scopeValue, constants.ScopesSeparator)
	isAuthorized := utils.StringInSlice(payload.ExpectedScope, scopes)

	return &model.ValidateAccessTokenResponseData{
		IsValid:       isValid,
		IsAuthorized:  isAuthorized,
		ExpectedScope: payload.ExpectedScope,
	}, nil
}

// GetUserBasicData retrieves the identity claims of the token's user through
// introspection. The introspection is issued with a fixed expected scope; the
// value only serves claim retrieval. Unlike ValidateAccessToken this path
// gates on the upstream HTTP status through the normal translation.
func (s *authService) GetUserBasicData(ctx context.Context, realm, authorization string,
	payload model.UserBasicDataPayload) (*model.UserBasicData, *serviceerror.ServiceError) {
	accessToken := strings.ReplaceAll(authorization, constants.BearerPortion, "")

	introspectPayload := model.ValidateAccessTokenPayload{
		ClientID:      payload.ClientID,
		ClientSecret:  payload.ClientSecret,
		ExpectedScope: constants.UserBasicDataExpectedScope,
	}

	resp, svcErr := s.client.IntrospectToken(ctx, realm, accessToken, introspectPayload)
	if svcErr != nil {
		return nil, svcErr
	}
	if svcErr := translateErrorResponse(resp); svcErr != nil {
		return nil, svcErr
	}

	var claims map[string]interface{}
	if svcErr := decodeSuccessBody(resp, &claims); svcErr != nil {
		return nil, svcErr
	}

	return &model.UserBasicData{
		Username:      stringClaim(claims, constants.UsernameProperty),
		Email:         stringClaim(claims, constants.EmailProperty),
		FullName:      stringClaim(claims, constants.FullNameProperty),
		FirstName:     stringClaim(claims, constants.FirstNameProperty),
		LastName:      stringClaim(claims, constants.LastNameProperty),
		Active:        boolClaim(claims, constants.ActiveProperty),
		EmailVerified: boolClaim(claims, constants.EmailVerifiedProperty),
	}, nil
}

// RegisterNewUser creates a new upstream user. The admin authorization header
// value is forwarded exactly as supplied by the caller.
func (s *authService) RegisterNewUser(ctx context.Context, realm, authorization string,
	payload model.RegisterUserPayload) *serviceerror.ServiceError {
	resp, svcErr := s.client.RegisterUser(ctx, realm, authorization, payload)
	if svcErr != nil {
		return svcErr
	}
	return translateErrorResponse(resp)
}

// LoginUser obtains the full token set via the password grant.
func (s *authService) LoginUser(ctx context.Context, realm string,
	payload model.LoginUserPayload) (*model.GetTokensResponseData, *serviceerror.ServiceError) {
	resp, svcErr := s.client.LoginUser(ctx, realm, payload)
	if svcErr != nil {
		return nil, svcErr
	}
	if svcErr := translateErrorResponse(resp); svcErr != nil {
		return nil, svcErr
	}

	var body tokenResponse
	if svcErr := decodeSuccessBody(resp, &body); svcErr != nil {
		return nil, svcErr
	}

	return &model.GetTokensResponseData{
		AccessToken:      body.AccessToken,
		RefreshToken:     body.RefreshToken,
		ExpiresIn:        body.ExpiresIn,
		RefreshExpiresIn: body.RefreshExpiresIn,
	}, nil
}

// LogoutUser signs the given user out of all upstream sessions.
func (s *authService) LogoutUser(ctx context.Context, realm, authorization,
	userID string) *serviceerror.ServiceError {
	resp, svcErr := s.client.LogoutUser(ctx, realm, authorization, userID)
	if svcErr != nil {
		return svcErr
	}
	return translateErrorResponse(resp)
}

// SendResetPasswordEmail triggers the upstream reset password email for the given user.
func (s *authService) SendResetPasswordEmail(ctx context.Context, realm, authorization,
	userID string) *serviceerror.ServiceError {
	resp, svcErr := s.client.SendResetPasswordEmail(ctx, realm, authorization, userID)
	if svcErr != nil {
		return svcErr
	}
	return translateErrorResponse(resp)
}

// FindUserByEmail looks up the upstream user matching the given email.
func (s *authService) FindUserByEmail(ctx context.Context, realm, authorization,
	email string) (*model.UserLookupData, *serviceerror.ServiceError) {
	resp, svcErr := s.client.FindUserByEmail(ctx, realm, authorization, email)
	if svcErr != nil {
		return nil, svcErr
	}
	if svcErr := translateErrorResponse(resp); svcErr != nil {
		return nil, svcErr
	}

	var users []upstreamUserRecord
	if svcErr := decodeSuccessBody(resp, &users); svcErr != nil {
		return nil, svcErr
	}
	if len(users) == 0 {
		return nil, &constants.ErrorUserNotFound
	}

	return &model.UserLookupData{
		ID:       users[0].ID,
		Username: users[0].Username,
		Email:    users[0].Email,
	}, nil
}

// stringClaim retrieves a string claim value, defaulting to the empty string.
func stringClaim(claims map[string]interface{}, claim string) string {
	if value, ok := claims[claim].(string); ok {
		return value
	}
	return ""
}

// boolClaim retrieves a boolean claim value, defaulting to false.
func boolClaim(claims map[string]interface{}, claim string) bool {
	if value, ok := claims[claim].(bool); ok {
		return value
	}
	return false
}
