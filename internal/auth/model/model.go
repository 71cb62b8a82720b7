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

// Package model defines the request and response records for the auth gateway operations.
// All records are transient and scoped to a single request.
package model

// AuthorizeDevicePayload is the payload to start the device authorization flow.
type AuthorizeDevicePayload struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	Scope        string `json:"scope"`
}

// AuthorizeDeviceResponseData carries the device authorization result.
type AuthorizeDeviceResponseData struct {
	DeviceCode      string `json:"deviceCode"`
	UserCode        string `json:"userCode"`
	ExpiresIn       int    `json:"expiresIn"`
	Interval        int    `json:"interval"`
	VerificationURI string `json:"verificationURI"`
}

// AuthorizeDeviceResponse is the device authorization response envelope.
type AuthorizeDeviceResponse struct {
	Data AuthorizeDeviceResponseData `json:"data"`
}

// GetTokensPayload is the payload to redeem a device code for tokens.
type GetTokensPayload struct {
	DeviceCode   string `json:"deviceCode"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// GetTokensResponseData carries a full token set.
type GetTokensResponseData struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
}

// GetTokensResponse is the token set response envelope.
type GetTokensResponse struct {
	Data GetTokensResponseData `json:"data"`
}

// GetNewAccessTokenPayload is the payload to refresh an access token.
type GetNewAccessTokenPayload struct {
	RefreshToken string `json:"refreshToken"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// GetNewAccessTokenResponseData carries the refreshed access token.
// The refresh token grant does not return a new refresh token.
type GetNewAccessTokenResponseData struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// GetNewAccessTokenResponse is the refreshed access token response envelope.
type GetNewAccessTokenResponse struct {
	Data GetNewAccessTokenResponseData `json:"data"`
}

// GetTokensForCredentialsPayload is the payload for the client credentials grant.
type GetTokensForCredentialsPayload struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	Scope        string `json:"scope"`
}

// GetTokensForCredentialsResponseData carries the client credentials grant result.
type GetTokensForCredentialsResponseData struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// GetTokensForCredentialsResponse is the client credentials grant response envelope.
type GetTokensForCredentialsResponse struct {
	Data GetTokensForCredentialsResponseData `json:"data"`
}

// ValidateAccessTokenPayload is the payload to validate an access token against a scope.
type ValidateAccessTokenPayload struct {
	ClientID      string `json:"clientId"`
	ClientSecret  string `json:"clientSecret"`
	ExpectedScope string `json:"expectedScope"`
}

// ValidateAccessTokenResponseData carries the derived validation outcome.
// IsValid and IsAuthorized are computed independently of each other.
type ValidateAccessTokenResponseData struct {
	IsValid       bool   `json:"isValid"`
	IsAuthorized  bool   `json:"isAuthorized"`
	ExpectedScope string `json:"expectedScope"`
}

// ValidateAccessTokenResponse is the token validation response envelope.
type ValidateAccessTokenResponse struct {
	Data ValidateAccessTokenResponseData `json:"data"`
}

// UserBasicDataPayload is the payload to retrieve the basic data of the token's user.
type UserBasicDataPayload struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// UserBasicData carries the identity claims of the token's user.
// Missing claims default to their zero values.
type UserBasicData struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Active        bool   `json:"active"`
	EmailVerified bool   `json:"emailVerified"`
}

// UserBasicDataResponse is the user basic data response envelope.
type UserBasicDataResponse struct {
	Data UserBasicData `json:"data"`
}

// RegisterUserPayload is the payload to register a new user.
type RegisterUserPayload struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RegisterUserResponse is the user registration response.
type RegisterUserResponse struct {
	Registered bool `json:"registered"`
}

// LoginUserPayload is the payload for the password grant login.
type LoginUserPayload struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Scope        string `json:"scope"`
}

// LoginUserResponse is the login response envelope.
type LoginUserResponse struct {
	Data GetTokensResponseData `json:"data"`
}

// LogoutResponse is the logout response.
type LogoutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}

// SendResetPasswordEmailResponse is the reset password email response.
type SendResetPasswordEmailResponse struct {
	EmailSent bool `json:"emailSent"`
}

// UserLookupPayload is the payload to look up an upstream user by email.
type UserLookupPayload struct {
	Email string `json:"email"`
}

// UserLookupData carries the matched upstream user.
type UserLookupData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserLookupResponse is the user lookup response envelope.
type UserLookupResponse struct {
	Data UserLookupData `json:"data"`
}
