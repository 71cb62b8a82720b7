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

// Package constants defines constant values for the auth gateway operations.
package constants

// Upstream API paths.
const (
	RealmsPath      = "/realms/"
	AdminRealmsPath = "/admin/realms/"

	DeviceAuthPath = "/protocol/openid-connect/auth/device"
	TokenPath      = "/protocol/openid-connect/token"
	IntrospectPath = "/protocol/openid-connect/token/introspect"

	UsersPath                = "/users"
	LogoutPathSuffix         = "/logout"
	ResetPasswordEmailSuffix = "/reset-password-email"
)

// Grant types.
const (
	GrantTypeDeviceCode        = "device_code"
	GrantTypeRefreshToken      = "refresh_token"
	GrantTypeClientCredentials = "client_credentials"
	GrantTypePassword          = "password"
)

// Upstream request parameters.
const (
	RequestParamClientID     = "client_id"
	RequestParamClientSecret = "client_secret"
	RequestParamScope        = "scope"
	RequestParamGrantType    = "grant_type"
	RequestParamDeviceCode   = "device_code"
	RequestParamRefreshToken = "refresh_token"
	RequestParamToken        = "token"
	RequestParamUsername     = "username"
	RequestParamPassword     = "password"
	RequestParamEmail        = "email"
)

// Introspection response properties.
const (
	ActiveProperty        = "active"
	ScopeProperty         = "scope"
	UsernameProperty      = "username"
	EmailProperty         = "email"
	FullNameProperty      = "name"
	FirstNameProperty     = "given_name"
	LastNameProperty      = "family_name"
	EmailVerifiedProperty = "email_verified"

	ScopesSeparator = " "
)

// BearerPortion is the bearer prefix removed from inbound authorization header values.
const BearerPortion = "Bearer "

// UserBasicDataExpectedScope is the fixed scope the user basic data operation
// introspects with. The value is only a vehicle for retrieving identity claims
// and is not meaningful to the caller.
const UserBasicDataExpectedScope = "email"

// Route paths.
const (
	AuthRoutePrefix = "/auth"

	DeviceRoutePath               = "/auth/device"
	TokensRoutePath               = "/auth/tokens"
	TokenRefreshRoutePath         = "/auth/token/refresh"
	TokenValidateRoutePath        = "/auth/token/validate"
	TokensForCredentialsRoutePath = "/auth/tokens/for-credentials"
	RegisterRoutePath             = "/auth/register"
	LoginRoutePath                = "/auth/login"
	LogoutRoutePath               = "/auth/{user_id}/logout"
	ResetPasswordEmailRoutePath   = "/auth/{user_id}/reset-password-email"
	UserBasicDataRoutePath        = "/auth/user-basic-data"
	UserLookupRoutePath           = "/auth/user/lookup"
)

// ErrorCodeInvalidRequest is the machine code attached to inbound validation failures.
const ErrorCodeInvalidRequest = "invalid_request"
