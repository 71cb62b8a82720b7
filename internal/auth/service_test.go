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

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/keyrelay/keyrelay/internal/auth"
	"github.com/keyrelay/keyrelay/internal/auth/constants"
	"github.com/keyrelay/keyrelay/internal/auth/model"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
	"github.com/keyrelay/keyrelay/tests/mocks/authmock"
)

const testRealm = "tenant-a"

type AuthServiceTestSuite struct {
	suite.Suite
	mockClient *authmock.UpstreamClientInterfaceMock
	service    auth.AuthServiceInterface
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockClient = &authmock.UpstreamClientInterfaceMock{}
	suite.service = auth.NewAuthService(suite.mockClient)
}

func (suite *AuthServiceTestSuite) TestAuthorizeDevice() {
	payload := model.AuthorizeDevicePayload{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		Scope:        "openid",
	}
	suite.mockClient.On("AuthorizeDevice", mock.Anything, testRealm, payload).Return(
		&auth.UpstreamResponse{
			StatusCode: 200,
			Body: []byte(`{"device_code": "dev-123", "user_code": "ABCD-EFGH",
				"expires_in": 600, "interval": 5,
				"verification_uri": "https://idp/verify",
				"verification_uri_complete": "https://idp/verify?user_code=ABCD-EFGH"}`),
		}, nil)

	data, svcErr := suite.service.AuthorizeDevice(context.Background(), testRealm, payload)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "dev-123", data.DeviceCode)
	assert.Equal(suite.T(), "ABCD-EFGH", data.UserCode)
	assert.Equal(suite.T(), 600, data.ExpiresIn)
	assert.Equal(suite.T(), 5, data.Interval)
	assert.Equal(suite.T(), "https://idp/verify?user_code=ABCD-EFGH", data.VerificationURI)
}

func (suite *AuthServiceTestSuite) TestAuthorizeDeviceUpstreamError() {
	payload := model.AuthorizeDevicePayload{ClientID: "client-1", ClientSecret: "bad"}
	suite.mockClient.On("AuthorizeDevice", mock.Anything, testRealm, payload).Return(
		&auth.UpstreamResponse{StatusCode: 401, Body: []byte(`{}`)}, nil)

	data, svcErr := suite.service.AuthorizeDevice(context.Background(), testRealm, payload)

	assert.Nil(suite.T(), data)
	assert.Equal(suite.T(), &constants.ErrorUpstreamUnauthorized, svcErr)
}

func (suite *AuthServiceTestSuite) TestGetAuthTokens() {
	payload := model.GetTokensPayload{
		DeviceCode:   "dev-123",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
	}
	suite.mockClient.On("GetTokens", mock.Anything, testRealm, payload).Return(
		&auth.UpstreamResponse{
			StatusCode: 200,
			Body: []byte(`{"access_token": "at-1", "refresh_token": "rt-1",
				"expires_in": 300, "refresh_expires_in": 1800}`),
		}, nil)

	data, svcErr := suite.service.GetAuthTokens(context.Background(), testRealm, payload)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "at-1", data.AccessToken)
	assert.Equal(suite.T(), "rt-1", data.RefreshToken)
	assert.Equal(suite.T(), 300, data.ExpiresIn)
	assert.Equal(suite.T(), 1800, data.RefreshExpiresIn)
}

func (suite *AuthServiceTestSuite) TestGetAuthTokensPendingAuthorization() {
	payload := model.GetTokensPayload{
		DeviceCode:   "dev-123",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
	}
	suite.mockClient.On("GetTokens", mock.Anything, testRealm, payload).Return(
		&auth.UpstreamResponse{
			StatusCode: 400,
			Body:       []byte(`{"error": "authorization_pending", "error_description": "The authorization request is still pending"}`),
		}, nil)

	data, svcErr := suite.service.GetAuthTokens(context.Background(), testRealm, payload)

	assert.Nil(suite.T(), data)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), serviceerror.KindValidation, svcErr.Kind)
	assert.Equal(suite.T(), "authorization_pending", svcErr.Code)
	assert.Equal(suite.T(), "The authorization request is still pending", svcErr.ErrorDescription)
}

func (suite *AuthServiceTestSuite) TestGetNewAccessToken() {
	payload := model.GetNewAccessTokenPayload{
		RefreshToken: "rt-1",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
	}
	suite.mockClient.On("RefreshToken", mock.Anything, testRealm, payload).Return(
		&auth.UpstreamResponse{
			StatusCode: 200,
			Body:       []byte(`{"access_token": "at-2", "expires_in": 300}`),
		}, nil)

	data, svcErr := suite.service.GetNewAccessToken(context.Background(), testRealm, payload)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "at-2", data.AccessToken)
	assert.Equal(suite.T(), 300, data.ExpiresIn)
}

func (suite *AuthServiceTestSuite) TestGetAuthTokensForCredentials() {
	payload := model.GetTokensForCredentialsPayload{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		Scope:        "gateway:read",
	}
	suite.mockClient.On("GetTokensForCredentials", mock.Anything, testRealm, payload).Return(
		&auth.UpstreamResponse{
			StatusCode: 200,
			Body:       []byte(`{"access_token": "svc-token", "expires_in": 600}`),
		}, nil)

	data, svcErr := suite.service.GetAuthTokensForCredentials(context.Background(), testRealm, payload)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "svc-token", data.AccessToken)
	assert.Equal(suite.T(), 600, data.ExpiresIn)
}

func (suite *AuthServiceTestSuite) TestValidateAccessToken() {
	testCases := []struct {
		name                 string
		introspectionBody    string
		expectedScope        string
		expectedIsValid      bool
		expectedIsAuthorized bool
	}{
		{
			name:                 "ActiveWithMatchingScope",
			introspectionBody:    `{"active": true, "scope": "openid profile email"}`,
			expectedScope:        "profile",
			expectedIsValid:      true,
			expectedIsAuthorized: true,
		},
		{
			name:                 "ActiveWithoutMatchingScope",
			introspectionBody:    `{"active": true, "scope": "openid email"}`,
			expectedScope:        "admin",
			expectedIsValid:      true,
			expectedIsAuthorized: false,
		},
		{
			name:                 "InactiveWithMatchingScope",
			introspectionBody:    `{"active": false, "scope": "openid profile"}`,
			expectedScope:        "profile",
			expectedIsValid:      false,
			expectedIsAuthorized: true,
		},
		{
			name:                 "MissingActiveClaim",
			introspectionBody:    `{"scope": "openid"}`,
			expectedScope:        "openid",
			expectedIsValid:      false,
			expectedIsAuthorized: true,
		},
		{
			name:                 "EmptyExpectedScopeWithoutScopeClaim",
			introspectionBody:    `{"active": true}`,
			expectedScope:        "",
			expectedIsValid:      true,
			expectedIsAuthorized: true,
		},
		{
			name:                 "PartialScopeNameDoesNotMatch",
			introspectionBody:    `{"active": true, "scope": "openid profiles"}`,
			expectedScope:        "profile",
			expectedIsValid:      true,
			expectedIsAuthorized: false,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			mockClient := &authmock.UpstreamClientInterfaceMock{}
			service := auth.NewAuthService(mockClient)

			payload := model.ValidateAccessTokenPayload{
				ClientID:      "client-1",
				ClientSecret:  "secret-1",
				ExpectedScope: tc.expectedScope,
			}
			mockClient.On("IntrospectToken", mock.Anything, testRealm, "raw-token", payload).Return(
				&auth.UpstreamResponse{StatusCode: 200, Body: []byte(tc.introspectionBody)}, nil)

			data, svcErr := service.ValidateAccessToken(
				context.Background(), testRealm, "Bearer raw-token", payload)

			assert.Nil(suite.T(), svcErr)
			assert.Equal(suite.T(), tc.expectedIsValid, data.IsValid)
			assert.Equal(suite.T(), tc.expectedIsAuthorized, data.IsAuthorized)
			assert.Equal(suite.T(), tc.expectedScope, data.ExpectedScope)
		})
	}
}

func (suite *AuthServiceTestSuite) TestValidateAccessTokenStripsBearerPrefix() {
	payload := model.ValidateAccessTokenPayload{
		ClientID:      "client-1",
		ClientSecret:  "secret-1",
		ExpectedScope: "openid",
	}
	suite.mockClient.On("IntrospectToken", mock.Anything, testRealm, "plain-token", payload).Return(
		&auth.UpstreamResponse{StatusCode: 200, Body: []byte(`{"active": true, "scope": "openid"}`)}, nil)

	data, svcErr := suite.service.ValidateAccessToken(
		context.Background(), testRealm, "Bearer plain-token", payload)

	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), data.IsValid)
	suite.mockClient.AssertCalled(suite.T(), "IntrospectToken",
		mock.Anything, testRealm, "plain-token", payload)
}

func (suite *AuthServiceTestSuite) TestValidateAccessTokenClientFailure() {
	payload := model.ValidateAccessTokenPayload{
		ClientID:      "client-1",
		ClientSecret:  "secret-1",
		ExpectedScope: "openid",
	}
	suite.mockClient.On("IntrospectToken", mock.Anything, testRealm, "raw-token", payload).Return(
		nil, &constants.ErrorUpstreamUnreachable)

	data, svcErr := suite.service.ValidateAccessToken(
		context.Background(), testRealm, "Bearer raw-token", payload)

	assert.Nil(suite.T(), data)
	assert.Equal(suite.T(), &constants.ErrorUnexpectedServerError, svcErr)
}

func (suite *AuthServiceTestSuite) TestValidateAccessTokenMalformedIntrospection() {
	payload := model.ValidateAccessTokenPayload{
		ClientID:      "client-1",
		ClientSecret:  "secret-1",
		ExpectedScope: "openid",
	}
	suite.mockClient.On("IntrospectToken", mock.Anything, testRealm, "raw-token", payload).Return(
		&auth.UpstreamResponse{StatusCode: 200, Body: []byte(`not json`)}, nil)

	data, svcErr := suite.service.ValidateAccessToken(
		context.Background(), testRealm, "Bearer raw-token", payload)

	assert.Nil(suite.T(), data)
	assert.Equal(suite.T(), &constants.ErrorUnexpectedServerError, svcErr)
}

func (suite *AuthServiceTestSuite) TestValidateAccessTokenIgnoresUpstreamStatus() {
	payload := model.ValidateAccessTokenPayload{
		ClientID:      "client-1",
		ClientSecret:  "secret-1",
		ExpectedScope: "openid",
	}
	suite.mockClient.On("IntrospectToken", mock.Anything, testRealm, "raw-token", payload).Return(
		&auth.UpstreamResponse{StatusCode: 401, Body: []byte(`{"active": false}`)}, nil)

	data, svcErr := suite.service.ValidateAccessToken(
		context.Background(), testRealm, "Bearer raw-token", payload)

	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), data.IsValid)
}

func (suite *AuthServiceTestSuite) TestGetUserBasicData() {
	payload := model.UserBasicDataPayload{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
	}
	introspectPayload := model.ValidateAccessTokenPayload{
		ClientID:      "client-1",
		ClientSecret:  "secret-1",
		ExpectedScope: "email",
	}
	suite.mockClient.On("IntrospectToken", mock.Anything, testRealm, "user-token", introspectPayload).Return(
		&auth.UpstreamResponse{
			StatusCode: 200,
			Body: []byte(`{"active": true, "username": "jdoe", "email": "jdoe@example.com",
				"name": "Jane Doe", "given_name": "Jane", "family_name": "Doe",
				"email_verified": true}`),
		}, nil)

	data, svcErr := suite.service.GetUserBasicData(
		context.Background(), testRealm, "Bearer user-token", payload)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "jdoe", data.Username)
	assert.Equal(suite.T(), "jdoe@example.com", data.Email)
	assert.Equal(suite.T(), "Jane Doe", data.FullName)
	assert.Equal(suite.T(), "Jane", data.FirstName)
	assert.Equal(suite.T(), "Doe", data.LastName)
	assert.True(suite.T(), data.Active)
	assert.True(suite.T(), data.EmailVerified)
}

func (suite *AuthServiceTestSuite) TestGetUserBasicDataMissingClaimsDefault() {
	payload := model.UserBasicDataPayload{ClientID: "client-1", ClientSecret: "secret-1"}
	suite.mockClient.On("IntrospectToken", mock.Anything, testRealm, "user-token",
		mock.AnythingOfType("model.ValidateAccessTokenPayload")).Return(
		&auth.UpstreamResponse{StatusCode: 200, Body: []byte(`{"username": "jdoe"}`)}, nil)

	data, svcErr := suite.service.GetUserBasicData(
		context.Background(), testRealm, "Bearer user-token", payload)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "jdoe", data.Username)
	assert.Equal(suite.T(), "", data.Email)
	assert.Equal(suite.T(), "", data.FullName)
	assert.False(suite.T(), data.Active)
	assert.False(suite.T(), data.EmailVerified)
}

func (suite *AuthServiceTestSuite) TestGetUserBasicDataUnauthorized() {
	payload := model.UserBasicDataPayload{ClientID: "client-1", ClientSecret: "secret-1"}
	suite.mockClient.On("IntrospectToken", mock.Anything, testRealm, "expired-token",
		mock.AnythingOfType("model.ValidateAccessTokenPayload")).Return(
		&auth.UpstreamResponse{StatusCode: 401, Body: []byte(`{}`)}, nil)

	data, svcErr := suite.service.GetUserBasicData(
		context.Background(), testRealm, "Bearer expired-token", payload)

	assert.Nil(suite.T(), data)
	assert.Equal(suite.T(), &constants.ErrorUpstreamUnauthorized, svcErr)
}

func (suite *AuthServiceTestSuite) TestRegisterNewUser() {
	payload := model.RegisterUserPayload{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
		Password:  "s3cret",
	}
	suite.mockClient.On("RegisterUser", mock.Anything, testRealm, "Bearer admin-token", payload).Return(
		&auth.UpstreamResponse{StatusCode: 201, Body: nil}, nil)

	svcErr := suite.service.RegisterNewUser(
		context.Background(), testRealm, "Bearer admin-token", payload)

	assert.Nil(suite.T(), svcErr)
}

func (suite *AuthServiceTestSuite) TestRegisterNewUserConflict() {
	payload := model.RegisterUserPayload{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
		Password:  "s3cret",
	}
	suite.mockClient.On("RegisterUser", mock.Anything, testRealm, "Bearer admin-token", payload).Return(
		&auth.UpstreamResponse{
			StatusCode: 409,
			Body:       []byte(`{"errorMessage": "User exists with same username"}`),
		}, nil)

	svcErr := suite.service.RegisterNewUser(
		context.Background(), testRealm, "Bearer admin-token", payload)

	assert.Equal(suite.T(), &constants.ErrorUpstreamConflict, svcErr)
}

func (suite *AuthServiceTestSuite) TestLoginUser() {
	payload := model.LoginUserPayload{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		Username:     "jdoe",
		Password:     "s3cret",
		Scope:        "openid",
	}
	suite.mockClient.On("LoginUser", mock.Anything, testRealm, payload).Return(
		&auth.UpstreamResponse{
			StatusCode: 200,
			Body: []byte(`{"access_token": "at-1", "refresh_token": "rt-1",
				"expires_in": 300, "refresh_expires_in": 1800}`),
		}, nil)

	data, svcErr := suite.service.LoginUser(context.Background(), testRealm, payload)

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "at-1", data.AccessToken)
	assert.Equal(suite.T(), "rt-1", data.RefreshToken)
}

func (suite *AuthServiceTestSuite) TestLogoutUser() {
	suite.mockClient.On("LogoutUser", mock.Anything, testRealm, "Bearer admin-token", "user-1").Return(
		&auth.UpstreamResponse{StatusCode: 204, Body: nil}, nil)

	svcErr := suite.service.LogoutUser(context.Background(), testRealm, "Bearer admin-token", "user-1")

	assert.Nil(suite.T(), svcErr)
}

func (suite *AuthServiceTestSuite) TestSendResetPasswordEmail() {
	suite.mockClient.On("SendResetPasswordEmail", mock.Anything, testRealm,
		"Bearer admin-token", "user-1").Return(
		&auth.UpstreamResponse{StatusCode: 204, Body: nil}, nil)

	svcErr := suite.service.SendResetPasswordEmail(
		context.Background(), testRealm, "Bearer admin-token", "user-1")

	assert.Nil(suite.T(), svcErr)
}

func (suite *AuthServiceTestSuite) TestFindUserByEmail() {
	suite.mockClient.On("FindUserByEmail", mock.Anything, testRealm,
		"Bearer admin-token", "jdoe@example.com").Return(
		&auth.UpstreamResponse{
			StatusCode: 200,
			Body: []byte(`[{"id": "user-1", "username": "jdoe", "email": "jdoe@example.com"},
				{"id": "user-2", "username": "jdoe2", "email": "jdoe@example.com"}]`),
		}, nil)

	data, svcErr := suite.service.FindUserByEmail(
		context.Background(), testRealm, "Bearer admin-token", "jdoe@example.com")

	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "user-1", data.ID)
	assert.Equal(suite.T(), "jdoe", data.Username)
	assert.Equal(suite.T(), "jdoe@example.com", data.Email)
}

func (suite *AuthServiceTestSuite) TestFindUserByEmailNoMatch() {
	suite.mockClient.On("FindUserByEmail", mock.Anything, testRealm,
		"Bearer admin-token", "nobody@example.com").Return(
		&auth.UpstreamResponse{StatusCode: 200, Body: []byte(`[]`)}, nil)

	data, svcErr := suite.service.FindUserByEmail(
		context.Background(), testRealm, "Bearer admin-token", "nobody@example.com")

	assert.Nil(suite.T(), data)
	assert.Equal(suite.T(), &constants.ErrorUserNotFound, svcErr)
}

func (suite *AuthServiceTestSuite) TestNetworkErrorPassesThrough() {
	payload := model.GetTokensPayload{
		DeviceCode:   "dev-123",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
	}
	suite.mockClient.On("GetTokens", mock.Anything, testRealm, payload).Return(
		nil, &constants.ErrorUpstreamUnreachable)

	data, svcErr := suite.service.GetAuthTokens(context.Background(), testRealm, payload)

	assert.Nil(suite.T(), data)
	assert.Equal(suite.T(), &constants.ErrorUpstreamUnreachable, svcErr)
}
