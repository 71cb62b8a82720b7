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

package authmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keyrelay/keyrelay/internal/auth/model"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
)

// AuthServiceInterfaceMock is a mock implementation of the AuthServiceInterface.
type AuthServiceInterfaceMock struct {
	mock.Mock
}

// AuthorizeDevice mocks the AuthorizeDevice method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) AuthorizeDevice(ctx context.Context, realm string,
	payload model.AuthorizeDevicePayload) (*model.AuthorizeDeviceResponseData, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)

	var r0 *model.AuthorizeDeviceResponseData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.AuthorizeDeviceResponseData)
	}

	return r0, serviceErrorReturn(ret, 1)
}

// GetAuthTokens mocks the GetAuthTokens method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) GetAuthTokens(ctx context.Context, realm string,
	payload model.GetTokensPayload) (*model.GetTokensResponseData, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)

	var r0 *model.GetTokensResponseData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.GetTokensResponseData)
	}

	return r0, serviceErrorReturn(ret, 1)
}

// GetNewAccessToken mocks the GetNewAccessToken method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) GetNewAccessToken(ctx context.Context, realm string,
	payload model.GetNewAccessTokenPayload) (*model.GetNewAccessTokenResponseData, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)

	var r0 *model.GetNewAccessTokenResponseData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.GetNewAccessTokenResponseData)
	}

	return r0, serviceErrorReturn(ret, 1)
}

// GetAuthTokensForCredentials mocks the GetAuthTokensForCredentials method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) GetAuthTokensForCredentials(ctx context.Context, realm string,
	payload model.GetTokensForCredentialsPayload) (
	*model.GetTokensForCredentialsResponseData, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)

	var r0 *model.GetTokensForCredentialsResponseData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.GetTokensForCredentialsResponseData)
	}

	return r0, serviceErrorReturn(ret, 1)
}

// ValidateAccessToken mocks the ValidateAccessToken method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) ValidateAccessToken(ctx context.Context, realm, authorization string,
	payload model.ValidateAccessTokenPayload) (
	*model.ValidateAccessTokenResponseData, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, authorization, payload)

	var r0 *model.ValidateAccessTokenResponseData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.ValidateAccessTokenResponseData)
	}

	return r0, serviceErrorReturn(ret, 1)
}

// GetUserBasicData mocks the GetUserBasicData method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) GetUserBasicData(ctx context.Context, realm, authorization string,
	payload model.UserBasicDataPayload) (*model.UserBasicData, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, authorization, payload)

	var r0 *model.UserBasicData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.UserBasicData)
	}

	return r0, serviceErrorReturn(ret, 1)
}

// RegisterNewUser mocks the RegisterNewUser method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) RegisterNewUser(ctx context.Context, realm, authorization string,
	payload model.RegisterUserPayload) *serviceerror.ServiceError {
	ret := _m.Called(ctx, realm, authorization, payload)
	return serviceErrorReturn(ret, 0)
}

// LoginUser mocks the LoginUser method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) LoginUser(ctx context.Context, realm string,
	payload model.LoginUserPayload) (*model.GetTokensResponseData, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)

	var r0 *model.GetTokensResponseData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.GetTokensResponseData)
	}

	return r0, serviceErrorReturn(ret, 1)
}

// LogoutUser mocks the LogoutUser method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) LogoutUser(ctx context.Context, realm, authorization,
	userID string) *serviceerror.ServiceError {
	ret := _m.Called(ctx, realm, authorization, userID)
	return serviceErrorReturn(ret, 0)
}

// SendResetPasswordEmail mocks the SendResetPasswordEmail method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) SendResetPasswordEmail(ctx context.Context, realm, authorization,
	userID string) *serviceerror.ServiceError {
	ret := _m.Called(ctx, realm, authorization, userID)
	return serviceErrorReturn(ret, 0)
}

// FindUserByEmail mocks the FindUserByEmail method of the AuthServiceInterface.
func (_m *AuthServiceInterfaceMock) FindUserByEmail(ctx context.Context, realm, authorization,
	email string) (*model.UserLookupData, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, authorization, email)

	var r0 *model.UserLookupData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.UserLookupData)
	}

	return r0, serviceErrorReturn(ret, 1)
}

func serviceErrorReturn(ret mock.Arguments, index int) *serviceerror.ServiceError {
	if ret.Get(index) != nil {
		return ret.Get(index).(*serviceerror.ServiceError)
	}
	return nil
}

// NewAuthServiceInterfaceMock creates a new mock instance registered for cleanup.
func NewAuthServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthServiceInterfaceMock {
	m := &AuthServiceInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
