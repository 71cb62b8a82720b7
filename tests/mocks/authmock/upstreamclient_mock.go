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

// Package authmock provides mock implementations of the auth gateway interfaces.
package authmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keyrelay/keyrelay/internal/auth"
	"github.com/keyrelay/keyrelay/internal/auth/model"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
)

// UpstreamClientInterfaceMock is a mock implementation of the UpstreamClientInterface.
type UpstreamClientInterfaceMock struct {
	mock.Mock
}

// AuthorizeDevice mocks the AuthorizeDevice method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) AuthorizeDevice(ctx context.Context, realm string,
	payload model.AuthorizeDevicePayload) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)
	return upstreamReturn(ret)
}

// GetTokens mocks the GetTokens method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) GetTokens(ctx context.Context, realm string,
	payload model.GetTokensPayload) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)
	return upstreamReturn(ret)
}

// RefreshToken mocks the RefreshToken method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) RefreshToken(ctx context.Context, realm string,
	payload model.GetNewAccessTokenPayload) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)
	return upstreamReturn(ret)
}

// IntrospectToken mocks the IntrospectToken method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) IntrospectToken(ctx context.Context, realm, accessToken string,
	payload model.ValidateAccessTokenPayload) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, accessToken, payload)
	return upstreamReturn(ret)
}

// GetTokensForCredentials mocks the GetTokensForCredentials method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) GetTokensForCredentials(ctx context.Context, realm string,
	payload model.GetTokensForCredentialsPayload) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)
	return upstreamReturn(ret)
}

// LoginUser mocks the LoginUser method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) LoginUser(ctx context.Context, realm string,
	payload model.LoginUserPayload) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, payload)
	return upstreamReturn(ret)
}

// RegisterUser mocks the RegisterUser method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) RegisterUser(ctx context.Context, realm, authorization string,
	payload model.RegisterUserPayload) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, authorization, payload)
	return upstreamReturn(ret)
}

// LogoutUser mocks the LogoutUser method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) LogoutUser(ctx context.Context, realm, authorization,
	userID string) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, authorization, userID)
	return upstreamReturn(ret)
}

// SendResetPasswordEmail mocks the SendResetPasswordEmail method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) SendResetPasswordEmail(ctx context.Context, realm, authorization,
	userID string) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, authorization, userID)
	return upstreamReturn(ret)
}

// FindUserByEmail mocks the FindUserByEmail method of the UpstreamClientInterface.
func (_m *UpstreamClientInterfaceMock) FindUserByEmail(ctx context.Context, realm, authorization,
	email string) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	ret := _m.Called(ctx, realm, authorization, email)
	return upstreamReturn(ret)
}

func upstreamReturn(ret mock.Arguments) (*auth.UpstreamResponse, *serviceerror.ServiceError) {
	var r0 *auth.UpstreamResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*auth.UpstreamResponse)
	}

	var r1 *serviceerror.ServiceError
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*serviceerror.ServiceError)
	}

	return r0, r1
}

// NewUpstreamClientInterfaceMock creates a new mock instance registered for cleanup.
func NewUpstreamClientInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *UpstreamClientInterfaceMock {
	m := &UpstreamClientInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
