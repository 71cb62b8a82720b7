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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/keyrelay/keyrelay/internal/auth/constants"
	"github.com/keyrelay/keyrelay/internal/auth/model"
	serverconst "github.com/keyrelay/keyrelay/internal/system/constants"
	"github.com/keyrelay/keyrelay/internal/system/error/serviceerror"
	httpservice "github.com/keyrelay/keyrelay/internal/system/http"
	"github.com/keyrelay/keyrelay/internal/system/log"
)

const clientLoggerComponentName = "UpstreamClient"

// UpstreamResponse carries the raw status code and body of an upstream call.
// The client performs no interpretation of the body.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// UpstreamClientInterface translates each gateway operation into exactly one
// outbound call against the upstream identity provider.
type UpstreamClientInterface interface {
	AuthorizeDevice(ctx context.Context, realm string, payload model.AuthorizeDevicePayload) (
		*UpstreamResponse, *serviceerror.ServiceError)
	GetTokens(ctx context.Context, realm string, payload model.GetTokensPayload) (
		*UpstreamResponse, *serviceerror.ServiceError)
	RefreshToken(ctx context.Context, realm string, payload model.GetNewAccessTokenPayload) (
		*UpstreamResponse, *serviceerror.ServiceError)
	IntrospectToken(ctx context.Context, realm, accessToken string, payload model.ValidateAccessTokenPayload) (
		*UpstreamResponse, *serviceerror.ServiceError)
	GetTokensForCredentials(ctx context.Context, realm string, payload model.GetTokensForCredentialsPayload) (
		*UpstreamResponse, *serviceerror.ServiceError)
	LoginUser(ctx context.Context, realm string, payload model.LoginUserPayload) (
		*UpstreamResponse, *serviceerror.ServiceError)
	RegisterUser(ctx context.Context, realm, authorization string, payload model.RegisterUserPayload) (
		*UpstreamResponse, *serviceerror.ServiceError)
	LogoutUser(ctx context.Context, realm, authorization, userID string) (
		*UpstreamResponse, *serviceerror.ServiceError)
	SendResetPasswordEmail(ctx context.Context, realm, authorization, userID string) (
		*UpstreamResponse, *serviceerror.ServiceError)
	FindUserByEmail(ctx context.Context, realm, authorization, email string) (
		*UpstreamResponse, *serviceerror.ServiceError)
}

// upstreamClient is the default implementation of UpstreamClientInterface.
type upstreamClient struct {
	httpClient httpservice.HTTPClientInterface
	baseURL    string
}

// NewUpstreamClient creates a new upstream client for the given provider base URL.
func NewUpstreamClient(httpClient httpservice.HTTPClientInterface, baseURL string) UpstreamClientInterface {
	if httpClient == nil {
		httpClient = httpservice.GetHTTPClient()
	}

	return &upstreamClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// AuthorizeDevice starts the device authorization flow for the realm in context.
func (c *upstreamClient) AuthorizeDevice(ctx context.Context, realm string,
	payload model.AuthorizeDevicePayload) (*UpstreamResponse, *serviceerror.ServiceError) {
	form := url.Values{}
	form.Set(constants.RequestParamClientID, payload.ClientID)
	form.Set(constants.RequestParamClientSecret, payload.ClientSecret)
	form.Set(constants.RequestParamScope, payload.Scope)

	return c.postForm(ctx, c.realmURL(realm, constants.DeviceAuthPath), form)
}

// GetTokens redeems a device code for tokens via the device code grant.
func (c *upstreamClient) GetTokens(ctx context.Context, realm string,
	payload model.GetTokensPayload) (*UpstreamResponse, *serviceerror.ServiceError) {
	form := url.Values{}
	form.Set(constants.RequestParamDeviceCode, payload.DeviceCode)
	form.Set(constants.RequestParamGrantType, constants.GrantTypeDeviceCode)
	form.Set(constants.RequestParamClientID, payload.ClientID)
	form.Set(constants.RequestParamClientSecret, payload.ClientSecret)

	return c.postForm(ctx, c.realmURL(realm, constants.TokenPath), form)
}

// RefreshToken obtains a new access token via the refresh token grant.
func (c *upstreamClient) RefreshToken(ctx context.Context, realm string,
	payload model.GetNewAccessTokenPayload) (*UpstreamResponse, *serviceerror.ServiceError) {
	form := url.Values{}
	form.Set(constants.RequestParamRefreshToken, payload.RefreshToken)
	form.Set(constants.RequestParamGrantType, constants.GrantTypeRefreshToken)
	form.Set(constants.RequestParamClientID, payload.ClientID)
	form.Set(constants.RequestParamClientSecret, payload.ClientSecret)

	return c.postForm(ctx, c.realmURL(realm, constants.TokenPath), form)
}

// IntrospectToken asks the upstream provider for the state of the given token.
func (c *upstreamClient) IntrospectToken(ctx context.Context, realm, accessToken string,
	payload model.ValidateAccessTokenPayload) (*UpstreamResponse, *serviceerror.ServiceError) {
	form := url.Values{}
	form.Set(constants.RequestParamToken, accessToken)
	form.Set(constants.RequestParamClientID, payload.ClientID)
	form.Set(constants.RequestParamClientSecret, payload.ClientSecret)

	return c.postForm(ctx, c.realmURL(realm, constants.IntrospectPath), form)
}

// GetTokensForCredentials obtains tokens via the client credentials grant.
func (c *upstreamClient) GetTokensForCredentials(ctx context.Context, realm string,
	payload model.GetTokensForCredentialsPayload) (*UpstreamResponse, *serviceerror.ServiceError) {
	form := url.Values{}
	form.Set(constants.RequestParamGrantType, constants.GrantTypeClientCredentials)
	form.Set(constants.RequestParamClientID, payload.ClientID)
	form.Set(constants.RequestParamClientSecret, payload.ClientSecret)
	form.Set(constants.RequestParamScope, payload.Scope)

	return c.postForm(ctx, c.realmURL(realm, constants.TokenPath), form)
}

// LoginUser obtains tokens via the resource owner password grant.
func (c *upstreamClient) LoginUser(ctx context.Context, realm string,
	payload model.LoginUserPayload) (*UpstreamResponse, *serviceerror.ServiceError) {
	form := url.Values{}
	form.Set(constants.RequestParamGrantType, constants.GrantTypePassword)
	form.Set(constants.RequestParamClientID, payload.ClientID)
	form.Set(constants.RequestParamClientSecret, payload.ClientSecret)
	form.Set(constants.RequestParamScope, payload.Scope)
	form.Set(constants.RequestParamUsername, payload.Username)
	form.Set(constants.RequestParamPassword, payload.Password)

	return c.postForm(ctx, c.realmURL(realm, constants.TokenPath), form)
}

// upstreamCredential is the credential representation of the upstream admin API.
type upstreamCredential struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// upstreamUserRepresentation is the user representation of the upstream admin API.
type upstreamUserRepresentation struct {
	Username    string               `json:"username"`
	Enabled     bool                 `json:"enabled"`
	Email       string               `json:"email"`
	FirstName   string               `json:"firstName"`
	LastName    string               `json:"lastName"`
	Credentials []upstreamCredential `json:"credentials"`
}

// RegisterUser creates a new user via the upstream admin API. The caller's
// authorization header value is forwarded verbatim.
func (c *upstreamClient) RegisterUser(ctx context.Context, realm, authorization string,
	payload model.RegisterUserPayload) (*UpstreamResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, clientLoggerComponentName))

	user := upstreamUserRepresentation{
		Username:  payload.Username,
		Enabled:   true,
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Credentials: []upstreamCredential{
			{Type: "password", Value: payload.Password},
		},
	}

	body, err := json.Marshal(user)
	if err != nil {
		logger.Error("Failed to encode user representation", log.Error(err))
		return nil, &constants.ErrorUnexpectedServerError
	}

	endpoint := c.adminRealmURL(realm, constants.UsersPath)
	httpReq, svcErr := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if svcErr != nil {
		return nil, svcErr
	}
	httpReq.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	httpReq.Header.Set(serverconst.AuthorizationHeaderName, authorization)

	return c.send(httpReq)
}

// LogoutUser signs the given user out of all sessions via the upstream admin API.
func (c *upstreamClient) LogoutUser(ctx context.Context, realm, authorization, userID string) (
	*UpstreamResponse, *serviceerror.ServiceError) {
	endpoint := c.adminRealmURL(realm, constants.UsersPath+"/"+url.PathEscape(userID)+constants.LogoutPathSuffix)
	httpReq, svcErr := c.newRequest(ctx, http.MethodPost, endpoint, nil)
	if svcErr != nil {
		return nil, svcErr
	}
	httpReq.Header.Set(serverconst.AuthorizationHeaderName, authorization)

	return c.send(httpReq)
}

// SendResetPasswordEmail triggers the reset password email for the given user
// via the upstream admin API.
func (c *upstreamClient) SendResetPasswordEmail(ctx context.Context, realm, authorization, userID string) (
	*UpstreamResponse, *serviceerror.ServiceError) {
	endpoint := c.adminRealmURL(realm,
		constants.UsersPath+"/"+url.PathEscape(userID)+constants.ResetPasswordEmailSuffix)
	httpReq, svcErr := c.newRequest(ctx, http.MethodPut, endpoint, nil)
	if svcErr != nil {
		return nil, svcErr
	}
	httpReq.Header.Set(serverconst.AuthorizationHeaderName, authorization)

	return c.send(httpReq)
}

// FindUserByEmail looks up users matching the given email via the upstream admin API.
func (c *upstreamClient) FindUserByEmail(ctx context.Context, realm, authorization, email string) (
	*UpstreamResponse, *serviceerror.ServiceError) {
	query := url.Values{}
	query.Set(constants.RequestParamEmail, email)

	endpoint := c.adminRealmURL(realm, constants.UsersPath) + "?" + query.Encode()
	httpReq, svcErr := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if svcErr != nil {
		return nil, svcErr
	}
	httpReq.Header.Set(serverconst.AuthorizationHeaderName, authorization)
	httpReq.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)

	return c.send(httpReq)
}

// realmURL builds a realm scoped upstream URL. The realm segment is path
// escaped so a caller supplied value cannot traverse into other endpoints.
func (c *upstreamClient) realmURL(realm, suffix string) string {
	return c.baseURL + constants.RealmsPath + url.PathEscape(realm) + suffix
}

// adminRealmURL builds a realm scoped upstream admin API URL.
func (c *upstreamClient) adminRealmURL(realm, suffix string) string {
	return c.baseURL + constants.AdminRealmsPath + url.PathEscape(realm) + suffix
}

// postForm sends a form url encoded POST request to the given endpoint.
func (c *upstreamClient) postForm(ctx context.Context, endpoint string, form url.Values) (
	*UpstreamResponse, *serviceerror.ServiceError) {
	httpReq, svcErr := c.newRequest(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if svcErr != nil {
		return nil, svcErr
	}
	httpReq.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeFormURLEncoded)
	httpReq.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)

	return c.send(httpReq)
}

// newRequest creates an outbound request bound to the inbound request context
// so a client disconnect cancels the in-flight upstream call.
func (c *upstreamClient) newRequest(ctx context.Context, method, endpoint string,
	body io.Reader) (*http.Request, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, clientLoggerComponentName))

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		logger.Error("Failed to create upstream request", log.Error(err))
		return nil, &constants.ErrorUnexpectedServerError
	}
	return httpReq, nil
}

// send executes the request and returns the raw upstream response. Connection
// and timeout failures are reported as the network error kind, distinct from
// upstream 4xx/5xx statuses.
func (c *upstreamClient) send(httpReq *http.Request) (*UpstreamResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, clientLoggerComponentName))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Upstream request failed", log.Error(err))
		return nil, &constants.ErrorUpstreamUnreachable
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close upstream response body", log.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read upstream response body", log.Error(err))
		return nil, &constants.ErrorUnexpectedServerError
	}

	return &UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
