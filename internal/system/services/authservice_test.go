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

package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/keyrelay/keyrelay/internal/system/config"
)

type AuthServiceRoutesTestSuite struct {
	suite.Suite
	upstream *httptest.Server
	mux      *http.ServeMux
}

func TestAuthServiceRoutesSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceRoutesTestSuite))
}

func (suite *AuthServiceRoutesTestSuite) SetupTest() {
	suite.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	config.ResetGatewayRuntime()
	err := config.InitializeGatewayRuntime("/tmp", &config.Config{
		Upstream: config.UpstreamConfig{BaseURL: suite.upstream.URL, TimeoutSeconds: 5},
		Security: config.SecurityConfig{
			AllowedAPIKeys:     []string{"key-one"},
			AllowedIPAddresses: []string{"10.0.0.5"},
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	})
	assert.NoError(suite.T(), err)

	suite.mux = http.NewServeMux()
	NewAuthService(suite.mux)
}

func (suite *AuthServiceRoutesTestSuite) TearDownTest() {
	suite.upstream.Close()
	config.ResetGatewayRuntime()
}

func (suite *AuthServiceRoutesTestSuite) gatedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("api_key", "key-one")
	req.Header.Set("application", "tenant-a")
	req.Header.Set("Authorization", "Bearer admin-token")
	req.RemoteAddr = "10.0.0.5:40000"
	return req
}

func (suite *AuthServiceRoutesTestSuite) TestResetPasswordEmailRouteUsesPut() {
	rec := httptest.NewRecorder()
	suite.mux.ServeHTTP(rec, suite.gatedRequest(http.MethodPut, "/auth/user-1/reset-password-email"))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"emailSent": true}`, rec.Body.String())
}

func (suite *AuthServiceRoutesTestSuite) TestResetPasswordEmailRouteRejectsPost() {
	rec := httptest.NewRecorder()
	suite.mux.ServeHTTP(rec, suite.gatedRequest(http.MethodPost, "/auth/user-1/reset-password-email"))

	assert.Equal(suite.T(), http.StatusMethodNotAllowed, rec.Code)
}

func (suite *AuthServiceRoutesTestSuite) TestResetPasswordEmailPreflightAdvertisesPut() {
	req := httptest.NewRequest(http.MethodOptions, "/auth/user-1/reset-password-email", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	suite.mux.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	assert.Equal(suite.T(), "PUT", rec.Header().Get("Access-Control-Allow-Methods"))
}

func (suite *AuthServiceRoutesTestSuite) TestLogoutRouteUsesPost() {
	rec := httptest.NewRecorder()
	suite.mux.ServeHTTP(rec, suite.gatedRequest(http.MethodPost, "/auth/user-1/logout"))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"loggedOut": true}`, rec.Body.String())
}

func (suite *AuthServiceRoutesTestSuite) TestDevicePreflightAdvertisesPost() {
	req := httptest.NewRequest(http.MethodOptions, "/auth/device", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	suite.mux.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	assert.Equal(suite.T(), "POST", rec.Header().Get("Access-Control-Allow-Methods"))
}

func (suite *AuthServiceRoutesTestSuite) TestRoutesAreGated() {
	req := httptest.NewRequest(http.MethodPut, "/auth/user-1/reset-password-email", nil)
	req.RemoteAddr = "10.0.0.5:40000"
	rec := httptest.NewRecorder()

	suite.mux.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}
