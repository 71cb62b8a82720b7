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
	"time"

	"github.com/keyrelay/keyrelay/internal/auth"
	"github.com/keyrelay/keyrelay/internal/auth/constants"
	"github.com/keyrelay/keyrelay/internal/auth/handler"
	"github.com/keyrelay/keyrelay/internal/system/config"
	httpservice "github.com/keyrelay/keyrelay/internal/system/http"
	"github.com/keyrelay/keyrelay/internal/system/security"
	"github.com/keyrelay/keyrelay/internal/system/server"
)

// AuthService defines the service for handling the auth gateway routes.
type AuthService struct {
	ServerOpsService server.ServerOperationServiceInterface
	authHandler      *handler.AuthHandler
}

// NewAuthService creates a new instance of AuthService wired from the runtime configuration.
func NewAuthService(mux *http.ServeMux) ServiceInterface {
	cfg := config.GetGatewayRuntime().Config

	httpClient := httpservice.NewHTTPClientWithTimeout(
		time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second)
	upstreamClient := auth.NewUpstreamClient(httpClient, cfg.Upstream.BaseURL)
	gate := security.NewAccessGate(cfg.Security.AllowedAPIKeys, cfg.Security.AllowedIPAddresses)

	instance := &AuthService{
		ServerOpsService: server.NewServerOperationService(gate),
		authHandler:      handler.NewAuthHandler(auth.NewAuthService(upstreamClient)),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the AuthService.
func (s *AuthService) RegisterRoutes(mux *http.ServeMux) {
	routes := []struct {
		method     string
		path       string
		handleFunc func(http.ResponseWriter, *http.Request)
	}{
		{http.MethodPost, constants.DeviceRoutePath, s.authHandler.HandleDeviceAuthorizationRequest},
		{http.MethodPost, constants.TokensRoutePath, s.authHandler.HandleGetTokensRequest},
		{http.MethodPost, constants.TokenRefreshRoutePath, s.authHandler.HandleTokenRefreshRequest},
		{http.MethodPost, constants.TokenValidateRoutePath, s.authHandler.HandleTokenValidationRequest},
		{http.MethodPost, constants.TokensForCredentialsRoutePath, s.authHandler.HandleTokensForCredentialsRequest},
		{http.MethodPost, constants.RegisterRoutePath, s.authHandler.HandleUserRegistrationRequest},
		{http.MethodPost, constants.LoginRoutePath, s.authHandler.HandleLoginRequest},
		{http.MethodPost, constants.LogoutRoutePath, s.authHandler.HandleLogoutRequest},
		{http.MethodPut, constants.ResetPasswordEmailRoutePath, s.authHandler.HandleResetPasswordEmailRequest},
		{http.MethodPost, constants.UserBasicDataRoutePath, s.authHandler.HandleUserBasicDataRequest},
		{http.MethodPost, constants.UserLookupRoutePath, s.authHandler.HandleUserLookupRequest},
	}

	for _, route := range routes {
		cors := &server.Cors{
			AllowedMethods:   route.method,
			AllowedHeaders:   "Content-Type, Authorization, api_key, application",
			AllowCredentials: true,
		}
		opts := server.RequestWrapOptions{
			Cors:    cors,
			Secured: true,
		}
		preflightOpts := server.RequestWrapOptions{
			Cors: cors,
		}

		s.ServerOpsService.WrapHandleFunction(mux, route.method+" "+route.path, &opts, route.handleFunc)
		s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS "+route.path, &preflightOpts,
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
	}
}
