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

package config

import "sync"

// GatewayRuntime holds the runtime configuration for the gateway.
type GatewayRuntime struct {
	GatewayHome string `yaml:"gateway_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *GatewayRuntime
	once          sync.Once
)

// InitializeGatewayRuntime initializes the GatewayRuntime configuration.
func InitializeGatewayRuntime(gatewayHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &GatewayRuntime{
			GatewayHome: gatewayHome,
			Config:      *config,
		}
	})

	return nil
}

// GetGatewayRuntime returns the GatewayRuntime configuration.
func GetGatewayRuntime() *GatewayRuntime {
	if runtimeConfig == nil {
		panic("GatewayRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetGatewayRuntime resets the GatewayRuntime.
// This should only be used in tests to reset the singleton state.
func ResetGatewayRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
